// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"github.com/pkg/errors"
)

// LogicGate is a combinational gate: its single output pin is a function of
// its input pins only.
type LogicGate struct {
	gateBase
	kind Kind
	fn   func(in []*Pin) bool
}

func allHigh(in []*Pin) bool {
	for _, p := range in {
		if !p.Value() {
			return false
		}
	}
	return true
}

func anyHigh(in []*Pin) bool {
	for _, p := range in {
		if p.Value() {
			return true
		}
	}
	return false
}

var logicFns = map[Kind]func([]*Pin) bool{
	KindAnd:  allHigh,
	KindOr:   anyHigh,
	KindNand: func(in []*Pin) bool { return !allHigh(in) },
	KindNot:  func(in []*Pin) bool { return !in[0].Value() },
}

// inputNames returns a, b for two-input gates, in[0]..in[n-1] otherwise.
func inputNames(n int) []string {
	if n == 2 {
		return []string{pinA, pinB}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = BusPinName(pinIn, i)
	}
	return names
}

func newLogicGate(kind Kind, id string, inputs []string) *LogicGate {
	g := &LogicGate{kind: kind, fn: logicFns[kind]}
	g.init(g, id, gateSize, inputs, []string{pinOut})
	return g
}

// newLogicGateN returns a gate with ways inputs. It panics if ways < 2.
func newLogicGateN(kind Kind, id string, ways int) *LogicGate {
	if err := checkWays(kind, id, ways); err != nil {
		panic(err)
	}
	return newLogicGate(kind, id, inputNames(ways))
}

func checkWays(kind Kind, id string, ways int) error {
	if ways < 2 {
		return errors.Errorf("%s gate %q: need at least 2 inputs, got %d", kind, id, ways)
	}
	return nil
}

// Kind returns the gate kind.
func (g *LogicGate) Kind() Kind { return g.kind }

// Evaluate sets the output pin from the input pins.
func (g *LogicGate) Evaluate() {
	g.out[0].SetValue(g.fn(g.in))
}

// Accept calls v.VisitGate.
func (g *LogicGate) Accept(v ItemVisitor) error { return v.VisitGate(g) }

// NewAnd returns a two-input AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func NewAnd(id string) *LogicGate { return newLogicGate(KindAnd, id, inputNames(2)) }

// NewOr returns a two-input OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func NewOr(id string) *LogicGate { return newLogicGate(KindOr, id, inputNames(2)) }

// NewNand returns a two-input NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func NewNand(id string) *LogicGate { return newLogicGate(KindNand, id, inputNames(2)) }

// NewNot returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func NewNot(id string) *LogicGate { return newLogicGate(KindNot, id, []string{pinIn}) }

// NewAndN returns a N-way AND gate. Two-way gates use pins a and b.
// It panics if ways < 2.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] && in[1] && ... && in[ways-1]
func NewAndN(id string, ways int) *LogicGate { return newLogicGateN(KindAnd, id, ways) }

// NewOrN returns a N-way OR gate. Two-way gates use pins a and b.
// It panics if ways < 2.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[ways-1]
func NewOrN(id string, ways int) *LogicGate { return newLogicGateN(KindOr, id, ways) }

// NewNandN returns a N-way NAND gate. Two-way gates use pins a and b.
// It panics if ways < 2.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = !(in[0] && in[1] && ... && in[ways-1])
func NewNandN(id string, ways int) *LogicGate { return newLogicGateN(KindNand, id, ways) }

// NewGate returns a new gate of the given kind. inputs is the input count of
// AND, OR and NAND gates; 0 selects the two-input version. It must be 0 or 1
// for the other kinds.
func NewGate(kind Kind, id string, inputs int) (Gate, error) {
	switch kind {
	case KindAnd, KindOr, KindNand:
		if inputs == 0 {
			inputs = 2
		}
		if err := checkWays(kind, id, inputs); err != nil {
			return nil, err
		}
		return newLogicGateN(kind, id, inputs), nil
	}
	if inputs > 1 {
		return nil, errors.Errorf("%s gate %q: input count is fixed", kind, id)
	}
	switch kind {
	case KindNot:
		return NewNot(id), nil
	case KindDFlipFlop:
		return NewDFlipFlop(id), nil
	case KindSRFlipFlop:
		return NewSRFlipFlop(id), nil
	}
	return nil, errors.Errorf("gate %q: unknown kind %s", id, kind)
}
