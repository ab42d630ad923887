// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a gate variant.
type Kind int

// Gate kinds.
const (
	KindAnd Kind = iota
	KindOr
	KindNand
	KindNot
	KindDFlipFlop
	KindSRFlipFlop
)

var kindNames = [...]string{
	KindAnd:        "AND",
	KindOr:         "OR",
	KindNand:       "NAND",
	KindNot:        "NOT",
	KindDFlipFlop:  "DFF",
	KindSRFlipFlop: "SRFF",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Sequential reports whether gates of this kind hold state across ticks.
func (k Kind) Sequential() bool {
	return k == KindDFlipFlop || k == KindSRFlipFlop
}

// ParseKind returns the kind matching name. Matching is case insensitive.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, errors.Errorf("unknown gate kind %q", name)
}

// A Gate is a logic element with input and output pins.
//
// Evaluate reads the gate's input pins, computes the outputs and sets them on
// its output pins. It never accesses other gates except through pins.
type Gate interface {
	Item
	Kind() Kind
	Inputs() []*Pin
	Outputs() []*Pin
	// Pin returns the named input or output pin, or nil.
	Pin(name string) *Pin
	Evaluate()
}

// Sequential is implemented by gates with internal memory (flip-flops).
//
// Sample latches the next state from the current input values without
// touching the outputs. Drive sets the outputs from the latched state.
// Evaluate is Sample followed by Drive.
type Sequential interface {
	Gate
	Sample()
	Drive()
}

// Common pin names.
const (
	pinA    = "a"
	pinB    = "b"
	pinIn   = "in"
	pinOut  = "out"
	pinD    = "d"
	pinClk  = "clk"
	pinS    = "s"
	pinR    = "r"
	pinQ    = "q"
	pinQBar = "qbar"
)

// BusPinName returns the name of pin i in bus name, e.g. in[3].
func BusPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

var (
	gateSize     = Size{75, 50}
	flipFlopSize = Size{50, 75}
)

// gateBase holds the pins of a gate. Pins are created with the gate and
// belong to it.
type gateBase struct {
	itemBase
	in  []*Pin
	out []*Pin
}

func (g *gateBase) init(self Gate, id string, size Size, inputs, outputs []string) {
	g.id = id
	g.size = size
	g.in = make([]*Pin, len(inputs))
	for i, n := range inputs {
		g.in[i] = newPin(self, n, Input)
	}
	g.out = make([]*Pin, len(outputs))
	for i, n := range outputs {
		g.out[i] = newPin(self, n, Output)
	}
}

// Inputs returns the input pins in declaration order. The slice must not be
// modified.
func (g *gateBase) Inputs() []*Pin { return g.in }

// Outputs returns the output pins in declaration order. The slice must not be
// modified.
func (g *gateBase) Outputs() []*Pin { return g.out }

// Pins returns all pins of the gate, inputs first.
func (g *gateBase) Pins() []*Pin {
	ps := make([]*Pin, 0, len(g.in)+len(g.out))
	ps = append(ps, g.in...)
	return append(ps, g.out...)
}

// Pin returns the named pin, or nil.
func (g *gateBase) Pin(name string) *Pin {
	for _, p := range g.in {
		if p.name == name {
			return p
		}
	}
	for _, p := range g.out {
		if p.name == name {
			return p
		}
	}
	return nil
}
