// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"github.com/pkg/errors"
)

// State is the state of a graph's cached evaluation order.
type State int

// Graph states.
const (
	// Dirty graphs recompute their order on the next Tick or Compute.
	Dirty State = iota
	// Clean graphs have a valid cached order.
	Clean
	// Invalid graphs have combinational loops. Tick fails until the wiring
	// or the gate set changes.
	Invalid
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Invalid:
		return "invalid"
	}
	return "dirty"
}

// DependencyGraph evaluates a set of gates once per tick.
//
// Each tick runs in three phases:
//
//  1. every flip-flop samples its inputs,
//  2. every flip-flop drives its outputs,
//  3. combinational gates are evaluated in topological order.
//
// Flip-flops therefore see the values their inputs had at the end of the
// previous tick, and their outputs act as sources for the combinational
// ordering. Loops through a flip-flop are legal; loops made only of
// combinational gates are reported as ErrCyclicWiring.
//
// The graph does not own the gates. A gate must not be managed by more than
// one graph.
type DependencyGraph struct {
	gates  []Gate
	member map[Gate]struct{}
	order  []Gate       // combinational gates, topologically sorted
	seq    []Sequential // flip-flops, in insertion order
	state  State
	err    error
	strict bool
	ticks  uint64
}

// NewDependencyGraph returns an empty graph.
//
// With cfg.StrictInputs set, Tick fails with ErrUnconnectedInput when a gate
// input has never been connected or assigned. Otherwise such inputs read as
// false.
func NewDependencyGraph(cfg Config) *DependencyGraph {
	return &DependencyGraph{
		member: make(map[Gate]struct{}),
		strict: cfg.StrictInputs,
	}
}

// AddGate adds g to the graph. Adding a gate twice does nothing.
func (d *DependencyGraph) AddGate(g Gate) {
	if g == nil {
		return
	}
	if _, ok := d.member[g]; ok {
		return
	}
	d.member[g] = struct{}{}
	d.gates = append(d.gates, g)
	for _, p := range g.Inputs() {
		p.graph = d
	}
	for _, p := range g.Outputs() {
		p.graph = d
	}
	d.Invalidate()
}

// RemoveGate disconnects every pin of g and removes it from the graph.
// Removing a gate that is not in the graph does nothing.
func (d *DependencyGraph) RemoveGate(g Gate) {
	if _, ok := d.member[g]; !ok {
		return
	}
	for _, p := range g.Inputs() {
		p.Disconnect()
		p.graph = nil
	}
	for _, p := range g.Outputs() {
		p.Disconnect()
		p.graph = nil
	}
	delete(d.member, g)
	for i, x := range d.gates {
		if x == g {
			copy(d.gates[i:], d.gates[i+1:])
			d.gates[len(d.gates)-1] = nil
			d.gates = d.gates[:len(d.gates)-1]
			break
		}
	}
	d.order = without(d.order, g)
	for i, x := range d.seq {
		if Gate(x) == g {
			d.seq = append(d.seq[:i:i], d.seq[i+1:]...)
			break
		}
	}
	d.Invalidate()
}

// without returns gs without g. gs is not modified.
func without(gs []Gate, g Gate) []Gate {
	for i, x := range gs {
		if x == g {
			return append(gs[:i:i], gs[i+1:]...)
		}
	}
	return gs
}

// Has reports whether g is managed by the graph.
func (d *DependencyGraph) Has(g Gate) bool {
	_, ok := d.member[g]
	return ok
}

// Gates returns the managed gates in insertion order.
func (d *DependencyGraph) Gates() []Gate {
	gs := make([]Gate, len(d.gates))
	copy(gs, d.gates)
	return gs
}

// Invalidate marks the cached order as stale. It is called automatically when
// the gate set or the wiring of a managed gate changes.
func (d *DependencyGraph) Invalidate() {
	d.state = Dirty
	d.err = nil
}

// State returns the state of the cached order.
func (d *DependencyGraph) State() State { return d.state }

// Ticks returns the number of successful ticks.
func (d *DependencyGraph) Ticks() uint64 { return d.ticks }

// Order returns the combinational gates in the last successfully computed
// evaluation order. Flip-flops are not part of it, nor are gates removed
// since.
func (d *DependencyGraph) Order() []Gate {
	o := make([]Gate, len(d.order))
	copy(o, d.order)
	return o
}

// Sequential returns the flip-flops of the last successfully computed order
// that are still in the graph.
func (d *DependencyGraph) Sequential() []Sequential {
	s := make([]Sequential, len(d.seq))
	copy(s, d.seq)
	return s
}

// combinationalSource returns the gate driving in when that gate is a
// managed combinational gate.
func (d *DependencyGraph) combinationalSource(in *Pin) (Gate, bool) {
	src := in.Source()
	if src == nil {
		return nil, false
	}
	g, ok := src.Gate()
	if !ok {
		return nil, false
	}
	if _, ok = g.(Sequential); ok {
		return nil, false
	}
	if _, ok = d.member[g]; !ok {
		return nil, false
	}
	return g, true
}

// Compute rebuilds the evaluation order.
//
// It returns a *CycleError if combinational gates form a loop. The graph is
// then Invalid and keeps the last valid order.
func (d *DependencyGraph) Compute() error {
	var (
		seq  []Sequential
		comb []Gate
	)
	for _, g := range d.gates {
		if s, ok := g.(Sequential); ok {
			seq = append(seq, s)
		} else {
			comb = append(comb, g)
		}
	}

	// Kahn's algorithm. The queue is seeded in insertion order so that the
	// resulting order is deterministic.
	deps := make(map[Gate][]Gate, len(comb))
	indeg := make(map[Gate]int, len(comb))
	for _, g := range comb {
		for _, in := range g.Inputs() {
			if src, ok := d.combinationalSource(in); ok {
				deps[src] = append(deps[src], g)
				indeg[g]++
			}
		}
	}
	queue := make([]Gate, 0, len(comb))
	for _, g := range comb {
		if indeg[g] == 0 {
			queue = append(queue, g)
		}
	}
	order := make([]Gate, 0, len(comb))
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		order = append(order, g)
		for _, n := range deps[g] {
			indeg[n]--
			if indeg[n] == 0 {
				queue = append(queue, n)
			}
		}
	}

	if len(order) < len(comb) {
		d.state = Invalid
		d.err = &CycleError{Gates: d.findCycle(comb, indeg)}
		return d.err
	}
	d.order, d.seq = order, seq
	d.state = Clean
	d.err = nil
	return nil
}

// findCycle returns one loop among the gates left with a non-zero in-degree
// by Kahn's algorithm. Each of them has at least one such predecessor, so
// walking predecessors must come back to an already visited gate.
func (d *DependencyGraph) findCycle(comb []Gate, indeg map[Gate]int) []Gate {
	var start Gate
	for _, g := range comb {
		if indeg[g] > 0 {
			start = g
			break
		}
	}
	seen := make(map[Gate]int)
	var path []Gate
	for g := start; ; {
		if i, ok := seen[g]; ok {
			loop := path[i:]
			// path runs against the signal flow.
			cycle := make([]Gate, 0, len(loop)+1)
			for j := len(loop) - 1; j >= 0; j-- {
				cycle = append(cycle, loop[j])
			}
			return append(cycle, cycle[0])
		}
		seen[g] = len(path)
		path = append(path, g)
		for _, in := range g.Inputs() {
			if src, ok := d.combinationalSource(in); ok && indeg[src] > 0 {
				g = src
				break
			}
		}
	}
}

// checkInputs returns an error for the first gate input that is neither
// connected nor driven.
func (d *DependencyGraph) checkInputs() error {
	for _, g := range d.gates {
		for _, in := range g.Inputs() {
			if !in.Driven() {
				return errors.Wrapf(ErrUnconnectedInput, "%s", in)
			}
		}
	}
	return nil
}

// Tick runs one full evaluation pass, recomputing the order first if needed.
//
// A failing Tick does not modify any pin. On an Invalid graph, Tick returns
// the cycle error until the wiring changes.
func (d *DependencyGraph) Tick() error {
	switch d.state {
	case Invalid:
		return d.err
	case Dirty:
		if err := d.Compute(); err != nil {
			return err
		}
	}
	if d.strict {
		if err := d.checkInputs(); err != nil {
			return err
		}
	}
	for _, s := range d.seq {
		s.Sample()
	}
	for _, s := range d.seq {
		s.Drive()
	}
	for _, g := range d.order {
		g.Evaluate()
	}
	d.ticks++
	return nil
}
