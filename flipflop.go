// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// flipFlop holds the state shared by both flip-flop kinds.
type flipFlop struct {
	gateBase
	state bool
}

func (f *flipFlop) init(self Sequential, id string, inputs []string) {
	f.gateBase.init(self, id, flipFlopSize, inputs, []string{pinQ, pinQBar})
	// Q starts low, so Q' starts high.
	f.out[1].value = true
}

// Q returns the stored bit.
func (f *flipFlop) Q() bool { return f.state }

// Drive sets q and qbar from the stored bit.
func (f *flipFlop) Drive() {
	f.out[0].SetValue(f.state)
	f.out[1].SetValue(!f.state)
}

// DFlipFlop is a rising edge triggered data flip-flop.
//
//	Inputs: d, clk
//	Outputs: q, qbar
//	Function: on a rising edge of clk, q = d and qbar = !d. Hold otherwise.
type DFlipFlop struct {
	flipFlop
	prevClk bool
}

// NewDFlipFlop returns a new data flip-flop with q low.
func NewDFlipFlop(id string) *DFlipFlop {
	f := &DFlipFlop{}
	f.init(f, id, []string{pinD, pinClk})
	return f
}

// Kind returns KindDFlipFlop.
func (f *DFlipFlop) Kind() Kind { return KindDFlipFlop }

// Sample latches d if clk went from low to high since the previous call.
func (f *DFlipFlop) Sample() {
	d, clk := f.in[0].Value(), f.in[1].Value()
	if clk && !f.prevClk {
		f.state = d
	}
	f.prevClk = clk
}

// Evaluate samples the inputs and drives the outputs.
func (f *DFlipFlop) Evaluate() {
	f.Sample()
	f.Drive()
}

// Accept calls v.VisitGate.
func (f *DFlipFlop) Accept(v ItemVisitor) error { return v.VisitGate(f) }

// SRFlipFlop is a set/reset latch.
//
//	Inputs: s, r
//	Outputs: q, qbar
//	Function: s && !r sets q, r && !s resets q, otherwise q holds.
//
// Both inputs high is not a valid input for a SR latch. The flip-flop then
// holds its previous state and Conflict reports true until the next sample
// with valid inputs.
type SRFlipFlop struct {
	flipFlop
	conflict bool
}

// NewSRFlipFlop returns a new SR flip-flop with q low.
func NewSRFlipFlop(id string) *SRFlipFlop {
	f := &SRFlipFlop{}
	f.init(f, id, []string{pinS, pinR})
	return f
}

// Kind returns KindSRFlipFlop.
func (f *SRFlipFlop) Kind() Kind { return KindSRFlipFlop }

// Sample updates the stored bit from s and r.
func (f *SRFlipFlop) Sample() {
	s, r := f.in[0].Value(), f.in[1].Value()
	f.conflict = s && r
	switch {
	case s && !r:
		f.state = true
	case r && !s:
		f.state = false
	}
}

// Conflict reports whether the last sample saw both s and r high.
func (f *SRFlipFlop) Conflict() bool { return f.conflict }

// Evaluate samples the inputs and drives the outputs.
func (f *SRFlipFlop) Evaluate() {
	f.Sample()
	f.Drive()
}

// Accept calls v.VisitGate.
func (f *SRFlipFlop) Accept(v ItemVisitor) error { return v.VisitGate(f) }
