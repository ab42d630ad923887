// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package boardtest provides utility functions for testing gates and boards.
package boardtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	lb "github.com/db47h/logicboard"
)

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

func inputString(g lb.Gate) string {
	var b strings.Builder
	for _, p := range g.Inputs() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", p.Name(), p.Value())
	}
	return b.String()
}

// tick runs one tick of d and fails the test on error.
func tick(t *testing.T, d *lb.DependencyGraph) {
	t.Helper()
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}
}

// TruthTable checks a combinational gate against its truth table. Rows are
// indexed by the input values read as a binary number, the first input being
// the most significant bit. Each row holds the expected outputs.
func TruthTable(t *testing.T, g lb.Gate, table [][]bool) {
	t.Helper()
	in := g.Inputs()
	tot := 1 << uint(len(in))
	if len(table) != tot {
		t.Fatalf("%s: truth table has %d rows, want %d", g.ID(), len(table), tot)
	}
	d := lb.NewDependencyGraph(lb.DefaultConfig())
	d.AddGate(g)
	defer d.RemoveGate(g)
	for i := 0; i < tot; i++ {
		for bit := range in {
			in[len(in)-bit-1].SetValue(i&(1<<uint(bit)) != 0)
		}
		tick(t, d)
		for o, out := range g.Outputs() {
			if exp := table[i][o]; out.Value() != exp {
				t.Errorf("%s %s: expected %s=%v, got %v", g.Kind(), inputString(g), out.Name(), exp, out.Value())
			}
		}
	}
}

// CompareGates sets the same random inputs on two combinational gates and
// compares their outputs. Both gates must have the same pin names.
func CompareGates(t *testing.T, seed int64, g1, g2 lb.Gate) {
	t.Helper()
	in1, in2 := g1.Inputs(), g2.Inputs()
	out1, out2 := g1.Outputs(), g2.Outputs()
	if len(in1) != len(in2) {
		t.Fatal("len(g1.Inputs()) != len(g2.Inputs())")
	}
	if len(out1) != len(out2) {
		t.Fatal("len(g1.Outputs()) != len(g2.Outputs())")
	}
	for i := range in1 {
		if in1[i].Name() != in2[i].Name() {
			t.Fatalf("g1 input %d = %q != g2 input %d = %q", i, in1[i].Name(), i, in2[i].Name())
		}
	}

	d := lb.NewDependencyGraph(lb.DefaultConfig())
	d.AddGate(g1)
	d.AddGate(g2)
	defer func() {
		d.RemoveGate(g1)
		d.RemoveGate(g2)
	}()

	check := func() {
		t.Helper()
		tick(t, d)
		for o := range out1 {
			if out1[o].Value() != out2[o].Value() {
				t.Fatalf("\n%s => %s=%v\ngot %v", inputString(g1), out1[o].Name(), out1[o].Value(), out2[o].Value())
			}
		}
	}

	set := func(f func(i int) bool) {
		for i := range in1 {
			v := f(i)
			in1[i].SetValue(v)
			in2[i].SetValue(v)
		}
	}

	// all 0, all 1, then random inputs
	set(func(int) bool { return false })
	check()
	set(func(int) bool { return true })
	check()

	iter := len(in1)
	if iter > 12 {
		iter = 12
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < 1<<uint(iter); i++ {
		set(func(int) bool { return randBool(r) })
		check()
	}
}
