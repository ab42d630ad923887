// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard_test

import (
	"testing"
	"testing/quick"

	lb "github.com/db47h/logicboard"
	"github.com/db47h/logicboard/boardtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_truthTables(t *testing.T) {
	td := []struct {
		name  string
		gate  lb.Gate
		table [][]bool // a=0 b=0, a=0 b=1, a=1 b=0, a=1 b=1
	}{
		{"NOT", lb.NewNot("not"), [][]bool{{true}, {false}}},
		{"AND", lb.NewAnd("and"), [][]bool{{false}, {false}, {false}, {true}}},
		{"NAND", lb.NewNand("nand"), [][]bool{{true}, {true}, {true}, {false}}},
		{"OR", lb.NewOr("or"), [][]bool{{false}, {true}, {true}, {true}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			boardtest.TruthTable(t, d.gate, d.table)
		})
	}
}

func nway(t *testing.T, g lb.Gate, fn func(in uint8) bool) {
	t.Helper()
	d := lb.NewDependencyGraph(lb.DefaultConfig())
	d.AddGate(g)
	in := g.Inputs()
	f := func(v uint8) bool {
		for i, p := range in {
			p.SetValue(v&(1<<uint(i)) != 0)
		}
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
		return g.Pin("out").Value() == fn(v)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGate_nway(t *testing.T) {
	nway(t, lb.NewAndN("and8", 8), func(v uint8) bool { return v == 0xff })
	nway(t, lb.NewOrN("or8", 8), func(v uint8) bool { return v != 0 })
	nway(t, lb.NewNandN("nand8", 8), func(v uint8) bool { return v != 0xff })

	assert.Panics(t, func() { lb.NewAndN("and0", 0) })
	assert.Panics(t, func() { lb.NewOrN("or1", 1) })
	assert.Panics(t, func() { lb.NewNandN("nand-1", -1) })
	assert.Len(t, lb.NewOrN("or2", 2).Inputs(), 2)
}

func TestGate_pins(t *testing.T) {
	g := lb.NewAndN("and3", 3)
	require.Len(t, g.Inputs(), 3)
	assert.Equal(t, "in[2]", g.Inputs()[2].Name())
	assert.NotNil(t, g.Pin("out"))
	assert.Nil(t, g.Pin("a"))

	g2 := lb.NewAnd("and2")
	assert.NotNil(t, g2.Pin("a"))
	assert.NotNil(t, g2.Pin("b"))
	assert.Equal(t, "and2.out", g2.Pin("out").String())

	for _, p := range g.Inputs() {
		assert.Equal(t, lb.Input, p.Role())
		owner, ok := p.Gate()
		require.True(t, ok)
		assert.Equal(t, g, owner)
	}
}

func TestNewGate(t *testing.T) {
	for _, k := range []lb.Kind{lb.KindAnd, lb.KindOr, lb.KindNand, lb.KindNot, lb.KindDFlipFlop, lb.KindSRFlipFlop} {
		g, err := lb.NewGate(k, k.String(), 0)
		require.NoError(t, err)
		assert.Equal(t, k, g.Kind())
		_, seq := g.(lb.Sequential)
		assert.Equal(t, k.Sequential(), seq, "%s", k)
	}
	g, err := lb.NewGate(lb.KindOr, "or4", 4)
	require.NoError(t, err)
	assert.Len(t, g.Inputs(), 4)

	_, err = lb.NewGate(lb.KindAnd, "and1", 1)
	assert.Error(t, err)
	_, err = lb.NewGate(lb.KindNot, "not2", 2)
	assert.Error(t, err)
	_, err = lb.NewGate(lb.Kind(42), "what", 0)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := lb.ParseKind("nand")
	require.NoError(t, err)
	assert.Equal(t, lb.KindNand, k)
	k, err = lb.ParseKind("DFF")
	require.NoError(t, err)
	assert.Equal(t, lb.KindDFlipFlop, k)
	_, err = lb.ParseKind("XOR")
	assert.Error(t, err)
	assert.Equal(t, "Kind(42)", lb.Kind(42).String())
}
