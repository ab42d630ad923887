// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boardtest_test

import (
	"testing"

	lb "github.com/db47h/logicboard"
	"github.com/db47h/logicboard/boardtest"
	"github.com/stretchr/testify/require"
)

func TestTruthTable(t *testing.T) {
	boardtest.TruthTable(t, lb.NewOr("or"), [][]bool{{false}, {true}, {true}, {true}})
}

func TestCompareGates(t *testing.T) {
	g, err := lb.NewGate(lb.KindNand, "nand2", 0)
	require.NoError(t, err)
	boardtest.CompareGates(t, 1, lb.NewNand("nand"), g)
}

func TestTrace(t *testing.T) {
	n := lb.NewNot("n")
	d := lb.NewDependencyGraph(lb.DefaultConfig())
	d.AddGate(n)
	tr := boardtest.NewTrace(n.Pin("in"), n.Pin("out"))
	for _, v := range []bool{false, true} {
		n.Pin("in").SetValue(v)
		require.NoError(t, d.Tick())
		tr.Record()
	}
	require.Equal(t, "tick n.in n.out\n0 0 1\n1 1 0\n", string(tr.Bytes()))
}
