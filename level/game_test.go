// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level_test

import (
	"io"
	"log/slog"
	"testing"

	lb "github.com/db47h/logicboard"
	"github.com/db47h/logicboard/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, n int) *level.Game {
	t.Helper()
	f, err := level.Load("testdata/sorting.yaml")
	require.NoError(t, err)
	files := make([]*level.File, n)
	for i := range files {
		files[i] = f
	}
	return level.NewGame(lb.Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}, files...)
}

func play(t *testing.T, g *level.Game) {
	t.Helper()
	for i := 0; i < 100 && !g.Ended(); i++ {
		require.NoError(t, g.Update(0.5))
	}
	require.True(t, g.Ended())
}

func TestGame(t *testing.T) {
	g := newGame(t, 2)
	assert.Error(t, g.Update(0.5))
	assert.Nil(t, g.Level())

	ok, err := g.Next()
	require.NoError(t, err)
	require.True(t, ok)
	first := g.Board()
	play(t, g)
	assert.Equal(t, []level.Result{{Name: "red products", Score: 20, Ticks: 22}}, g.Results())
	assert.Equal(t, 20, g.Score().Game())
	assert.Zero(t, g.Score().Level())
	// the board shows the shared score
	assert.Same(t, g.Score(), first.Score())

	ok, err = g.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotSame(t, first, g.Board())
	assert.False(t, g.Ended())
	play(t, g)
	assert.Equal(t, 40, g.Score().Game())
	assert.Len(t, g.Results(), 2)

	ok, err = g.Next()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, g.Update(0.5))
	assert.Equal(t, 40, g.Score().Game())
}

func TestGame_nextEndsLevel(t *testing.T) {
	g := newGame(t, 2)
	ok, err := g.Next()
	require.NoError(t, err)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update(0.5))
	}
	require.False(t, g.Ended())

	ok, err = g.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, g.Results(), 1)
	assert.Equal(t, 10, g.Results()[0].Score)
	assert.Equal(t, 10, g.Score().Game())
}
