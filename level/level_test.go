// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level_test

import (
	"encoding/json"
	"strings"
	"testing"

	lb "github.com/db47h/logicboard"
	"github.com/db47h/logicboard/level"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := level.Load("testdata/sorting.yaml")
	require.NoError(t, err)
	assert.Equal(t, "red products", f.Name)
	require.Len(t, f.Items, 6)
	assert.True(t, strings.HasPrefix(f.Items[5].ID, "product-"), f.Items[5].ID)

	b, err := f.Build(lb.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, b.Conveyor())
	assert.True(t, b.Conveyor().Running())

	for i := 0; i < 100 && !b.Done(); i++ {
		require.NoError(t, b.Update(0.5))
	}
	require.True(t, b.Done())
	assert.Equal(t, 20, b.Score().Level())
	p1, ok := b.Item("p1")
	require.True(t, ok)
	assert.True(t, p1.(*lb.Product).Kicked())
}

func TestLoad_missingFile(t *testing.T) {
	_, err := level.Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func decode(s string) (*level.File, error) {
	return level.Decode(strings.NewReader(s))
}

func TestDecode_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
	}{
		{"unknown field", "name: x\nitems: []\ncolour: red\n"},
		{"unknown item field", "name: x\nitems:\n  - {kind: beam, id: b, colour: red}\n"},
		{"no name", "items: []\n"},
		{"gate without id", "name: x\ngates:\n  - {kind: and}\n"},
		{"wire without end", "name: x\nwires:\n  - {from: a.out}\n"},
		{"not yaml", "name: [x\n"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := decode(d.src)
			assert.Error(t, err)
		})
	}
}

func TestBuild_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		is   error
	}{
		{"duplicate id", "name: x\nitems:\n  - {kind: beam, id: b}\ngates:\n  - {kind: not, id: b}\n", lb.ErrDuplicateItem},
		{"bad pin", "name: x\ngates:\n  - {kind: not, id: n}\nwires:\n  - {from: n.out, to: n.a}\n", lb.ErrInvalidWiring},
		{"unknown item", "name: x\nwires:\n  - {from: n.out, to: m.in}\n", lb.ErrInvalidWiring},
		{"fan-in", "name: x\ngates:\n  - {kind: not, id: n}\n  - {kind: not, id: m}\n  - {kind: and, id: a}\nwires:\n  - {from: n.out, to: a.a}\n  - {from: m.out, to: a.a}\n", lb.ErrInvalidWiring},
		{"two outputs", "name: x\ngates:\n  - {kind: not, id: n}\n  - {kind: not, id: m}\nwires:\n  - {from: n.out, to: m.out}\n", lb.ErrInvalidWiring},
		{"unknown item kind", "name: x\nitems:\n  - {kind: robot, id: r}\n", nil},
		{"unknown gate kind", "name: x\ngates:\n  - {kind: xor, id: g}\n", nil},
		{"bad input count", "name: x\ngates:\n  - {kind: and, id: g, inputs: 1}\n", nil},
		{"bad property", "name: x\nitems:\n  - {kind: sensor, id: s, properties: [purple]}\n", nil},
		{"bad shape", "name: x\nitems:\n  - {kind: product, shape: hexagon, color: red}\n", nil},
		{"bad conveyor", "name: x\nitems:\n  - {kind: conveyor, id: c}\n", nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			f, err := decode(d.src)
			require.NoError(t, err)
			_, err = f.Build(lb.DefaultConfig())
			require.Error(t, err)
			if d.is != nil {
				assert.True(t, errors.Is(err, d.is), err.Error())
			}
		})
	}
}

func TestBuild_settings(t *testing.T) {
	f, err := decode(`
name: strict
settings: {strict_inputs: true, good: 3}
items:
  - {kind: scoreboard, id: score}
gates:
  - {kind: and, id: a, inputs: 3, x: 10, y: 20}
`)
	require.NoError(t, err)
	b, err := f.Build(lb.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 3, b.Score().Good)
	assert.Equal(t, lb.DefaultBad, b.Score().Bad)

	it, ok := b.Item("a")
	require.True(t, ok)
	assert.Equal(t, lb.Point{X: 10, Y: 20}, it.Position())
	assert.Len(t, it.(lb.Gate).Inputs(), 3)

	err = b.Update(1)
	assert.True(t, errors.Is(err, lb.ErrUnconnectedInput))
}

func TestBuild_cycle(t *testing.T) {
	f, err := decode(`
name: loop
gates:
  - {kind: not, id: x}
  - {kind: not, id: "y"}
wires:
  - {from: x.out, to: y.in}
  - {from: y.out, to: x.in}
`)
	require.NoError(t, err)
	b, err := f.Build(lb.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, errors.Is(b.Update(1), lb.ErrCyclicWiring))
}

func TestDecode_normalizesIDs(t *testing.T) {
	// The gate id is decomposed, the wire reference precomposed.
	src := "name: x\ngates:\n  - {kind: not, id: \"ne\u0301\"}\n  - {kind: not, id: m}\nwires:\n  - {from: \"n\u00e9.out\", to: m.in}\n"
	f, err := decode(src)
	require.NoError(t, err)
	assert.Equal(t, "n\u00e9", f.Gates[0].ID)
	_, err = f.Build(lb.DefaultConfig())
	assert.NoError(t, err)
}

func TestSchema(t *testing.T) {
	data, err := level.SchemaJSON()
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "logicboard level", m["title"])
	props, ok := m["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, k := range []string{"name", "settings", "items", "gates", "wires"} {
		assert.Contains(t, props, k)
	}
	assert.Contains(t, m["required"], "name")
}
