// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard_test

import (
	"strconv"
	"testing"

	lb "github.com/db47h/logicboard"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder records the name of every visitor method called.
type recorder struct {
	calls []string
}

func (r *recorder) rec(s string) error {
	r.calls = append(r.calls, s)
	return nil
}

func (r *recorder) VisitGate(g lb.Gate) error { return r.rec("gate " + g.Kind().String()) }
func (r *recorder) VisitBeam(*lb.Beam) error { return r.rec("beam") }
func (r *recorder) VisitConveyor(*lb.Conveyor) error { return r.rec("conveyor") }
func (r *recorder) VisitProduct(*lb.Product) error { return r.rec("product") }
func (r *recorder) VisitPropertyBox(*lb.PropertyBox) error { return r.rec("property box") }
func (r *recorder) VisitScoreboard(*lb.Scoreboard) error { return r.rec("scoreboard") }
func (r *recorder) VisitSensor(*lb.Sensor) error { return r.rec("sensor") }
func (r *recorder) VisitSparty(*lb.Sparty) error { return r.rec("sparty") }

func allItems(t *testing.T) ([]lb.Item, []string) {
	t.Helper()
	s, err := lb.NewSensor("cam", "red")
	require.NoError(t, err)
	items := []lb.Item{
		lb.NewAnd("and"),
		lb.NewOr("or"),
		lb.NewNand("nand"),
		lb.NewNot("not"),
		lb.NewDFlipFlop("dff"),
		lb.NewSRFlipFlop("sr"),
		lb.NewBeam("beam"),
		lb.NewConveyor("belt", 1000, lb.DefaultSpeed),
		lb.NewProduct("p", lb.Circle, lb.Red, lb.Empty, false),
		s.Boxes()[0],
		lb.NewScoreboard("score", lb.DefaultGood, lb.DefaultBad),
		s,
		lb.NewSparty("sparty"),
	}
	want := []string{
		"gate AND", "gate OR", "gate NAND", "gate NOT", "gate DFF", "gate SRFF",
		"beam", "conveyor", "product", "property box", "scoreboard", "sensor", "sparty",
	}
	return items, want
}

func TestItem_accept(t *testing.T) {
	items, want := allItems(t)
	for i, it := range items {
		var r recorder
		require.NoError(t, it.Accept(&r))
		assert.Equal(t, []string{want[i]}, r.calls, "item %s", it.ID())
	}
}

func TestNopVisitor(t *testing.T) {
	items, _ := allItems(t)
	for _, it := range items {
		assert.NoError(t, it.Accept(lb.NopVisitor{}))
	}
}

func TestStrictVisitor(t *testing.T) {
	items, want := allItems(t)
	for i, it := range items {
		err := it.Accept(lb.StrictVisitor{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, lb.ErrUnsupportedItem))
		assert.Contains(t, err.Error(), strconv.Quote(it.ID()), want[i])
	}

	// A strict visitor supporting products only.
	v := &productIDs{}
	b := lb.NewBoard(lb.DefaultConfig())
	require.NoError(t, b.Add(lb.NewProduct("p1", lb.Circle, lb.Red, lb.Empty, false)))
	require.NoError(t, b.Accept(v))
	assert.Equal(t, []string{"p1"}, v.ids)
	require.NoError(t, b.Add(lb.NewBeam("beam")))
	err := b.Accept(v)
	assert.True(t, errors.Is(err, lb.ErrUnsupportedItem))
	assert.Equal(t, `beam "beam": unsupported item`, err.Error())
}

type productIDs struct {
	lb.StrictVisitor
	ids []string
}

func (v *productIDs) VisitProduct(p *lb.Product) error {
	v.ids = append(v.ids, p.ID())
	return nil
}

func TestProductVisitor(t *testing.T) {
	b := lb.NewBoard(lb.DefaultConfig())
	p1 := lb.NewProduct("p1", lb.Circle, lb.Red, lb.Empty, false)
	p2 := lb.NewProduct("p2", lb.Square, lb.Blue, lb.Izzo, true)
	p2.SetPosition(lb.Point{X: 0, Y: 500})
	require.NoError(t, b.Add(p1))
	require.NoError(t, b.Add(lb.NewBeam("beam")))
	require.NoError(t, b.Add(p2))

	all := lb.NewProductVisitor()
	require.NoError(t, b.Accept(all))
	assert.Equal(t, []*lb.Product{p1, p2}, all.Products())

	w := lb.NewProductWindow(lb.RectAt(lb.Point{X: 0, Y: 480}, lb.Size{W: 100, H: 10}))
	require.NoError(t, b.Accept(w))
	assert.Equal(t, []*lb.Product{p2}, w.Products())

	p2.Kick()
	w = lb.NewProductWindow(lb.RectAt(lb.Point{X: 0, Y: 480}, lb.Size{W: 100, H: 10}))
	require.NoError(t, b.Accept(w))
	assert.Empty(t, w.Products())
}
