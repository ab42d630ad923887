// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// Sensing is implemented by items that read the board into their output
// pins before the gates are evaluated.
type Sensing interface {
	Sense(*Board) error
}

// Updater is implemented by items that act on the board after the gates have
// been evaluated. elapsed is the simulated time since the previous update, in
// seconds.
type Updater interface {
	Update(b *Board, elapsed float64) error
}

// Pinner is implemented by items with pins.
type Pinner interface {
	Pin(name string) *Pin
	Pins() []*Pin
}

// Board holds the items of a level and the dependency graph of its gates.
type Board struct {
	items []Item
	byID  map[string]Item
	graph *DependencyGraph
	log   *slog.Logger
	done  bool
}

// NewBoard returns an empty board.
func NewBoard(cfg Config) *Board {
	l := cfg.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Board{
		byID:  make(map[string]Item),
		graph: NewDependencyGraph(cfg),
		log:   l,
	}
}

func (b *Board) logger() *slog.Logger { return b.log }

// Graph returns the dependency graph of the board's gates.
func (b *Board) Graph() *DependencyGraph { return b.graph }

// Add adds it to the board. Gates are added to the board's graph.
func (b *Board) Add(it Item) error {
	if it == nil {
		return errors.New("nil item")
	}
	id := it.ID()
	if _, ok := b.byID[id]; ok {
		return errors.Wrapf(ErrDuplicateItem, "%q", id)
	}
	b.byID[id] = it
	b.items = append(b.items, it)
	if g, ok := it.(Gate); ok {
		b.graph.AddGate(g)
	}
	b.done = false
	return nil
}

// Remove removes the item with the given id and disconnects its pins. It
// returns the removed item, or nil if there is none.
func (b *Board) Remove(id string) Item {
	it, ok := b.byID[id]
	if !ok {
		return nil
	}
	if g, ok := it.(Gate); ok {
		b.graph.RemoveGate(g)
	} else if p, ok := it.(Pinner); ok {
		for _, pin := range p.Pins() {
			pin.Disconnect()
		}
	}
	delete(b.byID, id)
	for i, x := range b.items {
		if x == it {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	return it
}

// Item returns the item with the given id.
func (b *Board) Item(id string) (Item, bool) {
	it, ok := b.byID[id]
	return it, ok
}

// Items returns the board items in insertion order.
func (b *Board) Items() []Item {
	is := make([]Item, len(b.items))
	copy(is, b.items)
	return is
}

// Accept passes v to every item in insertion order. It stops at the first
// error.
func (b *Board) Accept(v ItemVisitor) error {
	for _, it := range b.items {
		if err := it.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// Pin returns the pin referenced by ref, in the form item.pin.
func (b *Board) Pin(ref string) (*Pin, error) {
	i := strings.LastIndexByte(ref, '.')
	if i <= 0 || i == len(ref)-1 {
		return nil, errors.Wrapf(ErrInvalidWiring, "%q: malformed pin reference", ref)
	}
	id, name := ref[:i], ref[i+1:]
	it, ok := b.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidWiring, "%q: no item %q", ref, id)
	}
	p, ok := it.(Pinner)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidWiring, "%q: item %q has no pins", ref, id)
	}
	pin := p.Pin(name)
	if pin == nil {
		return nil, errors.Wrapf(ErrInvalidWiring, "%q: no pin %q on %q", ref, name, id)
	}
	return pin, nil
}

// Connect connects the pins referenced by from and to. See Pin.Connect.
func (b *Board) Connect(from, to string) error {
	pf, err := b.Pin(from)
	if err != nil {
		return err
	}
	pt, err := b.Pin(to)
	if err != nil {
		return err
	}
	return pf.Connect(pt)
}

// Conveyor returns the first conveyor on the board, or nil.
func (b *Board) Conveyor() *Conveyor {
	var v ConveyorVisitor
	_ = b.Accept(&v)
	return v.Conveyor
}

// Score returns the score of the first scoreboard on the board, or nil.
func (b *Board) Score() *Score {
	var v ScoreboardVisitor
	_ = b.Accept(&v)
	if v.Scoreboard == nil {
		return nil
	}
	return v.Scoreboard.Score()
}

// score marks p as scored and records it on the scoreboard, if any.
func (b *Board) score(p *Product) error {
	p.scored = true
	good := p.kicked == p.kick
	b.log.Debug("product scored", "product", p.id, "kicked", p.kicked, "good", good)
	if s := b.Score(); s != nil {
		s.Record(good)
	}
	return nil
}

// Done reports whether the board holds at least one product and every
// product has been scored.
func (b *Board) Done() bool {
	pv := NewProductVisitor()
	_ = b.Accept(pv)
	ps := pv.Products()
	if len(ps) == 0 {
		return false
	}
	for _, p := range ps {
		if !p.scored {
			return false
		}
	}
	return true
}

// Update advances the board by elapsed seconds:
//
//  1. beams and sensors update their output pins,
//  2. the gates are evaluated with Graph().Tick(),
//  3. Sparty and the conveyor act on the new pin values.
//
// Update stops at the first error. A cycle or strict input error from the
// graph leaves every gate output unchanged.
func (b *Board) Update(elapsed float64) error {
	for _, it := range b.items {
		if s, ok := it.(Sensing); ok {
			if err := s.Sense(b); err != nil {
				return errors.Wrapf(err, "sense %q", it.ID())
			}
		}
	}
	if err := b.graph.Tick(); err != nil {
		return err
	}
	for _, it := range b.items {
		if u, ok := it.(Updater); ok {
			if err := u.Update(b, elapsed); err != nil {
				return errors.Wrapf(err, "update %q", it.ID())
			}
		}
	}
	if !b.done && b.Done() {
		b.done = true
		attrs := []any{"ticks", b.graph.Ticks()}
		if s := b.Score(); s != nil {
			attrs = append(attrs, "score", s.Level())
		}
		b.log.Info("level done", attrs...)
	}
	return nil
}
