// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// Sparty stands next to the conveyor and kicks products off the belt.
//
//	Inputs: kick
//	Function: on a rising edge of kick, every product in reach is kicked
//	          while the conveyor is running.
type Sparty struct {
	itemBase
	kick *Pin
	prev bool
	n    int
}

const pinKick = "kick"

// NewSparty returns a new Sparty. Its bounds are its reach.
func NewSparty(id string) *Sparty {
	s := &Sparty{itemBase: itemBase{id: id, size: Size{250, ProductSize * 1.5}}}
	s.kick = newPin(s, pinKick, Input)
	return s
}

// Input returns the kick pin.
func (s *Sparty) Input() *Pin { return s.kick }

// Pin returns the named pin, or nil.
func (s *Sparty) Pin(name string) *Pin {
	if name == pinKick {
		return s.kick
	}
	return nil
}

// Pins returns Sparty's pins.
func (s *Sparty) Pins() []*Pin { return []*Pin{s.kick} }

// Kicks returns the number of kicks so far.
func (s *Sparty) Kicks() int { return s.n }

// Update kicks the products in reach when the kick pin went from false to
// true since the last update. Edges seen while the conveyor is stopped, or
// on a board without conveyor, are ignored.
func (s *Sparty) Update(bd *Board, elapsed float64) error {
	v := s.kick.Value()
	rising := v && !s.prev
	s.prev = v
	if !rising {
		return nil
	}
	if c := bd.Conveyor(); c == nil || !c.Running() {
		return nil
	}
	s.n++
	pv := NewProductWindow(s.Bounds())
	if err := bd.Accept(pv); err != nil {
		return err
	}
	for _, p := range pv.Products() {
		p.Kick()
		bd.logger().Debug("product kicked", "sparty", s.id, "product", p.id)
	}
	return nil
}

// Accept calls v.VisitSparty.
func (s *Sparty) Accept(v ItemVisitor) error { return v.VisitSparty(s) }
