// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// Beam is a light barrier across the conveyor. Its output pin is high while a
// product breaks the beam.
//
//	Outputs: out
type Beam struct {
	itemBase
	out *Pin
}

// NewBeam returns a new beam. Its bounds are the detection window.
func NewBeam(id string) *Beam {
	b := &Beam{itemBase: itemBase{id: id, size: Size{200, 10}}}
	b.out = newPin(b, pinOut, Output)
	return b
}

// Output returns the beam's output pin.
func (b *Beam) Output() *Pin { return b.out }

// Pin returns the named pin, or nil.
func (b *Beam) Pin(name string) *Pin {
	if name == pinOut {
		return b.out
	}
	return nil
}

// Pins returns the beam's pins.
func (b *Beam) Pins() []*Pin { return []*Pin{b.out} }

// Sense sets the output pin high if a product overlaps the beam.
func (b *Beam) Sense(bd *Board) error {
	v := NewProductWindow(b.Bounds())
	if err := bd.Accept(v); err != nil {
		return err
	}
	b.out.SetValue(len(v.Products()) > 0)
	return nil
}

// Accept calls v.VisitBeam.
func (b *Beam) Accept(v ItemVisitor) error { return v.VisitBeam(b) }
