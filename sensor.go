// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"github.com/pkg/errors"
)

// PropertyBox is one output of a sensor. Its pin, named after the property,
// is high while the product under the sensor has that property.
type PropertyBox struct {
	itemBase
	property string
	out      *Pin
}

func newPropertyBox(id, property string) *PropertyBox {
	b := &PropertyBox{
		itemBase: itemBase{id: id, size: Size{100, 40}},
		property: property,
	}
	b.out = newPin(b, property, Output)
	return b
}

// Property returns the property tested by the box.
func (b *PropertyBox) Property() string { return b.property }

// Output returns the box output pin.
func (b *PropertyBox) Output() *Pin { return b.out }

// Accept calls v.VisitPropertyBox.
func (b *PropertyBox) Accept(v ItemVisitor) error { return v.VisitPropertyBox(b) }

// Sensor is a camera above the conveyor. It has one property box per property
// it can recognize.
type Sensor struct {
	itemBase
	boxes []*PropertyBox
}

// NewSensor returns a new sensor recognizing the given properties. Each
// property must be a product shape, color or content, and appear once.
func NewSensor(id string, properties ...string) (*Sensor, error) {
	s := &Sensor{itemBase: itemBase{id: id, size: Size{ProductSize * 1.5, ProductSize}}}
	for _, p := range properties {
		if !IsProperty(p) {
			return nil, errors.Errorf("sensor %q: unknown property %q", id, p)
		}
		if s.Pin(p) != nil {
			return nil, errors.Errorf("sensor %q: duplicate property %q", id, p)
		}
		s.boxes = append(s.boxes, newPropertyBox(id, p))
	}
	return s, nil
}

// Boxes returns the property boxes of the sensor.
func (s *Sensor) Boxes() []*PropertyBox { return s.boxes }

// Pin returns the output pin of the box for the named property, or nil.
func (s *Sensor) Pin(name string) *Pin {
	for _, b := range s.boxes {
		if b.property == name {
			return b.out
		}
	}
	return nil
}

// Pins returns the output pins of all boxes.
func (s *Sensor) Pins() []*Pin {
	ps := make([]*Pin, len(s.boxes))
	for i, b := range s.boxes {
		ps[i] = b.out
	}
	return ps
}

// Sense updates the property boxes from the first product under the sensor.
// All boxes go low when there is none.
func (s *Sensor) Sense(bd *Board) error {
	v := NewProductWindow(s.Bounds())
	if err := bd.Accept(v); err != nil {
		return err
	}
	var p *Product
	if ps := v.Products(); len(ps) > 0 {
		p = ps[0]
	}
	pv := &PropertyBoxVisitor{Product: p}
	for _, b := range s.boxes {
		if err := b.Accept(pv); err != nil {
			return err
		}
	}
	return nil
}

// Accept calls v.VisitSensor.
func (s *Sensor) Accept(v ItemVisitor) error { return v.VisitSensor(s) }
