// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import "github.com/pkg/errors"

// ItemVisitor applies kind-specific behavior to items. It has one method per
// concrete item kind; all six gate kinds share VisitGate.
//
// Implementations should embed NopVisitor or StrictVisitor and override the
// methods for the kinds they handle. The embedded type decides what happens
// with other kinds: NopVisitor ignores them, StrictVisitor fails with
// ErrUnsupportedItem.
type ItemVisitor interface {
	VisitGate(g Gate) error
	VisitBeam(b *Beam) error
	VisitConveyor(c *Conveyor) error
	VisitProduct(p *Product) error
	VisitPropertyBox(b *PropertyBox) error
	VisitScoreboard(s *Scoreboard) error
	VisitSensor(s *Sensor) error
	VisitSparty(s *Sparty) error
}

// NopVisitor implements ItemVisitor by doing nothing.
type NopVisitor struct{}

func (NopVisitor) VisitGate(Gate) error { return nil }
func (NopVisitor) VisitBeam(*Beam) error { return nil }
func (NopVisitor) VisitConveyor(*Conveyor) error { return nil }
func (NopVisitor) VisitProduct(*Product) error { return nil }
func (NopVisitor) VisitPropertyBox(*PropertyBox) error { return nil }
func (NopVisitor) VisitScoreboard(*Scoreboard) error { return nil }
func (NopVisitor) VisitSensor(*Sensor) error { return nil }
func (NopVisitor) VisitSparty(*Sparty) error { return nil }

// StrictVisitor implements ItemVisitor by rejecting every item.
type StrictVisitor struct{}

func unsupported(kind string, it Item) error {
	return errors.Wrapf(ErrUnsupportedItem, "%s %q", kind, it.ID())
}

func (StrictVisitor) VisitGate(g Gate) error { return unsupported(g.Kind().String(), g) }
func (StrictVisitor) VisitBeam(b *Beam) error { return unsupported("beam", b) }
func (StrictVisitor) VisitConveyor(c *Conveyor) error { return unsupported("conveyor", c) }
func (StrictVisitor) VisitProduct(p *Product) error { return unsupported("product", p) }
func (StrictVisitor) VisitPropertyBox(b *PropertyBox) error { return unsupported("property box", b) }
func (StrictVisitor) VisitScoreboard(s *Scoreboard) error { return unsupported("scoreboard", s) }
func (StrictVisitor) VisitSensor(s *Sensor) error { return unsupported("sensor", s) }
func (StrictVisitor) VisitSparty(s *Sparty) error { return unsupported("sparty", s) }
