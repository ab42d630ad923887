// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// ProductVisitor collects products. A visitor built with NewProductWindow
// only keeps the products still on the belt that overlap its window.
type ProductVisitor struct {
	NopVisitor
	window   *Rect
	products []*Product
}

// NewProductVisitor returns a visitor collecting every product.
func NewProductVisitor() *ProductVisitor { return &ProductVisitor{} }

// NewProductWindow returns a visitor collecting the products on the belt
// that overlap r.
func NewProductWindow(r Rect) *ProductVisitor { return &ProductVisitor{window: &r} }

func (v *ProductVisitor) VisitProduct(p *Product) error {
	if v.window != nil && (!p.OnBelt() || !v.window.Overlaps(p.Bounds())) {
		return nil
	}
	v.products = append(v.products, p)
	return nil
}

// Products returns the collected products in visit order.
func (v *ProductVisitor) Products() []*Product { return v.products }

// ConveyorVisitor finds the first conveyor.
type ConveyorVisitor struct {
	NopVisitor
	Conveyor *Conveyor
}

func (v *ConveyorVisitor) VisitConveyor(c *Conveyor) error {
	if v.Conveyor == nil {
		v.Conveyor = c
	}
	return nil
}

// ScoreboardVisitor finds the first scoreboard.
type ScoreboardVisitor struct {
	NopVisitor
	Scoreboard *Scoreboard
}

func (v *ScoreboardVisitor) VisitScoreboard(s *Scoreboard) error {
	if v.Scoreboard == nil {
		v.Scoreboard = s
	}
	return nil
}

// SensorVisitor collects sensors.
type SensorVisitor struct {
	NopVisitor
	Sensors []*Sensor
}

func (v *SensorVisitor) VisitSensor(s *Sensor) error {
	v.Sensors = append(v.Sensors, s)
	return nil
}

// SpartyVisitor collects Sparty instances.
type SpartyVisitor struct {
	NopVisitor
	Sparties []*Sparty
}

func (v *SpartyVisitor) VisitSparty(s *Sparty) error {
	v.Sparties = append(v.Sparties, s)
	return nil
}

// GateVisitor collects gates.
type GateVisitor struct {
	NopVisitor
	Gates []Gate
}

func (v *GateVisitor) VisitGate(g Gate) error {
	v.Gates = append(v.Gates, g)
	return nil
}

// PropertyBoxVisitor sets the output of property boxes from Product. Every
// box goes low when Product is nil.
type PropertyBoxVisitor struct {
	StrictVisitor
	Product *Product
}

func (v *PropertyBoxVisitor) VisitPropertyBox(b *PropertyBox) error {
	b.out.SetValue(v.Product != nil && v.Product.Matches(b.property))
	return nil
}
