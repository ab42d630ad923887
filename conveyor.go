// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// DefaultSpeed is the default conveyor speed, in virtual pixels per second.
const DefaultSpeed = 100

// Conveyor moves products down the board, along increasing Y. A product is
// scored when it gets kicked or when it reaches the end of the belt.
type Conveyor struct {
	itemBase
	speed   float64
	running bool
}

// NewConveyor returns a stopped conveyor of the given length.
func NewConveyor(id string, length, speed float64) *Conveyor {
	return &Conveyor{
		itemBase: itemBase{id: id, size: Size{ProductSize * 2, length}},
		speed:    speed,
	}
}

func (c *Conveyor) Speed() float64 { return c.speed }
func (c *Conveyor) SetSpeed(v float64) { c.speed = v }
func (c *Conveyor) Running() bool { return c.running }

// Start starts the belt.
func (c *Conveyor) Start() { c.running = true }

// Stop stops the belt.
func (c *Conveyor) Stop() { c.running = false }

// Update moves the products on the belt by elapsed seconds and scores the
// ones that left it. Kicked products are scored even when the belt is
// stopped.
func (c *Conveyor) Update(bd *Board, elapsed float64) error {
	pv := NewProductVisitor()
	if err := bd.Accept(pv); err != nil {
		return err
	}
	end := c.Bounds().Max.Y
	for _, p := range pv.Products() {
		if p.scored {
			continue
		}
		if !p.kicked {
			if !c.running {
				continue
			}
			p.pos.Y += c.speed * elapsed
			if p.pos.Y < end {
				continue
			}
		}
		if err := bd.score(p); err != nil {
			return err
		}
	}
	return nil
}

// Accept calls v.VisitConveyor.
func (c *Conveyor) Accept(v ItemVisitor) error { return v.VisitConveyor(c) }
