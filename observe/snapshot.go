// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package observe exposes the state of a board to user interfaces.
//
// Capture takes a JSON serializable snapshot of a board between two updates.
// A Hub streams snapshots to websocket clients.
package observe

import (
	lb "github.com/db47h/logicboard"
)

// Snapshot is the state of a board after an update.
type Snapshot struct {
	Tick  uint64      `json:"tick"`
	Graph string      `json:"graph"`
	Done  bool        `json:"done"`
	Score *ScoreState `json:"score,omitempty"`
	Items []ItemState `json:"items"`
}

// ScoreState is the state of the scoreboard.
type ScoreState struct {
	Level int `json:"level"`
	Game  int `json:"game"`
}

// ItemState is the state of one item. Pins maps pin names to their values.
type ItemState struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	X       float64         `json:"x"`
	Y       float64         `json:"y"`
	Pins    map[string]bool `json:"pins,omitempty"`
	Product *ProductState   `json:"product,omitempty"`
	Running *bool           `json:"running,omitempty"`
}

// ProductState holds the properties of a product.
type ProductState struct {
	Shape   string `json:"shape"`
	Color   string `json:"color"`
	Content string `json:"content,omitempty"`
	Kick    bool   `json:"kick"`
	Kicked  bool   `json:"kicked"`
	Scored  bool   `json:"scored"`
}

// capture builds item states. It handles every item kind.
type capture struct {
	items []ItemState
}

func (c *capture) add(it lb.Item, kind string, pins []*lb.Pin) *ItemState {
	p := it.Position()
	s := ItemState{ID: it.ID(), Kind: kind, X: p.X, Y: p.Y}
	if len(pins) > 0 {
		s.Pins = make(map[string]bool, len(pins))
		for _, pin := range pins {
			s.Pins[pin.Name()] = pin.Value()
		}
	}
	c.items = append(c.items, s)
	return &c.items[len(c.items)-1]
}

func gatePins(g lb.Gate) []*lb.Pin {
	return append(append([]*lb.Pin(nil), g.Inputs()...), g.Outputs()...)
}

func (c *capture) VisitGate(g lb.Gate) error {
	c.add(g, g.Kind().String(), gatePins(g))
	return nil
}

func (c *capture) VisitBeam(b *lb.Beam) error {
	c.add(b, "beam", b.Pins())
	return nil
}

func (c *capture) VisitConveyor(cv *lb.Conveyor) error {
	r := cv.Running()
	c.add(cv, "conveyor", nil).Running = &r
	return nil
}

func (c *capture) VisitProduct(p *lb.Product) error {
	c.add(p, "product", nil).Product = &ProductState{
		Shape:   p.Shape().String(),
		Color:   p.Color().String(),
		Content: p.Content().String(),
		Kick:    p.ShouldKick(),
		Kicked:  p.Kicked(),
		Scored:  p.Scored(),
	}
	return nil
}

func (c *capture) VisitPropertyBox(b *lb.PropertyBox) error {
	c.add(b, "property box", []*lb.Pin{b.Output()})
	return nil
}

func (c *capture) VisitScoreboard(s *lb.Scoreboard) error {
	c.add(s, "scoreboard", nil)
	return nil
}

func (c *capture) VisitSensor(s *lb.Sensor) error {
	c.add(s, "sensor", s.Pins())
	return nil
}

func (c *capture) VisitSparty(s *lb.Sparty) error {
	c.add(s, "sparty", s.Pins())
	return nil
}

// Capture returns a snapshot of b.
func Capture(b *lb.Board) (*Snapshot, error) {
	var c capture
	if err := b.Accept(&c); err != nil {
		return nil, err
	}
	s := &Snapshot{
		Tick:  b.Graph().Ticks(),
		Graph: b.Graph().State().String(),
		Done:  b.Done(),
		Items: c.items,
	}
	if sc := b.Score(); sc != nil {
		s.Score = &ScoreState{Level: sc.Level(), Game: sc.Game()}
	}
	if s.Items == nil {
		s.Items = []ItemState{}
	}
	return s, nil
}
