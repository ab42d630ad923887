// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"github.com/pkg/errors"
)

// Role tells whether a pin receives or emits a signal.
type Role int

// Pin roles.
const (
	Input Role = iota
	Output
)

func (r Role) String() string {
	if r == Output {
		return "output"
	}
	return "input"
}

// A Pin is a named boolean signal endpoint owned by an item.
//
// An output pin may feed any number of input pins. An input pin is fed by at
// most one output pin and always holds the value last pushed by it; an
// unconnected input holds false.
type Pin struct {
	name   string
	role   Role
	owner  Item // not owned
	value  bool
	driven bool
	src    *Pin   // input pins only
	dst    []*Pin // output pins only
	graph  *DependencyGraph
}

func newPin(owner Item, name string, role Role) *Pin {
	return &Pin{name: name, role: role, owner: owner}
}

// Name returns the pin name, unique within its owner.
func (p *Pin) Name() string { return p.name }

// Role returns the pin role.
func (p *Pin) Role() Role { return p.role }

// Owner returns the item the pin belongs to.
func (p *Pin) Owner() Item { return p.owner }

// Gate returns the owning gate, if the owner is a gate.
func (p *Pin) Gate() (Gate, bool) {
	g, ok := p.owner.(Gate)
	return g, ok
}

// Value returns the last value set on or pushed to the pin.
func (p *Pin) Value() bool { return p.value }

// Driven reports whether the pin has been connected or assigned a value since
// it was created or last disconnected.
func (p *Pin) Driven() bool { return p.driven || p.src != nil }

// Source returns the output pin feeding an input pin, or nil.
func (p *Pin) Source() *Pin { return p.src }

// Targets returns the input pins fed by an output pin.
func (p *Pin) Targets() []*Pin {
	if len(p.dst) == 0 {
		return nil
	}
	t := make([]*Pin, len(p.dst))
	copy(t, p.dst)
	return t
}

// Connected reports whether the pin has at least one connection.
func (p *Pin) Connected() bool { return p.src != nil || len(p.dst) > 0 }

// String returns the qualified pin name: owner.pin.
func (p *Pin) String() string {
	if p.owner == nil {
		return p.name
	}
	return p.owner.ID() + "." + p.name
}

// SetValue sets the pin value. Output pins copy the value to every connected
// input pin. No gate is evaluated as a result.
//
// SetValue does nothing on an input pin that is connected: its value is the
// one last pushed by its source.
func (p *Pin) SetValue(v bool) {
	if p.role == Input && p.src != nil {
		return
	}
	p.value = v
	p.driven = true
	if p.role != Output {
		return
	}
	for _, t := range p.dst {
		t.value = v
	}
}

// Connect connects p to other. One of them must be an output pin and the
// other an input pin that is not connected yet. On success, the input pin
// takes the current value of the output pin.
//
// Errors wrap ErrInvalidWiring. No pin is modified on error.
func (p *Pin) Connect(other *Pin) error {
	if other == nil {
		return errors.Wrapf(ErrInvalidWiring, "%s: connect to nil pin", p)
	}
	if p == other {
		return errors.Wrapf(ErrInvalidWiring, "%s: pin connected to itself", p)
	}
	if p.role == other.role {
		return errors.Wrapf(ErrInvalidWiring, "%s:%s: cannot connect two %s pins", p, other, p.role)
	}
	out, in := p, other
	if p.role == Input {
		out, in = other, p
	}
	if in.src != nil {
		return errors.Wrapf(ErrInvalidWiring, "%s:%s: input pin already connected to %s", out, in, in.src)
	}
	in.src = out
	in.value = out.value
	out.dst = append(out.dst, in)
	out.invalidate()
	in.invalidate()
	return nil
}

// Disconnect removes every connection of p. Input pins that lose their source
// revert to false. Disconnecting an unconnected pin does nothing.
func (p *Pin) Disconnect() {
	switch p.role {
	case Input:
		if p.src == nil {
			return
		}
		p.src.removeTarget(p)
		p.src.invalidate()
		p.src = nil
		p.reset()
	case Output:
		if len(p.dst) == 0 {
			return
		}
		for _, t := range p.dst {
			t.src = nil
			t.reset()
			t.invalidate()
		}
		p.dst = nil
	}
	p.invalidate()
}

func (p *Pin) removeTarget(t *Pin) {
	for i, d := range p.dst {
		if d == t {
			copy(p.dst[i:], p.dst[i+1:])
			p.dst[len(p.dst)-1] = nil
			p.dst = p.dst[:len(p.dst)-1]
			return
		}
	}
}

func (p *Pin) reset() {
	p.value = false
	p.driven = false
}

// invalidate marks the evaluation order of the graph managing p as stale.
func (p *Pin) invalidate() {
	if p.graph != nil {
		p.graph.Invalidate()
	}
}
