// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"strings"

	"github.com/pkg/errors"
)

// Structural errors. They are returned wrapped with the pins or gates
// involved; use errors.Is to test for them.
var (
	// ErrInvalidWiring is returned when a connection violates pin roles or
	// the fan-in rule.
	ErrInvalidWiring = errors.New("invalid wiring")
	// ErrCyclicWiring is returned when combinational gates form a loop.
	ErrCyclicWiring = errors.New("cyclic wiring")
	// ErrUnconnectedInput is returned by graphs configured with StrictInputs
	// when a gate input has never been connected or assigned.
	ErrUnconnectedInput = errors.New("unconnected input")
	// ErrUnsupportedItem is returned by strict visitors for item kinds they do
	// not handle.
	ErrUnsupportedItem = errors.New("unsupported item")
	// ErrDuplicateItem is returned when an item is added to a board that
	// already holds an item with the same id.
	ErrDuplicateItem = errors.New("duplicate item")
)

// CycleError reports one loop of combinational gates. Gates lists the loop in
// signal flow order, starting and ending with the same gate.
type CycleError struct {
	Gates []Gate
}

func (e *CycleError) Error() string {
	var b strings.Builder
	for i, g := range e.Gates {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(g.ID())
	}
	return ErrCyclicWiring.Error() + ": " + b.String()
}

// Is makes errors.Is(err, ErrCyclicWiring) hold for cycle errors.
func (e *CycleError) Is(target error) bool {
	return target == ErrCyclicWiring
}
