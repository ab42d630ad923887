/*
Package logicboard provides the logic engine behind a conveyor-belt sorting
game: movable items (sensors, beams, products, a conveyor, Sparty the
character and digital logic gates) share a board and interact through pins.

The heart of the package is the DependencyGraph. Gates are wired together by
connecting output pins to input pins, and the graph evaluates every gate once
per tick in an order where each combinational gate runs after the gates that
feed it. Flip-flops hold state across ticks: they are sampled and driven in a
distinct phase at the start of each tick, which breaks any feedback loop going
through them by a one-tick delay. A loop made only of combinational gates has
no stable value and is reported as ErrCyclicWiring.

Items other than gates live on a Board. External code applies kind-specific
behavior to items through an ItemVisitor rather than a type switch:

	v := logicboard.NewProductVisitor()
	if err := board.Accept(v); err != nil {
		// a strict visitor met an item kind it does not support
	}
	for _, p := range v.Products() {
		// ...
	}

The package is not safe for concurrent use. Wiring mutations must happen
between ticks, on the goroutine that drives the simulation.
*/
package logicboard
