// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import "log/slog"

// Config holds the settings of a board and its dependency graph.
type Config struct {
	// StrictInputs makes ticks fail with ErrUnconnectedInput when a gate
	// input has never been connected or assigned. When false, such inputs
	// read as false.
	StrictInputs bool
	// Logger receives board events. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Logger: slog.Default()}
}
