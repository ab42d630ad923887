// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the logicboard command line.
package cli

import (
	"encoding/json"
	"io"
	"log/slog"

	lb "github.com/db47h/logicboard"
	"github.com/db47h/logicboard/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "logicboard",
		Short: "Conveyor belt logic puzzles",
		Long:  "Load, check and simulate logicboard levels: sensors and gates driving Sparty along a conveyor belt.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return errors.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// logger returns a text logger writing to w. Debug messages are only shown
// in verbose mode.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if o.Verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// loadBoard loads and builds the named level.
func (o *RootOptions) loadBoard(name string, log *slog.Logger) (*level.File, *lb.Board, error) {
	f, err := level.Load(name)
	if err != nil {
		return nil, nil, err
	}
	cfg := lb.DefaultConfig()
	cfg.Logger = log
	b, err := f.Build(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	return f, b, nil
}

// loadGame loads the named levels into a game played in order.
func (o *RootOptions) loadGame(names []string, log *slog.Logger) (*level.Game, error) {
	files := make([]*level.File, 0, len(names))
	for _, name := range names {
		f, err := level.Load(name)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	cfg := lb.DefaultConfig()
	cfg.Logger = log
	return level.NewGame(cfg, files...), nil
}

// output writes v as indented JSON, or calls text in text mode.
func (o *RootOptions) output(w io.Writer, v interface{}, text func(io.Writer) error) error {
	if o.Format != "json" {
		return text(w)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
