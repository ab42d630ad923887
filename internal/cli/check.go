// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// CheckResult reports the evaluation order of a level's gates.
type CheckResult struct {
	Level      string   `json:"level"`
	Valid      bool     `json:"valid"`
	Sequential []string `json:"sequential,omitempty"`
	Order      []string `json:"order,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <level.yaml>",
		Short: "Load a level and compute the gate evaluation order",
		Long: `Load a level, build its board and compute the evaluation order of its gates.

Fails if the level does not load or if combinational gates form a loop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, name string, cmd *cobra.Command) error {
	f, b, err := opts.loadBoard(name, opts.logger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	res := CheckResult{Level: f.Name, Valid: true}
	g := b.Graph()
	cerr := g.Compute()
	if cerr != nil {
		res.Valid = false
		res.Error = cerr.Error()
	} else {
		for _, s := range g.Sequential() {
			res.Sequential = append(res.Sequential, s.ID())
		}
		for _, o := range g.Order() {
			res.Order = append(res.Order, o.ID())
		}
	}
	err = opts.output(cmd.OutOrStdout(), res, func(w io.Writer) error {
		if !res.Valid {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s: ok\nflip-flops: %s\norder: %s\n", res.Level,
			strings.Join(res.Sequential, " "), strings.Join(res.Order, " "))
		return err
	})
	if err != nil {
		return err
	}
	return cerr
}
