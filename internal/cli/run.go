// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// RunResult is the outcome of one level of a simulation run.
type RunResult struct {
	Level string `json:"level"`
	Done  bool   `json:"done"`
	Ticks uint64 `json:"ticks"`
	Score int    `json:"score"`
}

// GameResult is the outcome of a simulation run over a sequence of levels.
type GameResult struct {
	Levels []RunResult `json:"levels"`
	Score  int         `json:"score"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		ticks int
		dt    float64
	)
	cmd := &cobra.Command{
		Use:   "run <level.yaml>...",
		Short: "Simulate levels until all products are scored",
		Long: `Simulate levels in order. Each level runs until all its products are
scored, then its score is added to the game score and the next level starts.
The run stops at the first level that is not done after --ticks updates.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, args, ticks, dt, cmd)
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 10000, "maximum number of updates per level")
	cmd.Flags().Float64Var(&dt, "dt", 0.05, "simulated seconds per update")
	return cmd
}

func runRun(opts *RootOptions, names []string, ticks int, dt float64, cmd *cobra.Command) error {
	g, err := opts.loadGame(names, opts.logger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	var res GameResult
	for {
		ok, err := g.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for i := 0; i < ticks && !g.Ended(); i++ {
			if err := g.Update(dt); err != nil {
				return err
			}
		}
		b := g.Board()
		r := RunResult{Level: g.Level().Name, Done: g.Ended(), Ticks: b.Graph().Ticks()}
		if g.Ended() {
			rs := g.Results()
			r.Score = rs[len(rs)-1].Score
		} else if s := b.Score(); s != nil {
			r.Score = s.Level()
		}
		res.Levels = append(res.Levels, r)
		if !r.Done {
			break
		}
	}
	res.Score = g.Score().Game()
	return opts.output(cmd.OutOrStdout(), res, func(w io.Writer) error {
		for _, r := range res.Levels {
			status := "incomplete"
			if r.Done {
				status = "done"
			}
			if _, err := fmt.Fprintf(w, "%s: %s after %d ticks, score %d\n", r.Level, status, r.Ticks, r.Score); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "game score %d\n", res.Score)
		return err
	})
}
