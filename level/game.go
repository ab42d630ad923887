// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level

import (
	"log/slog"

	lb "github.com/db47h/logicboard"
	"github.com/pkg/errors"
)

// Result is the outcome of a finished level.
type Result struct {
	Name  string
	Score int
	Ticks uint64
}

// Game plays levels in sequence on a single Score. When the board of the
// current level is done, the level score is added to the game total.
type Game struct {
	cfg     lb.Config
	files   []*File
	score   lb.Score
	cur     int
	board   *lb.Board
	ended   bool
	results []Result
}

// NewGame returns a game playing the given levels in order. Call Next to
// build the first level.
func NewGame(cfg lb.Config, files ...*File) *Game {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Game{
		cfg:   cfg,
		files: files,
		score: lb.Score{Good: lb.DefaultGood, Bad: lb.DefaultBad},
		cur:   -1,
	}
}

// Score returns the score shared by all levels.
func (g *Game) Score() *lb.Score { return &g.score }

// Board returns the board of the current level, or nil before the first
// call to Next.
func (g *Game) Board() *lb.Board { return g.board }

// Level returns the current level, or nil before the first call to Next.
func (g *Game) Level() *File {
	if g.cur < 0 {
		return nil
	}
	return g.files[g.cur]
}

// Ended reports whether the current level is over.
func (g *Game) Ended() bool { return g.ended }

// Results returns the results of the levels finished so far.
func (g *Game) Results() []Result { return g.results }

// Next builds the next level. It returns false when there is none left, in
// which case the last board stays current. A current level that is not over
// is ended first.
func (g *Game) Next() (bool, error) {
	if g.cur+1 >= len(g.files) {
		return false, nil
	}
	if g.board != nil && !g.ended {
		g.endLevel()
	}
	g.cur++
	f := g.files[g.cur]
	b, err := f.build(g.cfg, &g.score)
	if err != nil {
		return false, errors.Wrap(err, f.Name)
	}
	g.board, g.ended = b, false
	return true, nil
}

// Update updates the current board. The level ends when its board is done.
func (g *Game) Update(elapsed float64) error {
	if g.board == nil {
		return errors.New("no level loaded")
	}
	if g.ended {
		return nil
	}
	if err := g.board.Update(elapsed); err != nil {
		return err
	}
	if g.board.Done() {
		g.endLevel()
	}
	return nil
}

func (g *Game) endLevel() {
	g.ended = true
	r := Result{
		Name:  g.Level().Name,
		Score: g.score.EndLevel(),
		Ticks: g.board.Graph().Ticks(),
	}
	g.results = append(g.results, r)
	g.cfg.Logger.Info("level ended", "level", r.Name, "score", r.Score, "game", g.score.Game())
}
