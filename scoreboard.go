// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

// Default points per product.
const (
	DefaultGood = 10
	DefaultBad  = -5
)

// Score keeps the level and game totals.
type Score struct {
	Good  int // points for a correctly handled product
	Bad   int // points for a mishandled product
	level int
	game  int
}

// Record adds the points for one product.
func (s *Score) Record(success bool) {
	if success {
		s.level += s.Good
	} else {
		s.level += s.Bad
	}
}

// Level returns the score of the current level.
func (s *Score) Level() int { return s.level }

// Game returns the score of all completed levels.
func (s *Score) Game() int { return s.game }

// EndLevel adds the level score to the game score, resets the level score
// and returns the score of the level that ended.
func (s *Score) EndLevel() int {
	n := s.level
	s.game += n
	s.level = 0
	return n
}

// Scoreboard displays the score.
type Scoreboard struct {
	itemBase
	score *Score
}

// NewScoreboard returns a scoreboard with the given points per product.
func NewScoreboard(id string, good, bad int) *Scoreboard {
	return NewScoreboardFor(id, &Score{Good: good, Bad: bad})
}

// NewScoreboardFor returns a scoreboard that records on s. Boards of
// successive levels share a Score this way to keep a game total.
func NewScoreboardFor(id string, s *Score) *Scoreboard {
	return &Scoreboard{
		itemBase: itemBase{id: id, size: Size{300, 100}},
		score:    s,
	}
}

// Score returns the board's score.
func (s *Scoreboard) Score() *Score { return s.score }

// Accept calls v.VisitScoreboard.
func (s *Scoreboard) Accept(v ItemVisitor) error { return v.VisitScoreboard(s) }
