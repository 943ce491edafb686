package app

import (
	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
	"github.com/bft-labs/yahtzee/pkg/log"
)

// Rounds is the number of rounds in a game: one per score card box.
const Rounds = domain.NumCategories

// Option configures optional behavior of a Game.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger for game events. The default discards them.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Game is one game of 13 rounds. It owns the score sheet and the current
// round, and exposes the turn-taking contract step by step:
// Roll / Keep until the hand is final, then Record into an open box.
//
// A Game is not safe for concurrent use.
type Game struct {
	src     ports.DiceSource
	logger  log.Logger
	sheet   *domain.ScoreSheet
	round   *Round
	roundNo int
}

// NewGame creates a game at round 1, awaiting its first roll.
func NewGame(src ports.DiceSource, opts ...Option) *Game {
	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Game{
		src:     src,
		logger:  o.logger,
		sheet:   domain.NewScoreSheet(),
		round:   NewRound(src),
		roundNo: 1,
	}
}

// Round returns the current round number, 1..13.
func (g *Game) Round() int { return g.roundNo }

// Hand returns the current hand of the round.
func (g *Game) Hand() domain.Hand { return g.round.Hand() }

// ThrowsLeft returns the rolls remaining in the current round.
func (g *Game) ThrowsLeft() int { return g.round.ThrowsLeft() }

// RoundState returns the state of the current round.
func (g *Game) RoundState() RoundState { return g.round.State() }

// Finished reports whether all 13 boxes are filled.
func (g *Game) Finished() bool { return g.sheet.IsComplete() }

// Roll rolls the dice of the current round. See Round.Roll.
func (g *Game) Roll(mask domain.RerollMask) (domain.Hand, error) {
	if g.Finished() {
		return domain.Hand{}, domain.ErrGameOver
	}
	hand, err := g.round.Roll(mask)
	if err != nil {
		return hand, err
	}
	g.logger.Debug("rolled",
		log.Int("round", g.roundNo),
		log.Ints("reroll", mask.Positions()),
		log.Stringer("hand", hand),
		log.Int("throws_left", g.round.ThrowsLeft()),
	)
	return hand, nil
}

// Keep finalizes the current hand early.
func (g *Game) Keep() error {
	if g.Finished() {
		return domain.ErrGameOver
	}
	return g.round.Keep()
}

// Record scores the finalized hand into the box at the 1-based index and
// advances to the next round. Invalid or filled boxes leave the game unchanged.
func (g *Game) Record(index int) (domain.Category, error) {
	if g.Finished() {
		return 0, domain.ErrGameOver
	}
	if g.round.State() != RoundHandFinalized {
		return 0, domain.ErrRoundInProgress
	}
	c, err := domain.CategoryFromIndex(index)
	if err != nil {
		return 0, err
	}
	hand := g.round.Hand()
	if err := g.sheet.Record(c, hand); err != nil {
		return 0, err
	}

	g.logger.Info("recorded",
		log.Int("round", g.roundNo),
		log.Stringer("category", c),
		log.Stringer("hand", hand),
		log.Int("score", domain.Score(c, &hand)),
	)

	if g.sheet.IsComplete() {
		board := g.sheet.ComputeScoreboard()
		g.logger.Info("game finished",
			log.Int("upper_bonus", board.UpperBonus),
			log.Int("yahtzee_bonus", board.YahtzeeBonus),
			log.Int("total", board.Total),
		)
		return c, nil
	}
	g.roundNo++
	g.round = NewRound(g.src)
	return c, nil
}

// RecordedHand returns the hand recorded in c, if any.
func (g *Game) RecordedHand(c domain.Category) (domain.Hand, bool) {
	return g.sheet.Hand(c)
}

// Card returns the read-only view of all 13 boxes.
func (g *Game) Card() []domain.Entry { return g.sheet.Entries() }

// Scoreboard recomputes the scores from the sheet.
func (g *Game) Scoreboard() domain.Scoreboard { return g.sheet.ComputeScoreboard() }

// Potential returns what the current hand would score in each open box.
// It is empty before the first roll.
func (g *Game) Potential() map[domain.Category]int {
	if !g.round.Rolled() {
		return map[domain.Category]int{}
	}
	return g.sheet.Potential(g.round.Hand())
}
