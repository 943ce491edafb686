package ports

import "github.com/bft-labs/yahtzee/internal/domain"

// Reporter receives game progress for display. Implementations must not
// retain or mutate the slices they are given.
type Reporter interface {
	GameStarted()
	RoundStarted(round int)
	Rolled(view RollView)
	Scorecard(card []domain.Entry, board domain.Scoreboard)
	Rejected(err error)
	Recorded(c domain.Category, h domain.Hand, score int)
	GameOver(board domain.Scoreboard)
}
