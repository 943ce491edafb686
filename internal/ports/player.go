package ports

import (
	"context"

	"github.com/bft-labs/yahtzee/internal/domain"
)

// RollView is what a player sees after a roll.
type RollView struct {
	Round      int
	Hand       domain.Hand
	ThrowsLeft int
}

// TurnView is what a player sees when choosing a box for the final hand.
type TurnView struct {
	Round     int
	Hand      domain.Hand
	Card      []domain.Entry
	Board     domain.Scoreboard
	Potential map[domain.Category]int
}

// Player supplies the decisions of the human (or bot) at the table.
// Both calls block until an answer is available or ctx is done.
type Player interface {
	// ChooseReroll returns the dice to redraw. An empty mask keeps the hand.
	ChooseReroll(ctx context.Context, view RollView) (domain.RerollMask, error)

	// ChooseCategory returns a 1-based score card index. The core validates it.
	ChooseCategory(ctx context.Context, view TurnView) (int, error)
}
