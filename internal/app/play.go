package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
)

// Play drives g to completion against the given player and reporter.
//
// Retry policy: box choices rejected with a retryable error (invalid or
// already-filled box) are reported and asked again. Any other error, including
// a player error or ctx cancellation, ends play and is returned.
func Play(ctx context.Context, g *Game, player ports.Player, reporter ports.Reporter) (domain.Scoreboard, error) {
	reporter.GameStarted()
	for !g.Finished() {
		if err := ctx.Err(); err != nil {
			return domain.Scoreboard{}, err
		}
		reporter.RoundStarted(g.Round())

		if err := rollRound(ctx, g, player, reporter); err != nil {
			return domain.Scoreboard{}, err
		}
		if err := scoreRound(ctx, g, player, reporter); err != nil {
			return domain.Scoreboard{}, err
		}
	}

	board := g.Scoreboard()
	reporter.GameOver(board)
	return board, nil
}

// rollRound rolls until the hand is final.
func rollRound(ctx context.Context, g *Game, player ports.Player, reporter ports.Reporter) error {
	if _, err := g.Roll(domain.AllDice); err != nil {
		return fmt.Errorf("round %d: %w", g.Round(), err)
	}
	reporter.Rolled(rollView(g))

	for g.RoundState() != RoundHandFinalized {
		mask, err := player.ChooseReroll(ctx, rollView(g))
		if err != nil {
			return err
		}
		if mask.Empty() {
			return g.Keep()
		}
		if _, err := g.Roll(mask); err != nil {
			return fmt.Errorf("round %d: %w", g.Round(), err)
		}
		reporter.Rolled(rollView(g))
	}
	return nil
}

// scoreRound asks for a box until the hand is recorded.
func scoreRound(ctx context.Context, g *Game, player ports.Player, reporter ports.Reporter) error {
	reporter.Scorecard(g.Card(), g.Scoreboard())
	for {
		view := ports.TurnView{
			Round:     g.Round(),
			Hand:      g.Hand(),
			Card:      g.Card(),
			Board:     g.Scoreboard(),
			Potential: g.Potential(),
		}
		index, err := player.ChooseCategory(ctx, view)
		if err != nil {
			return err
		}

		hand := g.Hand()
		c, err := g.Record(index)
		if domain.IsRetryable(err) {
			reporter.Rejected(err)
			continue
		}
		if err != nil {
			return fmt.Errorf("round %d: %w", view.Round, err)
		}

		reporter.Recorded(c, hand, domain.Score(c, &hand))
		reporter.Scorecard(g.Card(), g.Scoreboard())
		return nil
	}
}

func rollView(g *Game) ports.RollView {
	return ports.RollView{Round: g.Round(), Hand: g.Hand(), ThrowsLeft: g.ThrowsLeft()}
}
