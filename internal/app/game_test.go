package app

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
)

func fives() ports.DiceSource {
	return ports.DiceSourceFunc(func() int { return 5 })
}

func TestNewGame(t *testing.T) {
	g := NewGame(fives())

	if g.Round() != 1 || g.ThrowsLeft() != ThrowsPerRound || g.RoundState() != RoundAwaitingFirstRoll {
		t.Errorf("new game: round %d, throws %d, state %v", g.Round(), g.ThrowsLeft(), g.RoundState())
	}
	if g.Finished() {
		t.Error("new game is finished")
	}
	if len(g.Potential()) != 0 {
		t.Errorf("Potential() before roll = %v, want empty", g.Potential())
	}
	if got := len(g.Card()); got != domain.NumCategories {
		t.Errorf("len(Card()) = %d, want %d", got, domain.NumCategories)
	}
}

func TestGame_RecordRequiresFinalizedHand(t *testing.T) {
	g := NewGame(fives())

	if _, err := g.Record(1); !errors.Is(err, domain.ErrRoundInProgress) {
		t.Fatalf("Record() before roll error = %v, want ErrRoundInProgress", err)
	}
	_, _ = g.Roll(domain.AllDice)
	if _, err := g.Record(1); !errors.Is(err, domain.ErrRoundInProgress) {
		t.Fatalf("Record() while rolling error = %v, want ErrRoundInProgress", err)
	}

	if err := g.Keep(); err != nil {
		t.Fatalf("Keep() error = %v", err)
	}
	c, err := g.Record(domain.Fives.Index())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if c != domain.Fives {
		t.Errorf("Record() category = %v, want Fives", c)
	}
	if g.Round() != 2 || g.RoundState() != RoundAwaitingFirstRoll {
		t.Errorf("after record: round %d, state %v", g.Round(), g.RoundState())
	}
	if h, ok := g.RecordedHand(domain.Fives); !ok || h != domain.MustHand(5, 5, 5, 5, 5) {
		t.Errorf("RecordedHand(Fives) = %v, %v", h, ok)
	}
}

func TestGame_RecordRejectionLeavesGameUnchanged(t *testing.T) {
	g := NewGame(fives())
	_, _ = g.Roll(domain.AllDice)
	_ = g.Keep()
	_, _ = g.Record(1)

	_, _ = g.Roll(domain.AllDice)
	_ = g.Keep()

	tests := []struct {
		name    string
		index   int
		wantErr error
	}{
		{"already scored", 1, domain.ErrCategoryAlreadyScored},
		{"zero", 0, domain.ErrInvalidCategory},
		{"past last", 14, domain.ErrInvalidCategory},
		{"negative", -3, domain.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.Scoreboard()
			_, err := g.Record(tt.index)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Record(%d) error = %v, want %v", tt.index, err, tt.wantErr)
			}
			if !domain.IsRetryable(err) {
				t.Errorf("Record(%d) error should be retryable", tt.index)
			}
			if diff := cmp.Diff(before, g.Scoreboard()); diff != "" {
				t.Errorf("scoreboard changed (-before +after):\n%s", diff)
			}
			if g.Round() != 2 || g.RoundState() != RoundHandFinalized {
				t.Errorf("round %d, state %v", g.Round(), g.RoundState())
			}
		})
	}
}

func TestGame_Potential(t *testing.T) {
	g := NewGame(fives())
	_, _ = g.Roll(domain.AllDice)

	p := g.Potential()
	if len(p) != domain.NumCategories {
		t.Fatalf("len(Potential()) = %d, want %d", len(p), domain.NumCategories)
	}
	if p[domain.Yahtzee] != 50 || p[domain.Fives] != 25 || p[domain.FullHouse] != 0 {
		t.Errorf("Potential() = %v", p)
	}

	_ = g.Keep()
	_, _ = g.Record(domain.Yahtzee.Index())
	_, _ = g.Roll(domain.AllDice)
	if _, ok := g.Potential()[domain.Yahtzee]; ok {
		t.Error("Potential() includes a filled box")
	}
}

func TestGame_FullGame(t *testing.T) {
	g := NewGame(fives())

	for round := 1; round <= Rounds; round++ {
		if g.Round() != round {
			t.Fatalf("Round() = %d, want %d", g.Round(), round)
		}
		for g.RoundState() != RoundHandFinalized {
			if _, err := g.Roll(domain.AllDice); err != nil {
				t.Fatalf("round %d: Roll() error = %v", round, err)
			}
		}
		if _, err := g.Record(round); err != nil {
			t.Fatalf("round %d: Record() error = %v", round, err)
		}
	}

	if !g.Finished() {
		t.Fatal("game not finished after 13 records")
	}
	if _, err := g.Roll(domain.AllDice); !errors.Is(err, domain.ErrGameOver) {
		t.Errorf("Roll() after game error = %v, want ErrGameOver", err)
	}
	if _, err := g.Record(1); !errors.Is(err, domain.ErrGameOver) {
		t.Errorf("Record() after game error = %v, want ErrGameOver", err)
	}
	if err := g.Keep(); !errors.Is(err, domain.ErrGameOver) {
		t.Errorf("Keep() after game error = %v, want ErrGameOver", err)
	}

	b := g.Scoreboard()
	want := domain.Scoreboard{
		Categories:    [domain.NumCategories]int{0, 0, 0, 0, 25, 0, 25, 25, 0, 0, 0, 50, 25},
		UpperSubtotal: 25,
		LowerSubtotal: 125,
		YahtzeeBonus:  1200,
		Total:         1350,
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("Scoreboard() mismatch (-want +got):\n%s", diff)
	}
}
