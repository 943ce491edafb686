package app

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/yahtzee/internal/domain"
)

func mask(t *testing.T, positions ...int) domain.RerollMask {
	t.Helper()
	m, err := domain.NewRerollMask(positions...)
	if err != nil {
		t.Fatalf("NewRerollMask(%v) error = %v", positions, err)
	}
	return m
}

func TestRound_FirstRollIgnoresMask(t *testing.T) {
	r := NewRound(newScriptedDice(3, 4, 2, 6, 4))
	if r.State() != RoundAwaitingFirstRoll || r.ThrowsLeft() != ThrowsPerRound {
		t.Fatalf("new round: state %v, throws %d", r.State(), r.ThrowsLeft())
	}

	hand, err := r.Roll(mask(t, 2))
	if err != nil {
		t.Fatalf("Roll() error = %v", err)
	}
	if diff := cmp.Diff(domain.MustHand(3, 4, 2, 6, 4), hand); diff != "" {
		t.Errorf("first roll mismatch (-want +got):\n%s", diff)
	}
	if r.ThrowsLeft() != 2 || r.State() != RoundRolling {
		t.Errorf("after first roll: throws %d, state %v", r.ThrowsLeft(), r.State())
	}
}

func TestRound_RerollOnlySelected(t *testing.T) {
	dice := newScriptedDice(1, 2, 3, 4, 5, 6, 6, 5)
	r := NewRound(dice)
	_, _ = r.Roll(domain.AllDice)

	hand, err := r.Roll(mask(t, 1, 3))
	if err != nil {
		t.Fatalf("Roll() error = %v", err)
	}
	if diff := cmp.Diff(domain.MustHand(6, 2, 6, 4, 5), hand); diff != "" {
		t.Errorf("reroll mismatch (-want +got):\n%s", diff)
	}
	if dice.Calls() != 7 {
		t.Errorf("dice drawn = %d, want 7", dice.Calls())
	}

	hand, _ = r.Roll(mask(t, 5))
	if hand != domain.MustHand(6, 2, 6, 4, 5) {
		t.Errorf("third roll = %s", hand)
	}
	if r.ThrowsLeft() != 0 || r.State() != RoundHandFinalized {
		t.Errorf("after third roll: throws %d, state %v", r.ThrowsLeft(), r.State())
	}
}

func TestRound_NoThrowsLeft(t *testing.T) {
	r := NewRound(newScriptedDice(2))
	for i := 0; i < ThrowsPerRound; i++ {
		if _, err := r.Roll(domain.AllDice); err != nil {
			t.Fatalf("roll %d error = %v", i+1, err)
		}
	}

	before := r.Hand()
	_, err := r.Roll(domain.AllDice)
	if !errors.Is(err, domain.ErrNoThrowsLeft) {
		t.Fatalf("fourth Roll() error = %v, want ErrNoThrowsLeft", err)
	}
	if r.Hand() != before || r.ThrowsLeft() != 0 {
		t.Error("failed roll changed the round")
	}
}

func TestRound_KeepFinalizesEarly(t *testing.T) {
	r := NewRound(newScriptedDice(5))

	if err := r.Keep(); !errors.Is(err, domain.ErrNoHandRolled) {
		t.Fatalf("Keep() before roll error = %v, want ErrNoHandRolled", err)
	}

	_, _ = r.Roll(domain.AllDice)
	if err := r.Keep(); err != nil {
		t.Fatalf("Keep() error = %v", err)
	}
	if r.State() != RoundHandFinalized || r.ThrowsLeft() != 2 {
		t.Errorf("after keep: state %v, throws %d", r.State(), r.ThrowsLeft())
	}
	if _, err := r.Roll(domain.AllDice); !errors.Is(err, domain.ErrNoThrowsLeft) {
		t.Errorf("Roll() after keep error = %v, want ErrNoThrowsLeft", err)
	}
}

func TestRound_EmptyMaskKeeps(t *testing.T) {
	dice := newScriptedDice(4)
	r := NewRound(dice)
	_, _ = r.Roll(domain.AllDice)

	if _, err := r.Roll(0); err != nil {
		t.Fatalf("Roll(empty) error = %v", err)
	}
	if r.State() != RoundHandFinalized || r.ThrowsLeft() != 2 || dice.Calls() != 5 {
		t.Errorf("empty mask: state %v, throws %d, draws %d", r.State(), r.ThrowsLeft(), dice.Calls())
	}
}

func TestRound_RejectsBadDiceSource(t *testing.T) {
	r := NewRound(newScriptedDice(7))
	if _, err := r.Roll(domain.AllDice); !errors.Is(err, domain.ErrInvalidHand) {
		t.Fatalf("Roll() error = %v, want ErrInvalidHand", err)
	}
	if r.State() != RoundAwaitingFirstRoll || r.ThrowsLeft() != ThrowsPerRound {
		t.Error("failed roll changed the round")
	}
}

func TestRoundState_String(t *testing.T) {
	for s, want := range map[RoundState]string{
		RoundAwaitingFirstRoll: "AwaitingFirstRoll",
		RoundRolling:           "Rolling",
		RoundHandFinalized:     "HandFinalized",
		RoundState(9):          "Unknown",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %s, want %s", s, s.String(), want)
		}
	}
}
