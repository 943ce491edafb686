package app

import (
	"fmt"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
)

// ThrowsPerRound is the roll budget of a single round.
const ThrowsPerRound = 3

// RoundState is the position of a round in its state machine.
type RoundState int

const (
	RoundAwaitingFirstRoll RoundState = iota
	RoundRolling
	RoundHandFinalized
)

// String returns a human-readable representation of the round state.
func (s RoundState) String() string {
	switch s {
	case RoundAwaitingFirstRoll:
		return "AwaitingFirstRoll"
	case RoundRolling:
		return "Rolling"
	case RoundHandFinalized:
		return "HandFinalized"
	default:
		return "Unknown"
	}
}

// Round is the state of one round: up to three rolls with selective rerolls,
// ending in a finalized hand.
type Round struct {
	src        ports.DiceSource
	hand       domain.Hand
	throwsLeft int
	state      RoundState
}

// NewRound creates a round awaiting its first roll.
func NewRound(src ports.DiceSource) *Round {
	return &Round{src: src, throwsLeft: ThrowsPerRound}
}

// Roll draws dice and consumes one throw.
//
// The first roll of a round draws all five dice and ignores mask. Later rolls
// redraw only the positions in mask; an empty mask keeps the hand without
// consuming a throw. The hand is finalized when the last throw is used.
func (r *Round) Roll(mask domain.RerollMask) (domain.Hand, error) {
	if r.state == RoundHandFinalized || r.throwsLeft <= 0 {
		return r.hand, domain.ErrNoThrowsLeft
	}
	if r.state == RoundAwaitingFirstRoll {
		mask = domain.AllDice
	} else if mask.Empty() {
		r.state = RoundHandFinalized
		return r.hand, nil
	}

	next := r.hand
	for _, pos := range mask.Positions() {
		face := r.src.RollDie()
		if face < 1 || face > domain.Faces {
			return r.hand, fmt.Errorf("%w: dice source returned %d", domain.ErrInvalidHand, face)
		}
		next[pos-1] = face
	}

	r.hand = next
	r.throwsLeft--
	r.state = RoundRolling
	if r.throwsLeft == 0 {
		r.state = RoundHandFinalized
	}
	return r.hand, nil
}

// Keep finalizes the current hand before the throws run out.
func (r *Round) Keep() error {
	switch r.state {
	case RoundAwaitingFirstRoll:
		return domain.ErrNoHandRolled
	case RoundRolling:
		r.state = RoundHandFinalized
	}
	return nil
}

// Hand returns the current hand. Before the first roll it is the zero Hand.
func (r *Round) Hand() domain.Hand { return r.hand }

// ThrowsLeft returns the number of rolls remaining in this round.
func (r *Round) ThrowsLeft() int { return r.throwsLeft }

// State returns the round state.
func (r *Round) State() RoundState { return r.state }

// Rolled reports whether at least one roll has been made.
func (r *Round) Rolled() bool { return r.state != RoundAwaitingFirstRoll }
