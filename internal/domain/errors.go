package domain

import "errors"

// Domain errors represent error conditions in the yahtzee domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidCategory is returned for a category index outside 1..13.
	ErrInvalidCategory = errors.New("yahtzee: invalid category")

	// ErrCategoryAlreadyScored is returned when recording into a filled box.
	ErrCategoryAlreadyScored = errors.New("yahtzee: category already scored")

	// ErrNoThrowsLeft is returned when rolling after the round's throws are used up
	// or after the hand was kept.
	ErrNoThrowsLeft = errors.New("yahtzee: no throws left")

	// ErrSessionAlreadyRunning is returned when a game is started while another is active.
	ErrSessionAlreadyRunning = errors.New("yahtzee: session already running")

	// ErrNotRunning is returned when stopping a session that is not active.
	ErrNotRunning = errors.New("yahtzee: session not running")

	// ErrInvalidHand is returned when a hand is not exactly five dice in 1..6.
	ErrInvalidHand = errors.New("yahtzee: invalid hand")

	// ErrInvalidDiePosition is returned for a reroll position outside 1..5.
	ErrInvalidDiePosition = errors.New("yahtzee: invalid die position")

	// ErrNoHandRolled is returned when keeping a hand before the first roll.
	ErrNoHandRolled = errors.New("yahtzee: no hand rolled")

	// ErrRoundInProgress is returned when recording before the hand is final.
	ErrRoundInProgress = errors.New("yahtzee: round still in progress")

	// ErrGameOver is returned for any play after all 13 boxes are filled.
	ErrGameOver = errors.New("yahtzee: game over")
)

// IsRetryable reports whether err is a user-input error that the caller
// should answer by prompting again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrInvalidCategory) || errors.Is(err, ErrCategoryAlreadyScored)
}
