package domain

import "fmt"

// RerollMask selects die positions (1..5) to redraw on the next roll.
// The zero value selects nothing, which means "keep the hand".
type RerollMask uint8

// AllDice selects every die position.
const AllDice RerollMask = 1<<HandSize - 1

// NewRerollMask builds a mask from 1-based die positions.
// Duplicate positions are accepted.
func NewRerollMask(positions ...int) (RerollMask, error) {
	var m RerollMask
	for _, p := range positions {
		if p < 1 || p > HandSize {
			return 0, fmt.Errorf("%w: %d", ErrInvalidDiePosition, p)
		}
		m |= 1 << (p - 1)
	}
	return m, nil
}

// Has reports whether position pos (1..5) is selected.
func (m RerollMask) Has(pos int) bool {
	if pos < 1 || pos > HandSize {
		return false
	}
	return m&(1<<(pos-1)) != 0
}

// Empty reports whether no die is selected.
func (m RerollMask) Empty() bool {
	return m&AllDice == 0
}

// Positions returns the selected positions in ascending order.
func (m RerollMask) Positions() []int {
	var out []int
	for p := 1; p <= HandSize; p++ {
		if m.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
