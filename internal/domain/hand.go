package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// HandSize is the number of dice in a hand.
	HandSize = 5

	// Faces is the number of faces on a die.
	Faces = 6
)

// Hand is one throw of five dice. Index 0 is die position 1.
// A Hand is a value: assigning or passing it copies the dice.
type Hand [HandSize]int

// NewHand builds a Hand from exactly five dice in 1..6.
func NewHand(dice ...int) (Hand, error) {
	var h Hand
	if len(dice) != HandSize {
		return h, fmt.Errorf("%w: want %d dice, got %d", ErrInvalidHand, HandSize, len(dice))
	}
	for i, d := range dice {
		if d < 1 || d > Faces {
			return Hand{}, fmt.Errorf("%w: die %d shows %d", ErrInvalidHand, i+1, d)
		}
		h[i] = d
	}
	return h, nil
}

// MustHand is NewHand for literals known to be valid. It panics otherwise.
func MustHand(dice ...int) Hand {
	h, err := NewHand(dice...)
	if err != nil {
		panic(err)
	}
	return h
}

// Valid reports whether every die shows a face in 1..6.
func (h Hand) Valid() bool {
	for _, d := range h {
		if d < 1 || d > Faces {
			return false
		}
	}
	return true
}

// Sum returns the total of all five dice.
func (h Hand) Sum() int {
	total := 0
	for _, d := range h {
		total += d
	}
	return total
}

// Contains reports whether any die shows face.
func (h Hand) Contains(face int) bool {
	for _, d := range h {
		if d == face {
			return true
		}
	}
	return false
}

// Sorted returns a copy of the hand in ascending order.
func (h Hand) Sorted() Hand {
	s := h
	sort.Ints(s[:])
	return s
}

// String renders the hand as "[3 4 2 6 4]".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, d := range h {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FaceCount is a histogram of a hand: FaceCount[f-1] is the number of dice showing f.
type FaceCount [Faces]int

// CountFaces maps a hand to its face histogram.
// An unrecorded (nil) hand yields an all-zero histogram.
func CountFaces(h *Hand) FaceCount {
	var count FaceCount
	if h == nil {
		return count
	}
	for _, d := range h {
		if d >= 1 && d <= Faces {
			count[d-1]++
		}
	}
	return count
}

// Of returns how many dice show face.
func (c FaceCount) Of(face int) int {
	if face < 1 || face > Faces {
		return 0
	}
	return c[face-1]
}

// Has reports whether some face appears exactly n times.
func (c FaceCount) Has(n int) bool {
	for _, v := range c {
		if v == n {
			return true
		}
	}
	return false
}

// AtLeast reports whether some face appears n or more times.
func (c FaceCount) AtLeast(n int) bool {
	for _, v := range c {
		if v >= n {
			return true
		}
	}
	return false
}

// Total returns the number of dice counted.
func (c FaceCount) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}
