package domain

import "fmt"

// ScoreSheet is the write-once record of which hand was assigned to which box.
// The zero value is an empty sheet ready for use.
type ScoreSheet struct {
	boxes [NumCategories]*Hand
}

// NewScoreSheet returns an empty score sheet.
func NewScoreSheet() *ScoreSheet {
	return &ScoreSheet{}
}

// Record stores h in category c.
// A box, once filled, is never overwritten.
func (s *ScoreSheet) Record(c Category, h Hand) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	if !h.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidHand, h)
	}
	if s.boxes[c-1] != nil {
		return fmt.Errorf("%w: %s", ErrCategoryAlreadyScored, c)
	}
	stored := h
	s.boxes[c-1] = &stored
	return nil
}

// Hand returns a copy of the hand recorded in c and whether the box is filled.
func (s *ScoreSheet) Hand(c Category) (Hand, bool) {
	if !c.Valid() || s.boxes[c-1] == nil {
		return Hand{}, false
	}
	return *s.boxes[c-1], true
}

// Filled reports whether c holds a hand.
func (s *ScoreSheet) Filled(c Category) bool {
	return c.Valid() && s.boxes[c-1] != nil
}

// Open returns the unfilled categories in score card order.
func (s *ScoreSheet) Open() []Category {
	var out []Category
	for _, c := range Categories() {
		if !s.Filled(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of filled boxes.
func (s *ScoreSheet) Len() int {
	n := 0
	for _, b := range s.boxes {
		if b != nil {
			n++
		}
	}
	return n
}

// IsComplete reports whether all 13 boxes are filled.
func (s *ScoreSheet) IsComplete() bool {
	return s.Len() == NumCategories
}

// slot returns the recorded hand for c, or nil. The pointer never escapes the package.
func (s *ScoreSheet) slot(c Category) *Hand {
	if !c.Valid() {
		return nil
	}
	return s.boxes[c-1]
}

// Potential returns the score h would earn in each open category.
func (s *ScoreSheet) Potential(h Hand) map[Category]int {
	out := make(map[Category]int, NumCategories)
	for _, c := range s.Open() {
		out[c] = Score(c, &h)
	}
	return out
}

// Entry is a read-only view of one score card box.
type Entry struct {
	Category Category
	Hand     Hand
	Filled   bool
	Score    int
}

// Entries returns all 13 boxes in score card order, with their current scores.
func (s *ScoreSheet) Entries() []Entry {
	board := s.ComputeScoreboard()
	out := make([]Entry, 0, NumCategories)
	for _, c := range Categories() {
		h, ok := s.Hand(c)
		out = append(out, Entry{Category: c, Hand: h, Filled: ok, Score: board.Score(c)})
	}
	return out
}
