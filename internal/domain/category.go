package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is one of the 13 score card boxes.
// The numeric value is the box's 1-based position on the card.
type Category int

const (
	Ones Category = iota + 1
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	LowStraight
	HighStraight
	Yahtzee
	Chance
)

// NumCategories is the number of boxes on the score card.
const NumCategories = 13

var categoryNames = [NumCategories]string{
	"Ones", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"Three of a Kind", "Four of a Kind", "Full House",
	"Low Straight", "High Straight", "Yahtzee", "Chance",
}

// categoryAliases maps lowercase names accepted by ParseCategory.
var categoryAliases = map[string]Category{
	"ones": Ones, "twos": Twos, "threes": Threes, "fours": Fours, "fives": Fives, "sixes": Sixes,
	"three-of-a-kind": ThreeOfAKind, "3k": ThreeOfAKind,
	"four-of-a-kind": FourOfAKind, "4k": FourOfAKind,
	"full-house": FullHouse, "fh": FullHouse,
	"low-straight": LowStraight, "small-straight": LowStraight, "ls": LowStraight,
	"high-straight": HighStraight, "large-straight": HighStraight, "hs": HighStraight,
	"yahtzee": Yahtzee,
	"chance": Chance,
}

// Categories returns all 13 categories in score card order.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := Ones; c <= Chance; c++ {
		out = append(out, c)
	}
	return out
}

// CategoryFromIndex converts a 1-based score card index into a Category.
func CategoryFromIndex(i int) (Category, error) {
	c := Category(i)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidCategory, i, NumCategories)
	}
	return c, nil
}

// ParseCategory accepts either a 1-based index ("9") or a name ("full-house", "fh").
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		return CategoryFromIndex(i)
	}
	key := strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Valid reports whether c is one of the 13 boxes.
func (c Category) Valid() bool {
	return c >= Ones && c <= Chance
}

// Index returns the 1-based score card position.
func (c Category) Index() int {
	return int(c)
}

// Upper reports whether c belongs to the upper section (Ones..Sixes).
func (c Category) Upper() bool {
	return c >= Ones && c <= Sixes
}

// Face returns the die face counted by an upper category, or 0.
func (c Category) Face() int {
	if !c.Upper() {
		return 0
	}
	return int(c)
}

// String returns the human-readable box name.
func (c Category) String() string {
	if !c.Valid() {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c-1]
}
