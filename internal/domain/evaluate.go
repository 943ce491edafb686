package domain

// Fixed scores for the lower section.
const (
	FullHouseScore    = 25
	LowStraightScore  = 30
	HighStraightScore = 40
	YahtzeeScore      = 50
)

// Qualifies reports whether h satisfies the rule of category c.
// Upper categories and Chance accept any recorded hand.
// A nil (unrecorded) hand never qualifies.
func Qualifies(c Category, h *Hand) bool {
	if h == nil {
		return false
	}
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes, Chance:
		return true
	case ThreeOfAKind:
		return IsThreeOfAKind(h)
	case FourOfAKind:
		return IsFourOfAKind(h)
	case FullHouse:
		return IsFullHouse(h)
	case LowStraight:
		return IsLowStraight(h)
	case HighStraight:
		return IsHighStraight(h)
	case Yahtzee:
		return IsYahtzee(h)
	default:
		return false
	}
}

// Score returns the points h earns when recorded in category c.
// It returns 0 for an unrecorded hand, an invalid category, or a hand that
// does not qualify.
func Score(c Category, h *Hand) int {
	if !Qualifies(c, h) {
		return 0
	}
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		return CountFaces(h).Of(c.Face()) * c.Face()
	case ThreeOfAKind, FourOfAKind, Chance:
		return h.Sum()
	case FullHouse:
		return FullHouseScore
	case LowStraight:
		return LowStraightScore
	case HighStraight:
		return HighStraightScore
	case Yahtzee:
		return YahtzeeScore
	}
	return 0
}

// IsThreeOfAKind reports whether some face shows on three or more dice.
func IsThreeOfAKind(h *Hand) bool {
	return CountFaces(h).AtLeast(3)
}

// IsFourOfAKind reports whether some face shows on four or more dice.
func IsFourOfAKind(h *Hand) bool {
	return CountFaces(h).AtLeast(4)
}

// IsFullHouse reports whether the hand is a pair plus a triple.
func IsFullHouse(h *Hand) bool {
	count := CountFaces(h)
	return count.Has(2) && count.Has(3)
}

// IsLowStraight reports whether the hand holds four consecutive faces.
// It requires 3 and 4 plus one of the pairs {1,2}, {2,5} or {5,6}.
func IsLowStraight(h *Hand) bool {
	if h == nil {
		return false
	}
	if !h.Contains(3) || !h.Contains(4) {
		return false
	}
	return (h.Contains(1) && h.Contains(2)) ||
		(h.Contains(2) && h.Contains(5)) ||
		(h.Contains(5) && h.Contains(6))
}

// IsHighStraight reports whether the hand is 1-5 or 2-6.
func IsHighStraight(h *Hand) bool {
	if h == nil {
		return false
	}
	return h.Contains(2) && h.Contains(3) && h.Contains(4) && h.Contains(5) &&
		(h.Contains(1) || h.Contains(6))
}

// IsYahtzee reports whether all five dice show the same face.
func IsYahtzee(h *Hand) bool {
	return CountFaces(h).AtLeast(5)
}
