package domain

// Bonus rules.
const (
	UpperBonusThreshold = 63
	UpperBonus          = 35
	ExtraYahtzeeBonus   = 100
)

// Scoreboard is a read-only snapshot of the scores derived from a ScoreSheet.
type Scoreboard struct {
	// Categories holds each box's score, indexed by Category-1.
	Categories [NumCategories]int

	UpperSubtotal int
	LowerSubtotal int
	UpperBonus    int
	YahtzeeBonus  int
	Total         int
}

// Score returns the score of a single box.
func (b Scoreboard) Score(c Category) int {
	if !c.Valid() {
		return 0
	}
	return b.Categories[c-1]
}

// Values returns the 16-value layout: 13 box scores, upper bonus,
// multi-Yahtzee bonus, total.
func (b Scoreboard) Values() [16]int {
	var v [16]int
	copy(v[:NumCategories], b.Categories[:])
	v[13] = b.UpperBonus
	v[14] = b.YahtzeeBonus
	v[15] = b.Total
	return v
}

// ComputeScoreboard derives all scores from the recorded hands.
// Each box is scored only from the hand recorded in that box.
func (s *ScoreSheet) ComputeScoreboard() Scoreboard {
	var b Scoreboard
	for _, c := range Categories() {
		score := Score(c, s.slot(c))
		b.Categories[c-1] = score
		if c.Upper() {
			b.UpperSubtotal += score
		} else {
			b.LowerSubtotal += score
		}
	}

	if b.UpperSubtotal >= UpperBonusThreshold {
		b.UpperBonus = UpperBonus
	}
	b.YahtzeeBonus = s.yahtzeeBonus()

	b.Total = b.UpperSubtotal + b.LowerSubtotal + b.UpperBonus + b.YahtzeeBonus
	return b
}

// yahtzeeBonus awards ExtraYahtzeeBonus for every box other than Yahtzee that
// holds a five-of-a-kind. It is 0 unless the Yahtzee box itself holds one.
func (s *ScoreSheet) yahtzeeBonus() int {
	if !IsYahtzee(s.slot(Yahtzee)) {
		return 0
	}
	bonus := 0
	for _, c := range Categories() {
		if c == Yahtzee {
			continue
		}
		if IsYahtzee(s.slot(c)) {
			bonus += ExtraYahtzeeBonus
		}
	}
	return bonus
}
