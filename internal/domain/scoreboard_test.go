package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fillSheet records hands into the given boxes, failing the test on error.
func fillSheet(t *testing.T, hands map[Category]Hand) *ScoreSheet {
	t.Helper()
	s := NewScoreSheet()
	for c, h := range hands {
		if err := s.Record(c, h); err != nil {
			t.Fatalf("Record(%v, %s) error = %v", c, h, err)
		}
	}
	return s
}

func TestComputeScoreboard_Empty(t *testing.T) {
	b := NewScoreSheet().ComputeScoreboard()
	if diff := cmp.Diff(Scoreboard{}, b); diff != "" {
		t.Errorf("empty scoreboard mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeScoreboard_UpperBonusBoundary(t *testing.T) {
	upper := map[Category]Hand{
		Ones:   MustHand(1, 1, 1, 2, 2),
		Twos:   MustHand(2, 2, 2, 1, 1),
		Threes: MustHand(3, 3, 3, 1, 1),
		Fours:  MustHand(4, 4, 4, 1, 1),
		Fives:  MustHand(5, 5, 5, 1, 1),
		Sixes:  MustHand(6, 6, 6, 1, 1),
	}

	tests := []struct {
		name      string
		ones      Hand
		subtotal  int
		wantBonus int
	}{
		{"subtotal 63", MustHand(1, 1, 1, 2, 2), 63, 35},
		{"subtotal 62", MustHand(1, 1, 2, 2, 2), 62, 0},
		{"subtotal 64", MustHand(1, 1, 1, 1, 2), 64, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands := map[Category]Hand{}
			for c, h := range upper {
				hands[c] = h
			}
			hands[Ones] = tt.ones

			b := fillSheet(t, hands).ComputeScoreboard()
			if b.UpperSubtotal != tt.subtotal {
				t.Fatalf("UpperSubtotal = %d, want %d", b.UpperSubtotal, tt.subtotal)
			}
			if b.UpperBonus != tt.wantBonus {
				t.Errorf("UpperBonus = %d, want %d", b.UpperBonus, tt.wantBonus)
			}
			if b.Total != tt.subtotal+tt.wantBonus {
				t.Errorf("Total = %d, want %d", b.Total, tt.subtotal+tt.wantBonus)
			}
		})
	}
}

func TestComputeScoreboard_YahtzeeBonus(t *testing.T) {
	five := MustHand(1, 1, 1, 1, 1)

	tests := []struct {
		name  string
		hands map[Category]Hand
		want  int
	}{
		{
			name:  "yahtzee box unrecorded",
			hands: map[Category]Hand{Ones: five, Chance: five, Sixes: MustHand(6, 6, 6, 6, 6)},
			want:  0,
		},
		{
			name:  "yahtzee box does not qualify",
			hands: map[Category]Hand{Yahtzee: MustHand(1, 1, 1, 1, 2), Ones: five, Chance: five},
			want:  0,
		},
		{
			name:  "single yahtzee",
			hands: map[Category]Hand{Yahtzee: five, Chance: MustHand(1, 2, 3, 4, 5)},
			want:  0,
		},
		{
			name:  "one extra",
			hands: map[Category]Hand{Yahtzee: five, FourOfAKind: MustHand(3, 3, 3, 3, 3)},
			want:  100,
		},
		{
			name: "extras in any box",
			hands: map[Category]Hand{
				Yahtzee:      five,
				Twos:         MustHand(4, 4, 4, 4, 4),
				FullHouse:    MustHand(2, 2, 2, 2, 2),
				LowStraight:  MustHand(6, 6, 6, 6, 6),
				ThreeOfAKind: MustHand(5, 5, 5, 5, 5),
			},
			want: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fillSheet(t, tt.hands).ComputeScoreboard()
			if b.YahtzeeBonus != tt.want {
				t.Errorf("YahtzeeBonus = %d, want %d", b.YahtzeeBonus, tt.want)
			}
		})
	}
}

func TestComputeScoreboard_FullGameWithExtraYahtzees(t *testing.T) {
	five := MustHand(1, 1, 1, 1, 1)
	run := MustHand(2, 3, 4, 5, 6)
	hands := map[Category]Hand{Yahtzee: five, Chance: five, Ones: five}
	for _, c := range Categories() {
		if _, ok := hands[c]; !ok {
			hands[c] = run
		}
	}

	b := fillSheet(t, hands).ComputeScoreboard()

	want := Scoreboard{
		Categories:    [NumCategories]int{5, 2, 3, 4, 5, 6, 0, 0, 0, 30, 40, 50, 5},
		UpperSubtotal: 25,
		LowerSubtotal: 125,
		UpperBonus:    0,
		YahtzeeBonus:  200,
		Total:         350,
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("scoreboard mismatch (-want +got):\n%s", diff)
	}
	if v := b.Values(); v[14] != 200 || v[15] != 350 || v[11] != 50 {
		t.Errorf("Values() = %v", v)
	}
}

func TestComputeScoreboard_CategoriesIndependent(t *testing.T) {
	s := fillSheet(t, map[Category]Hand{
		FullHouse:    MustHand(2, 2, 2, 2, 3),
		LowStraight:  MustHand(1, 2, 3, 4, 5),
		HighStraight: MustHand(1, 2, 3, 4, 5),
	})
	b := s.ComputeScoreboard()

	if b.Score(FullHouse) != 0 || b.Score(LowStraight) != 30 || b.Score(HighStraight) != 40 {
		t.Errorf("scores = %v", b.Categories)
	}
	if b.Score(FourOfAKind) != 0 {
		t.Error("unrecorded FourOfAKind should score 0 even when another box holds four of a kind")
	}
	if b2 := s.ComputeScoreboard(); b2 != b {
		t.Error("ComputeScoreboard() is not deterministic")
	}
}
