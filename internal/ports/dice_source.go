package ports

// DiceSource draws die faces.
type DiceSource interface {
	// RollDie returns a uniformly distributed face in 1..6.
	RollDie() int
}

// DiceSourceFunc adapts a function to DiceSource.
type DiceSourceFunc func() int

// RollDie calls f.
func (f DiceSourceFunc) RollDie() int { return f() }
