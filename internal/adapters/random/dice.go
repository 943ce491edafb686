// Package random provides the pseudo-random dice source used in play.
package random

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bft-labs/yahtzee/internal/domain"
)

// Dice draws faces from a seeded pseudo-random generator.
// It is safe for concurrent use.
type Dice struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewDice creates a dice source. A seed of 0 picks one from the clock.
// Two sources built with the same non-zero seed produce the same faces.
func NewDice(seed int64) *Dice {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Dice{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// RollDie returns a face in 1..6.
func (d *Dice) RollDie() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(domain.Faces) + 1
}

// Seed returns the seed in use, so a game can be replayed.
func (d *Dice) Seed() int64 {
	return d.seed
}
