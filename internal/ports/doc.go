// Package ports defines the interfaces that connect the game core to the
// outside world.
//
// The core never reads input, prints text, or draws random numbers itself.
// It talks to these collaborators instead:
//
//   - [DiceSource]: uniform die faces in 1..6
//   - [Player]: chooses which dice to reroll and which box to score
//   - [Reporter]: receives read-only snapshots for display
//
// Infrastructure adapters (internal/adapters) implement these interfaces,
// which lets the round and session logic be tested with scripted fakes.
package ports
