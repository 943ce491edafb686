// Package domain contains the core entities and scoring rules for yahtzee.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (terminal I/O, logging, randomness) and contains
// only pure game rules.
//
// # Entities
//
//   - [Hand]: five dice, each showing a face in 1..6
//   - [FaceCount]: per-face histogram derived from a Hand
//   - [Category]: one of the 13 fixed score card boxes
//   - [ScoreSheet]: write-once mapping from Category to recorded Hand
//   - [Scoreboard]: derived scores, bonuses and total for a ScoreSheet
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction (a Hand is an array value, copied on assignment)
//   - Total where possible: scoring an unrecorded box yields 0, never an error
//   - Recomputed on demand: a Scoreboard is never cached next to the sheet
package domain
