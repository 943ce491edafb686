// Package log provides the structured logging abstraction used by yahtzee.
//
// The game core logs through the Logger interface so that it never depends
// on a concrete logging library. A zerolog adapter is provided for the CLI
// and a no-op logger for tests.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, log.FormatConsole, zerolog.InfoLevel)
//	logger.Info("round started", log.Int("round", 1))
//
// Use log.NewNoopLogger() where output is not wanted.
package log
