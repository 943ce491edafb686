package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (YAHTZEE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("YAHTZEE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("YAHTZEE_LOG_FORMAT"), &cfg.LogFormat)
	s.setString("lang", os.Getenv("YAHTZEE_LANG"), &cfg.Lang)

	if err := s.setInt64FromString("seed", os.Getenv("YAHTZEE_SEED"), &cfg.Seed); err != nil {
		return err
	}

	s.setBoolFromString("hints", os.Getenv("YAHTZEE_HINTS"), &cfg.ShowPotential)
	s.setBoolFromString("watch-config", os.Getenv("YAHTZEE_WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}
