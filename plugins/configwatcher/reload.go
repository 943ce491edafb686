package configwatcher

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/yahtzee/internal/cliconfig"
	"github.com/bft-labs/yahtzee/pkg/log"
)

// LevelSetter is a logger whose level can change at runtime.
type LevelSetter interface {
	SetLevel(level zerolog.Level)
	Level() zerolog.Level
}

// ApplyLogLevel returns a callback that applies the log_level of each
// reloaded file to l. Other settings only take effect on the next start.
//
// Usage:
//
//	err := plugin.Initialize(ctx, configwatcher.PluginConfig{
//	    Path:     path,
//	    Logger:   logger,
//	    OnChange: configwatcher.ApplyLogLevel(logger, logger),
//	})
func ApplyLogLevel(l LevelSetter, logger log.Logger) func(cliconfig.FileConfig) {
	return func(fc cliconfig.FileConfig) {
		name := strings.ToLower(strings.TrimSpace(fc.LogLevel))
		if name == "" {
			return
		}
		lvl, err := zerolog.ParseLevel(name)
		if err != nil {
			logger.Warn("ignoring invalid log level", log.String("log_level", fc.LogLevel))
			return
		}
		if lvl == l.Level() {
			return
		}
		l.SetLevel(lvl)
		logger.Info("log level changed", log.String("log_level", lvl.String()))
	}
}
