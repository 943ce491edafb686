package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/yahtzee/internal/adapters/random"
	"github.com/bft-labs/yahtzee/internal/adapters/terminal"
	"github.com/bft-labs/yahtzee/internal/app"
	"github.com/bft-labs/yahtzee/internal/cliconfig"
	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/pkg/log"
	"github.com/bft-labs/yahtzee/plugins/configwatcher"
)

const helpDescription = `
Play a solo game of Yahtzee in your terminal.

Thirteen rounds, up to three rolls each. Keep the dice you like, reroll the
rest, then score the hand in one of the thirteen boxes of the score card.

Settings come from flags, YAHTZEE_* environment variables (a .env file in the
working directory is read too) and $HOME/.yahtzee/config.toml, in that order.
`

var exampleUsage = strings.TrimSpace(`
  yahtzee
  yahtzee --lang de --hints
  yahtzee --seed 42 --log-level debug
  yahtzee score full-house 2 2 3 3 3
  yahtzee categories
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		logger := log.NewZerologAdapter(os.Stderr, log.FormatConsole, zerolog.InfoLevel)
		logger.Error("yahtzee", log.Err(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "yahtzee",
		Short:         "Play a solo game of Yahtzee in your terminal",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := loadConfig(cmd, cfgPath, &cfg)
			if err != nil {
				return err
			}
			return playGame(cmd, cfg, cfgFile)
		},
	}

	// Flags
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.yahtzee/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Lang, "lang", cfg.Lang, "language of the game (en, de)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")

	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed the dice for a reproducible game (0 = random)")
	root.Flags().BoolVar(&cfg.ShowPotential, "hints", cfg.ShowPotential, "show what the hand would score in each open box")
	root.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "apply log_level changes from the config file while playing")

	root.AddCommand(newScoreCmd(&cfg, &cfgPath), newCategoriesCmd(&cfg, &cfgPath))
	return root
}

// loadConfig layers the config file, the environment and the flags onto cfg
// and returns the config file path in use.
func loadConfig(cmd *cobra.Command, cfgPath string, cfg *cliconfig.Config) (string, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return "", fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return "", err
		}
	}

	// Apply environment variables (YAHTZEE_*)
	// These override file config but are overridden by flags (checked via changed map)
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return "", fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return cfgFile, nil
}

func playGame(cmd *cobra.Command, cfg cliconfig.Config, cfgFile string) error {
	tag, err := terminal.ResolveTag(cfg.Lang)
	if err != nil {
		return err
	}

	logger := log.NewZerologAdapter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Level())
	logger.Debug("configuration", log.Any("config", cfg), log.String("config_file", cfgFile))

	// Ctrl-C ends the game; the partial score card is discarded.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WatchConfig && cliconfig.FileExists(cfgFile) {
		watcher := configwatcher.New(configwatcher.DefaultConfig())
		err := watcher.Initialize(ctx, configwatcher.PluginConfig{
			Path:     cfgFile,
			Logger:   logger,
			OnChange: configwatcher.ApplyLogLevel(logger, logger),
		})
		if err != nil {
			logger.Warn("config watcher not started", log.Err(err))
		} else {
			defer watcher.Shutdown(context.Background())
		}
	}

	dice := random.NewDice(cfg.Seed)
	logger.Info("dice ready", log.Any("seed", dice.Seed()))

	console := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		terminal.WithLanguage(tag),
		terminal.WithHints(cfg.ShowPotential),
	)

	host := app.NewHost(logger, nil)
	board, err := host.Run(ctx, dice, console, console)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		fmt.Fprintln(cmd.OutOrStdout())
		logger.Info("game abandoned", log.Err(err))
		return nil
	case err != nil:
		return err
	}

	logger.Info("game over", log.Int("total", board.Total))
	return nil
}

func newScoreCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "score <box> <d1> <d2> <d3> <d4> <d5>",
		Short: "Show what a hand scores in a box",
		Long: strings.TrimSpace(`
Show what a hand of five dice scores in one box of the score card.

The box is its number on the card (1-13) or a name such as "fives",
"full-house", "fh", "3k" or "low-straight".`),
		Example: "  yahtzee score 10 1 2 3 4 6\n  yahtzee score yahtzee 6 6 6 6 6",
		Args:    cobra.ExactArgs(1 + domain.HandSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, *cfgPath, cfg); err != nil {
				return err
			}
			tag, err := terminal.ResolveTag(cfg.Lang)
			if err != nil {
				return err
			}

			c, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			dice := make([]int, 0, domain.HandSize)
			for _, a := range args[1:] {
				d, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%w: %q is not a die face", domain.ErrInvalidHand, a)
				}
				dice = append(dice, d)
			}
			hand, err := domain.NewHand(dice...)
			if err != nil {
				return err
			}

			terminal.New(nil, cmd.OutOrStdout(), terminal.WithLanguage(tag)).PrintScore(c, hand)
			return nil
		},
	}
}

func newCategoriesCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the boxes of the score card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, *cfgPath, cfg); err != nil {
				return err
			}
			tag, err := terminal.ResolveTag(cfg.Lang)
			if err != nil {
				return err
			}
			terminal.New(nil, cmd.OutOrStdout(), terminal.WithLanguage(tag)).PrintCategories()
			return nil
		},
	}
}
