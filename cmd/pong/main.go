// pong is a two-paddle Pong for the terminal, a native window and SSH.
//
// Usage:
//
//	pong list                - List simulation variants
//	pong play [variant]      - Play in the terminal (menu without a variant)
//	pong window [variant]    - Play in a native 700x500 window
//	pong serve               - Start SSH server for remote play
//	pong stats [variant]     - Show the session journal
//	pong config              - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible rebounds
//	--config <path>      - Use a specific config YAML
//	--db <path>          - Set session journal path (default: ~/.pong/sessions.db)
//	--log-level <level>  - debug, info, warn or error
//
// PONG_CONFIG, PONG_DB and PONG_LOG_LEVEL (also read from ./.env) provide
// defaults for the matching flags.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/storage"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
	_ "github.com/vovakirdan/tui-pong/internal/games/rigid"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

// app holds state shared by every subcommand, filled in before they run.
var app struct {
	cfg      config.PongConfig
	source   string
	settings core.Settings
	level    log.Level
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball, your terminal",
	Long: `Pong is a two-player paddle game with two simulation variants:

  classic  - axis-aligned collisions with randomized rebounds
  rigid    - rigid-body collisions with restitution

Available commands:
  list     - Show all variants
  play     - Play in the terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  stats    - View the session journal
  config   - Print the resolved configuration

Examples:
  pong list
  pong play classic
  pong window rigid --seed 7
  pong serve --ssh :2222
  pong stats classic`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to session journal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, applies environment defaults to unset flags and
// resolves the configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = config.EnvOr(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("db") {
		flagDBPath = config.EnvOr(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvOr(config.EnvLogLevel, flagLogLevel)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	app.level = level

	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.source = source
	app.settings = cfg.Settings()
	return nil
}

// runtimeConfig builds the platform loop settings for the given screen size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	tickRate := app.cfg.Window.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the session journal. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session journal", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
