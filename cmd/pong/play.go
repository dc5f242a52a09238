package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the specified variant in the terminal.
Without a variant, a menu lets you pick one and browse the session journal.

Controls (paddle keys come from the config):
  W / S        - Left paddle up/down
  Up / Down    - Right paddle up/down
  P            - Pause
  R            - Respawn paddles and ball
  ?            - Toggle help
  Esc          - Back to menu
  Q / Ctrl+C   - Quit

Terminals report key presses, not releases: a paddle key counts as held
for tui.key_hold_ms after its last press (auto-repeat keeps it held).

Examples:
  pong play
  pong play classic
  pong play rigid --fps 120
  pong play classic --seed 42 --config ./my-pong.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	var variant string
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q (run 'pong list' to see available variants)", variant)
		}
	}

	logger, closer, err := fileLogger("pong")
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Settings: &app.settings,
		Runtime:  runtimeConfig(width, height),
		KeyHold:  time.Duration(app.cfg.TUI.KeyHoldMS) * time.Millisecond,
		Store:    store,
		Logger:   logger,
		Frontend: "tui",
	}
	logger.Info("terminal session starting", "variant", variant, "config", app.source, "tick_rate", opts.Runtime.TickRate)

	if variant == "" {
		err = tui.RunSession(opts)
	} else {
		sim, createErr := registry.Create(variant, &app.settings)
		if createErr != nil {
			return createErr
		}
		err = tui.Run(sim, opts)
	}
	if err != nil {
		logger.Error("terminal session failed", "error", err)
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
