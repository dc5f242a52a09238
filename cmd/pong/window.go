package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a native window",
	Long: `Open a fixed-size, non-resizable window (700x500 by default) and play
the specified variant (default: classic). Keys are read as truly held keys.

Controls (paddle keys come from the config):
  W / S        - Left paddle up/down
  Up / Down    - Right paddle up/down
  P            - Pause
  R            - Respawn paddles and ball
  H            - Toggle HUD
  Esc / Q      - Quit

Examples:
  pong window
  pong window rigid`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	variant := pong.ID
	if len(args) == 1 {
		variant = args[0]
	}

	sim, err := registry.Create(variant, &app.settings)
	if err != nil {
		return fmt.Errorf("%w (run 'pong list' to see available variants)", err)
	}

	logger := newLogger(os.Stderr, "pong-window")
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(sim, window.Options{
		Settings: &app.settings,
		Runtime:  runtimeConfig(int(app.settings.Width), int(app.settings.Height)),
		Title:    app.cfg.Window.Title,
		Store:    store,
		Logger:   logger,
	})
}
