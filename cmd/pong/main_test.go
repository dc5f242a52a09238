package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// isolate points HOME and the working directory at an empty temp dir and
// unsets the PONG_* variables for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, key := range []string{config.EnvConfig, config.EnvDB, config.EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	flagConfig = ""
	flagDBPath = "~/.pong/sessions.db"
	flagLogLevel = "info"
	flagFPS = 0
	return dir
}

func TestSetupDefaults(t *testing.T) {
	isolate(t)

	if err := setup(&cobra.Command{}, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if app.source != config.SourceEmbedded {
		t.Errorf("source = %q, expected %q", app.source, config.SourceEmbedded)
	}
	if app.level != log.InfoLevel {
		t.Errorf("level = %v, expected %v", app.level, log.InfoLevel)
	}
	if app.settings.Width != 700 || app.settings.Height != 500 {
		t.Errorf("field = %vx%v, expected 700x500", app.settings.Width, app.settings.Height)
	}
}

func TestSetupReadsDotEnv(t *testing.T) {
	dir := isolate(t)

	cfgPath := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(cfgPath, []byte("window:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	env := "PONG_LOG_LEVEL=debug\nPONG_DB=" + filepath.Join(dir, "j.db") + "\nPONG_CONFIG=" + cfgPath + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := setup(&cobra.Command{}, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if app.level != log.DebugLevel {
		t.Errorf("level = %v, expected %v", app.level, log.DebugLevel)
	}
	if app.source != cfgPath {
		t.Errorf("source = %q, expected %q", app.source, cfgPath)
	}
	if flagDBPath != filepath.Join(dir, "j.db") {
		t.Errorf("db = %q, expected journal under %s", flagDBPath, dir)
	}
	if app.cfg.Window.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", app.cfg.Window.TickRate)
	}
}

func TestSetupRejectsBadLevel(t *testing.T) {
	isolate(t)
	flagLogLevel = "loud"

	if err := setup(&cobra.Command{}, nil); err == nil {
		t.Error("setup() expected error for unknown log level")
	}
}

func TestRuntimeConfig(t *testing.T) {
	isolate(t)
	if err := setup(&cobra.Command{}, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}

	rc := runtimeConfig(80, 24)
	if rc.TickRate != app.cfg.Window.TickRate {
		t.Errorf("TickRate = %d, expected config value %d", rc.TickRate, app.cfg.Window.TickRate)
	}
	if rc.ScreenW != 80 || rc.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", rc.ScreenW, rc.ScreenH)
	}

	flagFPS = 120
	if rc := runtimeConfig(80, 24); rc.TickRate != 120 {
		t.Errorf("TickRate = %d, expected --fps override 120", rc.TickRate)
	}
}
