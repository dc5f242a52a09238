package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration pong will use, as YAML, and where it came from.

Search order:
  --config path (or PONG_CONFIG)
  ~/.pong/configs/pong.yaml
  ./configs/pong.yaml
  embedded defaults

Examples:
  pong config
  pong config --default > ~/.pong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the embedded default config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	data, err := config.Marshal(app.cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", app.source)
	_, err = os.Stdout.Write(data)
	return err
}
