package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the tunables",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tunables as YAML",
	Long: `Print the tunables after the config search and the --difficulty preset.

Search order: --config path, ~/.paddle/paddle.yaml, ./configs/paddle.yaml,
then the built-in defaults.`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default tunables",
	Long:  `Print the built-in defaults. Redirect to ~/.paddle/paddle.yaml to start a custom config.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultsCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	tunables, difficulty, err := loadTunables()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(tunables.WithDifficulty(difficulty))
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# difficulty: %s\n", difficulty)
	os.Stdout.Write(data) //nolint:errcheck // stdout
}
