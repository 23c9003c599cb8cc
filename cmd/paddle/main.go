// paddle is a terminal arcade of paddle-and-ball games.
//
// Usage:
//
//	paddle list                - List available games
//	paddle play [game]         - Open the menu, or start a game directly
//	paddle serve               - Start SSH server for remote play
//	paddle scores [game]       - Show the game history
//	paddle config show         - Print the effective tunables as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.paddle/scores.db)
//	--config <path>       - Custom tunables YAML
//	--difficulty <name>   - easy, normal or hard
//	--player <name>       - Name used in the high-score table
//	--store sqlite|file   - High-score backend
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/paddle-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/paddle-arcade/internal/games/pong"
)

// High-score backends.
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagPlayer        string
	flagStore         string
	flagHighscoreFile string
	flagLog           string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddle",
	Short: "Paddle Arcade - paddle and ball games in your terminal",
	Long: `Paddle Arcade plays two-paddle tennis and brick breaking in the terminal.

Available commands:
  list     - Show all available games
  play     - Open the menu or start a game directly
  serve    - Start SSH server for remote play
  scores   - View the game history
  config   - Inspect the tunables

Examples:
  paddle list
  paddle play
  paddle play breakout --difficulty hard
  paddle serve --ssh :2222
  paddle scores pong`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.paddle/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagPlayer, "player", app.DefaultPlayer, "Player name for the high-score table")
	pf.StringVar(&flagStore, "store", storeSQLite, "High-score backend: sqlite or file")
	pf.StringVar(&flagHighscoreFile, "highscore-file", "~/.paddle/highscore", "High-score file used with --store file")
	pf.StringVar(&flagLog, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadTunables loads the configured tunables and the selected preset.
func loadTunables() (config.Tunables, config.DifficultyPreset, error) {
	t, err := config.Load(flagConfig)
	if err != nil {
		return config.Tunables{}, "", err
	}

	difficulty := config.DifficultyNormal
	if flagDifficulty != "" {
		if difficulty, err = config.ParseDifficulty(flagDifficulty); err != nil {
			return config.Tunables{}, "", err
		}
	}
	return t, difficulty, nil
}

// tickRate returns the --fps override or the configured rate.
func tickRate(t config.Tunables) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return t.FPS
}

// openStore opens the selected high-score backend. The returned Store is
// nil unless the backend is SQLite, which is the only one with a history.
func openStore() (storage.HighScores, *storage.Store, error) {
	switch flagStore {
	case storeSQLite:
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case storeFile:
		blob, err := storage.NewBlobFile(flagHighscoreFile)
		if err != nil {
			return nil, nil, err
		}
		return blob, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeSQLite, storeFile)
}

// newLogger returns a logger writing to --log, or to w when no file is set.
// The returned closer releases the file.
func newLogger(w io.Writer, prefix string) (*log.Logger, func(), error) {
	closer := func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() } //nolint:errcheck // best-effort on exit
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}
