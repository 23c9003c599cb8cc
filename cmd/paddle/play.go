package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/menus"
	"github.com/vovakirdan/paddle-arcade/internal/platform/tui"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Open the menu, or start a game directly",
	Long: `Open the main menu. With a game ID, that game starts right away and
leaving it returns to the menu.

Controls:
  Up/Down      - Move the right paddle in pong
  Left/Right   - Move the paddle in breakout
  W/S          - Move the left paddle in pong
  Enter/Space  - Select
  Esc          - Pause / back
  P            - Win instantly (debug.cheats only)
  Ctrl+S       - Screenshot to ~/.paddle/screenshots
  Ctrl+C       - Quit

Examples:
  paddle play
  paddle play pong --player ada
  paddle play breakout --difficulty hard
  paddle play pong --config ./my-paddle.yaml
  paddle play breakout --store file --highscore-file ./highscore`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 'paddle list' to see available games.")
			os.Exit(1)
		}
	}

	tunables, difficulty, err := loadTunables()
	if err != nil {
		fail("%v", err)
	}

	// stdout belongs to the alt screen
	logger, closeLog, err := newLogger(io.Discard, "paddle")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var highScores storage.HighScores
	scores, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high scores: %v\n", err)
	} else {
		highScores = scores
	}
	if db != nil {
		defer db.Close()
	}

	a := app.New(app.Options{
		Tunables:   tunables,
		Difficulty: difficulty,
		Store:      highScores,
		Player:     flagPlayer,
		Variant:    variant,
		Seed:       flagSeed,
		Logger:     logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate(tunables),
			Seed:     flagSeed,
		},
	})
	if err := menus.Launch(a, variant); err != nil {
		fail("%v", err)
	}

	if err := tui.Run(a); err != nil {
		fail("running game: %v", err)
	}
}
