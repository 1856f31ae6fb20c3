package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-threes/internal/core"
	"github.com/vovakirdan/tui-threes/internal/games/threes"
	"github.com/vovakirdan/tui-threes/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Threes",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/hjkl - Move
  U/Backspace      - Undo the last move
  R                - Restart with a new board
  ?                - Rules
  Ctrl+S           - Save a screenshot to ~/.threes/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Small pending tiles most of the time
  normal - Default
  hard   - Larger pending tiles, fewer free cells at start

Examples:
  threes play
  threes play --difficulty easy
  threes play --seed 42 --log-file threes.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alt screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	opts := tui.Options{
		Keys:          tui.DefaultKeyMap(gameCfg.Controls.Undo),
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	}
	return tui.Run(threes.New(gameCfg), cfg, opts)
}

// screenshotDir returns ~/.threes/screenshots, or "" without a home directory.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".threes", "screenshots")
}
