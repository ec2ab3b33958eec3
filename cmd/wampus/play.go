package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wampus-world/internal/games/wampus"
	"github.com/vovakirdan/wampus-world/internal/platform/tui"
	"github.com/vovakirdan/wampus-world/internal/platform/window"
)

var (
	flagWindow  bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal, or in a window with --window.

Controls:
  Arrow keys  - Move one cell
  Space       - Shoot the arrow along your row and column
  Q/Esc       - Quit
  Any key     - Leave the start screen

Notifications (gold, pits, the Wampus) are printed when the game ends, or
written to --log-file as they happen.

Examples:
  wampus play
  wampus play --window
  wampus play --seed 7 --fps 30
  wampus play --log-file wampus.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers play flags; the root command shares them so a bare
// "wampus" behaves like "wampus play".
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a 600×600 window instead of the terminal")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append notifications to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := cfg.RuntimeConfig(seed)

	// Get terminal size for the start screen text
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// The terminal is taken over while playing, so notifications are
	// buffered and printed afterwards unless they go to a file.
	var (
		out    io.Writer
		buffer bytes.Buffer
	)
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		out = f
	case flagWindow:
		out = os.Stderr
	default:
		out = &buffer
	}
	logger := newLogger(out)
	logger.Debug("starting game", "seed", seed, "window", flagWindow)

	game := wampus.New()
	if flagWindow {
		err = window.Run(game, rc, window.Options{
			Title:    cfg.Window.Title,
			FontSize: cfg.Window.FontSize,
			Scale:    cfg.Window.Scale,
			Logger:   logger,
		})
	} else {
		err = tui.Run(game, rc, tui.Options{
			Glyphs: tui.GlyphsFrom(cfg.Terminal),
			Keys:   tui.DefaultKeyMap(),
			Logger: logger,
		})
	}

	//nolint:errcheck // Best-effort flush of buffered notifications
	io.Copy(os.Stderr, &buffer)

	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
