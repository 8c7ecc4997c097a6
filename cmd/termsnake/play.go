package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkuksa/termsnake/internal/config"
	"github.com/vkuksa/termsnake/internal/platform/tui"
	"github.com/vkuksa/termsnake/internal/storage"
)

var flagNoSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Steer
  Space       - Pause/Resume
  Enter       - Confirm
  Tab         - Scoreboard
  Q/Ctrl+C    - Quit

Examples:
  termsnake play
  termsnake play --seed 42
  termsnake play --config ./my-config.yaml
  termsnake play --no-sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio cues")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Get terminal size for centering; fall back to a sane default when
	// stdout is not a terminal.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Sound:   !flagNoSound,
	}

	if err := tui.Run(cfg, store, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
