package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong-quest/internal/core"
	"github.com/vovakirdan/pong-quest/internal/platform/tui"
	"github.com/vovakirdan/pong-quest/internal/pong"
	"github.com/vovakirdan/pong-quest/internal/storage"
)

var (
	flagLevel    int
	flagInfinite bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong Quest",
	Long: `Start the game. Without flags the game opens at the menu; --level and
--infinite skip straight into a match.

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  Enter      - Confirm / pause
  Esc/B      - Back / abandon run
  Q/Ctrl+C   - Quit

Examples:
  pongquest play
  pongquest play --level 3
  pongquest play --infinite
  pongquest play --fps 60 --seed 7
  pongquest play --config ./my-settings.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at a campaign level (1-5)")
	playCmd.Flags().BoolVar(&flagInfinite, "infinite", false, "Start directly in infinite mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagLevel != 0 && (flagLevel < 1 || flagLevel > pong.LevelCount) {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", pong.LevelCount)
		os.Exit(1)
	}
	if flagLevel != 0 && flagInfinite {
		fmt.Fprintln(os.Stderr, "Error: --level and --infinite are mutually exclusive")
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := settings.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.Game.FPS,
		Seed:     seed,
	}

	game := pong.New(seed)
	switch {
	case flagInfinite:
		game.StartInfinite()
	case flagLevel > 0:
		game.StartLevel(flagLevel - 1)
	}

	// Open run storage
	store, err := storage.Open(settings.Storage.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
