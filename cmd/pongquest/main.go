// pongquest is a terminal Pong with a five-level campaign and an infinite mode.
//
// Usage:
//
//	pongquest play             - Play (starts at the menu)
//	pongquest levels           - List campaign levels
//	pongquest scores           - Show best runs
//	pongquest serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 30)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.pongquest/scores.db)
//	--config <path>  - Path to a settings YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-quest/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pongquest",
	Short: "Pong Quest - paddle campaign in your terminal",
	Long: `Pong Quest is a terminal Pong game against a CPU opponent.

Work through a five-level campaign of increasing speed and shrinking
paddles, or survive the infinite mode where every point makes the game
faster and repaints the board.

Available commands:
  play     - Play (starts at the menu)
  levels   - List campaign levels
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  pongquest play
  pongquest play --level 3
  pongquest play --infinite
  pongquest serve --ssh :2223
  pongquest scores`,
}

func init() {
	// Global persistent flags. Zero values defer to the settings file.
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings resolves the settings file and applies flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}

	if flagFPS > 0 {
		settings.Game.FPS = flagFPS
	}
	if settings.Game.FPS <= 0 {
		settings.Game.FPS = config.DefaultSettings().Game.FPS
	}
	if flagSeed != 0 {
		settings.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		settings.Storage.Database = flagDBPath
	}
	if settings.Storage.Database == "" {
		settings.Storage.Database = config.DefaultSettings().Storage.Database
	}

	return settings, nil
}
