package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong-quest/internal/platform/tui"
	"github.com/vovakirdan/pong-quest/internal/storage"
)

var (
	flagScoresMode string
	flagBrowse     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs for a mode.

Examples:
  pongquest scores
  pongquest scores --mode infinite
  pongquest scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", storage.ModeCampaign, "Run mode: campaign or infinite")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagScoresMode != storage.ModeCampaign && flagScoresMode != storage.ModeInfinite {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (campaign or infinite)\n", flagScoresMode)
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(settings.Storage.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, browseErr := tui.RunScoreboard(store, width, height); browseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", browseErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresMode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs - %s\n", flagScoresMode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pongquest play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "------", "----")

	for i, run := range runs {
		result := "-"
		if run.Mode == storage.ModeCampaign {
			if run.Won {
				result = "cleared"
			} else {
				result = fmt.Sprintf("level %d", run.LevelReached)
			}
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %s\n",
			i+1, run.Score, result, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, bestErr := store.BestScore(flagScoresMode); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if flagScoresMode == storage.ModeCampaign {
		if wins, winsErr := store.CampaignWins(); winsErr == nil && wins > 0 {
			fmt.Printf("Campaign cleared %d time(s)\n", wins)
		}
	}
}
