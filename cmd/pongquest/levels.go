package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-quest/internal/pong"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long:  `Shows the campaign levels with their difficulty parameters.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Campaign levels:")
	fmt.Println()

	fmt.Printf("  %-3s  %-16s  %-6s  %-8s  %s\n", "#", "Name", "Ball", "Paddle", "Points to win")
	fmt.Printf("  %-3s  %-16s  %-6s  %-8s  %s\n", "-", "----", "----", "------", "-------------")

	for i := 0; i < pong.LevelCount; i++ {
		cfg := pong.ConfigForLevel(i)
		fmt.Printf("  %-3d  %-16s  %-6d  %-8d  %d\n",
			i+1, pong.LevelName(i), cfg.BallSpeed, cfg.PaddleH, cfg.PointsToWin)
	}

	fmt.Println()
	fmt.Println("Run 'pongquest play --level <n>' to jump straight in.")
}
