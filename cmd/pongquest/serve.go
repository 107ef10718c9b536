package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-quest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pong Quest SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each SSH connection gets its own session starting at the menu.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pongquest/host_key

Examples:
  pongquest serve                           # Listen on the configured address
  pongquest serve --ssh :2222               # Listen on port 2222
  pongquest serve --host-key ./my_host_key  # Use specific host key
  pongquest serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2223`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in seconds (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	addr := settings.SSH.Address
	if flagSSHAddr != "" {
		addr = flagSSHAddr
	}
	hostKey := settings.SSH.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	idleSecs := settings.SSH.IdleTimeout
	if flagIdleTimeout > 0 {
		idleSecs = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		DBPath:      settings.Storage.Database,
		TickRate:    settings.Game.FPS,
		IdleTimeout: time.Duration(idleSecs) * time.Second,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Pong Quest SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
