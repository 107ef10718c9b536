package config

import (
	_ "embed"
)

//go:embed defaults/pongquest.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings, used when no config
// file is found and the embedded default fails to parse.
func DefaultSettings() Settings {
	return Settings{
		Game: GameSettings{
			FPS:  30,
			Seed: 0,
		},
		Storage: StorageSettings{
			Database: "~/.pongquest/scores.db",
		},
		SSH: SSHSettings{
			Address:     ":2223",
			HostKeyPath: ".ssh/pongquest_ed25519",
			IdleTimeout: 600,
		},
	}
}
