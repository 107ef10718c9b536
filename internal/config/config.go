// Package config provides YAML-based settings loading for the game
// binary and the SSH server.
package config

// Settings contains all tunable runtime settings.
type Settings struct {
	Game    GameSettings    `yaml:"game"`
	Storage StorageSettings `yaml:"storage"`
	SSH     SSHSettings     `yaml:"ssh"`
}

// GameSettings defines how the simulation is driven.
type GameSettings struct {
	FPS  int   `yaml:"fps"`
	Seed int64 `yaml:"seed"` // 0 means seed from the clock
}

// StorageSettings defines where run history is kept.
type StorageSettings struct {
	Database string `yaml:"database"`
}

// SSHSettings defines the SSH serving endpoint.
type SSHSettings struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout"` // seconds, 0 disables
}
