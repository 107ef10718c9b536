package core

// RuntimeConfig is passed to the game at initialization. It carries the
// terminal dimensions for the renderer and the RNG seed for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}
