package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pong-quest/internal/core"
)

// Config is the parameter set driving one level or infinite-mode stretch.
// Speeds and sizes are in board units (see physics.go) per tick.
type Config struct {
	BallSpeed   int // base horizontal ball speed
	BallDYMax   int // max magnitude of the randomized vertical serve component
	PaddleH     int // player paddle height; the AI paddle is fixed
	PlayerSpeed int
	AISpeed     int
	PointsToWin int
	Theme       Theme
}

// ServeSpeed is the horizontal speed the ball departs with on every serve.
// The in-flight speed accumulator grows from here on each paddle hit.
func (c Config) ServeSpeed() int {
	return c.BallSpeed + 2
}

// LevelCount is the number of campaign levels.
const LevelCount = 5

// InfiniteScoreCap is the score at which infinite-mode difficulty plateaus.
const InfiniteScoreCap = 30

var levelNames = [LevelCount]string{
	"Classic",
	"Warm Up",
	"Getting Serious",
	"Fast Lane",
	"Intense",
}

// The campaign table. Constructed once, never mutated; gameplay works on a
// copy (the active configuration).
var levels = [LevelCount]Config{
	{
		BallSpeed: 4, BallDYMax: 2, PaddleH: 40, PlayerSpeed: 6, AISpeed: 2, PointsToWin: 5,
		Theme: Theme{
			Background:   core.NewRGB(0, 0, 40),
			PaddleAI:     core.NewRGB(80, 180, 255),
			PaddlePlayer: core.NewRGB(255, 100, 100),
			Ball:         core.NewRGB(255, 255, 0),
			Net:          core.NewRGB(60, 60, 100),
			Text:         core.NewRGB(255, 255, 255),
			Highlight:    core.NewRGB(255, 255, 0),
			Heart:        heartRed,
		},
	},
	{
		BallSpeed: 4, BallDYMax: 4, PaddleH: 36, PlayerSpeed: 6, AISpeed: 3, PointsToWin: 5,
		Theme: Theme{
			Background:   core.NewRGB(0, 30, 0),
			PaddleAI:     core.NewRGB(0, 255, 100),
			PaddlePlayer: core.NewRGB(255, 160, 0),
			Ball:         core.NewRGB(255, 255, 255),
			Net:          core.NewRGB(0, 60, 0),
			Text:         core.NewRGB(200, 255, 200),
			Highlight:    core.NewRGB(0, 255, 100),
			Heart:        heartRed,
		},
	},
	{
		BallSpeed: 6, BallDYMax: 4, PaddleH: 32, PlayerSpeed: 6, AISpeed: 4, PointsToWin: 5,
		Theme: Theme{
			Background:   core.NewRGB(30, 0, 40),
			PaddleAI:     core.NewRGB(255, 100, 200),
			PaddlePlayer: core.NewRGB(0, 220, 220),
			Ball:         core.NewRGB(255, 200, 50),
			Net:          core.NewRGB(60, 0, 80),
			Text:         core.NewRGB(220, 180, 255),
			Highlight:    core.NewRGB(255, 100, 200),
			Heart:        heartRed,
		},
	},
	{
		BallSpeed: 6, BallDYMax: 6, PaddleH: 28, PlayerSpeed: 8, AISpeed: 5, PointsToWin: 5,
		Theme: Theme{
			Background:   core.NewRGB(40, 0, 0),
			PaddleAI:     core.NewRGB(255, 215, 0),
			PaddlePlayer: core.NewRGB(192, 192, 192),
			Ball:         core.NewRGB(255, 60, 60),
			Net:          core.NewRGB(80, 0, 0),
			Text:         core.NewRGB(255, 200, 200),
			Highlight:    core.NewRGB(255, 215, 0),
			Heart:        heartRed,
		},
	},
	{
		BallSpeed: 8, BallDYMax: 6, PaddleH: 24, PlayerSpeed: 8, AISpeed: 6, PointsToWin: 5,
		Theme: Theme{
			Background:   core.NewRGB(5, 5, 15),
			PaddleAI:     core.NewRGB(0, 255, 0),
			PaddlePlayer: core.NewRGB(255, 0, 255),
			Ball:         core.NewRGB(255, 255, 255),
			Net:          core.NewRGB(30, 30, 50),
			Text:         core.NewRGB(0, 255, 255),
			Highlight:    core.NewRGB(0, 255, 0),
			Heart:        heartRed,
		},
	},
}

// ConfigForLevel returns the static configuration of a campaign level.
// Level indices are always derived from bounded cursors, so an out-of-range
// index is a programming error, not a runtime condition.
func ConfigForLevel(index int) Config {
	if index < 0 || index >= LevelCount {
		panic(fmt.Sprintf("pong: level index %d out of range [0,%d)", index, LevelCount))
	}
	return levels[index]
}

// LevelName returns the display name of a campaign level.
func LevelName(index int) string {
	if index < 0 || index >= LevelCount {
		panic(fmt.Sprintf("pong: level index %d out of range [0,%d)", index, LevelCount))
	}
	return levelNames[index]
}

// lerp interpolates start..end at n/d using integer arithmetic, so the
// difficulty curve is exactly reproducible for a given score sequence.
func lerp(start, end, n, d int) int {
	return start + (end-start)*n/d
}

// InfiniteConfig derives the infinite-mode configuration from the player's
// score. Every numeric parameter moves linearly between its designed extremes
// and plateaus at InfiniteScoreCap. The theme is freshly randomized on each
// call; this is the only place randomness enters the difficulty system.
func InfiniteConfig(score int, rng *rand.Rand) Config {
	s := core.Min(score, InfiniteScoreCap)
	return Config{
		BallSpeed:   lerp(4, 8, s, InfiniteScoreCap),
		BallDYMax:   lerp(2, 8, s, InfiniteScoreCap),
		PaddleH:     lerp(40, 20, s, InfiniteScoreCap),
		PlayerSpeed: lerp(6, 10, s, InfiniteScoreCap),
		AISpeed:     lerp(2, 6, s, InfiniteScoreCap),
		PointsToWin: 9999, // infinite mode has no win threshold
		Theme:       RandomTheme(rng),
	}
}
