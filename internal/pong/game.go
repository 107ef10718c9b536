// Package pong implements the simulation core of a two-paddle ball game with
// a five-level campaign and an infinite mode whose difficulty and theme scale
// with score. The package is pure: it consumes one logical input frame per
// tick and exposes a renderable snapshot, with no rendering, timing or I/O of
// its own.
package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pong-quest/internal/core"
)

// Mode is the active game-flow state. Exactly one mode is active at a time
// and it is the sole driver of per-tick dispatch.
type Mode int

const (
	ModeMenu Mode = iota
	ModeLevelSelect
	ModePlaying
	ModeLevelComplete
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeLevelSelect:
		return "level-select"
	case ModePlaying:
		return "playing"
	case ModeLevelComplete:
		return "level-complete"
	case ModeGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Side identifies a paddle. The AI defends the left edge, the player the
// right edge.
type Side int

const (
	SideAI Side = iota
	SidePlayer
)

const (
	// StartLives is the player's life count at the start of any match.
	StartLives = 3

	// TransitionTicks is the game-over screen countdown before the game
	// returns to the menu on its own.
	TransitionTicks = 90

	menuItemCount = 3 // play, infinite, levels
)

// Game is the single owned aggregate holding all simulation state. The outer
// loop constructs one instance and calls Step once per tick; nothing else
// mutates it.
type Game struct {
	rng *rand.Rand

	mode  Mode
	cfg   Config // active configuration, replaced wholesale on (re)start
	theme Theme  // active display palette

	// progression
	levelIndex      int
	menuCursor      int
	levelCursor     int
	transitionTimer int

	// match
	aiScore     int
	playerScore int
	lives       int
	lastScorer  Side
	infinite    bool
	paused      bool
	win         bool

	// entities
	ball    Ball
	aiY     int
	playerY int

	done bool
}

// New creates a game at the menu, using a generator seeded once by the
// caller. The simulation never reseeds.
func New(seed int64) *Game {
	g := &Game{
		rng:  rand.New(rand.NewSource(seed)),
		mode: ModeMenu,
	}
	g.theme = ConfigForLevel(0).Theme
	return g
}

// Done reports whether the player quit from the menu. Once set, the outer
// loop should stop ticking.
func (g *Game) Done() bool {
	return g.done
}

// StartLevel skips the menu and begins the campaign at the given level.
// Panics if index is out of range.
func (g *Game) StartLevel(index int) {
	g.startLevel(index)
}

// StartInfinite skips the menu and begins an infinite run.
func (g *Game) StartInfinite() {
	g.startInfinite()
}

// Step advances the simulation by one tick, dispatching on the active mode.
// An unrecognized mode means the progression state is corrupt and cannot be
// safely continued.
func (g *Game) Step(in core.InputFrame) Snapshot {
	switch g.mode {
	case ModeMenu:
		g.stepMenu(in)
	case ModeLevelSelect:
		g.stepLevelSelect(in)
	case ModePlaying:
		g.stepPlaying(in)
	case ModeLevelComplete:
		g.stepLevelComplete(in)
	case ModeGameOver:
		g.stepGameOver(in)
	default:
		panic(fmt.Sprintf("pong: step in unrecognized mode %d", int(g.mode)))
	}
	return g.Snapshot()
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionCancel) {
		g.done = true
		return
	}

	if in.Has(core.ActionUp) && g.menuCursor > 0 {
		g.menuCursor--
	}
	if in.Has(core.ActionDown) && g.menuCursor < menuItemCount-1 {
		g.menuCursor++
	}

	if in.Has(core.ActionConfirm) {
		switch g.menuCursor {
		case 0:
			g.startLevel(0)
		case 1:
			g.startInfinite()
		case 2:
			g.levelCursor = 0
			g.mode = ModeLevelSelect
		}
	}
}

func (g *Game) stepLevelSelect(in core.InputFrame) {
	if in.Has(core.ActionUp) && g.levelCursor > 0 {
		g.levelCursor--
	}
	if in.Has(core.ActionDown) && g.levelCursor < LevelCount-1 {
		g.levelCursor++
	}

	// live theme preview of the hovered level
	g.theme = ConfigForLevel(g.levelCursor).Theme

	if in.Has(core.ActionConfirm) {
		g.startLevel(g.levelCursor)
		return
	}
	if in.Has(core.ActionCancel) {
		g.mode = ModeMenu
		g.theme = ConfigForLevel(0).Theme
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionCancel) {
		// abandon the run
		g.mode = ModeMenu
		g.theme = ConfigForLevel(0).Theme
		return
	}

	if in.Has(core.ActionConfirm) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.aiY = aiStep(g.ball, g.aiY, g.cfg.AISpeed)
	g.movePlayer(in)
	g.stepBall()
}

func (g *Game) stepLevelComplete(in core.InputFrame) {
	// the only state with no cancel transition
	if in.Has(core.ActionConfirm) {
		g.startLevel(g.levelIndex + 1)
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	g.transitionTimer--
	if g.transitionTimer <= 0 || in.Has(core.ActionConfirm) {
		g.mode = ModeMenu
		g.theme = ConfigForLevel(0).Theme
	}
}

// startLevel begins a campaign level: fresh copy of the level configuration,
// centered paddles, zeroed scores, full lives and an AI serve.
func (g *Game) startLevel(index int) {
	g.cfg = ConfigForLevel(index)
	g.levelIndex = index
	g.infinite = false
	g.resetMatch()
}

// startInfinite begins an infinite run at score zero.
func (g *Game) startInfinite() {
	g.infinite = true
	g.levelIndex = 0
	g.cfg = InfiniteConfig(0, g.rng)
	g.resetMatch()
}

func (g *Game) resetMatch() {
	g.theme = g.cfg.Theme
	g.aiY = BoardH/2 - AIPaddleH/2
	g.playerY = BoardH/2 - g.cfg.PaddleH/2
	g.aiScore = 0
	g.playerScore = 0
	g.lives = StartLives
	g.paused = false
	g.win = false
	g.lastScorer = SideAI // AI serves first
	g.resetBall()
	g.mode = ModePlaying
}

func (g *Game) movePlayer(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.playerY -= g.cfg.PlayerSpeed
	}
	if in.Has(core.ActionDown) {
		g.playerY += g.cfg.PlayerSpeed
	}
	g.playerY = core.Clamp(g.playerY, 0, BoardH-g.cfg.PaddleH)
}

func (g *Game) endMatch(win bool) {
	g.win = win
	g.mode = ModeGameOver
	g.transitionTimer = TransitionTicks
}
