package pong

// Snapshot is the read-only render contract: everything the platform needs
// to draw one frame. The core never draws; it only exposes this view.
type Snapshot struct {
	Mode  Mode
	Theme Theme

	BallX, BallY  int
	AIPaddleY     int
	PlayerPaddleY int
	PlayerPaddleH int

	AIScore     int
	PlayerScore int
	Lives       int

	LevelIndex int
	Infinite   bool
	Paused     bool
	Win        bool

	MenuCursor  int
	LevelCursor int
	Transition  int // game-over countdown, in ticks
}

// Snapshot returns the current renderable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:          g.mode,
		Theme:         g.theme,
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		AIPaddleY:     g.aiY,
		PlayerPaddleY: g.playerY,
		PlayerPaddleH: g.cfg.PaddleH,
		AIScore:       g.aiScore,
		PlayerScore:   g.playerScore,
		Lives:         g.lives,
		LevelIndex:    g.levelIndex,
		Infinite:      g.infinite,
		Paused:        g.paused,
		Win:           g.win,
		MenuCursor:    g.menuCursor,
		LevelCursor:   g.levelCursor,
		Transition:    g.transitionTimer,
	}
}
