package pong

import "github.com/vovakirdan/pong-quest/internal/core"

// The simulation runs in a fixed virtual board space; the renderer scales it
// to whatever terminal it has. Keeping the board integer-sized preserves the
// original tuning exactly.
const (
	BoardW = 320
	BoardH = 240

	PaddleW      = 4 // both paddles
	PaddleMargin = 8 // distance from the board edge to a paddle face
	AIPaddleH    = 32
	BallSize     = 4
)

// speedScale is the fixed-point scale of the ball speed accumulator.
// DX magnitude is always speedFP/speedScale; the accumulator grows 5% per
// paddle hit so fractional growth accumulates without floating point.
const speedScale = 256

// speedGrowthNum/Den is the per-hit accumulator growth factor.
const (
	speedGrowthNum = 105
	speedGrowthDen = 100
)

// Ball is the ball state: integer position of the top-left corner, velocity
// per tick, and the fixed-point speed accumulator.
type Ball struct {
	X, Y    int
	DX, DY  int
	speedFP int
}

// resetBall serves the ball from the last scorer's paddle: fresh random
// vertical component, horizontal component signed toward the opponent, and
// the accumulator reset to the serve speed.
func (g *Game) resetBall() {
	g.ball.speedFP = g.cfg.ServeSpeed() * speedScale

	dy := g.rng.Intn(g.cfg.BallDYMax) + 1
	if g.rng.Intn(2) == 1 {
		dy = -dy
	}
	g.ball.DY = dy

	if g.lastScorer == SideAI {
		// AI scored; it serves from the left paddle
		g.ball.X = PaddleMargin + PaddleW
		g.ball.Y = g.aiY + AIPaddleH/2 - BallSize/2
		g.ball.DX = g.cfg.ServeSpeed()
	} else {
		// player scored; serve from the right paddle
		g.ball.X = BoardW - PaddleMargin - PaddleW - BallSize
		g.ball.Y = g.playerY + g.cfg.PaddleH/2 - BallSize/2
		g.ball.DX = -g.cfg.ServeSpeed()
	}
}

// stepBall advances the ball one tick and resolves collisions and scoring.
// Resolution order is walls, then paddles, then exits; when the ball
// qualifies for a wall and a paddle collision in the same tick, the wall
// bounce is applied first.
func (g *Game) stepBall() {
	b := &g.ball
	b.X += b.DX
	b.Y += b.DY

	// top/bottom walls: clamp and invert, no energy loss
	if b.Y <= 0 {
		b.Y = 0
		b.DY = -b.DY
	}
	if b.Y >= BoardH-BallSize {
		b.Y = BoardH - BallSize
		b.DY = -b.DY
	}

	// left paddle (AI): leading edge crossed the face, moving left,
	// vertical extents overlap
	if b.X <= PaddleMargin+PaddleW &&
		b.Y+BallSize >= g.aiY &&
		b.Y <= g.aiY+AIPaddleH &&
		b.DX < 0 {
		b.X = PaddleMargin + PaddleW
		b.speedFP = b.speedFP * speedGrowthNum / speedGrowthDen
		b.DX = b.speedFP / speedScale
	}

	// right paddle (player)
	if b.X+BallSize >= BoardW-PaddleMargin-PaddleW &&
		b.Y+BallSize >= g.playerY &&
		b.Y <= g.playerY+g.cfg.PaddleH &&
		b.DX > 0 {
		b.X = BoardW - PaddleMargin - PaddleW - BallSize
		b.speedFP = b.speedFP * speedGrowthNum / speedGrowthDen
		b.DX = -(b.speedFP / speedScale)
	}

	// ball fully past the left edge: player scores
	if b.X < 0 {
		g.playerScore++
		g.lastScorer = SidePlayer
		if g.infinite {
			// every infinite point recomputes difficulty and theme
			g.cfg = InfiniteConfig(g.playerScore, g.rng)
			g.theme = g.cfg.Theme
			g.playerY = core.Clamp(g.playerY, 0, BoardH-g.cfg.PaddleH)
		}
		g.resetBall()
	}

	// ball fully past the right edge: AI scores, player loses a life
	if b.X > BoardW {
		g.aiScore++
		g.lastScorer = SideAI
		g.lives--
		if g.lives <= 0 {
			g.endMatch(false)
			return
		}
		g.resetBall()
	}

	// campaign win threshold
	if !g.infinite && g.playerScore >= g.cfg.PointsToWin {
		if g.levelIndex < LevelCount-1 {
			g.mode = ModeLevelComplete
			g.transitionTimer = TransitionTicks
		} else {
			g.endMatch(true)
		}
	}
}
