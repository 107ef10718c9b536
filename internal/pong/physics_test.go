package pong

import "testing"

// playingGame returns a game mid-level with a deterministic seed.
func playingGame(seed int64, level int) *Game {
	g := New(seed)
	g.startLevel(level)
	return g
}

func TestServeInvariant(t *testing.T) {
	g := playingGame(1, 0)

	// AI serves first, from the left paddle, toward the player.
	if g.ball.DX != g.cfg.ServeSpeed() {
		t.Errorf("serve DX = %d, expected %d", g.ball.DX, g.cfg.ServeSpeed())
	}
	if g.ball.speedFP != g.cfg.ServeSpeed()*speedScale {
		t.Errorf("serve accumulator = %d, expected %d", g.ball.speedFP, g.cfg.ServeSpeed()*speedScale)
	}
	if g.ball.X != PaddleMargin+PaddleW {
		t.Errorf("serve X = %d, expected flush to the AI paddle face", g.ball.X)
	}
	if dy := g.ball.DY; dy == 0 || dy > g.cfg.BallDYMax || dy < -g.cfg.BallDYMax {
		t.Errorf("serve DY = %d, expected non-zero magnitude within %d", dy, g.cfg.BallDYMax)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name       string
		y, dy      int
		expectedY  int
		expectedDY int
	}{
		{"top wall", 1, -3, 0, 3},
		{"bottom wall", BoardH - BallSize - 1, 3, BoardH - BallSize, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playingGame(1, 0)
			g.ball = Ball{X: 150, Y: tc.y, DX: 2, DY: tc.dy, speedFP: 6 * speedScale}

			g.stepBall()

			if g.ball.Y != tc.expectedY {
				t.Errorf("Y = %d, expected %d", g.ball.Y, tc.expectedY)
			}
			if g.ball.DY != tc.expectedDY {
				t.Errorf("DY = %d, expected %d", g.ball.DY, tc.expectedDY)
			}
		})
	}
}

func TestPlayerPaddleHit(t *testing.T) {
	g := playingGame(1, 0)
	g.playerY = 100
	g.ball = Ball{X: 300, Y: 110, DX: 6, DY: 1, speedFP: 6 * speedScale}

	g.stepBall()

	// Flush against the paddle face, accumulator grown by exactly 5%,
	// DX re-derived and flipped, DY untouched.
	wantFP := 6 * speedScale * speedGrowthNum / speedGrowthDen
	if g.ball.speedFP != wantFP {
		t.Errorf("accumulator = %d, expected %d", g.ball.speedFP, wantFP)
	}
	if g.ball.X != BoardW-PaddleMargin-PaddleW-BallSize {
		t.Errorf("X = %d, expected flush reposition", g.ball.X)
	}
	if g.ball.DX != -(wantFP / speedScale) {
		t.Errorf("DX = %d, expected %d", g.ball.DX, -(wantFP / speedScale))
	}
	if g.ball.DY != 1 {
		t.Errorf("DY = %d, paddle hits must not alter vertical velocity", g.ball.DY)
	}
}

func TestAIPaddleHit(t *testing.T) {
	g := playingGame(1, 0)
	g.aiY = 100
	g.ball = Ball{X: 14, Y: 110, DX: -6, DY: 2, speedFP: 6 * speedScale}

	g.stepBall()

	wantFP := 6 * speedScale * speedGrowthNum / speedGrowthDen
	if g.ball.speedFP != wantFP {
		t.Errorf("accumulator = %d, expected %d", g.ball.speedFP, wantFP)
	}
	if g.ball.X != PaddleMargin+PaddleW {
		t.Errorf("X = %d, expected flush reposition", g.ball.X)
	}
	if g.ball.DX != wantFP/speedScale {
		t.Errorf("DX = %d, expected %d", g.ball.DX, wantFP/speedScale)
	}
}

func TestAccumulatorGrowsMonotonically(t *testing.T) {
	g := playingGame(1, 0)
	g.playerY = 100
	g.aiY = 100
	fp := 6 * speedScale

	// Bounce the ball between the paddles a few times by hand.
	for hit := 0; hit < 5; hit++ {
		if hit%2 == 0 {
			g.ball = Ball{X: 300, Y: 110, DX: 6, DY: 0, speedFP: fp}
		} else {
			g.ball = Ball{X: 14, Y: 110, DX: -6, DY: 0, speedFP: fp}
		}
		g.stepBall()

		want := fp * speedGrowthNum / speedGrowthDen
		if g.ball.speedFP != want {
			t.Fatalf("hit %d: accumulator = %d, expected %d", hit, g.ball.speedFP, want)
		}
		if g.ball.speedFP <= fp {
			t.Fatalf("hit %d: accumulator did not grow (%d -> %d)", hit, fp, g.ball.speedFP)
		}
		fp = g.ball.speedFP
	}
}

func TestWallThenPaddleSameTick(t *testing.T) {
	// Corner case: the ball qualifies for a wall bounce and a paddle hit in
	// the same tick. The wall resolves first, then the paddle.
	g := playingGame(1, 0)
	g.aiY = 0
	g.ball = Ball{X: 14, Y: 1, DX: -4, DY: -2, speedFP: 6 * speedScale}

	g.stepBall()

	if g.ball.DY != 2 {
		t.Errorf("DY = %d, expected wall bounce to +2", g.ball.DY)
	}
	if g.ball.DX <= 0 {
		t.Errorf("DX = %d, expected paddle bounce to positive", g.ball.DX)
	}
	if g.ball.X != PaddleMargin+PaddleW {
		t.Errorf("X = %d, expected flush against the AI paddle", g.ball.X)
	}
}

func TestPlayerScoresAndServeFollows(t *testing.T) {
	g := playingGame(1, 0)
	g.ball = Ball{X: 2, Y: 200, DX: -8, DY: 1, speedFP: 9 * speedScale}

	g.stepBall()

	if g.playerScore != 1 || g.aiScore != 0 {
		t.Fatalf("score = %d-%d, expected 0-1", g.aiScore, g.playerScore)
	}
	if g.lives != StartLives {
		t.Errorf("lives = %d, player scoring must not cost lives", g.lives)
	}
	if g.lastScorer != SidePlayer {
		t.Errorf("lastScorer = %v, expected SidePlayer", g.lastScorer)
	}

	// Serve departs from the player's paddle toward the AI at base speed;
	// the in-flight accumulator is discarded, not carried over.
	if g.ball.DX != -g.cfg.ServeSpeed() {
		t.Errorf("serve DX = %d, expected %d", g.ball.DX, -g.cfg.ServeSpeed())
	}
	if g.ball.speedFP != g.cfg.ServeSpeed()*speedScale {
		t.Errorf("serve accumulator = %d, expected reset to %d", g.ball.speedFP, g.cfg.ServeSpeed()*speedScale)
	}
	if g.ball.X != BoardW-PaddleMargin-PaddleW-BallSize {
		t.Errorf("serve X = %d, expected the player paddle face", g.ball.X)
	}
}

func TestAIScoresCostsLife(t *testing.T) {
	g := playingGame(1, 0)
	g.ball = Ball{X: 316, Y: 10, DX: 8, DY: 1, speedFP: 9 * speedScale}

	g.stepBall()

	if g.aiScore != 1 {
		t.Errorf("aiScore = %d, expected 1", g.aiScore)
	}
	if g.lives != StartLives-1 {
		t.Errorf("lives = %d, expected %d", g.lives, StartLives-1)
	}
	if g.mode != ModePlaying {
		t.Errorf("mode = %v, expected to keep playing with lives left", g.mode)
	}
	if g.ball.DX != g.cfg.ServeSpeed() || g.ball.X != PaddleMargin+PaddleW {
		t.Error("expected an AI serve after the point")
	}
}

func TestLastLifeEndsMatchImmediately(t *testing.T) {
	g := playingGame(1, 0)
	g.lives = 1
	g.ball = Ball{X: 316, Y: 10, DX: 8, DY: 1, speedFP: 9 * speedScale}

	g.stepBall()

	if g.mode != ModeGameOver {
		t.Fatalf("mode = %v, expected game over on the last life", g.mode)
	}
	if g.win {
		t.Error("running out of lives must lose, regardless of score")
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}
	if g.transitionTimer != TransitionTicks {
		t.Errorf("transition timer = %d, expected %d", g.transitionTimer, TransitionTicks)
	}
}

func TestInfiniteScoringRecomputesConfig(t *testing.T) {
	g := New(3)
	g.startInfinite()

	if g.cfg.BallSpeed != 4 || g.cfg.PaddleH != 40 {
		t.Fatalf("score-0 infinite config = %+v, expected minimums", g.cfg)
	}

	g.ball = Ball{X: 2, Y: 200, DX: -8, DY: 1, speedFP: 9 * speedScale}
	g.stepBall()

	if g.playerScore != 1 {
		t.Fatalf("playerScore = %d, expected 1", g.playerScore)
	}
	if g.cfg.PointsToWin != 9999 {
		t.Error("infinite config lost its unreachable win threshold")
	}
	if g.mode != ModePlaying {
		t.Errorf("mode = %v, infinite mode has no win transition", g.mode)
	}
	if g.theme != g.cfg.Theme {
		t.Error("active theme should follow the recomputed infinite theme")
	}
	if g.ball.DX != -g.cfg.ServeSpeed() {
		t.Errorf("serve DX = %d, expected %d from the new config", g.ball.DX, -g.cfg.ServeSpeed())
	}
}
