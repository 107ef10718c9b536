package pong

import "github.com/vovakirdan/pong-quest/internal/core"

// aiStep is the opponent control policy: a pure function of the ball state,
// the AI paddle position and its speed budget, returning the new paddle
// position. While the ball approaches past the midline the paddle tracks it
// at full speed; otherwise it drifts back toward screen center at half speed
// (rounded up). Movement is rate-limited and snaps onto the target when
// within one step, so the paddle never oscillates around it.
func aiStep(ball Ball, paddleY, speed int) int {
	var target, step int
	if ball.DX < 0 && ball.X < BoardW/2 {
		target = ball.Y - AIPaddleH/2
		step = speed
	} else {
		target = BoardH/2 - AIPaddleH/2
		step = (speed + 1) / 2
	}

	delta := target - paddleY
	switch {
	case delta > step:
		paddleY += step
	case delta < -step:
		paddleY -= step
	default:
		paddleY = target
	}

	return core.Clamp(paddleY, 0, BoardH-AIPaddleH)
}
