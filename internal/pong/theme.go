package pong

import (
	"math/rand"

	"github.com/vovakirdan/pong-quest/internal/core"
)

// Theme binds a display color to each semantic role on the board. Themes are
// pure data: the simulation swaps them in and out, the renderer applies them.
type Theme struct {
	Background   core.RGB
	PaddleAI     core.RGB
	PaddlePlayer core.RGB
	Ball         core.RGB
	Net          core.RGB
	Text         core.RGB
	Highlight    core.RGB
	Heart        core.RGB // life icon; the same red in every theme
}

// heartRed is the fixed life-icon color, independent of the rest of the theme.
var heartRed = core.NewRGB(255, 0, 40)

// randBrightColor returns a random color with one channel forced into the
// upper range, so the result is never too dark to read against the board.
func randBrightColor(rng *rand.Rand) core.RGB {
	r := uint8(rng.Intn(256))
	g := uint8(rng.Intn(256))
	b := uint8(rng.Intn(256))
	switch rng.Intn(3) {
	case 0:
		r |= 0xC0
	case 1:
		g |= 0xC0
	default:
		b |= 0xC0
	}
	return core.RGB{R: r, G: g, B: b}
}

// RandomTheme generates a fresh theme: dark background, dim net, light text,
// and bright paddles, ball and highlight. Infinite mode calls this on every
// point scored.
func RandomTheme(rng *rand.Rand) Theme {
	grayChan := func(base, spread int) uint8 {
		return uint8(base + rng.Intn(spread))
	}
	return Theme{
		Background:   core.NewRGB(uint8(rng.Intn(30)), uint8(rng.Intn(30)), uint8(rng.Intn(30))),
		PaddleAI:     randBrightColor(rng),
		PaddlePlayer: randBrightColor(rng),
		Ball:         randBrightColor(rng),
		Net:          core.NewRGB(grayChan(40, 40), grayChan(40, 40), grayChan(40, 40)),
		Text:         core.NewRGB(grayChan(200, 56), grayChan(200, 56), grayChan(200, 56)),
		Highlight:    randBrightColor(rng),
		Heart:        heartRed,
	}
}
