package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pong-quest/internal/core"
	"github.com/vovakirdan/pong-quest/internal/pong"
)

func testSnapshot() pong.Snapshot {
	return pong.Snapshot{
		Mode:          pong.ModePlaying,
		Theme:         pong.ConfigForLevel(0).Theme,
		BallX:         pong.BoardW / 2,
		BallY:         pong.BoardH / 2,
		AIPaddleY:     100,
		PlayerPaddleY: 100,
		PlayerPaddleH: 40,
		Lives:         3,
	}
}

// containsColor reports whether any cell on screen has the given foreground.
func containsColor(s *core.Screen, fg core.RGB) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y).Fg == fg {
				return true
			}
		}
	}
	return false
}

func TestDrawPlaying(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := testSnapshot()
	Draw(s, snap)

	th := snap.Theme
	if !containsColor(s, th.Ball) {
		t.Error("ball not drawn")
	}
	if !containsColor(s, th.PaddleAI) {
		t.Error("AI paddle not drawn")
	}
	if !containsColor(s, th.PaddlePlayer) {
		t.Error("player paddle not drawn")
	}
	if !containsColor(s, th.Heart) {
		t.Error("lives not drawn")
	}
	if !strings.Contains(s.Row(0), "CPU 0 : 0 YOU") {
		t.Errorf("HUD score missing: %q", s.Row(0))
	}
}

func TestDrawTinyScreenDoesNotPanic(t *testing.T) {
	// Entities must survive scaling down to a handful of cells.
	s := core.NewScreen(10, 4)
	Draw(s, testSnapshot())

	if !containsColor(s, testSnapshot().Theme.Ball) {
		t.Error("ball should still occupy at least one cell")
	}
}

func TestDrawMenu(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := testSnapshot()
	snap.Mode = pong.ModeMenu
	snap.MenuCursor = 1
	Draw(s, snap)

	out := s.String()
	if !strings.Contains(out, "P O N G  Q U E S T") {
		t.Error("menu title missing")
	}
	if !strings.Contains(out, "> Infinite <") {
		t.Error("cursor should mark the hovered item")
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*pong.Snapshot)
		text string
	}{
		{"paused", func(s *pong.Snapshot) { s.Paused = true }, "PAUSED"},
		{"level complete", func(s *pong.Snapshot) { s.Mode = pong.ModeLevelComplete }, "LEVEL 1 CLEAR"},
		{"game over loss", func(s *pong.Snapshot) { s.Mode = pong.ModeGameOver }, "GAME OVER"},
		{"game over win", func(s *pong.Snapshot) { s.Mode = pong.ModeGameOver; s.Win = true }, "YOU WIN!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			snap := testSnapshot()
			tt.mod(&snap)
			Draw(s, snap)

			if !strings.Contains(s.String(), tt.text) {
				t.Errorf("overlay text %q missing", tt.text)
			}
		})
	}
}

func TestScaleRectMinimumSize(t *testing.T) {
	// A board-sized object shrunk to a tiny grid keeps at least one cell.
	r := scaleRect(100, 100, pong.BallSize, pong.BallSize, 10, 4)
	if r.W < 1 || r.H < 1 {
		t.Errorf("scaled rect collapsed: %+v", r)
	}
	if r.X < 0 || r.X >= 10 || r.Y < hudRows || r.Y >= 4+hudRows {
		t.Errorf("scaled rect out of bounds: %+v", r)
	}
}
