package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pong-quest/internal/core"
	"github.com/vovakirdan/pong-quest/internal/pong"
)

// Drawing characters.
const (
	paddleRune = '█'
	ballRune   = '●'
	netRune    = '┊'
	heartRune  = '♥'
)

const hudRows = 1

// Draw renders a snapshot onto the screen buffer. The simulation runs on a
// fixed virtual board; gameplay coordinates are scaled to whatever cell grid
// the terminal offers.
func Draw(s *core.Screen, snap pong.Snapshot) {
	s.Clear()
	s.FillBg(snap.Theme.Background)

	switch snap.Mode {
	case pong.ModeMenu:
		drawMenu(s, snap)
	case pong.ModeLevelSelect:
		drawLevelSelect(s, snap)
	case pong.ModePlaying, pong.ModeLevelComplete, pong.ModeGameOver:
		drawBoard(s, snap)
		drawHUD(s, snap)
		drawOverlay(s, snap)
	}
}

func drawMenu(s *core.Screen, snap pong.Snapshot) {
	th := snap.Theme
	top := s.Height() / 4

	s.DrawTextCentered(top, "P O N G  Q U E S T", th.Highlight)
	s.DrawHLine(s.Width()/2-11, top+1, 22, '─', th.Net)

	items := []string{"Campaign", "Infinite", "Level Select"}
	for i, item := range items {
		y := top + 2 + i
		if i == snap.MenuCursor {
			s.DrawTextCentered(y, "> "+item+" <", th.Highlight)
		} else {
			s.DrawTextCentered(y, item, th.Text)
		}
	}

	s.DrawTextCentered(s.Height()-2, "w/s move · enter select · esc quit", th.Net)
}

func drawLevelSelect(s *core.Screen, snap pong.Snapshot) {
	th := snap.Theme
	top := s.Height()/2 - pong.LevelCount/2 - 1

	s.DrawTextCentered(top-1, "SELECT LEVEL", th.Highlight)

	for i := 0; i < pong.LevelCount; i++ {
		label := fmt.Sprintf("%d. %s", i+1, pong.LevelName(i))
		y := top + 1 + i
		if i == snap.LevelCursor {
			s.DrawTextCentered(y, "> "+label+" <", th.Highlight)
		} else {
			s.DrawTextCentered(y, label, th.Text)
		}
	}

	s.DrawTextCentered(s.Height()-2, "enter play · esc back", th.Net)
}

func drawBoard(s *core.Screen, snap pong.Snapshot) {
	th := snap.Theme
	cols, rows := s.Width(), s.Height()-hudRows
	if cols <= 0 || rows <= 0 {
		return
	}

	// net
	netX := scaleX(pong.BoardW/2, cols)
	for y := hudRows; y < s.Height(); y += 2 {
		s.Set(netX, y, netRune, th.Net)
	}

	ai := scaleRect(pong.PaddleMargin, snap.AIPaddleY, pong.PaddleW, pong.AIPaddleH, cols, rows)
	player := scaleRect(pong.BoardW-pong.PaddleMargin-pong.PaddleW, snap.PlayerPaddleY,
		pong.PaddleW, snap.PlayerPaddleH, cols, rows)
	ball := scaleRect(snap.BallX, snap.BallY, pong.BallSize, pong.BallSize, cols, rows)

	drawCells(s, ai, paddleRune, th.PaddleAI)
	drawCells(s, player, paddleRune, th.PaddlePlayer)
	drawCells(s, ball, ballRune, th.Ball)
}

func drawHUD(s *core.Screen, snap pong.Snapshot) {
	th := snap.Theme

	// lives, left-aligned
	var hearts strings.Builder
	for i := 0; i < snap.Lives; i++ {
		if i > 0 {
			hearts.WriteRune(' ')
		}
		hearts.WriteRune(heartRune)
	}
	s.DrawText(1, 0, hearts.String(), th.Heart)

	// score, centered
	s.DrawTextCentered(0, fmt.Sprintf("CPU %d : %d YOU", snap.AIScore, snap.PlayerScore), th.Text)

	// mode indicator, right-aligned
	indicator := fmt.Sprintf("Lv %d %s", snap.LevelIndex+1, pong.LevelName(snap.LevelIndex))
	if snap.Infinite {
		indicator = "INF"
	}
	s.DrawText(s.Width()-len(indicator)-1, 0, indicator, th.Text)
}

func drawOverlay(s *core.Screen, snap pong.Snapshot) {
	th := snap.Theme
	mid := s.Height() / 2

	switch {
	case snap.Mode == pong.ModeLevelComplete:
		s.DrawTextCentered(mid-1, fmt.Sprintf("LEVEL %d CLEAR", snap.LevelIndex+1), th.Highlight)
		s.DrawTextCentered(mid+1, "press enter for the next level", th.Text)

	case snap.Mode == pong.ModeGameOver && snap.Win:
		s.DrawTextCentered(mid-1, "YOU WIN!", th.Highlight)
		s.DrawTextCentered(mid+1, "campaign complete", th.Text)

	case snap.Mode == pong.ModeGameOver:
		s.DrawTextCentered(mid-1, "GAME OVER", th.Highlight)
		s.DrawTextCentered(mid+1, fmt.Sprintf("final score %d", snap.PlayerScore), th.Text)

	case snap.Paused:
		s.DrawTextCentered(mid-1, "PAUSED", th.Highlight)
		s.DrawTextCentered(mid+1, "press enter to resume", th.Text)
	}
}

// scaleX maps a virtual board x coordinate to a screen column.
func scaleX(x, cols int) int {
	return core.Clamp(x*cols/pong.BoardW, 0, cols-1)
}

// scaleRect maps a virtual board rectangle to a screen cell rectangle below
// the HUD. Every on-board entity maps to at least one cell so small objects
// never vanish on small terminals.
func scaleRect(x, y, w, h, cols, rows int) core.Rect {
	x1 := x * cols / pong.BoardW
	x2 := (x + w) * cols / pong.BoardW
	y1 := y * rows / pong.BoardH
	y2 := (y + h) * rows / pong.BoardH

	r := core.Rect{
		X: core.Clamp(x1, 0, cols-1),
		Y: core.Clamp(y1, 0, rows-1) + hudRows,
		W: core.Max(1, x2-x1),
		H: core.Max(1, y2-y1),
	}
	r.W = core.Min(r.W, cols-r.X)
	r.H = core.Min(r.H, rows+hudRows-r.Y)
	return r
}

func drawCells(s *core.Screen, r core.Rect, ch rune, fg core.RGB) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, ch, fg)
		}
	}
}
