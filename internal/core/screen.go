package core

import "strings"

// Cell is a single screen position: a rune plus foreground and background
// colors. Zero-value colors render unstyled.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Screen is a 2D cell buffer the renderer draws into. It decouples drawing
// from the terminal: the platform converts the buffer to a styled string
// once per frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, discarding previous content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the screen with unstyled spaces.
func (s *Screen) Clear() {
	s.FillBg(RGB{})
}

// FillBg fills the screen with spaces on the given background color.
func (s *Screen) FillBg(bg RGB) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Bg: bg}
		}
	}
}

// Set places a rune with a foreground color, keeping the cell's background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg RGB) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = fg
}

// SetCell overwrites a cell completely.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position, or a blank cell out of bounds.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the
// screen bounds.
func (s *Screen) DrawText(x, y int, text string, fg RGB) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, fg)
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string, fg RGB) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// DrawRect fills a rectangular area with the given rune and colors.
func (s *Screen) DrawRect(r Rect, fill rune, fg, bg RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: fill, Fg: fg, Bg: bg})
		}
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, fg RGB) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, fg)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune, fg RGB) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r, fg)
	}
}

// String converts the buffer to a plain string without styling. Used by
// tests and screenshots; the platform renderer applies colors separately.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of one row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range runes {
		runes[x] = s.cells[y][x].Rune
	}
	return string(runes)
}
