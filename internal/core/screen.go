package core

import (
	"strings"
)

// Owner identifies which gameplay subsystem a cell's glyph belongs to.
// Movers may only erase cells whose owner is in their expected set, which
// keeps independent per-frame update passes from clobbering each other on
// the shared grid.
type Owner uint8

const (
	OwnerEmpty Owner = iota
	OwnerStar
	OwnerShield
	OwnerMeteor
	OwnerExplosion
	OwnerBullet
	OwnerHUD
)

// String returns a short name for the owner category.
func (o Owner) String() string {
	switch o {
	case OwnerEmpty:
		return "empty"
	case OwnerStar:
		return "star"
	case OwnerShield:
		return "shield"
	case OwnerMeteor:
		return "meteor"
	case OwnerExplosion:
		return "explosion"
	case OwnerBullet:
		return "bullet"
	case OwnerHUD:
		return "hud"
	default:
		return "unknown"
	}
}

// Cell is a single grid position: a glyph, its color, and the subsystem
// that currently owns it.
type Cell struct {
	Rune  rune
	Color Color
	Owner Owner
}

// Screen is a 2D cell buffer shared by all visual subsystems. Writes always
// succeed (last-writer-wins); erases are ownership-checked. It decouples
// game state from the terminal: the engine mutates cells, the platform
// renders them.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions, filled with
// empty cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
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

// Resize changes the screen dimensions. A size change discards all content;
// resizing to the current size is a no-op.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear resets every cell to empty.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault, Owner: OwnerEmpty}
		}
	}
}

// Set places a glyph at the given position, claiming the cell for owner.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, color Color, owner Owner) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: color, Owner: owner}
}

// Get returns the rune at the given position, space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position. Out-of-bounds
// positions read as empty.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault, Owner: OwnerEmpty}
	}
	return s.cells[y][x]
}

// OwnerAt returns the owner category of the cell, OwnerEmpty out of bounds.
func (s *Screen) OwnerAt(x, y int) Owner {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return OwnerEmpty
	}
	return s.cells[y][x].Owner
}

// EraseIf clears the cell only when its current owner is one of the given
// categories. Returns true when the cell was cleared. A non-matching owner
// leaves the grid untouched: that read-only no-op is what lets many movers
// traverse the same grid per frame without a z-buffer.
func (s *Screen) EraseIf(x, y int, owners ...Owner) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	cur := s.cells[y][x].Owner
	for _, o := range owners {
		if cur == o {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault, Owner: OwnerEmpty}
			return true
		}
	}
	return false
}

// CopyInto blits this screen into dst at the given offset. Cells outside
// dst are clipped.
func (s *Screen) CopyInto(dst *Screen, offX, offY int) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.cells[y][x]
			dst.Set(offX+x, offY+y, c.Rune, c.Color, c.Owner)
		}
	}
}

// DrawText writes a string horizontally starting at (x, y) as HUD cells.
// Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, color Color) {
	for i, r := range text {
		s.Set(x+i, y, r, color, OwnerHUD)
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string, color Color) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text, color)
}

// String converts the screen buffer to a plain string, rows joined with
// newlines. Colors and owners are dropped; used for screenshots and tests.
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
