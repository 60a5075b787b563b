package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// Star is one cell of the scrolling background. Stars are the lowest-priority
// writer on the grid: they erase only their own glyphs and draw only into
// empty cells.
type Star struct {
	X     int
	Y     int
	Speed int // 1 slow, 2 medium, 3 fast
	Glyph rune
}

func starGlyph(speed int) rune {
	if speed == 3 {
		return GlyphStarBright
	}
	return GlyphStarDim
}

func starColor(speed int) core.Color {
	switch speed {
	case 3:
		return core.ColorWhite
	case 2:
		return core.ColorGray
	default:
		return core.ColorDarkGray
	}
}

// initStars scatters the starfield over the sky rows.
func (g *Game) initStars() {
	for i := range g.stars {
		speed := 1 + g.rng.Intn(3)
		g.stars[i] = Star{
			X:     g.rng.Intn(FieldW),
			Y:     TopRow + g.rng.Intn(ShieldRow-TopRow-1),
			Speed: speed,
			Glyph: starGlyph(speed),
		}
	}
}

// updateStars scrolls the starfield downward. Faster stars move on more
// frames; a star reaching the shield row respawns at the top with a fresh
// column and speed.
func (g *Game) updateStars() {
	for i := range g.stars {
		s := &g.stars[i]
		if int(g.frame&3) >= s.Speed {
			continue
		}

		g.field.EraseIf(s.X, s.Y, core.OwnerStar)

		s.Y++
		if s.Y >= ShieldRow {
			s.Y = TopRow
			s.X = g.rng.Intn(FieldW)
			s.Speed = 1 + g.rng.Intn(3)
			s.Glyph = starGlyph(s.Speed)
		}

		if g.field.OwnerAt(s.X, s.Y) == core.OwnerEmpty {
			g.field.Set(s.X, s.Y, s.Glyph, starColor(s.Speed), core.OwnerStar)
		}
	}
}
