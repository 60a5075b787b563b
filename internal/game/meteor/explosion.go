package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// Explosion is a short-lived visual entry in a fixed-capacity pool.
type Explosion struct {
	X   int
	Y   int
	TTL int
}

const explosionTTL = 8

// showExplosion draws the first explosion frame and registers it for timed
// cleanup. A full pool silently drops the entry; explosions are cosmetic
// and never block gameplay.
func (g *Game) showExplosion(x, y int) {
	if x < 0 || x >= FieldW || y < TopRow || y >= FieldH {
		return
	}
	g.field.Set(x, y, GlyphExplode1, core.ColorBrightYellow, core.OwnerExplosion)

	if g.expCount >= MaxExplosions {
		return
	}
	g.explosions[g.expCount] = Explosion{X: x, Y: y, TTL: explosionTTL}
	g.expCount++
}

// updateExplosions decrements every TTL. At mid-life the glyph switches to
// the fade frame, ownership-checked since another entity may have reclaimed
// the cell. Expired entries erase-if-owned and are removed by swapping with
// the last entry: O(1), order not preserved.
func (g *Game) updateExplosions() {
	for i := 0; i < g.expCount; {
		e := &g.explosions[i]
		if e.TTL > 0 {
			e.TTL--
			if e.TTL == explosionTTL/2 {
				if g.field.OwnerAt(e.X, e.Y) == core.OwnerExplosion {
					g.field.Set(e.X, e.Y, GlyphExplode2, core.ColorBrightRed, core.OwnerExplosion)
				}
			}
			i++
			continue
		}

		g.field.EraseIf(e.X, e.Y, core.OwnerExplosion)
		g.explosions[i] = g.explosions[g.expCount-1]
		g.expCount--
		// Re-check the swapped entry at index i.
	}
}
