package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// Shield bunkers: four fixed-footprint blocks of independently destructible
// tiles on rows ShieldRow and ShieldRow+1, with a two-cell notch cut from
// the underside of each. Tile state lives on the grid itself; a tile is
// intact exactly when its cell is shield-owned.

// shieldBunkerX returns the leftmost column of bunker s.
func shieldBunkerX(s int) int {
	return 2 + s*10
}

// drawShields restores every bunker to fully intact.
func (g *Game) drawShields() {
	for s := 0; s < ShieldCount; s++ {
		bx := shieldBunkerX(s)
		for x := 0; x < ShieldWidth; x++ {
			g.field.Set(bx+x, ShieldRow, GlyphShield, core.ColorGreen, core.OwnerShield)
			g.field.Set(bx+x, ShieldRow+1, GlyphShield, core.ColorGreen, core.OwnerShield)
		}
		// Notch
		g.field.EraseIf(bx+1, ShieldRow+1, core.OwnerShield)
		g.field.EraseIf(bx+2, ShieldRow+1, core.OwnerShield)
	}
}

// repairShields is the ShieldRepair power-up effect: every tile back to
// intact regardless of prior damage.
func (g *Game) repairShields() {
	g.drawShields()
	g.sound.Play(core.SoundPowerUp)
}

// shieldTileCount counts intact tiles across all bunkers.
func (g *Game) shieldTileCount() int {
	count := 0
	for y := ShieldRow; y <= ShieldRow+1; y++ {
		for x := 0; x < FieldW; x++ {
			if g.field.OwnerAt(x, y) == core.OwnerShield {
				count++
			}
		}
	}
	return count
}
