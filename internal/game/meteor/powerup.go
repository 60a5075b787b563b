package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// PowerType enumerates the power-up drops.
type PowerType uint8

const (
	PowerNone PowerType = iota
	PowerShieldRepair
	PowerDoubleShot
	PowerBomb
)

// String returns the display name of the power-up type.
func (p PowerType) String() string {
	switch p {
	case PowerShieldRepair:
		return "Shield Repair"
	case PowerDoubleShot:
		return "Double Shot"
	case PowerBomb:
		return "Bomb"
	default:
		return "None"
	}
}

// Glyph returns the overlay character for the falling pickup.
func (p PowerType) Glyph() rune {
	switch p {
	case PowerShieldRepair:
		return 'S'
	case PowerDoubleShot:
		return 'D'
	case PowerBomb:
		return 'B'
	default:
		return GlyphPowerField
	}
}

// PowerUp is the single in-flight pickup slot, in pixel coordinates.
type PowerUp struct {
	Active bool
	Type   PowerType
	X      int
	Y      int
}

// maybeDropPowerUp rolls the drop chance at a kill site. At most one
// power-up exists at a time; a roll while one is falling is skipped
// entirely, preserving the RNG stream for the next kill.
func (g *Game) maybeDropPowerUp(x, y int) {
	if g.power.Active {
		return
	}
	if g.rng.Intn(100) >= g.cfg.PowerUps.SpawnChance {
		return
	}

	g.power = PowerUp{
		Active: true,
		Type:   PowerType(1 + g.rng.Intn(3)),
		X:      px(x),
		Y:      px(y),
	}
}

// updatePowerUp advances the falling pickup and applies its effect exactly
// once on contact with the ship's hit-box. Bottom exit discards it silently.
func (g *Game) updatePowerUp() {
	if !g.power.Active {
		return
	}

	g.power.Y += 2

	if g.power.Y >= px(GroundRow) {
		g.power.Active = false
		return
	}

	if g.power.Y < shipRowPx-PxPerCell || g.power.Y > shipRowPx+PxPerCell {
		return
	}
	if g.power.X < g.shipX-PxPerCell || g.power.X > g.shipX+2*PxPerCell {
		return
	}

	collected := g.power.Type
	g.power.Active = false
	g.applyPowerUp(collected)
}

// applyPowerUp performs the one-shot effect of a collected pickup.
func (g *Game) applyPowerUp(t PowerType) {
	switch t {
	case PowerShieldRepair:
		g.repairShields()

	case PowerDoubleShot:
		g.doubleShot = true
		g.doubleTimer = g.cfg.PowerUps.DoubleShotFor
		g.sound.Play(core.SoundPowerUp)

	case PowerBomb:
		// Clear every active meteor; each registers its own explosion but
		// the reward is one flat bonus, not per-meteor score.
		for i := range g.meteors {
			m := &g.meteors[i]
			if !m.Active {
				continue
			}
			g.eraseMeteor(m)
			g.showExplosion(m.X, m.Y)
			m.Active = false
		}
		g.meteorsAlive = 0
		g.score += g.cfg.Scoring.BombBonus
		g.sound.Play(core.SoundBomb)
	}
}
