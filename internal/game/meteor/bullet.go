package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// Bullet tracks one shot in pixel coordinates. The primary bullet is a
// free-floating overlay; the secondary (double-shot) bullet renders on the
// grid, so its mover follows the ownership protocol like any other.
type Bullet struct {
	Active bool
	X      int
	Y      int
}

// fireBullet launches the primary bullet from the ship's nose. Firing while
// the primary is already in flight is a silent no-op. While double-shot is
// active every fire command also opens the second lane.
func (g *Game) fireBullet() {
	if g.bullet.Active {
		return
	}
	g.bullet = Bullet{Active: true, X: g.shipX + 4, Y: shipRowPx - 10}
	g.sound.Play(core.SoundShoot)

	if g.doubleShot && !g.bullet2.Active {
		g.bullet2 = Bullet{Active: true, X: g.shipX + 10, Y: shipRowPx - 10}
	}
}

// moveBullets advances both bullet lanes. Each deactivates at the top edge
// or on its first hit.
func (g *Game) moveBullets() {
	if g.bullet.Active {
		if g.bullet.Y <= bulletTop {
			g.bullet.Active = false
		} else {
			g.bullet.Y -= BulletSpeed
			if g.checkBulletHit(g.bullet.X, g.bullet.Y) {
				g.bullet.Active = false
			}
		}
	}

	if g.bullet2.Active {
		if g.bullet2.Y <= bulletTop {
			g.bullet2.Active = false
			return
		}

		// Grid-rendered lane: erase-if-owned old cell, move, resolve, redraw.
		g.field.EraseIf(toCell(g.bullet2.X), toCell(g.bullet2.Y), core.OwnerBullet)
		g.bullet2.Y -= BulletSpeed

		if g.checkBulletHit(g.bullet2.X, g.bullet2.Y) {
			g.bullet2.Active = false
			return
		}

		cx, cy := toCell(g.bullet2.X), toCell(g.bullet2.Y)
		if cx >= 0 && cx < FieldW && cy >= TopRow && cy < FieldH {
			if g.field.OwnerAt(cx, cy) == core.OwnerEmpty {
				g.field.Set(cx, cy, GlyphBullet, core.ColorBrightYellow, core.OwnerBullet)
			}
		}
	}
}

// checkBulletHit resolves a bullet position against targets in fixed
// priority order, returning on the first match: UFO, then shield tile, then
// meteor. The ordering means a bullet can never be credited with a shield
// tile that sits behind a meteor occupying the same cell this tick.
func (g *Game) checkBulletHit(bx, by int) bool {
	cx, cy := toCell(bx), toCell(by)

	// Bonus flyer first: highest-value target in the top rows.
	if g.ufo.Active && cy <= TopRow {
		if bx >= g.ufo.X-PxPerCell && bx <= g.ufo.X+2*PxPerCell {
			g.ufo.Active = false
			g.score += g.cfg.Scoring.UFOBase + g.rng.Intn(g.cfg.Scoring.UFORandom)
			g.sound.Play(core.SoundExplodeLarge)
			g.maybeDropPowerUp(toCell(g.ufo.X), 1)
			g.registerKill()
			return true
		}
	}

	// Shield tile: friendly fire, bullet spent, no score, no explosion.
	if cx >= 0 && cx < FieldW && cy >= 0 && cy < FieldH {
		if g.field.OwnerAt(cx, cy) == core.OwnerShield {
			g.field.EraseIf(cx, cy, core.OwnerShield)
			return true
		}
	}

	// Meteor whose footprint contains the cell.
	for i := range g.meteors {
		m := &g.meteors[i]
		if !m.Active || cy != m.Y {
			continue
		}

		if m.Size == SizeLarge {
			if cx != m.X && cx != m.X+1 {
				continue
			}
			m.HP--
			if m.HP > 0 {
				// Damaged but alive: small flat score, redraw with damage tint.
				g.score += g.cfg.Scoring.DamageHit
				g.sound.Play(core.SoundExplodeSmall)
				g.drawMeteor(m)
				return true
			}

			parent := *m
			g.eraseMeteor(m)
			m.Active = false
			g.meteorsAlive--
			g.splitMeteor(parent)
			g.score += g.cfg.Scoring.LargeKill * g.wave
			g.showExplosion(parent.X, parent.Y)
			g.sound.Play(core.SoundExplodeLarge)
			g.maybeDropPowerUp(parent.X, parent.Y)
			g.registerKill()
			return true
		}

		if cx != m.X {
			continue
		}
		g.eraseMeteor(m)
		m.Active = false
		g.meteorsAlive--
		g.score += g.cfg.Scoring.SmallKill * g.wave
		g.showExplosion(m.X, m.Y)
		g.sound.Play(core.SoundExplodeSmall)
		g.maybeDropPowerUp(m.X, m.Y)
		g.registerKill()
		return true
	}

	return false
}
