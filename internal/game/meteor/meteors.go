package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// Size classifies a meteor. Large meteors occupy two adjacent cells, take
// two hits, and split; small meteors occupy one cell and take one hit.
type Size uint8

const (
	SizeLarge Size = iota
	SizeSmall
)

// Meteor is one pool slot. X/Y are cell coordinates; a Large meteor also
// occupies X+1 on the same row.
type Meteor struct {
	Active bool
	Size   Size
	X      int
	Y      int
	Drift  int // -1, 0, +1
	Speed  int // Fall speed 1-3; moves once every 4-Speed frames
	HP     int
}

// maxDriftX returns the rightmost column the meteor's left cell may occupy.
func (m *Meteor) maxDriftX() int {
	if m.Size == SizeLarge {
		return FieldW - 3 // X+1 must stay on the field with a margin column
	}
	return FieldW - 2
}

// spawnMeteor places a new Large meteor in a free pool slot. A full pool
// silently drops the spawn.
func (g *Game) spawnMeteor() {
	slot := -1
	for i := range g.meteors {
		if !g.meteors[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}

	// Fall speed range widens as waves progress.
	speed := 1
	switch {
	case g.wave >= 7:
		speed = 2 + g.rng.Intn(2)
	case g.wave >= 5:
		speed = 2
	case g.wave >= 3:
		speed = 1 + g.rng.Intn(2)
	}

	g.meteors[slot] = Meteor{
		Active: true,
		Size:   SizeLarge,
		HP:     2,
		X:      2 + g.rng.Intn(34), // Both occupied columns stay in range
		Y:      TopRow,
		Drift:  g.rng.Intn(3) - 1,
		Speed:  speed,
	}
	g.meteorsAlive++
	g.meteorsSpawned++
}

// splitMeteor allocates up to two Small children for a destroyed Large
// parent: one at column-1 drifting left, one at column+2 drifting right,
// same row and fall speed. Fewer free slots means fewer children.
func (g *Game) splitMeteor(parent Meteor) {
	g.sound.Play(core.SoundSplit)

	spawned := 0
	for i := range g.meteors {
		if spawned >= 2 {
			break
		}
		if g.meteors[i].Active {
			continue
		}

		child := Meteor{
			Active: true,
			Size:   SizeSmall,
			HP:     1,
			Y:      parent.Y,
			Speed:  parent.Speed,
		}
		if spawned == 0 {
			child.X = core.Max(parent.X-1, 1)
			child.Drift = -1
		} else {
			child.X = core.Min(parent.X+2, FieldW-3)
			child.Drift = 1
		}

		g.meteors[i] = child
		g.meteorsAlive++
		spawned++
	}
}

// eraseMeteor clears the meteor's cells, but only where the grid still
// shows a meteor glyph; a cell reclaimed by another subsystem is left alone.
func (g *Game) eraseMeteor(m *Meteor) {
	g.field.EraseIf(m.X, m.Y, core.OwnerMeteor)
	if m.Size == SizeLarge {
		g.field.EraseIf(m.X+1, m.Y, core.OwnerMeteor)
	}
}

// cellFreeForMeteor reports whether a meteor may draw over the cell.
// Shields, bullets, and HUD cells are foreign and non-overwritable.
func (g *Game) cellFreeForMeteor(x, y int) bool {
	if x < 0 || x >= FieldW || y < 0 || y >= FieldH {
		return false
	}
	switch g.field.OwnerAt(x, y) {
	case core.OwnerEmpty, core.OwnerStar, core.OwnerMeteor, core.OwnerExplosion:
		return true
	}
	return false
}

// drawMeteor redraws the meteor at its current position, alternating
// animation frames and tinting a damaged Large meteor.
func (g *Game) drawMeteor(m *Meteor) {
	if m.Y < TopRow || m.Y >= FieldH-1 || m.X >= FieldW {
		return
	}

	if m.Size == SizeLarge {
		color := core.ColorOrange
		if m.HP <= 1 {
			color = core.ColorBrightRed
		}
		if m.X < FieldW-1 && g.cellFreeForMeteor(m.X, m.Y) && g.cellFreeForMeteor(m.X+1, m.Y) {
			if g.animFrame&1 == 1 {
				g.field.Set(m.X, m.Y, GlyphLargeL1, color, core.OwnerMeteor)
				g.field.Set(m.X+1, m.Y, GlyphLargeR1, color, core.OwnerMeteor)
			} else {
				g.field.Set(m.X, m.Y, GlyphLargeL2, color, core.OwnerMeteor)
				g.field.Set(m.X+1, m.Y, GlyphLargeR2, color, core.OwnerMeteor)
			}
		}
		return
	}

	if g.cellFreeForMeteor(m.X, m.Y) {
		glyph := rune(GlyphSmall2)
		if g.animFrame&1 == 1 {
			glyph = GlyphSmall1
		}
		g.field.Set(m.X, m.Y, glyph, core.ColorBrown, core.OwnerMeteor)
	}
}

// moveMeteors advances every active meteor: erase, drift with wall
// reflection, fall, then resolve shield, player, and bottom-edge outcomes
// before redrawing. A lethal player hit aborts the remaining meteor updates
// for this frame; cosmetic work never outranks the death transition.
func (g *Game) moveMeteors() {
	for i := range g.meteors {
		m := &g.meteors[i]
		if !m.Active {
			continue
		}

		// Throttle: speed-s meteors move once every 4-s frames.
		if g.frame%uint64(4-m.Speed) != 0 {
			continue
		}

		g.eraseMeteor(m)

		maxX := m.maxDriftX()
		if m.Drift < 0 && m.X > 1 {
			m.X--
		} else if m.Drift > 0 && m.X < maxX {
			m.X++
		}
		m.Y++

		// Reflect drift at the side boundaries.
		if m.X <= 1 {
			m.Drift = 1
		}
		if m.X >= maxX {
			m.Drift = -1
		}

		if g.meteorHitsShield(m) {
			continue
		}

		// Player-row proximity is lethal.
		if m.Y >= ShipRow {
			metPx := px(m.X)
			if metPx >= g.shipX-PxPerCell && metPx <= g.shipX+PxPerCell+4 {
				m.Active = false
				g.meteorsAlive--
				g.enterDying()
				return
			}
		}

		// Off the bottom of the play area: silent expiry, no score.
		if m.Y >= FieldH-1 {
			m.Active = false
			g.meteorsAlive--
			continue
		}

		g.drawMeteor(m)
	}
}

// meteorHitsShield destroys the meteor outright when either of its cells
// lands on an intact shield tile: the tile is erased, an explosion marks the
// impact, and no split happens. Returns true when the meteor was consumed.
func (g *Game) meteorHitsShield(m *Meteor) bool {
	if m.Y >= FieldH {
		return false
	}

	cols := []int{m.X}
	if m.Size == SizeLarge && m.X < FieldW-1 {
		cols = append(cols, m.X+1)
	}

	for _, x := range cols {
		if g.field.OwnerAt(x, m.Y) != core.OwnerShield {
			continue
		}
		g.field.EraseIf(x, m.Y, core.OwnerShield)
		g.showExplosion(x, m.Y)
		g.sound.Play(core.SoundExplodeSmall)
		m.Active = false
		g.meteorsAlive--
		return true
	}
	return false
}
