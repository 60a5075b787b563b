package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// demoStep drives the attract-mode pilot. The policy is simple and fully
// deterministic: chase the lowest threatening meteor, keep the nose under
// it, and fire on a sub-sampled clock so shots stay spaced out.
func (g *Game) demoStep() {
	targetX := -1
	bestY := -1
	for i := range g.meteors {
		m := &g.meteors[i]
		if !m.Active || m.Y >= ShipRow {
			continue
		}
		if m.Y > bestY {
			bestY = m.Y
			targetX = px(m.X)
		}
	}

	if targetX < 0 {
		// Nothing falling: drift back toward the center.
		targetX = px(FieldW/2 - 1)
	}

	diff := targetX - g.shipX
	if core.Abs(diff) > 2 {
		step := ShipSpeed
		if core.Abs(diff) > px(4) {
			step = ShipSpeed * 2
		}
		if diff < 0 {
			step = -step
		}
		g.shipX = core.Clamp(g.shipX+step, shipMinX, shipMaxX)
	}

	if bestY >= 0 && g.frame%3 == 0 && core.Abs(diff) < px(1) {
		g.fireBullet()
	}
}
