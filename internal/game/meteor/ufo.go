package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// UFO is the bonus flyer: it crosses the top lane after the idle timer
// expires and pays a randomized bonus when shot.
type UFO struct {
	Active bool
	X      int // Pixels
	Dir    int // -1 or +1
	Timer  int // Idle frames since the last appearance
}

// updateUFO ticks the idle timer while inactive and sweeps the flyer across
// the top lane while active. It despawns silently at the far edge.
func (g *Game) updateUFO() {
	if !g.ufo.Active {
		g.ufo.Timer++
		if g.ufo.Timer > g.cfg.UFO.IdleFrames {
			g.ufo.Active = false
			g.ufo.Timer = 0
			if g.rng.Intn(2) == 0 {
				g.ufo.X = px(1)
				g.ufo.Dir = 1
			} else {
				g.ufo.X = px(FieldW - 3)
				g.ufo.Dir = -1
			}
			g.ufo.Active = true
		}
		return
	}

	g.ufo.X += g.ufo.Dir
	if g.frame&7 == 0 {
		g.sound.Play(core.SoundUFO)
	}

	if g.ufo.X <= px(0) || g.ufo.X >= px(FieldW-2) {
		g.ufo.Active = false
	}
}
