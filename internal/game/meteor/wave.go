package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/core"
)

// waveQuota returns the number of meteors this wave will spawn in total.
func (g *Game) waveQuota() int {
	q := g.cfg.Waves.BaseQuota + (g.wave-1)*g.cfg.Waves.QuotaStep
	return core.Min(q, g.cfg.Waves.MaxQuota)
}

// spawnInterval returns the frames between spawn attempts for the current
// wave. The table is keyed by threshold wave; the last threshold at or
// below the wave wins.
func (g *Game) spawnInterval() int {
	interval := 40
	for _, s := range g.cfg.Waves.SpawnIntervals {
		if g.wave >= s.Wave {
			interval = s.Interval
		}
	}
	return interval
}

// initWave resets the per-wave spawn bookkeeping and rebuilds the static
// field layers. Score, lives and power-up state carry across waves.
func (g *Game) initWave() {
	for i := range g.meteors {
		g.meteors[i].Active = false
	}
	g.meteorsAlive = 0
	g.meteorsSpawned = 0
	g.expCount = 0
	g.spawnTimer = 0
	g.comboCount = 0
	g.comboTimer = 0

	g.field.Clear()
	g.drawShields()
	g.initStars()

	g.bullet.Active = false
	g.bullet2.Active = false
	g.power.Active = false
	g.ufo = UFO{}
}

// registerKill feeds the combo chain. Every kill refreshes the decay window;
// from the MinChain-th kill on, each kill immediately pays count*PerKill, so
// a 5-kill chain earns the bonus three times at increasing value.
func (g *Game) registerKill() {
	g.comboCount++
	g.comboTimer = g.cfg.Combo.Window
	if g.comboCount >= g.cfg.Combo.MinChain {
		g.score += g.comboCount * g.cfg.Combo.PerKill
		g.sound.Play(core.SoundCombo)
	}
}

// updateCombo runs every frame. When the decay window closes the chain
// resets; bonuses were already paid per kill.
func (g *Game) updateCombo() {
	if g.comboTimer <= 0 {
		return
	}
	g.comboTimer--
	if g.comboTimer == 0 {
		g.comboCount = 0
	}
}

// waveCleared reports whether every meteor of this wave's quota has been
// spawned and destroyed or lost off-screen.
func (g *Game) waveCleared() bool {
	return g.meteorsSpawned >= g.waveQuota() && g.meteorsAlive == 0
}
