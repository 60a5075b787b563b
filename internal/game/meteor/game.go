// Package meteor implements the meteor-storm defense game: waves of falling
// meteors, destructible shield bunkers, power-ups and a bonus flyer, over a
// shared 40x25 character grid with per-cell ownership.
package meteor

import (
	"github.com/arcadeforge/meteorstorm/internal/config"
	"github.com/arcadeforge/meteorstorm/internal/core"
	"github.com/arcadeforge/meteorstorm/internal/registry"
)

// Phase is the top-level game state.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlay
	PhaseDying
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlay:
		return "play"
	case PhaseDying:
		return "dying"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

const (
	dyingPause = 30
	wonPause   = 180
	lostPause  = 240
)

// Package-level knobs set by the command layer before the registry
// constructs the game.
var (
	configPath string
	preset     config.DifficultyPreset = config.DifficultyNormal
	forceDemo  bool
)

// SetConfigPath points the game at a custom gameplay config file.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset selects the difficulty applied on top of the config.
func SetDifficultyPreset(p config.DifficultyPreset) { preset = p }

// SetDemoMode makes the game boot straight into attract mode.
func SetDemoMode(on bool) { forceDemo = on }

// Game holds the complete engine state. All mutation happens in Step;
// Render and the accessors are read-only.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MeteorConfig
	rng     *SimpleRNG
	sound   core.SoundPlayer

	// The field is the persistent shared grid. Entities erase and redraw
	// their own cells incrementally; it is never cleared mid-wave.
	field *core.Screen

	phase      Phase
	phaseTimer int
	titleTimer int
	demo       bool
	paused     bool

	frame     uint64
	animFrame int

	score int
	lives int
	wave  int

	shipX       int // Pixels
	bullet      Bullet
	bullet2     Bullet
	doubleShot  bool
	doubleTimer int

	power PowerUp
	ufo   UFO

	meteors        [MaxMeteors]Meteor
	meteorsAlive   int
	meteorsSpawned int
	spawnTimer     int

	explosions [MaxExplosions]Explosion
	expCount   int

	stars [MaxStars]Star

	comboCount int
	comboTimer int
}

func init() {
	registry.Register("meteor", func() registry.Game {
		return New()
	})
}

// New creates a meteor game with default runtime settings. Reset must be
// called before the first Step.
func New() *Game {
	return &Game{sound: core.NopSoundPlayer{}}
}

// ID returns the registry identifier.
func (g *Game) ID() string { return "meteor" }

// Title returns the display name.
func (g *Game) Title() string { return "Meteor Storm" }

// SetSound installs the audio sink. Passing nil restores the silent default.
func (g *Game) SetSound(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSoundPlayer{}
	}
	g.sound = p
}

// Reset reinitializes the whole game to the title screen. The same seed
// yields a bit-identical run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMeteor(configPath)
	if err != nil {
		mc = config.DefaultMeteorConfig()
	}
	config.ApplyMeteorPreset(&mc, preset)

	g.runtime = cfg
	g.cfg = mc
	g.rng = NewSimpleRNG(cfg.Seed)
	g.field = core.NewScreen(FieldW, FieldH)

	g.frame = 0
	g.animFrame = 0
	g.paused = false
	g.titleTimer = 0

	g.score = 0
	g.lives = mc.Gameplay.Lives
	g.wave = 1
	g.shipX = px(FieldW/2 - 1)
	g.doubleShot = false
	g.doubleTimer = 0
	g.comboCount = 0
	g.comboTimer = 0

	g.initWave()

	if forceDemo {
		g.startDemo()
	} else {
		g.phase = PhaseTitle
	}
}

// startGame begins a player-controlled run from wave 1.
func (g *Game) startGame() {
	g.demo = false
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.shipX = px(FieldW/2 - 1)
	g.doubleShot = false
	g.doubleTimer = 0
	g.comboCount = 0
	g.comboTimer = 0
	g.initWave()
	g.phase = PhasePlay
}

// startDemo begins an attract-mode run piloted by demoStep.
func (g *Game) startDemo() {
	g.startGame()
	g.demo = true
	g.lives = 1
}

func (g *Game) enterDying() {
	g.showExplosion(toCell(g.shipX), ShipRow)
	g.showExplosion(toCell(g.shipX)+1, ShipRow)
	g.sound.Play(core.SoundDeath)
	g.bullet.Active = false
	g.bullet2.Active = false
	g.phase = PhaseDying
	g.phaseTimer = dyingPause
}

func (g *Game) enterWon() {
	g.score += g.wave * g.cfg.Scoring.WaveFactor
	g.sound.Play(core.SoundPowerUp)
	g.phase = PhaseWon
	g.phaseTimer = wonPause
}

func (g *Game) enterLost() {
	g.phase = PhaseLost
	g.phaseTimer = lostPause
}

// Step advances the game by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseTitle:
		g.stepTitle(input)
	case PhasePlay:
		g.stepPlay(input)
	case PhaseDying:
		g.stepDying()
	case PhaseWon:
		g.stepWon()
	case PhaseLost:
		g.stepLost(input)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepTitle(input core.InputFrame) {
	g.frame++
	g.updateStars()

	if input.Has(core.ActionFire) || input.Has(core.ActionConfirm) {
		g.startGame()
		return
	}

	g.titleTimer++
	if g.titleTimer > g.cfg.Gameplay.TitleTimeout {
		g.titleTimer = 0
		g.startDemo()
	}
}

func (g *Game) stepPlay(input core.InputFrame) {
	// Any key during attract mode hands control to the player.
	if g.demo {
		if input.Has(core.ActionFire) || input.Has(core.ActionConfirm) {
			g.startGame()
			return
		}
		if input.Has(core.ActionBack) {
			g.phase = PhaseTitle
			g.initWave()
			return
		}
	} else {
		if input.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}
	}

	g.frame++
	if g.frame&7 == 0 {
		g.animFrame ^= 1
	}

	if g.doubleTimer > 0 {
		g.doubleTimer--
		if g.doubleTimer == 0 {
			g.doubleShot = false
		}
	}
	g.updateCombo()

	if g.demo {
		g.demoStep()
	} else {
		if input.Has(core.ActionLeft) {
			g.shipX = core.Clamp(g.shipX-ShipSpeed, shipMinX, shipMaxX)
		}
		if input.Has(core.ActionRight) {
			g.shipX = core.Clamp(g.shipX+ShipSpeed, shipMinX, shipMaxX)
		}
		if input.Has(core.ActionFire) {
			g.fireBullet()
		}
	}

	if g.meteorsSpawned < g.waveQuota() {
		g.spawnTimer++
		if g.spawnTimer >= g.spawnInterval() {
			g.spawnTimer = 0
			g.spawnMeteor()
		}
	}

	// A lethal meteor hit aborts only the remaining meteor updates; the rest
	// of the frame's subsystems still run, and only the wave-clear check is
	// suppressed so a death on the last meteor stays a death.
	g.moveMeteors()

	g.moveBullets()
	g.updatePowerUp()
	g.updateUFO()
	g.updateStars()
	g.updateExplosions()

	if g.phase == PhasePlay && g.waveCleared() {
		g.enterWon()
	}
}

func (g *Game) stepDying() {
	g.frame++
	g.updateStars()
	g.updateExplosions()

	g.phaseTimer--
	if g.phaseTimer > 0 {
		return
	}

	g.lives--
	if g.lives <= 0 {
		if g.demo {
			g.demo = false
			g.phase = PhaseTitle
			g.initWave()
			return
		}
		g.enterLost()
		return
	}

	// Respawn into the same wave: ship recenters, field state survives.
	g.shipX = px(FieldW/2 - 1)
	g.power.Active = false
	g.comboCount = 0
	g.comboTimer = 0
	g.phase = PhasePlay
}

func (g *Game) stepWon() {
	g.frame++
	g.updateStars()
	g.updateExplosions()

	g.phaseTimer--
	if g.phaseTimer > 0 {
		return
	}

	if g.demo {
		g.demo = false
		g.phase = PhaseTitle
		g.initWave()
		return
	}

	g.wave++
	g.initWave()
	g.phase = PhasePlay
}

func (g *Game) stepLost(input core.InputFrame) {
	g.frame++
	g.updateStars()
	g.updateExplosions()

	g.phaseTimer--
	if g.phaseTimer <= 0 || input.Has(core.ActionConfirm) {
		g.phase = PhaseTitle
		g.titleTimer = 0
		g.initWave()
	}
}

// State returns the public game state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Wave:     g.wave,
		GameOver: g.phase == PhaseLost,
		Paused:   g.paused,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Wave returns the current wave number, starting at 1.
func (g *Game) Wave() int { return g.wave }

// Phase returns the current top-level phase.
func (g *Game) Phase() Phase { return g.phase }

// Demo reports whether attract mode is piloting the ship.
func (g *Game) Demo() bool { return g.demo }
