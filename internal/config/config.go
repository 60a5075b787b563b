// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for meteorstorm.
package config

// MeteorConfig contains all tunable gameplay numbers for the engine.
// Timings are in simulation frames (60 per second).
type MeteorConfig struct {
	Gameplay MeteorGameplay `yaml:"gameplay"`
	Waves    MeteorWaves    `yaml:"waves"`
	Scoring  MeteorScoring  `yaml:"scoring"`
	PowerUps MeteorPowerUps `yaml:"powerups"`
	Combo    MeteorCombo    `yaml:"combo"`
	UFO      MeteorUFO      `yaml:"ufo"`
}

// MeteorGameplay defines the session-level parameters.
type MeteorGameplay struct {
	Lives        int `yaml:"lives"`
	TitleTimeout int `yaml:"title_timeout"` // Frames on title before demo mode starts
}

// MeteorWaves defines the wave quota and spawn cadence ramp.
type MeteorWaves struct {
	BaseQuota int `yaml:"base_quota"` // Meteors in wave 1
	QuotaStep int `yaml:"quota_step"` // Added per wave
	MaxQuota  int `yaml:"max_quota"`  // Quota ceiling

	// SpawnIntervals maps wave thresholds to spawn cadence: the interval for
	// a wave is the entry of the highest threshold not exceeding it.
	SpawnIntervals []SpawnStep `yaml:"spawn_intervals"`
}

// SpawnStep is one step of the spawn-cadence ramp.
type SpawnStep struct {
	Wave     int `yaml:"wave"`     // Threshold wave number
	Interval int `yaml:"interval"` // Frames between spawns at and above it
}

// MeteorScoring defines the point values.
type MeteorScoring struct {
	LargeKill  int `yaml:"large_kill"`  // Per wave multiplier
	SmallKill  int `yaml:"small_kill"`  // Per wave multiplier
	DamageHit  int `yaml:"damage_hit"`  // Flat, large meteor survives the hit
	UFOBase    int `yaml:"ufo_base"`    // Flat part of the UFO bonus
	UFORandom  int `yaml:"ufo_random"`  // Random extra in [0, n)
	BombBonus  int `yaml:"bomb_bonus"`  // Flat, regardless of meteors cleared
	WaveFactor int `yaml:"wave_factor"` // Wave-clear bonus per wave number
}

// MeteorPowerUps defines drop odds and effect durations.
type MeteorPowerUps struct {
	SpawnChance   int `yaml:"spawn_chance"`   // Percent chance per kill (0-100)
	DoubleShotFor int `yaml:"doubleshot_for"` // Frames the double-shot buff lasts
}

// MeteorCombo defines the kill-streak bonus.
type MeteorCombo struct {
	Window   int `yaml:"window"`    // Frames before the streak decays
	MinChain int `yaml:"min_chain"` // Kills needed before the bonus pays out
	PerKill  int `yaml:"per_kill"`  // Bonus is count * per_kill
}

// MeteorUFO defines the bonus flyer cadence.
type MeteorUFO struct {
	IdleFrames int `yaml:"idle_frames"` // Frames without a UFO before one appears
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyMeteorPreset modifies the config based on a difficulty preset.
func ApplyMeteorPreset(cfg *MeteorConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.PowerUps.SpawnChance = 30
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.PowerUps.SpawnChance = 10
		for i := range cfg.Waves.SpawnIntervals {
			cfg.Waves.SpawnIntervals[i].Interval -= 4
		}
	}
}
