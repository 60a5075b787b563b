package config

import (
	_ "embed"
)

//go:embed defaults/meteor.yaml
var defaultMeteorYAML []byte

// DefaultMeteorConfig returns the default meteorstorm configuration.
// The numbers mirror the original arcade tuning at 60 ticks per second.
func DefaultMeteorConfig() MeteorConfig {
	return MeteorConfig{
		Gameplay: MeteorGameplay{
			Lives:        3,
			TitleTimeout: 350,
		},
		Waves: MeteorWaves{
			BaseQuota: 8,
			QuotaStep: 4,
			MaxQuota:  40,
			SpawnIntervals: []SpawnStep{
				{Wave: 1, Interval: 40},
				{Wave: 2, Interval: 30},
				{Wave: 4, Interval: 22},
				{Wave: 6, Interval: 16},
				{Wave: 8, Interval: 12},
			},
		},
		Scoring: MeteorScoring{
			LargeKill:  25,
			SmallKill:  10,
			DamageHit:  10,
			UFOBase:    100,
			UFORandom:  128,
			BombBonus:  50,
			WaveFactor: 100,
		},
		PowerUps: MeteorPowerUps{
			SpawnChance:   20,
			DoubleShotFor: 600,
		},
		Combo: MeteorCombo{
			Window:   60,
			MinChain: 3,
			PerKill:  5,
		},
		UFO: MeteorUFO{
			IdleFrames: 800,
		},
	}
}
