// Package audio provides a small synthesized sound effect player backed by
// the beep speaker. Effects are generated, not sampled, so the binary ships
// no audio assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/arcadeforge/meteorstorm/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player implements core.SoundPlayer on top of the beep speaker. A Player
// that failed to initialize stays usable and silently drops every effect.
type Player struct {
	mu      sync.Mutex
	enabled bool
}

// NewPlayer initializes the speaker. The returned error is informational;
// the Player itself is always safe to use.
func NewPlayer() (*Player, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	return &Player{enabled: err == nil}, err
}

// Close shuts the speaker down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// Play synthesizes and queues the effect for the given sound. Unknown
// sounds are ignored.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	enabled := p.enabled
	p.mu.Unlock()
	if !enabled {
		return
	}

	st := effectFor(s)
	if st == nil {
		return
	}
	speaker.Play(st)
}

// effectFor maps a sound ID to its synthesized streamer.
func effectFor(s core.Sound) beep.Streamer {
	switch s {
	case core.SoundShoot:
		return sweep(1400, 400, 60*time.Millisecond, 0.25)
	case core.SoundExplodeSmall:
		return noise(90*time.Millisecond, 0.3)
	case core.SoundExplodeLarge:
		return noise(220*time.Millisecond, 0.45)
	case core.SoundSplit:
		return sweep(300, 900, 80*time.Millisecond, 0.25)
	case core.SoundPowerUp:
		return sweep(500, 1600, 150*time.Millisecond, 0.3)
	case core.SoundBomb:
		return noise(400*time.Millisecond, 0.5)
	case core.SoundUFO:
		return sweep(700, 900, 40*time.Millisecond, 0.15)
	case core.SoundDeath:
		return sweep(800, 80, 500*time.Millisecond, 0.4)
	case core.SoundCombo:
		return sweep(900, 1800, 120*time.Millisecond, 0.3)
	default:
		return nil
	}
}

// sweep generates a square wave gliding linearly from startHz to endHz with
// a linear fade-out.
func sweep(startHz, endHz float64, dur time.Duration, vol float64) beep.Streamer {
	total := sampleRate.N(dur)
	pos := 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(total)
			freq := startHz + (endHz-startHz)*t
			phase += freq / float64(sampleRate)
			if phase >= 1 {
				phase -= 1
			}

			v := vol * (1 - t)
			if phase < 0.5 {
				v = -v
			}
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// noise generates decaying white noise for explosions. A cheap LCG keeps
// the generator allocation-free.
func noise(dur time.Duration, vol float64) beep.Streamer {
	total := sampleRate.N(dur)
	pos := 0
	state := uint64(0x9e3779b97f4a7c15)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			state = state*6364136223846793005 + 1442695040888963407
			r := float64(int64(state>>11))/float64(1<<52) - 1 // [-1, 1)

			decay := math.Pow(1-float64(pos)/float64(total), 2)
			v := vol * decay * r
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
