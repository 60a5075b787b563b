package meteor

// Snapshot captures the gameplay-relevant state for determinism tests.
// Two runs with the same seed and inputs must produce equal snapshots at
// every tick.
type Snapshot struct {
	Frame          uint64
	Phase          Phase
	Score          int
	Lives          int
	Wave           int
	ShipX          int
	MeteorsAlive   int
	MeteorsSpawned int
	ComboCount     int
	ComboTimer     int
	DoubleTimer    int
	Meteors        [MaxMeteors]Meteor
	Bullet         Bullet
	Bullet2        Bullet
	Power          PowerUp
	UFO            UFO
	RNGState       uint64
}

// Snapshot returns the current deterministic state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:          g.frame,
		Phase:          g.phase,
		Score:          g.score,
		Lives:          g.lives,
		Wave:           g.wave,
		ShipX:          g.shipX,
		MeteorsAlive:   g.meteorsAlive,
		MeteorsSpawned: g.meteorsSpawned,
		ComboCount:     g.comboCount,
		ComboTimer:     g.comboTimer,
		DoubleTimer:    g.doubleTimer,
		Meteors:        g.meteors,
		Bullet:         g.bullet,
		Bullet2:        g.bullet2,
		Power:          g.power,
		UFO:            g.ufo,
		RNGState:       g.rng.State(),
	}
}

// Hash folds the snapshot into a single comparable value.
func (s Snapshot) Hash() uint64 {
	h := uint64(14695981039346656037)
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(s.Frame)
	mix(uint64(s.Phase))
	mix(uint64(s.Score))   //#nosec G115 -- score is non-negative
	mix(uint64(s.Lives))   //#nosec G115
	mix(uint64(s.Wave))    //#nosec G115
	mix(uint64(s.ShipX))   //#nosec G115
	mix(uint64(s.MeteorsAlive + 1))
	mix(uint64(s.MeteorsSpawned))
	mix(uint64(s.ComboCount))
	mix(uint64(s.ComboTimer))
	mix(uint64(s.DoubleTimer))
	mix(s.RNGState)

	for _, m := range s.Meteors {
		if !m.Active {
			mix(0)
			continue
		}
		mix(uint64(m.X + 1))
		mix(uint64(m.Y + 1))
		mix(uint64(m.Drift + 2))
		mix(uint64(m.Speed))
		mix(uint64(m.HP))
		mix(uint64(m.Size) + 1)
	}

	for _, b := range []Bullet{s.Bullet, s.Bullet2} {
		if !b.Active {
			mix(0)
			continue
		}
		mix(uint64(b.X + 1))
		mix(uint64(b.Y + 1))
	}

	if s.Power.Active {
		mix(uint64(s.Power.Type))
		mix(uint64(s.Power.X + 1))
		mix(uint64(s.Power.Y + 1))
	}
	if s.UFO.Active {
		mix(uint64(s.UFO.X + 1))
		mix(uint64(s.UFO.Dir + 2))
	}
	mix(uint64(s.UFO.Timer))

	return h
}
