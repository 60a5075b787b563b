package core

// Sound identifies a fire-and-forget audio effect. The engine triggers
// sounds; a platform-provided SoundPlayer decides what they sound like.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplodeSmall
	SoundExplodeLarge
	SoundSplit
	SoundPowerUp
	SoundBomb
	SoundUFO
	SoundDeath
	SoundCombo
)

// SoundPlayer plays sound effects best-effort. Play must never block the
// simulation; overlapping triggers are allowed to cut each other off.
type SoundPlayer interface {
	Play(s Sound)
}

// NopSoundPlayer discards all sound triggers. Used headless and in tests.
type NopSoundPlayer struct{}

// Play implements SoundPlayer.
func (NopSoundPlayer) Play(Sound) {}
