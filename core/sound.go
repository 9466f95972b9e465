package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce   SoundType = iota // Floor/ceiling impact thump
	SoundJump                      // Jump and double-jump blip
	SoundLaserHit                  // Laser striking the player
	SoundShoot                     // Player projectile fired
	SoundEnemyHit                  // Player projectile striking the enemy
	SoundGameOver                  // Terminal jingle, both variants
	SoundTypeCount
)

// SoundPlayer receives fire-and-forget playback requests from the simulation.
// Volume is in [0,1]. Implementations must never block the caller; the
// simulation runs identically with a nil player.
type SoundPlayer interface {
	Play(t SoundType, volume float64)
	SetMuted(muted bool)
	Muted() bool
}

// NopPlayer discards all playback requests. Used when audio initialization
// fails or in tests.
type NopPlayer struct{}

func (NopPlayer) Play(SoundType, float64) {}
func (NopPlayer) SetMuted(bool)           {}
func (NopPlayer) Muted() bool             { return true }
