package constants

import "time"

// Audio Synthesis
const (
	// BounceFreq is the base frequency of the floor-impact thump
	BounceFreq = 140.0

	// JumpFreq is the jump blip frequency
	JumpFreq = 520.0

	// LaserHitFreq is the buzz frequency when a laser connects
	LaserHitFreq = 110.0

	// ShootFreq is the projectile chirp frequency
	ShootFreq = 880.0

	// EnemyHitFreq is the confirmation ping for a landed shot
	EnemyHitFreq = 660.0

	// GameOverFreq is the terminal jingle base frequency
	GameOverFreq = 220.0

	// ShortEffectDuration covers blips and thumps
	ShortEffectDuration = 90 * time.Millisecond

	// BuzzEffectDuration covers the laser-hit buzz
	BuzzEffectDuration = 180 * time.Millisecond

	// GameOverEffectDuration covers the closing jingle
	GameOverEffectDuration = 600 * time.Millisecond
)
