package engine

import (
	"github.com/lixenwraith/bounce-fighter/core"
)

// Snapshot is the read-only view handed to rendering each frame. It carries
// value copies only; mutating a snapshot has no effect on the simulation.
type Snapshot struct {
	Player core.PlayerState
	Enemy  core.EnemyState

	// Derived display scales, growth level already applied
	PlayerScale float64
	EnemyScale  float64

	EnemyHovering      bool
	EnemyBouncing      bool
	EnemyDisabled      bool
	EnemyIntroComplete bool

	Lasers      []core.LaserState
	Projectiles []core.Projectile

	Score         int
	Energy        float64
	PlayerHits    int
	EnemyHits     int
	PlayerOuts    int
	EnemyOuts     int
	PlayerGrowth  int
	EnemyGrowth   int
	ShootUnlocked bool
	GameOver      bool
	ShootGameOver bool
	Muted         bool
	FrameNumber   uint64
}
