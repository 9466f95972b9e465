package core

// Position is a 2D world-space coordinate. Y grows downward; the floor is at
// the configured FloorY and the ceiling is at 0.
type Position struct {
	X float64
	Y float64
}

// PlayerState holds the full physical state of the player ball. It is owned
// by the player system and mutated only through its methods; everyone else
// reads copies via the frame snapshot.
type PlayerState struct {
	Pos      Position
	Velocity float64 // vertical, positive is upward
	ScaleX   float64
	ScaleY   float64

	HasJumped bool // set on jump, cleared on floor contact
	IsHolding bool
	HoldStart float64 // game-time seconds at press
	JumpCount int     // 0..2, reset on floor contact
}

// EnemyState holds the enemy launcher's physical state. Behavior phase lives
// in the enemy system; this is the shape the renderer and collision code see.
type EnemyState struct {
	Pos      Position
	Velocity float64 // vertical, positive is upward
	ScaleX   float64
	ScaleY   float64
}

// LaserState is one pooled enemy laser. Inactive lasers park off-screen
// (X < 0) and are recycled in place by the spawner rather than removed.
type LaserState struct {
	X      float64
	Y      float64
	Width  float64
	Hit    bool // collided with the player; blocks pass scoring
	Scored bool
	Passed bool
	NextY  float64 // precomputed target Y for the next respawn
}

// Projectile is one player shot, travelling toward the enemy.
type Projectile struct {
	X      float64
	Y      float64
	Active bool
}
