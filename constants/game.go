package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceStepSeconds is the simulation step the tuning numbers assume.
	// Measured frame deltas are normalized against this so play-feel at 60Hz
	// matches the reference tuning.
	ReferenceStepSeconds = 1.0 / 60.0

	// MaxStepsPerFrame caps catch-up integration after a long stall
	MaxStepsPerFrame = 3
)

// World Geometry Defaults
const (
	// WorldWidth and WorldHeight are simulation-space dimensions; the
	// renderer maps them to terminal cells
	WorldWidth  = 800.0
	WorldHeight = 480.0

	// FloorY is the resting line for the centers of the player and enemy
	FloorY = 420.0

	// PlayerAnchorX is the fixed horizontal anchor of the player ball
	PlayerAnchorX = 180.0

	// PlayerRangeX is how far horizontal input can move the ball off anchor
	PlayerRangeX = 110.0

	// EnemyX is the enemy launcher's fixed horizontal position
	EnemyX = 680.0
)
