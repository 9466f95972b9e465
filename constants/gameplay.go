package constants

import "time"

// Player Physics
const (
	// Gravity is the per-step downward velocity change
	Gravity = 0.6

	// JumpBoost is the instantaneous velocity of a fresh jump
	JumpBoost = 11.0

	// DoubleJumpFactor scales JumpBoost for the second air jump
	DoubleJumpFactor = 0.6

	// MaxJumps is the number of jumps allowed before touching the floor
	MaxJumps = 2

	// HoldBoost is the per-step thrust while the jump press is held
	HoldBoost = 0.35

	// MaxHoldSeconds caps how long the held press keeps thrusting
	MaxHoldSeconds = 0.25

	// EnergyLoss is the bounce retention factor on floor/ceiling contact
	EnergyLoss = 0.65

	// MinBounceVelocity zeroes micro-bounces so the ball settles
	MinBounceVelocity = 1.2

	// PlayerSize is the unscaled hitbox edge of the player ball
	PlayerSize = 40.0

	// HorizontalEase is the per-step approach factor toward the input target
	HorizontalEase = 0.25

	// BounceSoundDebounce suppresses bounce audio retriggers
	BounceSoundDebounce = 90 * time.Millisecond

	// BounceSoundFullVolume is the impact speed mapped to volume 1.0
	BounceSoundFullVolume = 14.0
)

// Squash-Stretch Animation
const (
	// ScaleSmoothing is the exponential approach factor toward the target scale
	ScaleSmoothing = 0.15

	// StretchPerVelocity converts |velocity| to airborne stretch
	StretchPerVelocity = 0.018

	// MaxStretch caps airborne deformation
	MaxStretch = 0.25

	// RestSquashX and RestSquashY are the grounded resting deformation
	RestSquashX = 1.12
	RestSquashY = 0.88
)

// Enemy Behavior
const (
	// EnemySize is the unscaled hitbox edge of the enemy launcher
	EnemySize = 48.0

	// EnemyIntroSteps is the length of the intro sequence: jumps on even
	// steps, ground waits on odd steps (three jumps total)
	EnemyIntroSteps = 5

	// EnemyIntroBaseHold and EnemyIntroHoldIncrement set the auto-hold
	// duration of intro jump j to base + j*increment seconds
	EnemyIntroBaseHold      = 0.10
	EnemyIntroHoldIncrement = 0.11

	// EnemyIntroWaitSeconds is the grounded pause between intro jumps
	EnemyIntroWaitSeconds = 0.35

	// HoverHandoffDelay is how long past the velocity peak the final descent
	// must continue before hover capture (avoids a visible teleport)
	HoverHandoffDelay = 0.25

	// HoverStiffness and HoverDamping shape the damped settle oscillation
	// toward the hover target
	HoverStiffness = 0.012
	HoverDamping   = 0.93

	// HoverFloatAmplitude and HoverFloatPeriod drive the idle sinusoidal float
	HoverFloatAmplitude = 6.0
	HoverFloatPeriod    = 2.2

	// EnemyHoverTargetY is the default hover altitude
	EnemyHoverTargetY = 220.0

	// BounceModeMinJumps and BounceModeMaxJumps bound the randomized bounce
	// count of a bounce-mode interlude (before the final big bounce)
	BounceModeMinJumps = 3
	BounceModeMaxJumps = 4

	// BounceModeMinBoost and BounceModeMaxBoost bound randomized bounce heights
	BounceModeMinBoost = 7.0
	BounceModeMaxBoost = 12.0

	// BounceModeFinalBoost is the large closing bounce
	BounceModeFinalBoost = 15.0

	// BounceModeMinWait and BounceModeMaxWait bound the randomized grounded
	// pause between bounce-mode jumps, in seconds
	BounceModeMinWait = 0.10
	BounceModeMaxWait = 0.45
)

// Laser Pool
const (
	// LaserSpeed is the per-step leftward travel
	LaserSpeed = 6.0

	// LaserWidth and LaserHeight are the normal laser rectangle
	LaserWidth  = 26.0
	LaserHeight = 10.0

	// WideLaserFactor doubles the rare wide variant
	WideLaserFactor = 2.0

	// BaseLaserCount is the pool size at score zero
	BaseLaserCount = 1

	// LaserUnlockInterval is score per additional pooled laser
	LaserUnlockInterval = 10

	// MaxLasers bounds the pool
	MaxLasers = 5

	// SingleLaserFireDelay is the fixed respawn delay (in steps) used while
	// the pool holds one laser; larger pools derive delay from even spacing
	SingleLaserFireDelay = 85.0

	// OffscreenX parks inactive lasers left of the world
	OffscreenX = -200.0

	// ChaosBase is the base vertical randomness of a spawn target
	ChaosBase = 170.0

	// ChaosCycleScore is the score interval over which the chaos multiplier
	// ramps before resetting
	ChaosCycleScore = 25

	// ChaosCycleGain is the extra randomness at the top of a chaos cycle
	ChaosCycleGain = 1.1

	// LaserSteer is the per-step ease of a laser's Y toward its target
	LaserSteer = 0.06

	// WideUnlockScore enables the wide variant
	WideUnlockScore = 30

	// WideEveryNthDodge fires a wide laser on every Nth successful dodge
	WideEveryNthDodge = 7

	// WideHitValue is the enemy-hit award for a wide laser connecting
	WideHitValue = 3
)

// Player Projectiles
const (
	// ProjectileSpeed is the per-step rightward travel of a player shot
	ProjectileSpeed = 11.0

	// ProjectileSize is the square hitbox edge of a shot
	ProjectileSize = 12.0

	// MaxProjectiles bounds simultaneous active shots
	MaxProjectiles = 16
)

// Growth / Out Economy
const (
	// HitsPerOut converts accumulated hits into one out
	HitsPerOut = 20

	// MaxOuts on either side ends the game
	MaxOuts = 10

	// MaxGrowthLevels caps growth in either direction
	MaxGrowthLevels = 5

	// GrowthScalePerLevel is the hitbox/visual scale gained per growth level
	GrowthScalePerLevel = 0.12

	// Player-out counts that send the enemy into a bounce-mode interlude
	BounceModeMilestoneA = 4
	BounceModeMilestoneB = 7
	BounceModeMilestoneC = 10
)

// Energy / Shooting
const (
	// MaxEnergy is the energy meter cap (100%)
	MaxEnergy = 100.0

	// ShootUnlockScore gates the shoot ability
	ShootUnlockScore = 20

	// EnergyPerDodge refills energy per scored dodge after unlock
	EnergyPerDodge = 5.0

	// EnergyPerShot is the cost of one projectile
	EnergyPerShot = 10.0

	// MinShootCooldown applies at full energy, MaxShootCooldown at empty;
	// the effective cooldown is a linear blend between them
	MinShootCooldown = 200 * time.Millisecond
	MaxShootCooldown = 900 * time.Millisecond
)
