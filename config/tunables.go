package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bounce-fighter/constants"
)

// Tunables is the full numeric configuration surface of the simulation.
// Every value is an input; none are derived. Defaults come from the
// constants package and an optional YAML file overrides them.
type Tunables struct {
	// World geometry
	WorldWidth    float64 `yaml:"worldWidth"`
	WorldHeight   float64 `yaml:"worldHeight"`
	FloorY        float64 `yaml:"floorY"`
	PlayerAnchorX float64 `yaml:"playerAnchorX"`
	PlayerRangeX  float64 `yaml:"playerRangeX"`
	EnemyX        float64 `yaml:"enemyX"`

	// Player physics
	Gravity           float64 `yaml:"gravity"`
	JumpBoost         float64 `yaml:"jumpBoost"`
	DoubleJumpFactor  float64 `yaml:"doubleJumpFactor"`
	HoldBoost         float64 `yaml:"holdBoost"`
	MaxHoldSeconds    float64 `yaml:"maxHoldSeconds"`
	EnergyLoss        float64 `yaml:"energyLoss"`
	MinBounceVelocity float64 `yaml:"minBounceVelocity"`
	PlayerSize        float64 `yaml:"playerSize"`

	// Enemy
	EnemySize         float64 `yaml:"enemySize"`
	EnemyHoverTargetY float64 `yaml:"enemyHoverTargetY"`

	// Lasers
	LaserSpeed          float64 `yaml:"laserSpeed"`
	LaserWidth          float64 `yaml:"laserWidth"`
	LaserHeight         float64 `yaml:"laserHeight"`
	BaseLaserCount      int     `yaml:"baseLaserCount"`
	LaserUnlockInterval int     `yaml:"laserUnlockInterval"`
	MaxLasers           int     `yaml:"maxLasers"`
	WideUnlockScore     int     `yaml:"wideUnlockScore"`
	WideEveryNthDodge   int     `yaml:"wideEveryNthDodge"`
	WideHitValue        int     `yaml:"wideHitValue"`

	// Projectiles
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	ProjectileSize  float64 `yaml:"projectileSize"`

	// Growth / out economy
	HitsPerOut          int     `yaml:"hitsPerOut"`
	MaxOuts             int     `yaml:"maxOuts"`
	MaxGrowthLevels     int     `yaml:"maxGrowthLevels"`
	GrowthScalePerLevel float64 `yaml:"growthScalePerLevel"`

	// Energy / shooting
	ShootUnlockScore int     `yaml:"shootUnlockScore"`
	EnergyPerDodge   float64 `yaml:"energyPerDodge"`
	EnergyPerShot    float64 `yaml:"energyPerShot"`

	// Behavior toggles
	// MissPenalty restores the legacy -1 score on passing a laser without
	// jumping. Off by default.
	MissPenalty bool `yaml:"missPenalty"`
	// FixedStep forces the legacy one-step-per-frame integration instead of
	// measured-delta normalization.
	FixedStep bool `yaml:"fixedStep"`
}

// Default returns the reference tuning.
func Default() *Tunables {
	return &Tunables{
		WorldWidth:    constants.WorldWidth,
		WorldHeight:   constants.WorldHeight,
		FloorY:        constants.FloorY,
		PlayerAnchorX: constants.PlayerAnchorX,
		PlayerRangeX:  constants.PlayerRangeX,
		EnemyX:        constants.EnemyX,

		Gravity:           constants.Gravity,
		JumpBoost:         constants.JumpBoost,
		DoubleJumpFactor:  constants.DoubleJumpFactor,
		HoldBoost:         constants.HoldBoost,
		MaxHoldSeconds:    constants.MaxHoldSeconds,
		EnergyLoss:        constants.EnergyLoss,
		MinBounceVelocity: constants.MinBounceVelocity,
		PlayerSize:        constants.PlayerSize,

		EnemySize:         constants.EnemySize,
		EnemyHoverTargetY: constants.EnemyHoverTargetY,

		LaserSpeed:          constants.LaserSpeed,
		LaserWidth:          constants.LaserWidth,
		LaserHeight:         constants.LaserHeight,
		BaseLaserCount:      constants.BaseLaserCount,
		LaserUnlockInterval: constants.LaserUnlockInterval,
		MaxLasers:           constants.MaxLasers,
		WideUnlockScore:     constants.WideUnlockScore,
		WideEveryNthDodge:   constants.WideEveryNthDodge,
		WideHitValue:        constants.WideHitValue,

		ProjectileSpeed: constants.ProjectileSpeed,
		ProjectileSize:  constants.ProjectileSize,

		HitsPerOut:          constants.HitsPerOut,
		MaxOuts:             constants.MaxOuts,
		MaxGrowthLevels:     constants.MaxGrowthLevels,
		GrowthScalePerLevel: constants.GrowthScalePerLevel,

		ShootUnlockScore: constants.ShootUnlockScore,
		EnergyPerDodge:   constants.EnergyPerDodge,
		EnergyPerShot:    constants.EnergyPerShot,
	}
}

// Load reads a YAML tunables file layered over the defaults.
func Load(path string) (*Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tunables file: %w", err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tunables file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tunables: %w", err)
	}
	return t, nil
}

// Validate checks that the tuning is internally consistent. The simulation
// clamps at runtime; this catches configurations that cannot make sense at
// all (inverted ranges, zero intervals).
func (t *Tunables) Validate() error {
	if t.WorldWidth <= 0 || t.WorldHeight <= 0 {
		return fmt.Errorf("world dimensions must be positive: %.1fx%.1f", t.WorldWidth, t.WorldHeight)
	}
	if t.FloorY <= 0 || t.FloorY > t.WorldHeight {
		return fmt.Errorf("floorY %.1f outside world height %.1f", t.FloorY, t.WorldHeight)
	}
	if t.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive: %.2f", t.Gravity)
	}
	if t.EnergyLoss < 0 || t.EnergyLoss > 1 {
		return fmt.Errorf("energyLoss must be in [0,1]: %.2f", t.EnergyLoss)
	}
	if t.DoubleJumpFactor <= 0 || t.DoubleJumpFactor > 1 {
		return fmt.Errorf("doubleJumpFactor must be in (0,1]: %.2f", t.DoubleJumpFactor)
	}
	if t.MaxHoldSeconds < 0 {
		return fmt.Errorf("maxHoldSeconds must not be negative: %.2f", t.MaxHoldSeconds)
	}
	if t.BaseLaserCount < 1 {
		return fmt.Errorf("baseLaserCount must be at least 1: %d", t.BaseLaserCount)
	}
	if t.MaxLasers < t.BaseLaserCount {
		return fmt.Errorf("maxLasers %d below baseLaserCount %d", t.MaxLasers, t.BaseLaserCount)
	}
	if t.LaserUnlockInterval <= 0 {
		return fmt.Errorf("laserUnlockInterval must be positive: %d", t.LaserUnlockInterval)
	}
	if t.LaserSpeed <= 0 {
		return fmt.Errorf("laserSpeed must be positive: %.2f", t.LaserSpeed)
	}
	if t.HitsPerOut <= 0 {
		return fmt.Errorf("hitsPerOut must be positive: %d", t.HitsPerOut)
	}
	if t.MaxOuts <= 0 {
		return fmt.Errorf("maxOuts must be positive: %d", t.MaxOuts)
	}
	if t.MaxGrowthLevels < 0 {
		return fmt.Errorf("maxGrowthLevels must not be negative: %d", t.MaxGrowthLevels)
	}
	if t.EnergyPerShot <= 0 {
		return fmt.Errorf("energyPerShot must be positive: %.2f", t.EnergyPerShot)
	}
	if t.PlayerRangeX < 0 {
		return fmt.Errorf("playerRangeX must not be negative: %.1f", t.PlayerRangeX)
	}
	return nil
}
