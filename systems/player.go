package systems

import (
	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
	"github.com/lixenwraith/bounce-fighter/physics"
)

// PlayerSystem owns the player ball: gravity/jump/hold integration,
// horizontal easing toward the input target, squash-stretch animation and
// bounce-sound triggers. All numeric state is clamped, never rejected.
type PlayerSystem struct {
	cfg   *config.Tunables
	sound core.SoundPlayer

	state   core.PlayerState
	targetX float64

	gameTime        float64 // accumulated simulation seconds
	lastBounceSound float64
}

// NewPlayerSystem creates the player at its resting position.
func NewPlayerSystem(cfg *config.Tunables, sound core.SoundPlayer) *PlayerSystem {
	ps := &PlayerSystem{cfg: cfg, sound: sound}
	ps.Reset()
	return ps
}

// Reset recreates the state wholesale at the resting position.
func (ps *PlayerSystem) Reset() {
	ps.state = core.PlayerState{
		Pos:    core.Position{X: ps.cfg.PlayerAnchorX, Y: ps.cfg.FloorY},
		ScaleX: 1,
		ScaleY: 1,
	}
	ps.targetX = ps.cfg.PlayerAnchorX
	ps.gameTime = 0
	ps.lastBounceSound = -1
}

// State returns a copy of the player state for the frame snapshot.
func (ps *PlayerSystem) State() core.PlayerState {
	return ps.state
}

// Priority orders the player before collision consumers.
func (ps *PlayerSystem) Priority() int {
	return 10
}

// StartJump begins a press gesture. The first jump uses the full boost, the
// second (air) jump a reduced one; further presses before landing are no-ops.
// The jump counter only resets on floor contact.
func (ps *PlayerSystem) StartJump() {
	if ps.state.JumpCount >= constants.MaxJumps {
		return
	}
	boost := ps.cfg.JumpBoost
	if ps.state.JumpCount > 0 {
		boost *= ps.cfg.DoubleJumpFactor
	}
	ps.state.Velocity = boost
	ps.state.JumpCount++
	ps.state.HasJumped = true
	ps.state.IsHolding = true
	ps.state.HoldStart = ps.gameTime
	if ps.sound != nil {
		ps.sound.Play(core.SoundJump, 1)
	}
}

// EndJump releases the press gesture, cutting the hold thrust.
func (ps *PlayerSystem) EndJump() {
	ps.state.IsHolding = false
}

// SetMousePosition maps an absolute horizontal input coordinate to a target
// within the configured range around the fixed anchor. The ball eases toward
// the target during Update.
func (ps *PlayerSystem) SetMousePosition(x, screenWidth float64) {
	if screenWidth <= 0 {
		return
	}
	ratio := physics.Clamp(x/screenWidth, 0, 1)
	ps.targetX = ps.cfg.PlayerAnchorX - ps.cfg.PlayerRangeX + ratio*2*ps.cfg.PlayerRangeX
}

// Update advances one integration step. step is the fraction of the
// reference 60Hz step covered (1.0 at a nominal frame).
func (ps *PlayerSystem) Update(step float64) {
	ps.gameTime += step * constants.ReferenceStepSeconds

	// Hold thrust: continuous boost while the press is held, capped in time
	if ps.state.IsHolding && ps.gameTime-ps.state.HoldStart < ps.cfg.MaxHoldSeconds {
		ps.state.Velocity += ps.cfg.HoldBoost * step
	}

	k := physics.Kinetic{Y: ps.state.Pos.Y, Velocity: ps.state.Velocity}
	physics.Integrate(&k, ps.cfg.Gravity, step)

	if impact := physics.ReflectFloor(&k, ps.cfg.FloorY, ps.cfg.EnergyLoss, ps.cfg.MinBounceVelocity); impact > 0 {
		ps.state.HasJumped = false
		ps.state.JumpCount = 0
		ps.playBounce(impact)
	}
	physics.ReflectCeiling(&k, ps.cfg.EnergyLoss)

	ps.state.Pos.Y = k.Y
	ps.state.Velocity = k.Velocity

	// Horizontal easing toward the input target
	ps.state.Pos.X = physics.Approach(ps.state.Pos.X, ps.targetX, constants.HorizontalEase)

	// Squash-stretch, smoothed toward the velocity-derived target
	grounded := physics.Grounded(&k, ps.cfg.FloorY)
	tx, ty := physics.SquashStretch(ps.state.Velocity, grounded)
	ps.state.ScaleX = physics.Approach(ps.state.ScaleX, tx, constants.ScaleSmoothing)
	ps.state.ScaleY = physics.Approach(ps.state.ScaleY, ty, constants.ScaleSmoothing)
}

// playBounce emits the impact thump, volume scaled by impact speed and
// debounced so resting contact stays silent.
func (ps *PlayerSystem) playBounce(impact float64) {
	if impact < ps.cfg.MinBounceVelocity {
		return
	}
	debounce := constants.BounceSoundDebounce.Seconds()
	if ps.lastBounceSound >= 0 && ps.gameTime-ps.lastBounceSound < debounce {
		return
	}
	ps.lastBounceSound = ps.gameTime
	if ps.sound != nil {
		ps.sound.Play(core.SoundBounce, physics.Clamp(impact/constants.BounceSoundFullVolume, 0, 1))
	}
}

// HalfWidth returns the growth-scaled half extent of the player hitbox.
func (ps *PlayerSystem) HalfWidth(growthLevel int) float64 {
	return ps.cfg.PlayerSize / 2 * (1 + float64(growthLevel)*ps.cfg.GrowthScalePerLevel)
}
