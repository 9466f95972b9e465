package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
	"github.com/lixenwraith/bounce-fighter/physics"
)

// EnemyPhase is the enemy launcher's behavior state. Transitions are handled
// exhaustively in Update; invalid flag combinations cannot be represented.
type EnemyPhase int

const (
	// EnemyIntro is the opening jump sequence: three physics-driven jumps of
	// increasing hold duration with grounded waits between them.
	EnemyIntro EnemyPhase = iota
	// EnemyHover floats toward an externally set target with a damped settle
	// oscillation and a continuous sinusoidal idle float. Physics is off.
	EnemyHover
	// EnemyBounce is the periodic interlude: physics back on, a few
	// randomized bounces, then one large final bounce handing back to hover.
	EnemyBounce
	// EnemyDisabled is terminal. Physics stays on only so the launcher
	// settles to the floor; no further behavior.
	EnemyDisabled
)

// EnemySystem drives the enemy launcher. The same gravity/bounce integration
// as the player serves the intro and bounce-mode spectacle, while steady-state
// hover uses cheap interpolation. Hand-offs between the two capture the
// current velocity so the sprite never snaps.
type EnemySystem struct {
	cfg *config.Tunables
	rng *rand.Rand

	state core.EnemyState
	phase EnemyPhase

	introComplete bool
	introStep     int // 0..EnemyIntroSteps-1; jumps on even steps
	airborne      bool

	holdUntil float64 // game time when the auto-hold thrust ends
	waitUntil float64 // game time when the next grounded action fires

	handoffArmed  bool
	descentSince  float64 // game time of the velocity peak on the final jump
	pendingHover  bool    // final jump of intro/bounce is in flight
	bounceDone    int
	bounceTarget  int
	finalBounce   bool
	bounceWaiting bool

	hoverY       float64 // settle position, before the idle float offset
	hoverTargetY float64
	hoverVel     float64 // downward-positive settle velocity
	floatPhase   float64

	gameTime float64
}

// NewEnemySystem creates the enemy resting on the floor, ready to run its
// intro. The RNG is injected so trajectories are reproducible under a seed.
func NewEnemySystem(cfg *config.Tunables, rng *rand.Rand) *EnemySystem {
	es := &EnemySystem{cfg: cfg, rng: rng}
	es.Reset()
	return es
}

// Reset restarts the behavior machine from the intro.
func (es *EnemySystem) Reset() {
	es.state = core.EnemyState{
		Pos:    core.Position{X: es.cfg.EnemyX, Y: es.cfg.FloorY},
		ScaleX: 1,
		ScaleY: 1,
	}
	es.phase = EnemyIntro
	es.introComplete = false
	es.introStep = 0
	es.airborne = false
	es.holdUntil = 0
	es.waitUntil = 0
	es.handoffArmed = false
	es.pendingHover = false
	es.bounceDone = 0
	es.bounceTarget = 0
	es.finalBounce = false
	es.bounceWaiting = false
	es.hoverTargetY = es.cfg.EnemyHoverTargetY
	es.hoverVel = 0
	es.floatPhase = 0
	es.gameTime = 0
	es.launchIntroJump()
}

// State returns a copy of the enemy state for snapshots and collision.
func (es *EnemySystem) State() core.EnemyState { return es.state }

// Phase returns the current behavior phase.
func (es *EnemySystem) Phase() EnemyPhase { return es.phase }

// HasCompletedIntro gates laser spawning: no fire until the intro hand-off.
func (es *EnemySystem) HasCompletedIntro() bool { return es.introComplete }

// IsHoverMode reports steady-state hovering.
func (es *EnemySystem) IsHoverMode() bool { return es.phase == EnemyHover }

// IsBounceModeActive reports a bounce-mode interlude in progress.
func (es *EnemySystem) IsBounceModeActive() bool { return es.phase == EnemyBounce }

// IsDisabled reports the terminal phase; lasers stop entirely.
func (es *EnemySystem) IsDisabled() bool { return es.phase == EnemyDisabled }

// SetTargetY drives the hover destination from outside, clamped to the arena.
func (es *EnemySystem) SetTargetY(y float64) {
	es.hoverTargetY = physics.Clamp(y, 0, es.cfg.FloorY)
}

// StartBounceMode switches a hovering enemy into the bounce interlude.
// Ignored in any other phase.
func (es *EnemySystem) StartBounceMode() {
	if es.phase != EnemyHover {
		return
	}
	es.phase = EnemyBounce
	es.state.Pos.Y = es.hoverY
	es.state.Velocity = -es.hoverVel
	es.bounceDone = 0
	es.bounceTarget = constants.BounceModeMinJumps +
		es.rng.Intn(constants.BounceModeMaxJumps-constants.BounceModeMinJumps+1)
	es.finalBounce = false
	es.bounceWaiting = false
	es.handoffArmed = false
	es.pendingHover = false
}

// Disable is the terminal transition at max outs. The launcher keeps falling
// under gravity until it settles on the floor.
func (es *EnemySystem) Disable() {
	if es.phase == EnemyDisabled {
		return
	}
	if es.phase == EnemyHover {
		es.state.Pos.Y = es.hoverY
		es.state.Velocity = -es.hoverVel
	}
	es.phase = EnemyDisabled
}

// Update advances one integration step.
func (es *EnemySystem) Update(step float64) {
	es.gameTime += step * constants.ReferenceStepSeconds

	switch es.phase {
	case EnemyIntro:
		es.updateIntro(step)
	case EnemyHover:
		es.updateHover(step)
	case EnemyBounce:
		es.updateBounce(step)
	case EnemyDisabled:
		es.integrate(step)
	}

	es.updateScale(step)
}

// integrate runs the shared gravity/bounce physics, returning impact speed on
// floor contact.
func (es *EnemySystem) integrate(step float64) float64 {
	if es.holdUntil > es.gameTime {
		es.state.Velocity += es.cfg.HoldBoost * step
	}
	k := physics.Kinetic{Y: es.state.Pos.Y, Velocity: es.state.Velocity}
	physics.Integrate(&k, es.cfg.Gravity, step)
	impact := physics.ReflectFloor(&k, es.cfg.FloorY, es.cfg.EnergyLoss, es.cfg.MinBounceVelocity)
	physics.ReflectCeiling(&k, es.cfg.EnergyLoss)
	es.state.Pos.Y = k.Y
	es.state.Velocity = k.Velocity
	return impact
}

func (es *EnemySystem) launchIntroJump() {
	jump := es.introStep / 2
	es.state.Velocity = es.cfg.JumpBoost
	es.holdUntil = es.gameTime + constants.EnemyIntroBaseHold +
		float64(jump)*constants.EnemyIntroHoldIncrement
	es.airborne = true
	// The final intro jump never lands: hover captures it mid-descent
	es.pendingHover = es.introStep == constants.EnemyIntroSteps-1
	es.handoffArmed = false
}

func (es *EnemySystem) updateIntro(step float64) {
	if !es.airborne {
		if es.gameTime >= es.waitUntil {
			es.introStep++ // leave the wait step
			es.launchIntroJump()
		}
		return
	}

	impact := es.integrate(step)

	if es.pendingHover {
		es.checkHoverHandoff()
		return
	}

	if impact > 0 {
		// Jump step complete; wait on the ground before the next one
		es.airborne = false
		es.state.Velocity = 0
		es.introStep++
		es.waitUntil = es.gameTime + constants.EnemyIntroWaitSeconds
	}
}

// checkHoverHandoff arms on the velocity peak of the final jump and fires
// once the descent has continued for the configured delay, capturing the
// current velocity so hover picks up without a teleport.
func (es *EnemySystem) checkHoverHandoff() {
	if !es.handoffArmed {
		if es.state.Velocity <= 0 {
			es.handoffArmed = true
			es.descentSince = es.gameTime
		}
		return
	}
	if es.gameTime-es.descentSince >= constants.HoverHandoffDelay {
		es.enterHover()
	}
}

func (es *EnemySystem) enterHover() {
	es.phase = EnemyHover
	es.introComplete = true
	es.hoverY = es.state.Pos.Y
	es.hoverVel = -es.state.Velocity
	es.state.Velocity = 0
	es.handoffArmed = false
	es.pendingHover = false
}

func (es *EnemySystem) updateHover(step float64) {
	dt := step * constants.ReferenceStepSeconds
	es.floatPhase += 2 * math.Pi * dt / constants.HoverFloatPeriod

	// Damped spring toward the target: the captured hand-off velocity decays
	// into the settle oscillation
	es.hoverVel += (es.hoverTargetY - es.hoverY) * constants.HoverStiffness * step
	es.hoverVel *= math.Pow(constants.HoverDamping, step)
	es.hoverY += es.hoverVel * step

	es.state.Pos.Y = es.hoverY + constants.HoverFloatAmplitude*math.Sin(es.floatPhase)
}

func (es *EnemySystem) updateBounce(step float64) {
	if es.bounceWaiting {
		if es.gameTime >= es.waitUntil {
			es.bounceWaiting = false
			if es.bounceDone < es.bounceTarget {
				es.state.Velocity = constants.BounceModeMinBoost +
					es.rng.Float64()*(constants.BounceModeMaxBoost-constants.BounceModeMinBoost)
				es.bounceDone++
			} else {
				// One large final bounce, then hand back to hover
				es.state.Velocity = constants.BounceModeFinalBoost
				es.finalBounce = true
			}
		}
		return
	}

	impact := es.integrate(step)

	if es.finalBounce {
		es.checkHoverHandoff()
		return
	}

	if impact > 0 {
		es.state.Velocity = 0
		es.bounceWaiting = true
		es.waitUntil = es.gameTime + constants.BounceModeMinWait +
			es.rng.Float64()*(constants.BounceModeMaxWait-constants.BounceModeMinWait)
	}
}

func (es *EnemySystem) updateScale(step float64) {
	velocity := es.state.Velocity
	if es.phase == EnemyHover {
		velocity = -es.hoverVel
	}
	k := physics.Kinetic{Y: es.state.Pos.Y, Velocity: es.state.Velocity}
	grounded := es.phase != EnemyHover && physics.Grounded(&k, es.cfg.FloorY)
	tx, ty := physics.SquashStretch(velocity, grounded)
	factor := physics.Clamp(constants.ScaleSmoothing*step, 0, 1)
	es.state.ScaleX = physics.Approach(es.state.ScaleX, tx, factor)
	es.state.ScaleY = physics.Approach(es.state.ScaleY, ty, factor)
}

// HalfWidth returns the growth-scaled half extent of the enemy hitbox.
func (es *EnemySystem) HalfWidth(growthLevel int) float64 {
	return es.cfg.EnemySize / 2 * (1 + float64(growthLevel)*es.cfg.GrowthScalePerLevel)
}
