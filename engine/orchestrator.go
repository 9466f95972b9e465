package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
	"github.com/lixenwraith/bounce-fighter/systems"
)

// Orchestrator composes the simulation systems and owns the authoritative
// game state. Every tick runs, in order: physics updates, collision
// resolution, scoring/growth bookkeeping, derived-state recomputation. All
// methods must be called from the single simulation goroutine.
type Orchestrator struct {
	cfg   *config.Tunables
	tp    TimeProvider
	sound core.SoundPlayer

	player *systems.PlayerSystem
	enemy  *systems.EnemySystem
	lasers *systems.LaserSystem
	shots  *systems.ProjectileSystem

	state GameState

	// Derived each tick so growth changes are visible the same frame
	playerScale float64
	enemyScale  float64

	haltSpawning bool
	lastShot     time.Time

	seed int64
	rng  *rand.Rand
}

// NewOrchestrator wires the systems. The seeded RNG behind the laser chaos
// and enemy bounce randomness is the only source of non-determinism; the
// same seed reproduces the same trajectory.
func NewOrchestrator(cfg *config.Tunables, tp TimeProvider, seed int64, sound core.SoundPlayer) *Orchestrator {
	rng := rand.New(rand.NewSource(seed))
	o := &Orchestrator{
		cfg:    cfg,
		tp:     tp,
		sound:  sound,
		seed:   seed,
		rng:    rng,
		player: systems.NewPlayerSystem(cfg, sound),
		enemy:  systems.NewEnemySystem(cfg, rng),
		lasers: systems.NewLaserSystem(cfg, rng),
		shots:  systems.NewProjectileSystem(cfg),
	}
	o.recomputeScales()
	return o
}

// Reset restores every subsystem and counter to initial values and reseeds
// the RNG, so a reset game replays the same trajectory as a fresh one.
func (o *Orchestrator) Reset() {
	o.rng.Seed(o.seed)
	o.player.Reset()
	o.enemy.Reset()
	o.lasers.Reset()
	o.shots.Reset()
	o.state = GameState{}
	o.haltSpawning = false
	o.lastShot = time.Time{}
	o.recomputeScales()
}

// StartJump forwards the press gesture. No-op once the game is over.
func (o *Orchestrator) StartJump() {
	if o.state.GameOver {
		return
	}
	o.player.StartJump()
}

// EndJump forwards the release gesture.
func (o *Orchestrator) EndJump() {
	if o.state.GameOver {
		return
	}
	o.player.EndJump()
}

// SetMousePosition forwards the horizontal input target.
func (o *Orchestrator) SetMousePosition(x, screenWidth float64) {
	if o.state.GameOver {
		return
	}
	o.player.SetMousePosition(x, screenWidth)
}

// Shoot fires a projectile if the ability is unlocked, energy covers the
// cost and the cooldown has elapsed. The cooldown blends from the slow end
// at empty energy to the fast end at full, on the wall clock so fire rate is
// independent of frame cadence.
func (o *Orchestrator) Shoot() {
	if o.state.GameOver || !o.state.ShootUnlocked {
		return
	}
	if o.state.Energy < o.cfg.EnergyPerShot {
		return
	}
	now := o.tp.Now()
	if !o.lastShot.IsZero() && now.Sub(o.lastShot) < o.shootCooldown() {
		return
	}
	if !o.shots.Shoot(o.player.State().Pos) {
		return
	}
	o.lastShot = now
	o.state.AddEnergy(-o.cfg.EnergyPerShot, constants.MaxEnergy)
	if o.sound != nil {
		o.sound.Play(core.SoundShoot, 1)
	}
}

// shootCooldown interpolates between the max and min cooldown by energy
// level: more energy, faster fire.
func (o *Orchestrator) shootCooldown() time.Duration {
	frac := o.state.Energy / constants.MaxEnergy
	span := float64(constants.MinShootCooldown - constants.MaxShootCooldown)
	return constants.MaxShootCooldown + time.Duration(frac*span)
}

// Update advances the simulation by the measured frame delta. The delta is
// normalized against the reference 60Hz step and capped so a long stall
// cannot fire a catch-up burst. Once the game-over latch is set the call is
// a no-op until Reset.
func (o *Orchestrator) Update(dt time.Duration) {
	if o.state.GameOver {
		return
	}
	o.state.FrameNumber++

	scale := 1.0
	if !o.cfg.FixedStep {
		scale = dt.Seconds() / constants.ReferenceStepSeconds
		if scale <= 0 {
			return
		}
		if scale > constants.MaxStepsPerFrame {
			scale = constants.MaxStepsPerFrame
		}
	}
	for scale > 0 && !o.state.GameOver {
		step := scale
		if step > 1 {
			step = 1
		}
		o.tick(step)
		scale -= step
	}
}

// tick runs one sub-step in the mandated order.
func (o *Orchestrator) tick(step float64) {
	// 1. Physics
	o.player.Update(step)
	o.enemy.Update(step)

	playerState := o.player.State()
	enemyState := o.enemy.State()

	// 2. Collision (lasers vs player, shots vs enemy)
	laserRes := o.lasers.Update(systems.LaserInput{
		Score:              o.state.Score,
		PlayerPos:          playerState.Pos,
		PlayerGrowthLevel:  o.state.PlayerGrowth,
		PlayerHasJumped:    playerState.HasJumped,
		EnemyY:             enemyState.Pos.Y,
		EnemyIntroComplete: o.enemy.HasCompletedIntro(),
		EnemyDisabled:      o.enemy.IsDisabled(),
		HaltSpawning:       o.haltSpawning,
	}, step)

	// The enemy chases each fired laser's target, so the next laser spawns
	// from where the previous one was aimed
	if laserRes.LaserFired {
		o.enemy.SetTargetY(laserRes.TargetY)
	}

	shotHits := o.shots.Update(step, o.cfg.EnemyX, enemyState.Pos.Y, o.enemy.HalfWidth(o.state.EnemyGrowth))

	// 3. Scoring and growth bookkeeping
	o.applyLaserResult(laserRes)
	o.applyShotHits(shotHits)

	// 4. Derived state, same frame as the growth change
	o.recomputeScales()
}

func (o *Orchestrator) applyLaserResult(res systems.LaserResult) {
	if res.ScoreChange != 0 {
		o.state.AddScore(res.ScoreChange)
	}

	// Energy mirrors score 1:1 until the shoot unlock, then refills per dodge
	if !o.state.ShootUnlocked {
		o.state.Energy = float64(clampInt(o.state.Score, 0, int(constants.MaxEnergy)))
		if o.state.Score >= o.cfg.ShootUnlockScore {
			o.state.ShootUnlocked = true
		}
	} else if res.Dodges > 0 {
		o.state.AddEnergy(float64(res.Dodges)*o.cfg.EnergyPerDodge, constants.MaxEnergy)
	}

	if !res.WasHit {
		return
	}
	if o.sound != nil {
		o.sound.Play(core.SoundLaserHit, 1)
	}
	o.state.RecordHitsOnPlayer(res.EnemyHitCount, o.cfg.HitsPerOut, o.cfg.MaxOuts, o.cfg.MaxGrowthLevels)
	if o.state.EnemyOuts >= o.cfg.MaxOuts {
		o.latchGameOver(false)
	}
}

func (o *Orchestrator) applyShotHits(hits int) {
	if hits == 0 {
		return
	}
	if o.sound != nil {
		o.sound.Play(core.SoundEnemyHit, 1)
	}
	prevOuts := o.state.PlayerOuts
	o.state.RecordHitsOnEnemy(hits, o.cfg.HitsPerOut, o.cfg.MaxOuts, o.cfg.MaxGrowthLevels)

	// Out milestones send the enemy into its bounce-mode interlude. A
	// milestone that coincides with MaxOuts is skipped: the game-over
	// disable below takes over instead of one last interlude.
	for _, m := range [...]int{constants.BounceModeMilestoneA, constants.BounceModeMilestoneB, constants.BounceModeMilestoneC} {
		if prevOuts < m && o.state.PlayerOuts >= m && m < o.cfg.MaxOuts {
			o.enemy.StartBounceMode()
		}
	}

	if o.state.PlayerOuts >= o.cfg.MaxOuts {
		o.latchGameOver(true)
	}
}

// latchGameOver sets the synchronous terminal flag so the loop stops before
// the next scheduled tick. The enemy is disabled and settles to the floor;
// laser spawning halts for the final sequence.
func (o *Orchestrator) latchGameOver(byShooting bool) {
	if o.state.GameOver {
		return
	}
	o.state.GameOver = true
	o.state.ShootGameOver = byShooting
	o.haltSpawning = true
	o.enemy.Disable()
	if o.sound != nil {
		o.sound.Play(core.SoundGameOver, 1)
	}
}

func (o *Orchestrator) recomputeScales() {
	o.playerScale = 1 + float64(o.state.PlayerGrowth)*o.cfg.GrowthScalePerLevel
	o.enemyScale = 1 + float64(o.state.EnemyGrowth)*o.cfg.GrowthScalePerLevel
}

// State returns a copy of the progression counters.
func (o *Orchestrator) State() GameState {
	return o.state
}

// Snapshot publishes the read-only frame view for rendering.
func (o *Orchestrator) Snapshot() Snapshot {
	muted := true
	if o.sound != nil {
		muted = o.sound.Muted()
	}
	return Snapshot{
		Player:             o.player.State(),
		Enemy:              o.enemy.State(),
		PlayerScale:        o.playerScale,
		EnemyScale:         o.enemyScale,
		EnemyHovering:      o.enemy.IsHoverMode(),
		EnemyBouncing:      o.enemy.IsBounceModeActive(),
		EnemyDisabled:      o.enemy.IsDisabled(),
		EnemyIntroComplete: o.enemy.HasCompletedIntro(),
		Lasers:             o.lasers.Lasers(),
		Projectiles:        o.shots.Projectiles(),
		Score:              o.state.Score,
		Energy:             o.state.Energy,
		PlayerHits:         o.state.PlayerHits,
		EnemyHits:          o.state.EnemyHits,
		PlayerOuts:         o.state.PlayerOuts,
		EnemyOuts:          o.state.EnemyOuts,
		PlayerGrowth:       o.state.PlayerGrowth,
		EnemyGrowth:        o.state.EnemyGrowth,
		ShootUnlocked:      o.state.ShootUnlocked,
		GameOver:           o.state.GameOver,
		ShootGameOver:      o.state.ShootGameOver,
		Muted:              muted,
		FrameNumber:        o.state.FrameNumber,
	}
}

// ToggleMute flips the audio mute flag, if audio is present.
func (o *Orchestrator) ToggleMute() {
	if o.sound == nil {
		return
	}
	o.sound.SetMuted(!o.sound.Muted())
}
