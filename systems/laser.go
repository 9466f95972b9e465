package systems

import (
	"math/rand"

	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
	"github.com/lixenwraith/bounce-fighter/physics"
)

// LaserInput is the per-frame view of the world the laser system needs. The
// orchestrator pushes it explicitly every tick; the system holds no reference
// to other systems.
type LaserInput struct {
	Score              int
	PlayerPos          core.Position
	PlayerGrowthLevel  int
	PlayerHasJumped    bool
	EnemyY             float64
	EnemyIntroComplete bool
	EnemyDisabled      bool
	HaltSpawning       bool
}

// LaserResult reports what one update did to the economy.
type LaserResult struct {
	ScoreChange   int
	WasHit        bool
	EnemyHitCount int
	LaserFired    bool
	TargetY       float64
	Dodges        int // successful dodges this update (drives energy refill)
}

// LaserSystem manages the recycled laser pool: spawn timing, randomized
// target-Y chaos, the wide-laser special rule, collision against the player
// and pass scoring. Deterministic under an injected RNG.
type LaserSystem struct {
	cfg *config.Tunables
	rng *rand.Rand

	pool    []core.LaserState
	targets []float64 // in-flight target Y per pool slot

	fireTimer  float64 // reference steps until the next spawn attempt
	dodgeCount int     // lifetime successful dodges, drives the wide cadence
}

// NewLaserSystem creates the pool at its base size, all lasers parked
// off-screen.
func NewLaserSystem(cfg *config.Tunables, rng *rand.Rand) *LaserSystem {
	ls := &LaserSystem{cfg: cfg, rng: rng}
	ls.Reset()
	return ls
}

// Reset rebuilds the pool at base size.
func (ls *LaserSystem) Reset() {
	ls.pool = ls.pool[:0]
	ls.targets = ls.targets[:0]
	ls.fireTimer = constants.SingleLaserFireDelay
	ls.dodgeCount = 0
	ls.resize(ls.cfg.BaseLaserCount, 0)
}

// Lasers returns a copy of the pool for the frame snapshot. Parked entries
// (X < 0) are included; renderers skip them.
func (ls *LaserSystem) Lasers() []core.LaserState {
	out := make([]core.LaserState, len(ls.pool))
	copy(out, ls.pool)
	return out
}

// PoolSize returns the active pool size for a score: base plus one laser per
// unlock interval, capped.
func (ls *LaserSystem) PoolSize(score int) int {
	if score < 0 {
		score = 0
	}
	n := score/ls.cfg.LaserUnlockInterval + ls.cfg.BaseLaserCount
	if n > ls.cfg.MaxLasers {
		n = ls.cfg.MaxLasers
	}
	return n
}

// resize grows the pool with parked entries.
func (ls *LaserSystem) resize(target, score int) {
	for len(ls.pool) < target {
		ls.pool = append(ls.pool, core.LaserState{
			X:     constants.OffscreenX,
			Width: ls.cfg.LaserWidth,
			NextY: ls.chaosTargetY(score),
		})
		ls.targets = append(ls.targets, ls.cfg.FloorY)
	}
}

// chaosTargetY picks a randomized spawn target: base randomness plus a
// score-cycle multiplier that resets every ChaosCycleScore points.
func (ls *LaserSystem) chaosTargetY(score int) float64 {
	if score < 0 {
		score = 0
	}
	cycle := float64(score%constants.ChaosCycleScore) / float64(constants.ChaosCycleScore)
	spread := constants.ChaosBase * (1 + cycle*constants.ChaosCycleGain)
	return physics.Clamp(ls.cfg.FloorY-ls.rng.Float64()*spread, 0, ls.cfg.FloorY)
}

// fireDelay spaces the pool evenly across the screen: distance between
// lasers over laser speed, in reference steps. A single laser keeps a fixed
// cadence instead.
func (ls *LaserSystem) fireDelay() float64 {
	n := len(ls.pool)
	if n <= 1 {
		return constants.SingleLaserFireDelay
	}
	return ls.cfg.WorldWidth / float64(n) / ls.cfg.LaserSpeed
}

func (ls *LaserSystem) parked(i int) bool {
	return ls.pool[i].X < 0
}

// Update advances the pool one step and resolves collision and scoring.
func (ls *LaserSystem) Update(in LaserInput, step float64) LaserResult {
	var res LaserResult

	// Pool only grows within a game; score dips under the penalty variant
	// never drop an in-flight laser. Shrinking happens on Reset.
	if n := ls.PoolSize(in.Score); n > len(ls.pool) {
		ls.resize(n, in.Score)
	}

	// Movement: leftward travel, easing toward the flight target
	steer := physics.Clamp(constants.LaserSteer*step, 0, 1)
	for i := range ls.pool {
		if ls.parked(i) {
			continue
		}
		l := &ls.pool[i]
		l.X -= ls.cfg.LaserSpeed * step
		l.Y = physics.Approach(l.Y, ls.targets[i], steer)
		if l.X+l.Width < 0 {
			l.X = constants.OffscreenX
		}
	}

	// Spawn: only after the enemy intro, never once disabled or halted
	ls.fireTimer -= step
	if ls.fireTimer <= 0 {
		ls.fireTimer = 0
		if in.EnemyIntroComplete && !in.EnemyDisabled && !in.HaltSpawning {
			if fired, targetY := ls.fire(in); fired {
				res.LaserFired = true
				res.TargetY = targetY
				ls.fireTimer = ls.fireDelay()
			}
		}
	}

	ls.resolveCollision(in, &res)
	ls.resolvePasses(in, &res)
	return res
}

// fire recycles a parked laser at the enemy's center. Returns false when the
// whole pool is in flight.
func (ls *LaserSystem) fire(in LaserInput) (bool, float64) {
	for i := range ls.pool {
		if !ls.parked(i) {
			continue
		}
		l := &ls.pool[i]
		l.X = ls.cfg.EnemyX
		l.Y = in.EnemyY
		l.Hit = false
		l.Scored = false
		l.Passed = false
		l.Width = ls.cfg.LaserWidth
		if in.Score >= ls.cfg.WideUnlockScore && ls.dodgeCount > 0 &&
			ls.dodgeCount%ls.cfg.WideEveryNthDodge == 0 {
			l.Width *= constants.WideLaserFactor
		}
		ls.targets[i] = l.NextY
		targetY := l.NextY
		l.NextY = ls.chaosTargetY(in.Score)
		return true, targetY
	}
	return false, 0
}

// resolveCollision checks the growth-scaled player hitbox against every
// in-flight laser. At most one hit is counted per update; the hit laser is
// parked immediately so the spawner can recycle it.
func (ls *LaserSystem) resolveCollision(in LaserInput, res *LaserResult) {
	half := ls.cfg.PlayerSize / 2 * (1 + float64(in.PlayerGrowthLevel)*ls.cfg.GrowthScalePerLevel)
	for i := range ls.pool {
		l := &ls.pool[i]
		if ls.parked(i) || l.Hit {
			continue
		}
		if !physics.AABBOverlap(
			in.PlayerPos.X, in.PlayerPos.Y, half, half,
			l.X+l.Width/2, l.Y, l.Width/2, ls.cfg.LaserHeight/2,
		) {
			continue
		}
		l.Hit = true
		res.WasHit = true
		if l.Width > ls.cfg.LaserWidth {
			res.EnemyHitCount += ls.cfg.WideHitValue
		} else {
			res.EnemyHitCount++
		}
		l.X = constants.OffscreenX
		return
	}
}

// resolvePasses scores lasers whose trailing edge cleared the player without
// a prior collision: +1 when the player jumped over, optional -1 penalty
// variant otherwise.
func (ls *LaserSystem) resolvePasses(in LaserInput, res *LaserResult) {
	leadingEdge := in.PlayerPos.X - ls.cfg.PlayerSize/2
	for i := range ls.pool {
		l := &ls.pool[i]
		if ls.parked(i) || l.Hit || l.Passed {
			continue
		}
		if l.X+l.Width >= leadingEdge {
			continue
		}
		l.Passed = true
		if in.PlayerHasJumped {
			l.Scored = true
			res.ScoreChange++
			res.Dodges++
			ls.dodgeCount++
		} else if ls.cfg.MissPenalty {
			res.ScoreChange--
		}
	}
}
