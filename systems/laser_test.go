package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
)

func newTestLasers(cfg *config.Tunables, seed int64) *LaserSystem {
	return NewLaserSystem(cfg, rand.New(rand.NewSource(seed)))
}

func TestPoolSizeFormula(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	cases := []struct {
		score int
		want  int
	}{
		{0, cfg.BaseLaserCount},
		{cfg.LaserUnlockInterval - 1, cfg.BaseLaserCount},
		{cfg.LaserUnlockInterval, cfg.BaseLaserCount + 1},
		{3 * cfg.LaserUnlockInterval, cfg.BaseLaserCount + 3},
		{1000000, cfg.MaxLasers},
		{-5, cfg.BaseLaserCount}, // malformed input degrades via clamping
	}
	for _, tc := range cases {
		if got := ls.PoolSize(tc.score); got != tc.want {
			t.Errorf("PoolSize(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestPoolGrowsMonotonically(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	prev := 0
	for score := 0; score <= 100; score++ {
		ls.Update(LaserInput{Score: score}, 1)
		n := len(ls.pool)
		if n < prev {
			t.Fatalf("pool shrank within a game: %d -> %d at score %d", prev, n, score)
		}
		if n > cfg.MaxLasers {
			t.Fatalf("pool exceeded cap: %d", n)
		}
		if n != ls.PoolSize(score) {
			t.Fatalf("pool size %d does not match formula %d at score %d", n, ls.PoolSize(score), score)
		}
		prev = n
	}
}

func TestNoFireBeforeIntroComplete(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	in := LaserInput{EnemyY: 220, EnemyIntroComplete: false}
	for i := 0; i < 500; i++ {
		if res := ls.Update(in, 1); res.LaserFired {
			t.Fatal("laser fired before the enemy intro completed")
		}
	}

	in.EnemyIntroComplete = true
	if res := ls.Update(in, 1); !res.LaserFired {
		t.Fatal("laser must fire once the intro gate opens and the delay elapsed")
	}
}

func TestNoFireWhenDisabledOrHalted(t *testing.T) {
	cfg := config.Default()
	for _, in := range []LaserInput{
		{EnemyIntroComplete: true, EnemyDisabled: true},
		{EnemyIntroComplete: true, HaltSpawning: true},
	} {
		ls := newTestLasers(cfg, 1)
		for i := 0; i < 500; i++ {
			if res := ls.Update(in, 1); res.LaserFired {
				t.Fatalf("laser fired under gate %+v", in)
			}
		}
	}
}

func TestFiredLaserSpawnsAtEnemy(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)
	ls.fireTimer = 0

	res := ls.Update(LaserInput{EnemyY: 240, EnemyIntroComplete: true}, 1)
	if !res.LaserFired {
		t.Fatal("expected a fire")
	}
	l := ls.pool[0]
	if l.Y != 240 {
		t.Errorf("laser must spawn at the enemy center Y, got %v", l.Y)
	}
	if l.X != cfg.EnemyX {
		t.Errorf("laser must start at the enemy center, x=%v", l.X)
	}
	if res.TargetY < 0 || res.TargetY > cfg.FloorY {
		t.Errorf("chaos target %v outside the arena", res.TargetY)
	}
}

func TestChaosTargetWithinArena(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 123)
	for score := 0; score < 200; score++ {
		y := ls.chaosTargetY(score)
		if y < 0 || y > cfg.FloorY {
			t.Fatalf("chaos target %v outside [0,%v] at score %d", y, cfg.FloorY, score)
		}
	}
}

func TestSingleHitPerFrame(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	player := core.Position{X: cfg.PlayerAnchorX, Y: cfg.FloorY}
	// Two lasers overlapping the player simultaneously
	ls.pool = []core.LaserState{
		{X: player.X - 5, Y: player.Y, Width: cfg.LaserWidth},
		{X: player.X - 5, Y: player.Y, Width: cfg.LaserWidth},
	}
	ls.targets = []float64{player.Y, player.Y}
	ls.fireTimer = 1000

	res := ls.Update(LaserInput{Score: cfg.LaserUnlockInterval, PlayerPos: player}, 1)
	if !res.WasHit {
		t.Fatal("expected a hit")
	}
	if res.EnemyHitCount != 1 {
		t.Fatalf("at most one hit per frame: got %d", res.EnemyHitCount)
	}

	hit := 0
	for i := range ls.pool {
		if ls.pool[i].Hit {
			hit++
		}
	}
	if hit != 1 {
		t.Fatalf("exactly one laser may be marked hit, got %d", hit)
	}
}

func TestHitLaserParksForRecycling(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	player := core.Position{X: cfg.PlayerAnchorX, Y: cfg.FloorY}
	ls.pool = []core.LaserState{{X: player.X - 5, Y: player.Y, Width: cfg.LaserWidth}}
	ls.targets = []float64{player.Y}
	ls.fireTimer = 1000

	ls.Update(LaserInput{PlayerPos: player}, 1)
	if ls.pool[0].X >= 0 {
		t.Fatalf("hit laser must move off-screen immediately, x=%v", ls.pool[0].X)
	}
}

// Opening-game scenario: score 0, player grounded and never jumped, a
// floor-level laser crossing the player's X.
func TestFloorLaserHitsGroundedPlayer(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	player := core.Position{X: cfg.PlayerAnchorX, Y: cfg.FloorY}
	ls.pool = []core.LaserState{{X: player.X, Y: cfg.FloorY, Width: cfg.LaserWidth}}
	ls.targets = []float64{cfg.FloorY}
	ls.fireTimer = 1000

	res := ls.Update(LaserInput{Score: 0, PlayerPos: player}, 1)
	if !res.WasHit {
		t.Fatal("expected wasHit")
	}
	if res.EnemyHitCount != 1 {
		t.Fatalf("expected enemy hit count 1, got %d", res.EnemyHitCount)
	}
	if res.ScoreChange != 0 {
		t.Fatalf("a hit must not change the score, got %d", res.ScoreChange)
	}
}

func TestPassScoring(t *testing.T) {
	cfg := config.Default()
	player := core.Position{X: cfg.PlayerAnchorX, Y: 200}

	setup := func(missPenalty bool) *LaserSystem {
		c := config.Default()
		c.MissPenalty = missPenalty
		ls := newTestLasers(c, 1)
		// Trailing edge already left of the player's leading edge
		ls.pool = []core.LaserState{{X: 50, Y: cfg.FloorY, Width: c.LaserWidth}}
		ls.targets = []float64{cfg.FloorY}
		ls.fireTimer = 1000
		return ls
	}

	t.Run("jumped over", func(t *testing.T) {
		ls := setup(false)
		res := ls.Update(LaserInput{PlayerPos: player, PlayerHasJumped: true}, 1)
		if res.ScoreChange != 1 || res.Dodges != 1 {
			t.Fatalf("expected +1 score and one dodge, got %+v", res)
		}
		if !ls.pool[0].Passed || !ls.pool[0].Scored {
			t.Fatalf("laser must be marked passed and scored: %+v", ls.pool[0])
		}
	})

	t.Run("passed without jump, default", func(t *testing.T) {
		ls := setup(false)
		res := ls.Update(LaserInput{PlayerPos: player, PlayerHasJumped: false}, 1)
		if res.ScoreChange != 0 {
			t.Fatalf("penalty is off by default, got %d", res.ScoreChange)
		}
		if !ls.pool[0].Passed {
			t.Fatal("laser must still be marked passed")
		}
	})

	t.Run("passed without jump, penalty variant", func(t *testing.T) {
		ls := setup(true)
		res := ls.Update(LaserInput{PlayerPos: player, PlayerHasJumped: false}, 1)
		if res.ScoreChange != -1 {
			t.Fatalf("expected -1 under the penalty variant, got %d", res.ScoreChange)
		}
	})

	t.Run("no double scoring", func(t *testing.T) {
		ls := setup(false)
		ls.Update(LaserInput{PlayerPos: player, PlayerHasJumped: true}, 1)
		res := ls.Update(LaserInput{PlayerPos: player, PlayerHasJumped: true}, 1)
		if res.ScoreChange != 0 {
			t.Fatalf("a laser may only score once, got %d", res.ScoreChange)
		}
	})
}

func TestWideLaserRule(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)
	ls.dodgeCount = cfg.WideEveryNthDodge

	fired, _ := ls.fire(LaserInput{Score: cfg.WideUnlockScore, EnemyY: 220})
	if !fired {
		t.Fatal("expected fire")
	}
	if want := cfg.LaserWidth * constants.WideLaserFactor; ls.pool[0].Width != want {
		t.Fatalf("expected wide laser width %v, got %v", want, ls.pool[0].Width)
	}

	// Below the unlock score the cadence alone is not enough
	ls.Reset()
	ls.dodgeCount = cfg.WideEveryNthDodge
	ls.fire(LaserInput{Score: cfg.WideUnlockScore - 1, EnemyY: 220})
	if ls.pool[0].Width != cfg.LaserWidth {
		t.Fatalf("wide laser before unlock score: width %v", ls.pool[0].Width)
	}
}

func TestWideLaserAwardsLargerHit(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	player := core.Position{X: cfg.PlayerAnchorX, Y: 200}
	ls.pool = []core.LaserState{{X: player.X, Y: player.Y, Width: cfg.LaserWidth * constants.WideLaserFactor}}
	ls.targets = []float64{player.Y}
	ls.fireTimer = 1000

	res := ls.Update(LaserInput{PlayerPos: player}, 1)
	if res.EnemyHitCount != cfg.WideHitValue {
		t.Fatalf("wide laser must award %d hits, got %d", cfg.WideHitValue, res.EnemyHitCount)
	}
}

func TestGrowthScaledHitbox(t *testing.T) {
	cfg := config.Default()
	// A laser that ends the frame just outside the unscaled hitbox but
	// inside the fully grown one
	gap := cfg.PlayerSize/2 + cfg.LaserSpeed + 6
	player := core.Position{X: cfg.PlayerAnchorX, Y: 200}

	place := func() *LaserSystem {
		ls := newTestLasers(cfg, 1)
		ls.pool = []core.LaserState{{X: player.X + gap, Y: player.Y, Width: cfg.LaserWidth}}
		ls.targets = []float64{player.Y}
		ls.fireTimer = 1000
		return ls
	}

	ls := place()
	if res := ls.Update(LaserInput{PlayerPos: player, PlayerGrowthLevel: 0}, 1); res.WasHit {
		t.Fatal("ungrown player must not reach the laser")
	}

	ls = place()
	if res := ls.Update(LaserInput{PlayerPos: player, PlayerGrowthLevel: 5}, 1); !res.WasHit {
		t.Fatal("grown player hitbox must reach the laser")
	}
}

func TestFireDelaySpacing(t *testing.T) {
	cfg := config.Default()
	ls := newTestLasers(cfg, 1)

	if got := ls.fireDelay(); got != constants.SingleLaserFireDelay {
		t.Errorf("single laser keeps the fixed delay, got %v", got)
	}

	ls.resize(4, 0)
	want := cfg.WorldWidth / 4 / cfg.LaserSpeed
	if got := ls.fireDelay(); got != want {
		t.Errorf("four lasers: expected even-spacing delay %v, got %v", want, got)
	}
}
