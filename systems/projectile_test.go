package systems

import (
	"testing"

	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
)

func TestProjectileHitsEnemy(t *testing.T) {
	cfg := config.Default()
	s := NewProjectileSystem(cfg)

	if !s.Shoot(core.Position{X: cfg.PlayerAnchorX, Y: 220}) {
		t.Fatal("shoot must succeed on an empty list")
	}

	enemyHalf := cfg.EnemySize / 2
	total := 0
	for i := 0; i < 200; i++ {
		total += s.Update(1, cfg.EnemyX, 220, enemyHalf)
	}
	if total != 1 {
		t.Fatalf("expected exactly one hit, got %d", total)
	}
	if len(s.Projectiles()) != 0 {
		t.Fatal("a hit projectile must be destroyed")
	}
}

func TestProjectileMissesOnWrongAltitude(t *testing.T) {
	cfg := config.Default()
	s := NewProjectileSystem(cfg)
	s.Shoot(core.Position{X: cfg.PlayerAnchorX, Y: cfg.FloorY})

	total := 0
	for i := 0; i < 200; i++ {
		total += s.Update(1, cfg.EnemyX, 100, cfg.EnemySize/2)
	}
	if total != 0 {
		t.Fatalf("shot at floor level must miss a hovering enemy, got %d hits", total)
	}
	if len(s.Projectiles()) != 0 {
		t.Fatal("missed projectile must be culled off the world edge")
	}
}

func TestProjectileCap(t *testing.T) {
	cfg := config.Default()
	s := NewProjectileSystem(cfg)

	for i := 0; i < constants.MaxProjectiles; i++ {
		if !s.Shoot(core.Position{X: 10, Y: 10}) {
			t.Fatalf("shot %d rejected below the cap", i)
		}
	}
	if s.Shoot(core.Position{X: 10, Y: 10}) {
		t.Fatal("shots beyond the cap must be rejected")
	}
}

func TestProjectileReset(t *testing.T) {
	cfg := config.Default()
	s := NewProjectileSystem(cfg)
	s.Shoot(core.Position{X: 10, Y: 10})
	s.Reset()
	if len(s.Projectiles()) != 0 {
		t.Fatal("reset must clear all shots")
	}
}
