package systems

import (
	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
	"github.com/lixenwraith/bounce-fighter/physics"
)

// ProjectileSystem tracks player shots flying toward the enemy. Shots are
// destroyed on leaving the world or landing a hit; the energy/cooldown gate
// lives in the orchestrator, not here.
type ProjectileSystem struct {
	cfg   *config.Tunables
	shots []core.Projectile
}

// NewProjectileSystem creates an empty shot list.
func NewProjectileSystem(cfg *config.Tunables) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg}
}

// Reset clears all shots.
func (s *ProjectileSystem) Reset() {
	s.shots = s.shots[:0]
}

// Projectiles returns a copy of the active shots for the frame snapshot.
func (s *ProjectileSystem) Projectiles() []core.Projectile {
	out := make([]core.Projectile, 0, len(s.shots))
	for _, p := range s.shots {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Shoot spawns a shot at the player's position. Returns false when the
// simultaneous-shot cap is reached.
func (s *ProjectileSystem) Shoot(from core.Position) bool {
	active := 0
	for _, p := range s.shots {
		if p.Active {
			active++
		}
	}
	if active >= constants.MaxProjectiles {
		return false
	}
	s.shots = append(s.shots, core.Projectile{X: from.X, Y: from.Y, Active: true})
	return true
}

// Update advances shots rightward, culls off-bounds ones and reports how
// many struck the enemy hitbox this step.
func (s *ProjectileSystem) Update(step float64, enemyX, enemyY, enemyHalf float64) int {
	hits := 0
	half := s.cfg.ProjectileSize / 2
	for i := range s.shots {
		p := &s.shots[i]
		if !p.Active {
			continue
		}
		p.X += s.cfg.ProjectileSpeed * step
		if p.X-half > s.cfg.WorldWidth {
			p.Active = false
			continue
		}
		if physics.AABBOverlap(p.X, p.Y, half, half, enemyX, enemyY, enemyHalf, enemyHalf) {
			p.Active = false
			hits++
		}
	}

	// Compact once the dead tail grows
	if len(s.shots) > constants.MaxProjectiles {
		live := s.shots[:0]
		for _, p := range s.shots {
			if p.Active {
				live = append(live, p)
			}
		}
		s.shots = live
	}
	return hits
}
