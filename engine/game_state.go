package engine

// GameState is the single source of truth for the progression counters:
// score, hit counters, outs, growth levels, energy and the terminal flags.
// It is owned by the orchestrator and mutated only on the simulation
// goroutine; subsystems receive its values explicitly every tick.
type GameState struct {
	Score  int
	Energy float64 // 0..100, gates the shoot ability

	// Hit counters, kept modulo HitsPerOut; the overflow converts to outs
	PlayerHits int // hits the player landed on the enemy
	EnemyHits  int // hits the enemy landed on the player

	PlayerOuts int // outs the player scored by shooting
	EnemyOuts  int // outs the enemy scored with lasers

	PlayerGrowth int // 0..MaxGrowthLevels
	EnemyGrowth  int

	ShootUnlocked bool
	GameOver      bool
	ShootGameOver bool // game ended because the player reached max outs

	FrameNumber uint64
}

// AddScore applies a score delta, floored at zero (the optional miss penalty
// can push downward but never below empty).
func (s *GameState) AddScore(delta int) {
	s.Score += delta
	if s.Score < 0 {
		s.Score = 0
	}
}

// AddEnergy applies an energy delta clamped to [0, max].
func (s *GameState) AddEnergy(delta, max float64) {
	s.Energy += delta
	if s.Energy < 0 {
		s.Energy = 0
	}
	if s.Energy > max {
		s.Energy = max
	}
}

// RecordHitsOnEnemy accumulates player hits and converts every hitsPerOut of
// them into one player out, capped at maxOuts. Each out grows the side that
// was hit and shrinks the side that scored it. Returns the outs gained.
func (s *GameState) RecordHitsOnEnemy(n, hitsPerOut, maxOuts, maxGrowth int) int {
	if n <= 0 || s.PlayerOuts >= maxOuts {
		return 0
	}
	s.PlayerHits += n
	outs := s.PlayerHits / hitsPerOut
	s.PlayerHits %= hitsPerOut
	for i := 0; i < outs && s.PlayerOuts < maxOuts; i++ {
		s.PlayerOuts++
		s.EnemyGrowth = clampInt(s.EnemyGrowth+1, 0, maxGrowth)
		s.PlayerGrowth = clampInt(s.PlayerGrowth-1, 0, maxGrowth)
	}
	return outs
}

// RecordHitsOnPlayer is the symmetric conversion for laser hits.
func (s *GameState) RecordHitsOnPlayer(n, hitsPerOut, maxOuts, maxGrowth int) int {
	if n <= 0 || s.EnemyOuts >= maxOuts {
		return 0
	}
	s.EnemyHits += n
	outs := s.EnemyHits / hitsPerOut
	s.EnemyHits %= hitsPerOut
	for i := 0; i < outs && s.EnemyOuts < maxOuts; i++ {
		s.EnemyOuts++
		s.PlayerGrowth = clampInt(s.PlayerGrowth+1, 0, maxGrowth)
		s.EnemyGrowth = clampInt(s.EnemyGrowth-1, 0, maxGrowth)
	}
	return outs
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
