package engine

import "testing"

func TestHitsConvertToOuts(t *testing.T) {
	s := &GameState{}

	// 19 hits: no out yet
	if outs := s.RecordHitsOnEnemy(19, 20, 10, 5); outs != 0 {
		t.Fatalf("expected no out at 19 hits, got %d", outs)
	}
	if s.PlayerHits != 19 || s.PlayerOuts != 0 {
		t.Fatalf("unexpected state: %+v", s)
	}

	// The 20th hit converts
	if outs := s.RecordHitsOnEnemy(1, 20, 10, 5); outs != 1 {
		t.Fatalf("expected one out at 20 hits, got %d", outs)
	}
	if s.PlayerHits != 0 {
		t.Errorf("hit counter must reset modulo hitsPerOut, got %d", s.PlayerHits)
	}
	if s.PlayerOuts != 1 {
		t.Errorf("expected playerOuts 1, got %d", s.PlayerOuts)
	}
	// Growth coupling: the hit side grows, the scoring side would shrink but
	// is already floored at 0
	if s.EnemyGrowth != 1 {
		t.Errorf("enemy growth must rise to 1, got %d", s.EnemyGrowth)
	}
	if s.PlayerGrowth != 0 {
		t.Errorf("player growth must floor at 0, got %d", s.PlayerGrowth)
	}
}

func TestGrowthCouplingIsSymmetric(t *testing.T) {
	s := &GameState{PlayerGrowth: 3, EnemyGrowth: 3}

	s.RecordHitsOnPlayer(20, 20, 10, 5)
	if s.PlayerGrowth != 4 || s.EnemyGrowth != 2 {
		t.Fatalf("laser out must grow player and shrink enemy, got %d/%d",
			s.PlayerGrowth, s.EnemyGrowth)
	}

	s.RecordHitsOnEnemy(20, 20, 10, 5)
	if s.PlayerGrowth != 3 || s.EnemyGrowth != 3 {
		t.Fatalf("shot out must grow enemy and shrink player, got %d/%d",
			s.PlayerGrowth, s.EnemyGrowth)
	}
}

func TestGrowthCaps(t *testing.T) {
	s := &GameState{EnemyGrowth: 5}
	s.RecordHitsOnEnemy(20, 20, 10, 5)
	if s.EnemyGrowth != 5 {
		t.Errorf("growth must cap at max level, got %d", s.EnemyGrowth)
	}
}

func TestOutsCap(t *testing.T) {
	s := &GameState{}
	s.RecordHitsOnEnemy(500, 20, 10, 5)
	if s.PlayerOuts != 10 {
		t.Errorf("outs must cap at maxOuts, got %d", s.PlayerOuts)
	}
	// At the cap further hits are ignored entirely
	before := *s
	s.RecordHitsOnEnemy(20, 20, 10, 5)
	if *s != before {
		t.Error("hits past the cap must not mutate state")
	}
}

func TestMultipleOutsInOneBatch(t *testing.T) {
	s := &GameState{}
	if outs := s.RecordHitsOnEnemy(45, 20, 10, 5); outs != 2 {
		t.Fatalf("45 hits must convert to 2 outs, got %d", outs)
	}
	if s.PlayerHits != 5 {
		t.Errorf("expected remainder 5, got %d", s.PlayerHits)
	}
}

func TestAddScoreFloorsAtZero(t *testing.T) {
	s := &GameState{Score: 2}
	s.AddScore(-5)
	if s.Score != 0 {
		t.Errorf("score must floor at 0, got %d", s.Score)
	}
}

func TestAddEnergyClamps(t *testing.T) {
	s := &GameState{Energy: 95}
	s.AddEnergy(20, 100)
	if s.Energy != 100 {
		t.Errorf("energy must clamp at max, got %v", s.Energy)
	}
	s.AddEnergy(-500, 100)
	if s.Energy != 0 {
		t.Errorf("energy must clamp at zero, got %v", s.Energy)
	}
}
