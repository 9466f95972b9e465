package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tunables must validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tunables)
		want   string
	}{
		{"zero gravity", func(c *Tunables) { c.Gravity = 0 }, "gravity"},
		{"energy loss above one", func(c *Tunables) { c.EnergyLoss = 1.5 }, "energyLoss"},
		{"floor above world", func(c *Tunables) { c.FloorY = c.WorldHeight + 1 }, "floorY"},
		{"zero base lasers", func(c *Tunables) { c.BaseLaserCount = 0 }, "baseLaserCount"},
		{"max below base", func(c *Tunables) { c.MaxLasers = c.BaseLaserCount - 1; c.BaseLaserCount = c.MaxLasers + 2 }, "maxLasers"},
		{"zero unlock interval", func(c *Tunables) { c.LaserUnlockInterval = 0 }, "laserUnlockInterval"},
		{"zero hits per out", func(c *Tunables) { c.HitsPerOut = 0 }, "hitsPerOut"},
		{"zero max outs", func(c *Tunables) { c.MaxOuts = 0 }, "maxOuts"},
		{"negative hold", func(c *Tunables) { c.MaxHoldSeconds = -1 }, "maxHoldSeconds"},
		{"zero shot cost", func(c *Tunables) { c.EnergyPerShot = 0 }, "energyPerShot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	data := "gravity: 0.9\nhitsPerOut: 10\nmissPenalty: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Gravity != 0.9 {
		t.Errorf("expected gravity override 0.9, got %v", cfg.Gravity)
	}
	if cfg.HitsPerOut != 10 {
		t.Errorf("expected hitsPerOut override 10, got %v", cfg.HitsPerOut)
	}
	if !cfg.MissPenalty {
		t.Error("expected missPenalty enabled")
	}
	// Untouched fields keep defaults
	if cfg.JumpBoost != Default().JumpBoost {
		t.Errorf("jumpBoost should keep its default, got %v", cfg.JumpBoost)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	if err := os.WriteFile(path, []byte("gravity: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative gravity")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	if err := os.WriteFile(path, []byte("gravity: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
