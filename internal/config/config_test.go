package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSkyhop(defaultSkyhopYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSkyhopConfig()) {
		t.Errorf("embedded YAML and DefaultSkyhopConfig differ:\n%+v\n%+v", cfg, DefaultSkyhopConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSkyhopConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestDefaultsAreReachable(t *testing.T) {
	cfg := DefaultSkyhopConfig()
	p := cfg.Physics

	// Peak height of a standard jump under constant gravity.
	peak := p.JumpImpulse * p.JumpImpulse / (2 * p.Gravity)
	widest := cfg.Platforms.BaseGap + cfg.Platforms.MaxExtraGap + cfg.Platforms.Jitter
	if widest >= peak {
		t.Errorf("largest gap %.2f is not reachable with jump height %.2f", widest, peak)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SkyhopConfig)
		want   string
	}{
		{"zero gravity", func(c *SkyhopConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"weak spring", func(c *SkyhopConfig) { c.Physics.SpringImpulse = c.Physics.JumpImpulse }, "spring_impulse"},
		{"zero min width", func(c *SkyhopConfig) { c.Platforms.MinWidth = 0 }, "min_width"},
		{"base below min", func(c *SkyhopConfig) { c.Platforms.BaseWidth = 1 }, "base_width"},
		{"no platform weights", func(c *SkyhopConfig) { c.Platforms.Weights = PlatformWeights{} }, "platforms.weights"},
		{"no item weights", func(c *SkyhopConfig) { c.Items.Weights = ItemWeights{} }, "items.weights"},
		{"bad shield policy", func(c *SkyhopConfig) { c.Shield.Policy = "forever" }, "shield.policy"},
		{"timed shield without duration", func(c *SkyhopConfig) {
			c.Shield.Policy = ShieldTimed
			c.Shield.Duration = 0
		}, "shield.duration"},
		{"threshold out of range", func(c *SkyhopConfig) { c.Camera.Threshold = 1 }, "threshold"},
		{"zero divisor", func(c *SkyhopConfig) { c.Scoring.Divisor = 0 }, "divisor"},
		{"zero slowmo", func(c *SkyhopConfig) { c.Physics.SlowmoScale = 0 }, "slowmo_scale"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSkyhopConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestItemWeightsIgnoredWithoutItems(t *testing.T) {
	cfg := DefaultSkyhopConfig()
	cfg.Items.Chance = 0
	cfg.Items.Weights = ItemWeights{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero item weights should be fine when items never spawn: %v", err)
	}
}

func TestLoadSkyhopCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "physics:\n  gravity: 0.03\nshield:\n  policy: single_hit\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkyhop(path)
	if err != nil {
		t.Fatalf("LoadSkyhop: %v", err)
	}
	if cfg.Physics.Gravity != 0.03 {
		t.Errorf("gravity = %g, expected override 0.03", cfg.Physics.Gravity)
	}
	if cfg.Shield.Policy != ShieldSingleHit {
		t.Errorf("shield policy = %q, expected single_hit", cfg.Shield.Policy)
	}
	def := DefaultSkyhopConfig()
	if cfg.Physics.JumpImpulse != def.Physics.JumpImpulse {
		t.Error("keys missing from the file should keep their defaults")
	}
	if cfg.Platforms.Weights != def.Platforms.Weights {
		t.Error("nested sections missing from the file should keep their defaults")
	}
}

func TestLoadSkyhopErrors(t *testing.T) {
	if _, err := LoadSkyhop(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSkyhop(path)
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("broken YAML should fail to parse, got %v", err)
	}
}

func TestApplySkyhopPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSkyhopConfig()
			ApplySkyhopPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %g, expected %g", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
