package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the default configuration.
// It mirrors defaults/skyhop.yaml and is used when the embedded file cannot be parsed.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		AutoStart: false,
		Physics: SkyhopPhysics{
			Gravity:        0.02,
			JumpImpulse:    0.55,
			SpringImpulse:  0.9,
			BoostImpulse:   1.3,
			MaxFallSpeed:   0.8,
			MoveAccel:      0.08,
			Friction:       0.85,
			MaxSpeed:       0.9,
			ThrustForce:    0.06,
			ThrustMaxSpeed: 0.6,
			SlowmoScale:    0.5,
		},
		Player: SkyhopPlayer{
			Width:       2,
			Height:      2,
			StartOffset: 2,
		},
		Platforms: SkyhopPlatforms{
			Height:        1,
			BaseWidth:     12,
			MinWidth:      5,
			WidthShrink:   6,
			BaseGap:       3,
			MaxExtraGap:   2,
			Jitter:        1.5,
			MovingSpeed:   0.25,
			SafePlatforms: 4,
			Lookahead:     6,
			Weights: PlatformWeights{
				Normal:    60,
				Moving:    20,
				Breakable: 12,
				Spring:    8,
			},
		},
		Items: SkyhopItems{
			Chance: 0.3,
			Width:  1,
			Height: 1,
			Weights: ItemWeights{
				Thrust: 8,
				Boost:  10,
				Shield: 8,
				Magnet: 8,
				Slowmo: 8,
				Coin:   58,
			},
		},
		PowerUps: SkyhopPowerUps{
			ThrustDuration: 180,
			MagnetDuration: 480,
			SlowmoDuration: 360,
			MagnetRadius:   12,
			MagnetPull:     0.2,
		},
		Shield: SkyhopShield{
			Policy:   ShieldPersistent,
			Duration: 600,
		},
		Enemies: SkyhopEnemies{
			MinScore:     150,
			Chance:       0.08,
			ExtraChance:  0.17,
			Width:        3,
			Height:       1,
			Speed:        0.15,
			BobAmplitude: 1.5,
			BobSpeed:     0.08,
			StompMargin:  0.5,
		},
		Camera: SkyhopCamera{
			Threshold: 0.45,
		},
		Scoring: SkyhopScoring{
			Divisor:    0.5,
			CoinValue:  25,
			StompBonus: 50,
		},
		Particles: SkyhopParticles{
			Capacity:   128,
			BurstCount: 8,
			BurstSpeed: 0.3,
			BurstLife:  30,
			TrailLife:  20,
			StartSize:  1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 3000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `skyhop config` style dumps.
func DefaultYAML() []byte {
	return defaultSkyhopYAML
}
