// Package config provides YAML-based game configuration loading and
// difficulty management for the sky hop engine.
package config

import (
	"errors"
	"fmt"
)

// SkyhopConfig contains all tunables of the endless jumper.
// One world unit equals one terminal cell in the shipped shell.
type SkyhopConfig struct {
	AutoStart  bool             `yaml:"auto_start"`
	Physics    SkyhopPhysics    `yaml:"physics"`
	Player     SkyhopPlayer     `yaml:"player"`
	Platforms  SkyhopPlatforms  `yaml:"platforms"`
	Items      SkyhopItems      `yaml:"items"`
	PowerUps   SkyhopPowerUps   `yaml:"powerups"`
	Shield     SkyhopShield     `yaml:"shield"`
	Enemies    SkyhopEnemies    `yaml:"enemies"`
	Camera     SkyhopCamera     `yaml:"camera"`
	Scoring    SkyhopScoring    `yaml:"scoring"`
	Particles  SkyhopParticles  `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkyhopPhysics defines per-tick physics parameters.
// Impulses are magnitudes; the engine applies them upward.
type SkyhopPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	SpringImpulse  float64 `yaml:"spring_impulse"`
	BoostImpulse   float64 `yaml:"boost_impulse"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	MoveAccel      float64 `yaml:"move_accel"`
	Friction       float64 `yaml:"friction"`
	MaxSpeed       float64 `yaml:"max_speed"`
	ThrustForce    float64 `yaml:"thrust_force"`
	ThrustMaxSpeed float64 `yaml:"thrust_max_speed"`
	SlowmoScale    float64 `yaml:"slowmo_scale"`
}

// SkyhopPlayer defines the player's box and start position.
type SkyhopPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartOffset float64 `yaml:"start_offset"` // distance of the first platform above the viewport bottom
}

// SkyhopPlatforms defines platform generation.
type SkyhopPlatforms struct {
	Height        float64         `yaml:"height"`
	BaseWidth     float64         `yaml:"base_width"`
	MinWidth      float64         `yaml:"min_width"`
	WidthShrink   float64         `yaml:"width_shrink"`
	BaseGap       float64         `yaml:"base_gap"`
	MaxExtraGap   float64         `yaml:"max_extra_gap"`
	Jitter        float64         `yaml:"jitter"`
	MovingSpeed   float64         `yaml:"moving_speed"`
	SafePlatforms int             `yaml:"safe_platforms"`
	Lookahead     float64         `yaml:"lookahead"`
	Weights       PlatformWeights `yaml:"weights"`
}

// PlatformWeights are the relative odds of each platform kind.
type PlatformWeights struct {
	Normal    int `yaml:"normal"`
	Moving    int `yaml:"moving"`
	Breakable int `yaml:"breakable"`
	Spring    int `yaml:"spring"`
}

// Sum returns the total weight.
func (w PlatformWeights) Sum() int {
	return w.Normal + w.Moving + w.Breakable + w.Spring
}

// SkyhopItems defines item placement on new platforms.
type SkyhopItems struct {
	Chance  float64     `yaml:"chance"`
	Width   float64     `yaml:"width"`
	Height  float64     `yaml:"height"`
	Weights ItemWeights `yaml:"weights"`
}

// ItemWeights are the relative odds of each item kind.
type ItemWeights struct {
	Thrust int `yaml:"thrust"`
	Boost  int `yaml:"boost"`
	Shield int `yaml:"shield"`
	Magnet int `yaml:"magnet"`
	Slowmo int `yaml:"slowmo"`
	Coin   int `yaml:"coin"`
}

// Sum returns the total weight.
func (w ItemWeights) Sum() int {
	return w.Thrust + w.Boost + w.Shield + w.Magnet + w.Slowmo + w.Coin
}

// SkyhopPowerUps defines timed effect durations (in ticks) and magnet tuning.
type SkyhopPowerUps struct {
	ThrustDuration int     `yaml:"thrust_duration"`
	MagnetDuration int     `yaml:"magnet_duration"`
	SlowmoDuration int     `yaml:"slowmo_duration"`
	MagnetRadius   float64 `yaml:"magnet_radius"`
	MagnetPull     float64 `yaml:"magnet_pull"` // fraction of the remaining distance per tick
}

// ShieldPolicy selects how long a picked-up shield lasts.
type ShieldPolicy string

const (
	ShieldPersistent ShieldPolicy = "persistent" // until the run ends
	ShieldSingleHit  ShieldPolicy = "single_hit" // until the first absorbed contact
	ShieldTimed      ShieldPolicy = "timed"      // for Duration ticks
)

// SkyhopShield defines shield behaviour.
type SkyhopShield struct {
	Policy   ShieldPolicy `yaml:"policy"`
	Duration int          `yaml:"duration"` // only used by the timed policy
}

// SkyhopEnemies defines enemy spawning and stomping.
type SkyhopEnemies struct {
	MinScore     int     `yaml:"min_score"`
	Chance       float64 `yaml:"chance"`
	ExtraChance  float64 `yaml:"extra_chance"` // added at full difficulty
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
	StompMargin  float64 `yaml:"stomp_margin"`
}

// SkyhopCamera defines scrolling.
type SkyhopCamera struct {
	Threshold float64 `yaml:"threshold"` // fraction of viewport height
}

// SkyhopScoring defines how climbing and pickups turn into points.
type SkyhopScoring struct {
	Divisor    float64 `yaml:"divisor"` // climbed units per point
	CoinValue  int     `yaml:"coin_value"`
	StompBonus int     `yaml:"stomp_bonus"`
}

// SkyhopParticles defines the cosmetic particle pool.
type SkyhopParticles struct {
	Capacity   int     `yaml:"capacity"`
	BurstCount int     `yaml:"burst_count"`
	BurstSpeed float64 `yaml:"burst_speed"`
	BurstLife  int     `yaml:"burst_life"`
	TrailLife  int     `yaml:"trail_life"`
	StartSize  float64 `yaml:"start_size"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  ProgressionType `yaml:"type"`
	MaxAt int             `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

var errNoWeights = errors.New("weights must not all be zero")

// Validate reports the first setting that would break the simulation.
func (c SkyhopConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %g", c.Physics.Gravity)
	case c.Physics.JumpImpulse <= 0:
		return fmt.Errorf("config: physics.jump_impulse must be positive, got %g", c.Physics.JumpImpulse)
	case c.Physics.SpringImpulse <= c.Physics.JumpImpulse:
		return fmt.Errorf("config: physics.spring_impulse (%g) must exceed jump_impulse (%g)",
			c.Physics.SpringImpulse, c.Physics.JumpImpulse)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("config: physics.max_fall_speed must be positive, got %g", c.Physics.MaxFallSpeed)
	case c.Physics.Friction <= 0 || c.Physics.Friction > 1:
		return fmt.Errorf("config: physics.friction must be in (0, 1], got %g", c.Physics.Friction)
	case c.Physics.SlowmoScale <= 0 || c.Physics.SlowmoScale > 1:
		return fmt.Errorf("config: physics.slowmo_scale must be in (0, 1], got %g", c.Physics.SlowmoScale)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	case c.Platforms.Height <= 0:
		return fmt.Errorf("config: platforms.height must be positive, got %g", c.Platforms.Height)
	case c.Platforms.MinWidth <= 0:
		return fmt.Errorf("config: platforms.min_width must be positive, got %g", c.Platforms.MinWidth)
	case c.Platforms.BaseWidth < c.Platforms.MinWidth:
		return fmt.Errorf("config: platforms.base_width (%g) is below min_width (%g)",
			c.Platforms.BaseWidth, c.Platforms.MinWidth)
	case c.Platforms.BaseGap <= c.Platforms.Height:
		return fmt.Errorf("config: platforms.base_gap (%g) must exceed platform height (%g)",
			c.Platforms.BaseGap, c.Platforms.Height)
	case c.Platforms.MaxExtraGap < 0 || c.Platforms.Jitter < 0:
		return fmt.Errorf("config: platforms gap terms must not be negative")
	case c.Platforms.Weights.Sum() <= 0:
		return fmt.Errorf("config: platforms.weights: %w", errNoWeights)
	case c.Items.Chance > 0 && c.Items.Weights.Sum() <= 0:
		return fmt.Errorf("config: items.weights: %w", errNoWeights)
	case c.Items.Width <= 0 || c.Items.Height <= 0:
		return fmt.Errorf("config: item size must be positive, got %gx%g", c.Items.Width, c.Items.Height)
	case c.PowerUps.ThrustDuration <= 0 || c.PowerUps.MagnetDuration <= 0 || c.PowerUps.SlowmoDuration <= 0:
		return fmt.Errorf("config: powerups durations must be positive")
	case c.PowerUps.MagnetPull < 0 || c.PowerUps.MagnetPull > 1:
		return fmt.Errorf("config: powerups.magnet_pull must be in [0, 1], got %g", c.PowerUps.MagnetPull)
	case c.Enemies.Width <= 0 || c.Enemies.Height <= 0:
		return fmt.Errorf("config: enemy size must be positive, got %gx%g", c.Enemies.Width, c.Enemies.Height)
	case c.Camera.Threshold <= 0 || c.Camera.Threshold >= 1:
		return fmt.Errorf("config: camera.threshold must be in (0, 1), got %g", c.Camera.Threshold)
	case c.Scoring.Divisor <= 0:
		return fmt.Errorf("config: scoring.divisor must be positive, got %g", c.Scoring.Divisor)
	case c.Particles.Capacity < 0:
		return fmt.Errorf("config: particles.capacity must not be negative, got %d", c.Particles.Capacity)
	}

	switch c.Shield.Policy {
	case ShieldPersistent, ShieldSingleHit:
	case ShieldTimed:
		if c.Shield.Duration <= 0 {
			return fmt.Errorf("config: shield.duration must be positive for the timed policy, got %d", c.Shield.Duration)
		}
	default:
		return fmt.Errorf("config: unknown shield.policy %q", c.Shield.Policy)
	}

	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone:
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}
	return nil
}
