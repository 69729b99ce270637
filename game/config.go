package game

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

// Config holds the gameplay tuning constants
type Config struct {
	// ScreenWidth is the logical window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the logical window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// TargetTPS is the fixed simulation tick rate
	TargetTPS int `yaml:"target_tps"`

	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
}

// ShipConfig defines ship handling parameters
type ShipConfig struct {
	// Thrust is the acceleration per tick while the thrust key is held
	Thrust float64 `yaml:"thrust"`

	// MaxSpeed caps the ship's velocity magnitude (pixels per tick)
	MaxSpeed float64 `yaml:"max_speed"`

	// TurnRate is the rotation speed in degrees per second
	TurnRate float64 `yaml:"turn_rate"`

	// Damping multiplies velocity every tick for the floaty drift feel
	Damping float64 `yaml:"damping"`

	// Radius is the collision radius in pixels
	Radius float64 `yaml:"radius"`

	// FireCooldownMS is the minimum time between shots in milliseconds
	FireCooldownMS int `yaml:"fire_cooldown_ms"`
}

// ProjectileConfig defines projectile parameters
type ProjectileConfig struct {
	// Speed is the muzzle speed in pixels per tick, added to the ship's velocity
	Speed float64 `yaml:"speed"`

	// LifetimeMS is how long a projectile lives in milliseconds
	LifetimeMS int `yaml:"lifetime_ms"`

	// Radius is the collision radius in pixels
	Radius float64 `yaml:"radius"`
}

// AsteroidConfig defines asteroid field parameters
type AsteroidConfig struct {
	// InitialCount is how many large asteroids seed a fresh field
	InitialCount int `yaml:"initial_count"`

	// SafeRadius is the minimum spawn distance from the ship in pixels
	SafeRadius float64 `yaml:"safe_radius"`

	// BaseSize is the diameter of a large asteroid in pixels; smaller tiers scale down from it
	BaseSize float64 `yaml:"base_size"`

	// MinDriftSpeed and MaxDriftSpeed bound the random speed roll, which is
	// then divided by the size tier so smaller asteroids move faster
	MinDriftSpeed float64 `yaml:"min_drift_speed"`
	MaxDriftSpeed float64 `yaml:"max_drift_speed"`

	// MaxSpin bounds the random spin rate in degrees per tick
	MaxSpin float64 `yaml:"max_spin"`
}

// DefaultConfig returns the default tuning. It must match default_config.yaml.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		TargetTPS:    60,
		Ship: ShipConfig{
			Thrust:         0.15,
			MaxSpeed:       6.0,
			TurnRate:       180.0,
			Damping:        0.99,
			Radius:         20.0,
			FireCooldownMS: 250,
		},
		Projectile: ProjectileConfig{
			Speed:      10.0,
			LifetimeMS: 2000,
			Radius:     4.0,
		},
		Asteroids: AsteroidConfig{
			InitialCount:  5,
			SafeRadius:    200.0,
			BaseSize:      100.0,
			MinDriftSpeed: 0.5,
			MaxDriftSpeed: 2.0,
			MaxSpin:       1.0,
		},
	}
}

// LoadConfig loads the gameplay configuration.
// Search order: customPath -> ./asteroids.yaml -> embedded default.
// A failure on the explicit path is returned to the caller along with the
// defaults, so the game can still start.
func LoadConfig(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try local config file
	if data, err := os.ReadFile("asteroids.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks that the configuration is playable.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TargetTPS <= 0 {
		return fmt.Errorf("target_tps must be positive, got %d", c.TargetTPS)
	}
	if c.Ship.MaxSpeed <= 0 {
		return fmt.Errorf("ship max_speed must be positive, got %g", c.Ship.MaxSpeed)
	}
	if c.Ship.Damping <= 0 || c.Ship.Damping > 1 {
		return fmt.Errorf("ship damping must be in (0, 1], got %g", c.Ship.Damping)
	}
	if c.Ship.FireCooldownMS < 0 {
		return fmt.Errorf("ship fire_cooldown_ms must not be negative, got %d", c.Ship.FireCooldownMS)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %g", c.Projectile.Speed)
	}
	if c.Projectile.LifetimeMS <= 0 {
		return fmt.Errorf("projectile lifetime_ms must be positive, got %d", c.Projectile.LifetimeMS)
	}
	if c.Asteroids.InitialCount <= 0 {
		return fmt.Errorf("asteroids initial_count must be positive, got %d", c.Asteroids.InitialCount)
	}
	// The ship starts centered, so the farthest spawn point is half the
	// screen diagonal away. A safe radius at or beyond that leaves nowhere
	// to put asteroids.
	if halfDiagonal := math.Hypot(float64(c.ScreenWidth)/2, float64(c.ScreenHeight)/2); c.Asteroids.SafeRadius >= halfDiagonal {
		return fmt.Errorf("asteroids safe_radius %g leaves no room to spawn on a %dx%d screen",
			c.Asteroids.SafeRadius, c.ScreenWidth, c.ScreenHeight)
	}
	if c.Asteroids.BaseSize <= 0 {
		return fmt.Errorf("asteroids base_size must be positive, got %g", c.Asteroids.BaseSize)
	}
	if c.Asteroids.MinDriftSpeed <= 0 || c.Asteroids.MaxDriftSpeed < c.Asteroids.MinDriftSpeed {
		return fmt.Errorf("asteroid drift speeds must satisfy 0 < min <= max, got [%g, %g]",
			c.Asteroids.MinDriftSpeed, c.Asteroids.MaxDriftSpeed)
	}
	return nil
}

// FireCooldown returns the ship cooldown as a duration.
func (c ShipConfig) FireCooldown() time.Duration {
	return time.Duration(c.FireCooldownMS) * time.Millisecond
}

// Lifetime returns the projectile lifetime as a duration.
func (c ProjectileConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeMS) * time.Millisecond
}
