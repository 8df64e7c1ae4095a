package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full tunable set for one simulation variant
type Config struct {
	Preset string `toml:"preset"`
	Seed   uint64 `toml:"seed"`

	Physics PhysicsConfig `toml:"physics"`
	World   WorldConfig   `toml:"world"`
	Economy EconomyConfig `toml:"economy"`
	Effects EffectsConfig `toml:"effects"`
	Audio   AudioConfig   `toml:"audio"`
	Store   StoreConfig   `toml:"store"`
	Render  RenderConfig  `toml:"render"`
}

// PhysicsConfig holds player motion tunables
type PhysicsConfig struct {
	Gravity          float64 `toml:"gravity"`
	IntegrationStep  float64 `toml:"integration_step"`
	JumpForce        float64 `toml:"jump_force"`
	DoubleJumpFactor float64 `toml:"double_jump_factor"`
	GroundLevel      float64 `toml:"ground_level"`
	BaseSpeed        float64 `toml:"base_speed"`
	MaxSpeed         float64 `toml:"max_speed"`
	Acceleration     float64 `toml:"acceleration"`
	CoyoteTimeMs     int     `toml:"coyote_time_ms"`
	JumpBufferMs     int     `toml:"jump_buffer_ms"`
	PlayerSize       float64 `toml:"player_size"`
	HitboxMargin     float64 `toml:"hitbox_margin"`
}

// WorldConfig holds spawner and cull tunables
type WorldConfig struct {
	ObstacleCap       int     `toml:"obstacle_cap"`
	ObstacleLookahead float64 `toml:"obstacle_lookahead"`
	ObstacleJitter    float64 `toml:"obstacle_jitter"`
	TallChance        float64 `toml:"tall_chance"`
	FlyingChance      float64 `toml:"flying_chance"`
	GapFloor          float64 `toml:"gap_floor"`
	GapFactor         float64 `toml:"gap_factor"`

	CollectibleCap       int     `toml:"collectible_cap"`
	CollectibleLookahead float64 `toml:"collectible_lookahead"`
	CollectibleJitter    float64 `toml:"collectible_jitter"`
	CollectibleChance    float64 `toml:"collectible_chance"`
	CollectibleBaseY     float64 `toml:"collectible_base_y"`
	CollectibleBob       float64 `toml:"collectible_bob"`

	PropCap       int     `toml:"prop_cap"`
	InitialProps  int     `toml:"initial_props"`
	PropLookahead float64 `toml:"prop_lookahead"`
	PropGap       float64 `toml:"prop_gap"`
	PropGapJitter float64 `toml:"prop_gap_jitter"`

	CullMargin float64 `toml:"cull_margin"`
}

// EconomyConfig holds per-collect currency amounts
type EconomyConfig struct {
	CoinValue        int `toml:"coin_value"`
	PremiumCoinValue int `toml:"premium_coin_value"`
}

// EffectsConfig holds deferred cosmetic timings
type EffectsConfig struct {
	DeathRevealMs int `toml:"death_reveal_ms"`
	SpinMs        int `toml:"spin_ms"`
}

// AudioConfig holds synthesizer output settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	Music        bool    `toml:"music"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// StoreConfig holds progress file location and key names
// Key names belong to the store, the simulation only forwards them
type StoreConfig struct {
	Path         string `toml:"path"`
	BestScoreKey string `toml:"best_score_key"`
	CurrencyKey  string `toml:"currency_key"`
	PremiumKey   string `toml:"premium_key"`
	SkinsKey     string `toml:"skins_key"`
	EquippedKey  string `toml:"equipped_key"`
}

// RenderConfig holds side-view layout settings
type RenderConfig struct {
	FrameIntervalMs int     `toml:"frame_interval_ms"`
	ColumnsPerUnit  float64 `toml:"columns_per_unit"`
	PlayerColumn    int     `toml:"player_column"`
}

// CoyoteTime returns the coyote window as a duration
func (p PhysicsConfig) CoyoteTime() time.Duration {
	return time.Duration(p.CoyoteTimeMs) * time.Millisecond
}

// JumpBuffer returns the jump buffer window as a duration
func (p PhysicsConfig) JumpBuffer() time.Duration {
	return time.Duration(p.JumpBufferMs) * time.Millisecond
}

// DeathReveal returns the death panel delay as a duration
func (e EffectsConfig) DeathReveal() time.Duration {
	return time.Duration(e.DeathRevealMs) * time.Millisecond
}

// Spin returns the double-jump flip duration
func (e EffectsConfig) Spin() time.Duration {
	return time.Duration(e.SpinMs) * time.Millisecond
}

// FrameInterval returns the tick interval as a duration
func (r RenderConfig) FrameInterval() time.Duration {
	return time.Duration(r.FrameIntervalMs) * time.Millisecond
}

// Load builds a config from the named preset, then overlays the file at path (if non-empty), then the environment
func Load(preset, path string) (*Config, error) {
	if env := os.Getenv("NEON_RUNNER_PRESET"); env != "" && preset == "" {
		preset = env
	}
	if preset == "" && path != "" {
		p, err := filePreset(path)
		if err != nil {
			return nil, err
		}
		preset = p
	}
	if preset == "" {
		preset = PresetNeon
	}

	cfg, err := Preset(preset)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
		// The preset was chosen before the overlay; a differing name in the file must not relabel it
		if cfg.Preset != preset {
			log.Printf("config: %s names preset %q, using %q", path, cfg.Preset, preset)
			cfg.Preset = preset
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// filePreset reads only the top-level preset key of a config file
func filePreset(path string) (string, error) {
	var head struct {
		Preset string `toml:"preset"`
	}
	if _, err := toml.DecodeFile(path, &head); err != nil {
		return "", fmt.Errorf("config %s: %w", path, err)
	}
	return head.Preset, nil
}

// mergeFile decodes TOML over the current values; absent keys keep their preset value
func (c *Config) mergeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: unknown key %q in %s", key.String(), path)
	}
	return nil
}

// applyEnv overlays environment variables, ignoring unparsable values
func (c *Config) applyEnv() {
	if enabled := os.Getenv("NEON_RUNNER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("NEON_RUNNER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if seed := os.Getenv("NEON_RUNNER_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 0, 64); err == nil {
			c.Seed = val
		}
	}
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	var problems []string
	p := c.Physics
	w := c.World

	if p.BaseSpeed <= 0 || p.BaseSpeed > p.MaxSpeed {
		problems = append(problems, fmt.Sprintf("base_speed %.3f must be in (0, max_speed %.3f]", p.BaseSpeed, p.MaxSpeed))
	}
	if p.Acceleration < 0 {
		problems = append(problems, "acceleration must not be negative")
	}
	if p.Gravity <= 0 || p.IntegrationStep <= 0 {
		problems = append(problems, "gravity and integration_step must be positive")
	}
	if p.JumpForce <= 0 {
		problems = append(problems, "jump_force must be positive")
	}
	if p.DoubleJumpFactor <= 0 || p.DoubleJumpFactor >= 1 {
		problems = append(problems, "double_jump_factor must be in (0, 1)")
	}
	if p.CoyoteTimeMs < 0 || p.JumpBufferMs < 0 {
		problems = append(problems, "coyote_time_ms and jump_buffer_ms must not be negative")
	}
	if p.PlayerSize <= 0 || p.HitboxMargin < 0 || p.HitboxMargin*2 >= p.PlayerSize {
		problems = append(problems, "hitbox_margin must leave a non-empty player hitbox")
	}
	if w.ObstacleCap <= 0 || w.CollectibleCap <= 0 || w.PropCap <= 0 {
		problems = append(problems, "obstacle_cap, collectible_cap and prop_cap must be positive")
	}
	if w.GapFloor <= 0 {
		problems = append(problems, "gap_floor must be positive")
	}
	if w.TallChance < 0 || w.TallChance > 1 || w.FlyingChance < 0 || w.FlyingChance > 1 {
		problems = append(problems, "tall_chance and flying_chance must be in [0, 1]")
	}
	if w.CollectibleChance < 0 || w.CollectibleChance > 1 {
		problems = append(problems, "collectible_chance must be in [0, 1]")
	}
	if w.CullMargin <= 0 {
		problems = append(problems, "cull_margin must be positive")
	}
	if c.Render.FrameIntervalMs <= 0 {
		problems = append(problems, "frame_interval_ms must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
