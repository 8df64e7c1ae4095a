package config

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/neon-runner/parameter"
)

// Preset names
const (
	PresetNeon = "neon" // 3D lane tuning
	PresetGrid = "grid" // Second 3D variant: heavier, faster, denser
	PresetFlat = "flat" // Canvas variant: low jumps, short lookahead
)

var presets = map[string]func() *Config{
	PresetNeon: neonPreset,
	PresetGrid: gridPreset,
	PresetFlat: flatPreset,
}

// Preset returns a fresh copy of the named preset
func Preset(name string) (*Config, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalidConfig, name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the neon preset
func Default() *Config {
	return neonPreset()
}

func neonPreset() *Config {
	return &Config{
		Preset: PresetNeon,
		Seed:   parameter.DefaultSeed,
		Physics: PhysicsConfig{
			Gravity:          parameter.Gravity,
			IntegrationStep:  parameter.IntegrationStep,
			JumpForce:        parameter.JumpForce,
			DoubleJumpFactor: parameter.DoubleJumpFactor,
			GroundLevel:      parameter.GroundLevel,
			BaseSpeed:        parameter.BaseSpeed,
			MaxSpeed:         parameter.MaxSpeed,
			Acceleration:     parameter.Acceleration,
			CoyoteTimeMs:     int(parameter.CoyoteTime.Milliseconds()),
			JumpBufferMs:     int(parameter.JumpBuffer.Milliseconds()),
			PlayerSize:       parameter.PlayerSize,
			HitboxMargin:     parameter.HitboxMargin,
		},
		World: WorldConfig{
			ObstacleCap:          parameter.ObstacleCap,
			ObstacleLookahead:    parameter.ObstacleLookahead,
			ObstacleJitter:       parameter.ObstacleJitter,
			TallChance:           parameter.TallChance,
			FlyingChance:         parameter.FlyingChance,
			GapFloor:             parameter.GapFloor,
			GapFactor:            parameter.GapFactor,
			CollectibleCap:       parameter.CollectibleCap,
			CollectibleLookahead: parameter.CollectibleLookahead,
			CollectibleJitter:    parameter.CollectibleJitter,
			CollectibleChance:    parameter.CollectibleChance,
			CollectibleBaseY:     parameter.CollectibleBaseY,
			CollectibleBob:       parameter.CollectibleBob,
			PropCap:              parameter.PropCap,
			InitialProps:         parameter.InitialProps,
			PropLookahead:        parameter.PropLookahead,
			PropGap:              parameter.PropGap,
			PropGapJitter:        parameter.PropGapJitter,
			CullMargin:           parameter.CullMargin,
		},
		Economy: EconomyConfig{
			CoinValue:        parameter.CoinValue,
			PremiumCoinValue: parameter.PremiumCoinValue,
		},
		Effects: EffectsConfig{
			DeathRevealMs: int(parameter.DeathRevealDelay.Milliseconds()),
			SpinMs:        int(parameter.SpinDuration.Milliseconds()),
		},
		Audio: AudioConfig{
			Enabled:      true,
			Music:        true,
			MasterVolume: parameter.MasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Store: StoreConfig{
			BestScoreKey: parameter.KeyBestScore,
			CurrencyKey:  parameter.KeyCurrency,
			PremiumKey:   parameter.KeyPremium,
			SkinsKey:     parameter.KeySkins,
			EquippedKey:  parameter.KeyEquipped,
		},
		Render: RenderConfig{
			FrameIntervalMs: int(parameter.FrameUpdateInterval.Milliseconds()),
			ColumnsPerUnit:  parameter.ColumnsPerUnit,
			PlayerColumn:    parameter.PlayerColumn,
		},
	}
}

func gridPreset() *Config {
	c := neonPreset()
	c.Preset = PresetGrid
	c.Physics.Gravity = 0.8
	c.Physics.JumpForce = 1.0
	c.Physics.BaseSpeed = 1.0
	c.Physics.MaxSpeed = 4.0
	c.Physics.Acceleration = 0.0004
	c.World.ObstacleCap = 8
	c.World.GapFloor = 14
	c.World.CollectibleCap = 4
	return c
}

func flatPreset() *Config {
	c := neonPreset()
	c.Preset = PresetFlat
	c.Physics.Gravity = 0.5
	c.Physics.JumpForce = 0.6
	c.Physics.DoubleJumpFactor = 0.8
	c.Physics.BaseSpeed = 0.6
	c.Physics.MaxSpeed = 2.0
	c.Physics.Acceleration = 0.0002
	c.World.ObstacleLookahead = 40
	c.World.ObstacleJitter = 30
	c.World.CollectibleLookahead = 40
	c.World.CollectibleJitter = 15
	c.World.GapFloor = 10
	c.World.GapFactor = 6
	c.World.FlyingChance = 0.2
	return c
}
