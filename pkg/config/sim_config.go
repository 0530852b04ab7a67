package config

import (
	"fmt"
	"log"

	"github.com/phishy-app/phishy-desktop/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SimulationConfig holds the tunable parameters of the ambient particle
// background. Values come from data/simulation.yaml; every field has a
// built-in default so a missing or partial file never breaks startup.
//
// ParticleCount and ConnectionThreshold are the cost knobs: the connection
// pass evaluates every unordered particle pair, so the per-frame work grows
// quadratically with ParticleCount.
type SimulationConfig struct {
	// ParticleCount 粒子总数（场初始化后固定不变）
	ParticleCount int `yaml:"particleCount"`

	// MaxSpeed 每帧速度分量的上限（速度均匀采样于 ±MaxSpeed）
	MaxSpeed float64 `yaml:"maxSpeed"`

	// RadiusMin / RadiusMax 粒子半径采样区间
	RadiusMin float64 `yaml:"radiusMin"`
	RadiusMax float64 `yaml:"radiusMax"`

	// RadiusFloor 绘制时强制的最小半径（防止退化绘制调用）
	RadiusFloor float64 `yaml:"radiusFloor"`

	// AlphaMin / AlphaMax 粒子不透明度采样区间（低值，保持背景弱视觉权重）
	AlphaMin float64 `yaml:"alphaMin"`
	AlphaMax float64 `yaml:"alphaMax"`

	// ConnectionThreshold 连线距离阈值（像素）
	ConnectionThreshold float64 `yaml:"connectionThreshold"`

	// MaxLineAlpha 距离为 0 时连线的不透明度上限
	MaxLineAlpha float64 `yaml:"maxLineAlpha"`
}

// DefaultSimulationConfig returns the built-in parameter set. These match
// data/simulation.yaml and are used whenever the embedded file is missing
// or unreadable.
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		ParticleCount:       70,
		MaxSpeed:            0.2,
		RadiusMin:           1.0,
		RadiusMax:           3.0,
		RadiusFloor:         0.5,
		AlphaMin:            0.10,
		AlphaMax:            0.50,
		ConnectionThreshold: 110.0,
		MaxLineAlpha:        0.35,
	}
}

// LoadSimulationConfig loads simulation parameters from the embedded data
// file at the given path (e.g. "data/simulation.yaml"). Keys absent from
// the file keep their default values.
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	cfg := DefaultSimulationConfig()

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation config: %w", err)
	}

	log.Printf("[Config] Simulation config loaded: %d particles, threshold %.0f",
		cfg.ParticleCount, cfg.ConnectionThreshold)
	return cfg, nil
}
