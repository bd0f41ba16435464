// Package config loads combat tuning from yaml and watches it for changes,
// so balance numbers can be adjusted without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/component"
)

type attackConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`
}

type combatConfig struct {
	ComboWindow       float64 `yaml:"combo_window"`
	MaxCombo          int     `yaml:"max_combo"`
	LightAttackLock   float64 `yaml:"light_attack_lock"`
	ComboAttackLock   float64 `yaml:"combo_attack_lock"`
	UltimateCharge    float64 `yaml:"ultimate_charge"`
	UltimateExecution float64 `yaml:"ultimate_execution"`
	UltimateCooldown  float64 `yaml:"ultimate_cooldown"`
	UltimateManaCost  int     `yaml:"ultimate_mana_cost"`
	UltimateDashSpeed float64 `yaml:"ultimate_dash_speed"`
	UltimateTimeScale float64 `yaml:"ultimate_time_scale"`
	UltimateRange     float64 `yaml:"ultimate_range"`
	CinematicDuration float64 `yaml:"cinematic_duration"`

	Attacks map[string]attackConfig `yaml:"attacks"`
}

func defaultsConfig() combatConfig {
	t := component.DefaultTuning()
	cfg := combatConfig{
		ComboWindow:       t.ComboWindow,
		MaxCombo:          t.MaxCombo,
		LightAttackLock:   t.LightAttackLock,
		ComboAttackLock:   t.ComboAttackLock,
		UltimateCharge:    t.UltimateCharge,
		UltimateExecution: t.UltimateExecution,
		UltimateCooldown:  t.UltimateCooldown,
		UltimateManaCost:  t.UltimateManaCost,
		UltimateDashSpeed: t.UltimateDashSpeed,
		UltimateTimeScale: t.UltimateTimeScale,
		UltimateRange:     t.UltimateRange,
		CinematicDuration: t.CinematicDuration,
		Attacks:           map[string]attackConfig{},
	}
	for kind, spec := range t.Attacks {
		cfg.Attacks[kind] = attackConfig{
			X:      spec.Hitbox.X,
			Y:      spec.Hitbox.Y,
			Width:  spec.Hitbox.Width,
			Height: spec.Hitbox.Height,
			Damage: spec.Damage,
		}
	}
	return cfg
}

func (cfg combatConfig) tuning() component.Tuning {
	t := component.Tuning{
		ComboWindow:       cfg.ComboWindow,
		MaxCombo:          cfg.MaxCombo,
		LightAttackLock:   cfg.LightAttackLock,
		ComboAttackLock:   cfg.ComboAttackLock,
		UltimateCharge:    cfg.UltimateCharge,
		UltimateExecution: cfg.UltimateExecution,
		UltimateCooldown:  cfg.UltimateCooldown,
		UltimateManaCost:  cfg.UltimateManaCost,
		UltimateDashSpeed: cfg.UltimateDashSpeed,
		UltimateTimeScale: cfg.UltimateTimeScale,
		UltimateRange:     cfg.UltimateRange,
		CinematicDuration: cfg.CinematicDuration,
		Attacks:           map[string]component.AttackSpec{},
	}
	for kind, a := range cfg.Attacks {
		t.Attacks[kind] = component.AttackSpec{
			Hitbox: common.Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height},
			Damage: a.Damage,
		}
	}
	return t
}

// LoadTuning reads a tuning file and returns the merged result: values the
// file omits keep their defaults. The returned tuning is already validated.
func LoadTuning(filename string) (component.Tuning, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return component.Tuning{}, fmt.Errorf("config: read %s: %w", filename, err)
	}
	return ParseTuning(data, filename)
}

// ParseTuning merges yaml bytes over the default tuning.
func ParseTuning(data []byte, filename string) (component.Tuning, error) {
	cfg := defaultsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return component.Tuning{}, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	t := cfg.tuning()
	if err := t.Validate(); err != nil {
		return component.Tuning{}, fmt.Errorf("config: %s: %w", filename, err)
	}
	return t, nil
}

// WriteDefault writes the default tuning as a starting-point file.
func WriteDefault(filename string) error {
	data, err := yaml.Marshal(defaultsConfig())
	if err != nil {
		return fmt.Errorf("config: marshal defaults: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", filename, err)
	}
	return nil
}
