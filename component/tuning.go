package component

import (
	"fmt"

	"github.com/milk9111/brawler/common"
)

// Attack kind identifiers, used as keys into the tuning table, as logical
// animation names, and as audio cue prefixes.
const (
	AttackLight    = "light_attack"
	AttackCombo1   = "combo_attack_1"
	AttackCombo2   = "combo_attack_2"
	AttackCombo3   = "combo_attack_3"
	AttackDash     = "dash"
	AttackUltimate = "ultimate"
)

// AttackSpec is the static shape and damage of one attack kind. The hitbox
// is defined in facing-right local space relative to the entity anchor.
type AttackSpec struct {
	Hitbox common.Rect
	Damage int
}

// Tuning holds every combat timing and balance knob. All durations are in
// seconds. The table is read-only after construction; hot reload swaps the
// whole value.
type Tuning struct {
	ComboWindow     float64
	MaxCombo        int
	LightAttackLock float64
	ComboAttackLock float64

	UltimateCharge    float64
	UltimateExecution float64
	UltimateCooldown  float64
	UltimateManaCost  int
	UltimateDashSpeed float64
	UltimateTimeScale float64
	UltimateRange     float64
	CinematicDuration float64

	Attacks map[string]AttackSpec
}

// DefaultTuning returns the shipped balance values.
func DefaultTuning() Tuning {
	return Tuning{
		ComboWindow:     0.5,
		MaxCombo:        3,
		LightAttackLock: 0.4,
		ComboAttackLock: 0.5,

		UltimateCharge:    1.0,
		UltimateExecution: 0.5,
		UltimateCooldown:  8.0,
		UltimateManaCost:  30,
		UltimateDashSpeed: 2000,
		UltimateTimeScale: 0.3,
		UltimateRange:     400,
		CinematicDuration: 2.0,

		Attacks: map[string]AttackSpec{
			AttackLight:    {Hitbox: common.Rect{X: 50, Y: -30, Width: 80, Height: 60}, Damage: 10},
			AttackCombo1:   {Hitbox: common.Rect{X: 60, Y: -40, Width: 90, Height: 80}, Damage: 8},
			AttackCombo2:   {Hitbox: common.Rect{X: 70, Y: -30, Width: 100, Height: 70}, Damage: 12},
			AttackCombo3:   {Hitbox: common.Rect{X: 80, Y: -50, Width: 120, Height: 100}, Damage: 20},
			AttackDash:     {Hitbox: common.Rect{X: 30, Y: -20, Width: 60, Height: 50}, Damage: 5},
			AttackUltimate: {Hitbox: common.Rect{X: 0, Y: -40, Width: 400, Height: 80}, Damage: 40},
		},
	}
}

// Validate rejects tuning values the state machines cannot run on.
func (t Tuning) Validate() error {
	if t.ComboWindow <= 0 {
		return fmt.Errorf("tuning: combo window must be positive, got %v", t.ComboWindow)
	}
	if t.MaxCombo < 1 {
		return fmt.Errorf("tuning: max combo must be at least 1, got %d", t.MaxCombo)
	}
	if t.UltimateCharge <= 0 || t.UltimateExecution <= 0 || t.UltimateCooldown <= 0 {
		return fmt.Errorf("tuning: ultimate durations must be positive")
	}
	if t.UltimateManaCost < 0 {
		return fmt.Errorf("tuning: ultimate mana cost must not be negative, got %d", t.UltimateManaCost)
	}
	if t.UltimateTimeScale <= 0 || t.UltimateTimeScale > 1 {
		return fmt.Errorf("tuning: ultimate time scale must be in (0, 1], got %v", t.UltimateTimeScale)
	}
	for kind, spec := range t.Attacks {
		if spec.Hitbox.Width <= 0 || spec.Hitbox.Height <= 0 {
			return fmt.Errorf("tuning: attack %q hitbox must have positive size", kind)
		}
	}
	return nil
}
