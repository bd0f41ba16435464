// Package script runs a tengo script as a synthetic input source. The game
// uses it for the attract mode that plays when nobody has touched the
// controls, and it doubles as a harness for scripted combat scenarios.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/brawler/entity"
)

const dispatchScript = `
if __phase == "update" {
	update(__input, __state, __t, __dt)
}
`

// Driver compiles a control script once and polls it every frame. The script
// defines update(input, state, t, dt) and calls input functions to press
// buttons for the frame:
//
//	input.move(-1)    // hold left
//	input.run(true)
//	input.jump()
//	input.dash()
//	input.attack()
//	input.ultimate(true)  // hold until released with input.ultimate(false)
type Driver struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	elapsed  float64

	frame        entity.Commands
	ultimateHeld bool
	prevHeld     bool
}

func NewDriver(src []byte) (*Driver, error) {
	full := string(src) + "\n" + dispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__phase", "")
	_ = s.Add("__input", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__t", 0.0)
	_ = s.Add("__dt", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Driver{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Poll runs one script tick and returns the commands it pressed.
func (d *Driver) Poll(dt float64) (entity.Commands, error) {
	d.elapsed += dt
	d.frame = entity.Commands{}
	d.prevHeld = d.ultimateHeld

	if err := d.compiled.Set("__phase", "update"); err != nil {
		return entity.Commands{}, err
	}
	if err := d.compiled.Set("__input", d.inputEngine()); err != nil {
		return entity.Commands{}, err
	}
	if err := d.compiled.Set("__state", d.state); err != nil {
		return entity.Commands{}, err
	}
	if err := d.compiled.Set("__t", &tengo.Float{Value: d.elapsed}); err != nil {
		return entity.Commands{}, err
	}
	if err := d.compiled.Set("__dt", &tengo.Float{Value: dt}); err != nil {
		return entity.Commands{}, err
	}
	if err := d.compiled.Run(); err != nil {
		return entity.Commands{}, fmt.Errorf("script: update: %w", err)
	}

	d.frame.UltimateHeld = d.ultimateHeld
	d.frame.UltimateReleased = d.prevHeld && !d.ultimateHeld
	return d.frame, nil
}

func (d *Driver) inputEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		x, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.UndefinedValue, nil
		}
		if x < -1 {
			x = -1
		}
		if x > 1 {
			x = 1
		}
		d.frame.MoveX = x
		return tengo.UndefinedValue, nil
	}}

	values["run"] = &tengo.UserFunction{Name: "run", Value: func(args ...tengo.Object) (tengo.Object, error) {
		d.frame.Run = len(args) < 1 || boolArg(args[0])
		return tengo.UndefinedValue, nil
	}}

	values["jump"] = &tengo.UserFunction{Name: "jump", Value: func(...tengo.Object) (tengo.Object, error) {
		d.frame.Jump = true
		return tengo.UndefinedValue, nil
	}}

	values["dash"] = &tengo.UserFunction{Name: "dash", Value: func(...tengo.Object) (tengo.Object, error) {
		d.frame.Dash = true
		return tengo.UndefinedValue, nil
	}}

	values["attack"] = &tengo.UserFunction{Name: "attack", Value: func(...tengo.Object) (tengo.Object, error) {
		d.frame.Attack = true
		return tengo.UndefinedValue, nil
	}}

	values["ultimate"] = &tengo.UserFunction{Name: "ultimate", Value: func(args ...tengo.Object) (tengo.Object, error) {
		d.ultimateHeld = len(args) < 1 || boolArg(args[0])
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolArg(o tengo.Object) bool {
	switch v := o.(type) {
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Int:
		return v.Value != 0
	default:
		return !o.IsFalsy()
	}
}

// DefaultAttractScript is the bundled demo loop: pace the arena, throw a
// combo, and fire the ultimate once enough mana has regenerated.
const DefaultAttractScript = `
update := func(input, state, t, dt) {
	phase := int(t) % 12

	if phase < 3 {
		input.move(1)
		input.run(true)
	} else if phase < 6 {
		input.move(-1)
		input.run(true)
	} else if phase < 8 {
		if int(t * 4) % 3 == 0 {
			input.attack()
		}
	} else if phase < 9 {
		input.ultimate(true)
	} else {
		input.ultimate(false)
	}
}
`
