// Package entity composes the player from its body and combat components.
// Composition is fixed at construction; there is no component registry to
// query at runtime.
package entity

import (
	"github.com/milk9111/brawler/component"
	"github.com/milk9111/brawler/physics"
)

const (
	walkSpeed = 220.0
	runSpeed  = 520.0
	jumpSpeed = 900.0

	dashSpeed    = 700.0
	dashDuration = 0.25

	walkThreshold = 40.0

	maxHealth = 100
	maxMana   = 100
	manaRegen = 8.0 // per second
)

// Commands is one frame of player intent, already mapped from whatever
// device produced it.
type Commands struct {
	MoveX            float64 // -1..1
	Run              bool
	Jump             bool // edge
	Dash             bool // edge
	Attack           bool // edge
	UltimateHeld     bool
	UltimateReleased bool
}

// Player is the controllable fighter. It implements the entity views the
// combat and animation components need.
type Player struct {
	body *physics.Body

	attack    *component.Attack
	animation *component.Animation

	state    component.PlayerState
	stateAge float64
	context  component.MovementContext

	facingRight  bool
	turning      bool
	inputEnabled bool

	casting   bool
	attacking bool

	dashing   bool
	dashTimer float64

	lockRemaining float64

	health int
	mana   float64
}

func NewPlayer(body *physics.Body) *Player {
	return &Player{
		body:         body,
		state:        component.StateIdle,
		facingRight:  true,
		inputEnabled: true,
		health:       maxHealth,
		mana:         maxMana,
	}
}

// Bind attaches the combat components. Called once during assembly; the
// player forwards sprite control and attack requests through these handles.
func (p *Player) Bind(attack *component.Attack, animation *component.Animation) {
	p.attack = attack
	p.animation = animation
}

func (p *Player) Attack() *component.Attack { return p.attack }

func (p *Player) Animation() *component.Animation { return p.animation }

// Update runs one frame of player logic. unscaledDT is real time for action
// timers; scaledDT carries the current time scale for movement and
// animation.
func (p *Player) Update(cmd Commands, unscaledDT, scaledDT float64) {
	if p.lockRemaining > 0 {
		p.lockRemaining -= unscaledDT
		if p.lockRemaining < 0 {
			p.lockRemaining = 0
		}
	}

	p.mana += manaRegen * scaledDT
	if p.mana > maxMana {
		p.mana = maxMana
	}

	p.stateAge += scaledDT

	p.updateDash(scaledDT)
	if p.inputEnabled {
		p.applyMovement(cmd, scaledDT)
		p.dispatchActions(cmd)
	} else if cmd.UltimateReleased && p.attack != nil && p.attack.IsCharging() {
		// input is disabled during the charge, but releasing early still
		// cancels it
		p.attack.CancelUltimateCharge()
	}

	if p.attack != nil {
		p.attack.Update(unscaledDT)
	}

	p.resolveMovementState()

	if p.animation != nil {
		p.animation.Update(scaledDT)
	}
}

func (p *Player) applyMovement(cmd Commands, dt float64) {
	if p.dashing || p.casting {
		return
	}

	speed := walkSpeed
	if cmd.Run {
		speed = runSpeed
	}
	p.body.SetVelocityX(cmd.MoveX * speed)

	vx, _ := p.body.Velocity()
	p.turning = cmd.MoveX != 0 && vx != 0 && (cmd.MoveX > 0) != (vx > 0)
	if cmd.MoveX > 0 {
		p.facingRight = true
	} else if cmd.MoveX < 0 {
		p.facingRight = false
	}

	if cmd.Jump && p.body.Grounded() && !p.attacking {
		vx, _ := p.body.Velocity()
		p.body.SetVelocity(vx, -jumpSpeed)
		p.SetState(component.StateJumping)
	}
}

func (p *Player) dispatchActions(cmd Commands) {
	if p.attack == nil {
		return
	}

	if cmd.Dash && !p.dashing && p.body.Grounded() && !p.attacking && !p.casting {
		p.startDash()
	}

	if cmd.Attack {
		if p.dashing {
			p.attack.RequestDashAttack()
		} else {
			p.attack.RequestLightAttack()
		}
	}

	if cmd.UltimateHeld {
		p.attack.RequestUltimateCharge()
	}
	if cmd.UltimateReleased && p.attack.IsCharging() {
		p.attack.CancelUltimateCharge()
	}
}

func (p *Player) startDash() {
	p.dashing = true
	p.dashTimer = dashDuration
	dir := 1.0
	if !p.facingRight {
		dir = -1.0
	}
	p.body.SetVelocityX(dir * dashSpeed)
	p.SetState(component.StateDashing)
}

func (p *Player) updateDash(dt float64) {
	if !p.dashing {
		return
	}
	p.dashTimer -= dt
	if p.dashTimer <= 0 {
		p.dashing = false
		if p.state == component.StateDashing {
			p.SetState(component.StateIdle)
		}
	}
}

// resolveMovementState derives the movement state from the body unless an
// action state owns it.
func (p *Player) resolveMovementState() {
	// a missing landing sprite would otherwise never complete
	if p.state == component.StateLanding && p.stateAge > 0.3 {
		p.SetState(component.StateIdle)
	}

	switch p.state {
	case component.StateAttacking, component.StateCasting, component.StateDashing, component.StateLanding:
		return
	}

	vx, vy := p.body.Velocity()
	// the foot sensor's grace window still reports contact right after a
	// jump; upward velocity wins
	if !p.body.Grounded() || vy < -1 {
		if vy < 0 {
			p.setStateKeepAge(component.StateJumping)
		} else {
			p.setStateKeepAge(component.StateFalling)
		}
		return
	}

	if p.state == component.StateFalling || p.state == component.StateJumping {
		// touched down this frame
		p.SetState(component.StateLanding)
		return
	}

	switch {
	case abs(vx) >= walkThreshold && runSpeedRequested(vx):
		p.setStateKeepAge(component.StateRunning)
	case abs(vx) >= walkThreshold:
		p.setStateKeepAge(component.StateWalking)
	default:
		p.setStateKeepAge(component.StateIdle)
	}
}

func runSpeedRequested(vx float64) bool {
	return abs(vx) > walkSpeed
}

// setStateKeepAge transitions without resetting stateAge when the state is
// unchanged.
func (p *Player) setStateKeepAge(s component.PlayerState) {
	if p.state == s {
		return
	}
	p.SetState(s)
}

func (p *Player) Position() (float64, float64) { return p.body.Position() }

func (p *Player) Velocity() (float64, float64) { return p.body.Velocity() }

func (p *Player) SetVelocity(vx, vy float64) { p.body.SetVelocity(vx, vy) }

func (p *Player) Grounded() bool { return p.body.Grounded() }

func (p *Player) SetGravityEnabled(on bool) { p.body.SetGravityEnabled(on) }

func (p *Player) FacingRight() bool { return p.facingRight }

func (p *Player) Turning() bool { return p.turning }

func (p *Player) Dashing() bool { return p.dashing }

func (p *Player) State() component.PlayerState { return p.state }

func (p *Player) SetState(s component.PlayerState) {
	if p.state == s {
		return
	}
	p.state = s
	p.stateAge = 0
}

func (p *Player) StateAge() float64 { return p.stateAge }

func (p *Player) MovementContext() component.MovementContext { return p.context }

func (p *Player) SetMovementContext(c component.MovementContext) { p.context = c }

func (p *Player) SetCasting(casting bool) { p.casting = casting }

func (p *Player) Casting() bool { return p.casting }

func (p *Player) SetAttacking(attacking bool) { p.attacking = attacking }

func (p *Player) Attacking() bool { return p.attacking }

func (p *Player) SetInputEnabled(enabled bool) { p.inputEnabled = enabled }

func (p *Player) InputEnabled() bool { return p.inputEnabled }

func (p *Player) AnimationLocked() bool { return p.lockRemaining > 0 }

func (p *Player) LockAnimation(seconds float64) {
	if seconds > p.lockRemaining {
		p.lockRemaining = seconds
	}
}

func (p *Player) UnlockAnimation() { p.lockRemaining = 0 }

func (p *Player) Mana() int { return int(p.mana) }

func (p *Player) SetMana(v int) {
	if v < 0 {
		v = 0
	}
	if v > maxMana {
		v = maxMana
	}
	p.mana = float64(v)
}

func (p *Player) MaxMana() int { return maxMana }

func (p *Player) Health() int { return p.health }

func (p *Player) MaxHealth() int { return maxHealth }

// TakeDamage reduces health, clamped at zero.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
}

func (p *Player) Dead() bool { return p.health <= 0 }

func (p *Player) CollisionHeight() float64 {
	_, h := p.body.Size()
	return h
}

func (p *Player) CurrentSprite() *component.Sprite {
	if p.animation == nil {
		return nil
	}
	return p.animation.CurrentSprite()
}

func (p *Player) RestartSprite() {
	if p.animation != nil {
		p.animation.RestartCurrent()
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
