package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/brawler/component"
	"github.com/milk9111/brawler/physics"
	"github.com/milk9111/brawler/timescale"
)

const dt = 1.0 / 60.0

func newTestPlayer(t *testing.T) (*Player, *physics.World) {
	t.Helper()
	w := physics.NewWorld()
	w.AddStaticBox(0, 300, 2000, 50)
	body := w.NewPlayerBody(500, 300-35, 40, 70)
	p := NewPlayer(body)

	tempo := timescale.NewController()
	atk := component.NewAttack(p, nil, tempo, nil)
	p.Bind(atk, nil)
	return p, w
}

// settle steps until the body registers ground contact.
func settle(t *testing.T, p *Player, w *physics.World) {
	t.Helper()
	for i := 0; i < 120 && !p.Grounded(); i++ {
		w.Step(dt)
		p.Update(Commands{}, dt, dt)
	}
	require.True(t, p.Grounded())
}

func TestManaClampsAndRegenerates(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.SetMana(-10)
	assert.Equal(t, 0, p.Mana())
	p.SetMana(9999)
	assert.Equal(t, maxMana, p.Mana())

	p.SetMana(0)
	p.Update(Commands{}, 1, 1)
	assert.Equal(t, int(manaRegen), p.Mana())
}

func TestHealthClamps(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.TakeDamage(-5)
	assert.Equal(t, maxHealth, p.Health())

	p.TakeDamage(9999)
	assert.Equal(t, 0, p.Health())
	assert.True(t, p.Dead())
}

func TestAnimationLockExpires(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.LockAnimation(0.1)
	require.True(t, p.AnimationLocked())

	// a shorter lock never truncates a longer one
	p.LockAnimation(0.01)
	p.Update(Commands{}, 0.05, 0.05)
	assert.True(t, p.AnimationLocked())

	p.Update(Commands{}, 0.1, 0.1)
	assert.False(t, p.AnimationLocked())
}

func TestGroundMovementStates(t *testing.T) {
	p, w := newTestPlayer(t)
	settle(t, p, w)

	p.Update(Commands{MoveX: 1}, dt, dt)
	assert.Equal(t, component.StateWalking, p.State())
	assert.True(t, p.FacingRight())

	p.Update(Commands{MoveX: -1, Run: true}, dt, dt)
	assert.Equal(t, component.StateRunning, p.State())
	assert.False(t, p.FacingRight())

	p.Update(Commands{}, dt, dt)
	assert.Equal(t, component.StateIdle, p.State())
}

func TestJumpThenLand(t *testing.T) {
	p, w := newTestPlayer(t)
	settle(t, p, w)

	p.Update(Commands{Jump: true}, dt, dt)
	require.Equal(t, component.StateJumping, p.State())

	var sawFalling bool
	for i := 0; i < 300; i++ {
		w.Step(dt)
		p.Update(Commands{}, dt, dt)
		if p.State() == component.StateFalling {
			sawFalling = true
		}
		if p.State() == component.StateLanding {
			break
		}
	}
	assert.True(t, sawFalling)
	assert.Equal(t, component.StateLanding, p.State())

	// without a landing sprite the state times out back to idle
	for i := 0; i < 30; i++ {
		w.Step(dt)
		p.Update(Commands{}, dt, dt)
	}
	assert.Equal(t, component.StateIdle, p.State())
}

func TestDashLifetime(t *testing.T) {
	p, w := newTestPlayer(t)
	settle(t, p, w)

	p.Update(Commands{Dash: true}, dt, dt)
	require.True(t, p.Dashing())
	require.Equal(t, component.StateDashing, p.State())
	vx, _ := p.Velocity()
	assert.Equal(t, dashSpeed, vx)

	for i := 0; i < 30; i++ {
		w.Step(dt)
		p.Update(Commands{}, dt, dt)
	}
	assert.False(t, p.Dashing())
	assert.NotEqual(t, component.StateDashing, p.State())
}

func TestDashAttackOnlyDuringDash(t *testing.T) {
	p, w := newTestPlayer(t)
	settle(t, p, w)

	p.Update(Commands{Dash: true}, dt, dt)
	require.True(t, p.Dashing())
	p.Update(Commands{Attack: true}, dt, dt)
	assert.True(t, p.Attack().IsAttacking())
}

func TestUltimateReleaseCancelsWhileInputDisabled(t *testing.T) {
	p, w := newTestPlayer(t)
	settle(t, p, w)

	p.Update(Commands{UltimateHeld: true}, dt, dt)
	require.True(t, p.Attack().IsCharging())
	require.False(t, p.InputEnabled())

	// movement input is ignored during the charge
	vxBefore, _ := p.Velocity()
	p.Update(Commands{MoveX: 1, UltimateHeld: true}, dt, dt)
	vxAfter, _ := p.Velocity()
	assert.Equal(t, vxBefore, vxAfter)

	p.Update(Commands{UltimateReleased: true}, dt, dt)
	assert.False(t, p.Attack().IsCharging())
	assert.True(t, p.InputEnabled())
}

func TestAttackRequestFromIdle(t *testing.T) {
	p, w := newTestPlayer(t)
	settle(t, p, w)

	p.Update(Commands{Attack: true}, dt, dt)
	assert.True(t, p.Attack().IsAttacking())
	assert.Equal(t, component.StateAttacking, p.State())
}
