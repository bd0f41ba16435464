package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnimPlayer implements AnimationEntity for resolver tests.
type fakeAnimPlayer struct {
	state       PlayerState
	context     MovementContext
	attacking   bool
	facingRight bool
	turning     bool
	vx, vy      float64
	grounded    bool
	stateAge    float64
	x, y        float64
	collisionH  float64
}

func newFakeAnimPlayer() *fakeAnimPlayer {
	return &fakeAnimPlayer{
		state:       StateIdle,
		facingRight: true,
		grounded:    true,
		stateAge:    10,
		collisionH:  70,
	}
}

func (p *fakeAnimPlayer) State() PlayerState                 { return p.state }
func (p *fakeAnimPlayer) SetState(s PlayerState)             { p.state = s }
func (p *fakeAnimPlayer) MovementContext() MovementContext   { return p.context }
func (p *fakeAnimPlayer) SetMovementContext(c MovementContext) { p.context = c }
func (p *fakeAnimPlayer) SetAttacking(a bool)                { p.attacking = a }
func (p *fakeAnimPlayer) FacingRight() bool                  { return p.facingRight }
func (p *fakeAnimPlayer) Turning() bool                      { return p.turning }
func (p *fakeAnimPlayer) Velocity() (float64, float64)       { return p.vx, p.vy }
func (p *fakeAnimPlayer) Grounded() bool                     { return p.grounded }
func (p *fakeAnimPlayer) StateAge() float64                  { return p.stateAge }
func (p *fakeAnimPlayer) Position() (float64, float64)       { return p.x, p.y }
func (p *fakeAnimPlayer) CollisionHeight() float64           { return p.collisionH }

// mapProvider keeps one sprite per logical name.
type mapProvider map[string]*Sprite

func (m mapProvider) Sprite(name string) *Sprite { return m[name] }

func testProvider(names ...string) mapProvider {
	m := mapProvider{}
	for _, name := range names {
		m[name] = NewSprite(name, nilFrames(3), 32, 32, 0.1, LoopForever)
	}
	return m
}

func TestResolveMovementStates(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("idle", "walk", "run", "jump", "fall", "dash", "land")
	anim := NewAnimation(player, provider)

	cases := []struct {
		state PlayerState
		want  string
	}{
		{StateIdle, "idle"},
		{StateWalking, "walk"},
		{StateRunning, "run"},
		{StateJumping, "jump"},
		{StateFalling, "fall"},
		{StateDashing, "dash"},
		{StateLanding, "land"},
	}
	for _, tc := range cases {
		player.state = tc.state
		player.vx = 600
		anim.Refresh()
		require.NotNil(t, anim.CurrentSprite(), tc.want)
		assert.Equal(t, tc.want, anim.CurrentSprite().Name())
	}
}

func TestRunStartWindow(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("run", "to_run", "break_run")
	anim := NewAnimation(player, provider)
	player.state = StateRunning

	player.stateAge = 0.1
	player.vx = 200
	anim.Refresh()
	assert.Equal(t, "to_run", anim.CurrentSprite().Name(), "fresh slow run starts with the wind-up")

	player.vx = 600
	anim.Refresh()
	assert.Equal(t, "run", anim.CurrentSprite().Name(), "already at speed skips the wind-up")

	player.vx = 200
	player.stateAge = 0.3
	anim.Refresh()
	assert.Equal(t, "run", anim.CurrentSprite().Name(), "window expired")
}

func TestBreakRunBeatsRunStart(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("run", "to_run", "break_run")
	anim := NewAnimation(player, provider)

	player.state = StateRunning
	player.stateAge = 0.1
	player.vx = 200
	player.turning = true
	anim.Refresh()
	assert.Equal(t, "break_run", anim.CurrentSprite().Name())

	player.turning = false
	player.context = ContextTurning
	anim.Refresh()
	assert.Equal(t, "break_run", anim.CurrentSprite().Name())
}

func TestAttackSpriteOverrides(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("idle", "light_attack", "combo_attack", "cast", "ultimate")
	anim := NewAnimation(player, provider)

	combat := newFakePlayer()
	atk := NewAttack(combat, nil, nil, nil)
	anim.BindAttack(atk)

	player.state = StateAttacking
	anim.Refresh()
	assert.Equal(t, "light_attack", anim.CurrentSprite().Name())

	atk.RequestLightAttack()
	advance(atk, combat, 0.1)
	atk.RequestLightAttack()
	require.Equal(t, 1, atk.ComboCount())
	anim.Refresh()
	assert.Equal(t, "combo_attack", anim.CurrentSprite().Name())
}

func TestCastingSpriteFollowsExecution(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("idle", "cast", "ultimate")
	anim := NewAnimation(player, provider)

	combat := newFakePlayer()
	atk := NewAttack(combat, nil, nil, nil)
	anim.BindAttack(atk)

	player.state = StateCasting
	anim.Refresh()
	assert.Equal(t, "cast", anim.CurrentSprite().Name())

	atk.RequestUltimateCharge()
	advance(atk, combat, atk.Tuning().UltimateCharge+testDT)
	require.True(t, atk.IsExecuting())
	player.state = combat.state
	require.Equal(t, StateCasting, player.state)
	anim.Refresh()
	assert.Equal(t, "ultimate", anim.CurrentSprite().Name())
}

func TestContextualFallsBackToStateSprite(t *testing.T) {
	player := newFakeAnimPlayer()
	// no to_run sprite; the generic state name covers it
	provider := testProvider("running", "idle")
	anim := NewAnimation(player, provider)

	player.state = StateRunning
	player.stateAge = 0.1
	player.vx = 100
	anim.Refresh()
	require.NotNil(t, anim.CurrentSprite())
	assert.Equal(t, "running", anim.CurrentSprite().Name())
}

func TestMissingSpritesKeepPrevious(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("idle")
	anim := NewAnimation(player, provider)
	require.Equal(t, "idle", anim.CurrentSprite().Name())

	player.state = StateJumping
	anim.Refresh()
	assert.Equal(t, "idle", anim.CurrentSprite().Name(), "a hole in the sprite set must not blank the player")
}

func TestSpriteSwapResets(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := testProvider("idle", "walk")
	anim := NewAnimation(player, provider)

	anim.Update(0.25)
	require.NotZero(t, anim.CurrentSprite().FrameIndex())

	player.state = StateWalking
	anim.Refresh()
	assert.Equal(t, "walk", anim.CurrentSprite().Name())
	assert.Zero(t, anim.CurrentSprite().FrameIndex(), "swapped-in sprites start at frame zero")
}

func TestLandingCompletesToIdle(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := mapProvider{
		"idle": NewSprite("idle", nilFrames(2), 32, 32, 0.1, LoopForever),
		"land": NewSprite("land", nilFrames(2), 32, 32, 0.05, LoopNone),
	}
	anim := NewAnimation(player, provider)

	player.state = StateLanding
	player.context = ContextTurning
	anim.Refresh()
	require.Equal(t, "land", anim.CurrentSprite().Name())

	anim.Update(1)
	assert.Equal(t, StateIdle, player.state)
	assert.Equal(t, ContextNormal, player.context)
	assert.Equal(t, "idle", anim.CurrentSprite().Name())
}

func TestAttackAnimationCompletesToIdle(t *testing.T) {
	player := newFakeAnimPlayer()
	provider := mapProvider{
		"idle":         NewSprite("idle", nilFrames(2), 32, 32, 0.1, LoopForever),
		"light_attack": NewSprite("light_attack", nilFrames(2), 32, 32, 0.05, LoopNone),
	}
	anim := NewAnimation(player, provider)

	player.state = StateAttacking
	player.attacking = true
	anim.Refresh()
	require.Equal(t, "light_attack", anim.CurrentSprite().Name())

	anim.Update(1)
	assert.False(t, player.attacking)
	assert.Equal(t, StateIdle, player.state)
	assert.Equal(t, "idle", anim.CurrentSprite().Name())
}

func TestRenderPositionUsesSpriteMetrics(t *testing.T) {
	player := newFakeAnimPlayer()
	sprite := NewSprite("idle", nilFrames(1), 40, 60, 0.1, LoopForever)
	anim := NewAnimation(player, mapProvider{"idle": sprite})

	player.x, player.y = 100, 200
	x, y := anim.RenderPosition()
	assert.Equal(t, sprite.RenderX(100), x)
	assert.Equal(t, sprite.RenderY(200, player.collisionH), y)
}
