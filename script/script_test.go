package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverPressesButtons(t *testing.T) {
	d, err := NewDriver([]byte(`
update := func(input, state, t, dt) {
	input.move(-0.5)
	input.run(true)
	input.jump()
	input.attack()
}
`))
	require.NoError(t, err)

	cmd, err := d.Poll(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, -0.5, cmd.MoveX)
	assert.True(t, cmd.Run)
	assert.True(t, cmd.Jump)
	assert.True(t, cmd.Attack)
	assert.False(t, cmd.Dash)
}

func TestDriverClampsMove(t *testing.T) {
	d, err := NewDriver([]byte(`
update := func(input, state, t, dt) {
	input.move(5)
}
`))
	require.NoError(t, err)

	cmd, err := d.Poll(0.016)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cmd.MoveX)
}

func TestDriverFrameStateDoesNotStick(t *testing.T) {
	d, err := NewDriver([]byte(`
update := func(input, state, t, dt) {
	if t < 0.5 {
		input.attack()
	}
}
`))
	require.NoError(t, err)

	cmd, err := d.Poll(0.4)
	require.NoError(t, err)
	require.True(t, cmd.Attack)

	cmd, err = d.Poll(0.4)
	require.NoError(t, err)
	assert.False(t, cmd.Attack, "edges are pressed per frame, never latched")
}

func TestDriverUltimateReleaseEdge(t *testing.T) {
	d, err := NewDriver([]byte(`
update := func(input, state, t, dt) {
	if t < 1.0 {
		input.ultimate(true)
	} else {
		input.ultimate(false)
	}
}
`))
	require.NoError(t, err)

	cmd, err := d.Poll(0.5)
	require.NoError(t, err)
	assert.True(t, cmd.UltimateHeld)
	assert.False(t, cmd.UltimateReleased)

	cmd, err = d.Poll(1.0)
	require.NoError(t, err)
	assert.False(t, cmd.UltimateHeld)
	assert.True(t, cmd.UltimateReleased)

	cmd, err = d.Poll(0.1)
	require.NoError(t, err)
	assert.False(t, cmd.UltimateReleased, "release fires exactly once")
}

func TestDriverKeepsStateBetweenTicks(t *testing.T) {
	d, err := NewDriver([]byte(`
update := func(input, state, t, dt) {
	if is_undefined(state.count) {
		state.count = 0
	}
	state.count += 1
	if state.count >= 3 {
		input.dash()
	}
}
`))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		cmd, err := d.Poll(0.016)
		require.NoError(t, err)
		require.False(t, cmd.Dash)
	}
	cmd, err := d.Poll(0.016)
	require.NoError(t, err)
	assert.True(t, cmd.Dash)
}

func TestDefaultAttractScriptCompiles(t *testing.T) {
	d, err := NewDriver([]byte(DefaultAttractScript))
	require.NoError(t, err)

	// run it across the whole loop; it must never error
	for t2 := 0.0; t2 < 13.0; t2 += 0.1 {
		_, err := d.Poll(0.1)
		require.NoError(t, err)
	}
}

func TestDriverCompileError(t *testing.T) {
	_, err := NewDriver([]byte(`update := func(`))
	assert.Error(t, err)
}
