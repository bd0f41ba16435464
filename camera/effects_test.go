package camera

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweenSnapsExactlyToTarget(t *testing.T) {
	v := NewVisualEffect("bar", 10, 10, color.NRGBA{A: 255}, 0)
	v.MoveTo(0, 0)

	v.AnimateTo(100, 50, 0.3, EaseInOut)
	for i := 0; i < 30; i++ {
		v.Update(dt)
	}

	x, y := v.Position()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)
	assert.False(t, v.Animating())
}

func TestTweenIsMonotoneUnderEaseOut(t *testing.T) {
	v := NewVisualEffect("bar", 10, 10, color.NRGBA{A: 255}, 0)
	v.MoveTo(0, 0)
	v.AnimateTo(100, 0, 0.5, EaseOut)

	prev := 0.0
	for i := 0; i < 40; i++ {
		v.Update(dt)
		x, _ := v.Position()
		require.GreaterOrEqual(t, x, prev)
		prev = x
	}
}

func TestMoveToCancelsTween(t *testing.T) {
	v := NewVisualEffect("bar", 10, 10, color.NRGBA{A: 255}, 0)
	v.AnimateTo(100, 100, 1, EaseLinear)
	v.MoveTo(5, 5)
	v.Update(dt)

	x, y := v.Position()
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)
	assert.False(t, v.Animating())
}

func TestAnimateToZeroDurationIsInstant(t *testing.T) {
	v := NewVisualEffect("bar", 10, 10, color.NRGBA{A: 255}, 0)
	v.AnimateTo(30, 40, 0, EaseIn)

	x, y := v.Position()
	assert.Equal(t, 30.0, x)
	assert.Equal(t, 40.0, y)
}

func TestOpacityClamped(t *testing.T) {
	v := NewVisualEffect("bar", 10, 10, color.NRGBA{A: 255}, 0)
	v.SetOpacity(2)
	assert.Equal(t, 1.0, v.Opacity())
	v.SetOpacity(-1)
	assert.Equal(t, 0.0, v.Opacity())
}

func TestLetterboxShowHide(t *testing.T) {
	l := NewLetterbox(1280, 720)
	require.False(t, l.Active())

	l.Show(0.25)
	assert.True(t, l.Active())
	top, bottom := l.Bars()
	assert.True(t, top.Visible())

	for i := 0; i < 20; i++ {
		l.Update(dt)
	}
	_, topY := top.Position()
	_, bottomY := bottom.Position()
	assert.Equal(t, 0.0, topY)
	assert.Equal(t, 720.0-72.0, bottomY, "default bar is 10% of screen height")

	l.Hide(0.25)
	assert.False(t, l.Active())
	for i := 0; i < 20; i++ {
		l.Update(dt)
	}
	_, topY = top.Position()
	assert.Equal(t, -72.0, topY)
	assert.False(t, top.Visible(), "bars stop rendering once fully out")
}

func TestLetterboxShowIdempotent(t *testing.T) {
	l := NewLetterbox(1280, 720)
	l.Show(0.25)
	for i := 0; i < 20; i++ {
		l.Update(dt)
	}

	// a second Show must not restart the slide
	l.Show(0.25)
	top, _ := l.Bars()
	assert.False(t, top.Animating())
}

func TestLetterboxHideWhenHiddenIsNoOp(t *testing.T) {
	l := NewLetterbox(1280, 720)
	l.Hide(0.25)
	top, _ := l.Bars()
	assert.False(t, top.Animating())
	assert.False(t, l.Active())
}

func TestLetterboxSetSizeClamped(t *testing.T) {
	l := NewLetterbox(1280, 720)

	l.SetSize(0.9)
	assert.Equal(t, 0.5, l.Size())
	l.SetSize(-0.1)
	assert.Equal(t, 0.0, l.Size())
}

func TestLetterboxSetSizeRepositionsActiveBars(t *testing.T) {
	l := NewLetterbox(1280, 720)
	l.Show(0)
	l.Update(dt)

	l.SetSize(0.15)
	_, bottom := l.Bars()
	_, bottomY := bottom.Position()
	assert.Equal(t, 720.0-108.0, bottomY)
}

func TestEffectsManagerPriorityOrder(t *testing.T) {
	m := NewEffectsManager(1280, 720)
	m.AddEffect(NewVisualEffect("hud", 10, 10, color.NRGBA{A: 255}, 50))
	m.AddEffect(NewVisualEffect("vignette", 10, 10, color.NRGBA{A: 255}, 10))
	m.AddEffect(NewVisualEffect("tint", 10, 10, color.NRGBA{A: 255}, 30))

	assert.Equal(t, "vignette", m.effects[0].Name())
	assert.Equal(t, "tint", m.effects[1].Name())
	assert.Equal(t, "hud", m.effects[2].Name())
}

func TestEffectsManagerReplaceByName(t *testing.T) {
	m := NewEffectsManager(1280, 720)
	m.AddEffect(NewVisualEffect("tint", 10, 10, color.NRGBA{A: 255}, 30))
	m.AddEffect(NewVisualEffect("tint", 20, 20, color.NRGBA{A: 255}, 30))

	require.Len(t, m.effects, 1)
	w, _ := m.Effect("tint").Size()
	assert.Equal(t, 20.0, w)
}

func TestScheduledLetterboxHideFiresFromUpdate(t *testing.T) {
	m := NewEffectsManager(1280, 720)

	m.UltimateAttackEffect(1.0)
	assert.True(t, m.Letterbox().Active())
	assert.Equal(t, 0.15, m.Letterbox().Size())

	// nothing else touches the manager; the hide must fire from ticks alone
	for t2 := 0.0; t2 < 1.1; t2 += dt {
		m.Update(dt)
	}
	assert.False(t, m.Letterbox().Active())
}

func TestScheduledHideReplacedByRescheduling(t *testing.T) {
	m := NewEffectsManager(1280, 720)

	m.UltimateAttackEffect(0.5)
	for t2 := 0.0; t2 < 0.3; t2 += dt {
		m.Update(dt)
	}
	m.UltimateAttackEffect(0.5) // pushes the hide out again

	for t2 := 0.0; t2 < 0.3; t2 += dt {
		m.Update(dt)
	}
	assert.True(t, m.Letterbox().Active(), "rescheduling replaces the pending hide")

	for t2 := 0.0; t2 < 0.3; t2 += dt {
		m.Update(dt)
	}
	assert.False(t, m.Letterbox().Active())
}
