package camera

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/brawler/common"
)

// Easing selects the interpolation curve for a position tween.
type Easing int

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

func (e Easing) apply(t float64) float64 {
	t = common.Clamp01(t)
	switch e {
	case EaseIn:
		return common.EaseInQuad(t)
	case EaseOut:
		return common.EaseOutQuad(t)
	case EaseInOut:
		return common.EaseInOutQuad(t)
	default:
		return t
	}
}

// VisualEffect is a positioned, prioritized screen-space rectangle. Effects
// move either instantly or along an eased tween; the tween recomputes its
// position from accumulated elapsed time on every Update, and lands exactly
// on the target when it finishes.
type VisualEffect struct {
	name     string
	x, y     float64
	width    float64
	height   float64
	clr      color.NRGBA
	opacity  float64
	visible  bool
	priority int

	tweening       bool
	startX, startY float64
	endX, endY     float64
	tweenDuration  float64
	tweenElapsed   float64
	easing         Easing
}

func NewVisualEffect(name string, width, height float64, clr color.NRGBA, priority int) *VisualEffect {
	return &VisualEffect{
		name:     name,
		width:    width,
		height:   height,
		clr:      clr,
		opacity:  1,
		visible:  true,
		priority: priority,
	}
}

// MoveTo places the effect immediately, cancelling any tween in flight.
func (v *VisualEffect) MoveTo(x, y float64) {
	v.x, v.y = x, y
	v.tweening = false
}

// AnimateTo starts a tween from the current position. A non-positive
// duration degenerates to MoveTo.
func (v *VisualEffect) AnimateTo(x, y, duration float64, easing Easing) {
	if duration <= 0 {
		v.MoveTo(x, y)
		return
	}
	v.startX, v.startY = v.x, v.y
	v.endX, v.endY = x, y
	v.tweenDuration = duration
	v.tweenElapsed = 0
	v.easing = easing
	v.tweening = true
}

func (v *VisualEffect) Update(dt float64) {
	if !v.tweening || dt < 0 {
		return
	}
	v.tweenElapsed += dt
	if v.tweenElapsed >= v.tweenDuration {
		v.x, v.y = v.endX, v.endY
		v.tweening = false
		return
	}
	t := v.easing.apply(v.tweenElapsed / v.tweenDuration)
	v.x = common.Lerp(v.startX, v.endX, t)
	v.y = common.Lerp(v.startY, v.endY, t)
}

func (v *VisualEffect) Render(screen *ebiten.Image) {
	if !v.visible || v.opacity <= 0 {
		return
	}
	clr := v.clr
	clr.A = uint8(float64(clr.A) * v.opacity)
	vector.FillRect(screen, float32(v.x), float32(v.y), float32(v.width), float32(v.height), clr, false)
}

func (v *VisualEffect) Name() string { return v.name }

func (v *VisualEffect) Priority() int { return v.priority }

func (v *VisualEffect) Position() (float64, float64) { return v.x, v.y }

func (v *VisualEffect) Size() (float64, float64) { return v.width, v.height }

func (v *VisualEffect) SetSize(width, height float64) {
	v.width, v.height = width, height
}

func (v *VisualEffect) SetOpacity(opacity float64) {
	v.opacity = common.Clamp01(opacity)
}

func (v *VisualEffect) Opacity() float64 { return v.opacity }

func (v *VisualEffect) SetVisible(visible bool) { v.visible = visible }

func (v *VisualEffect) Visible() bool { return v.visible }

// Animating reports whether a position tween is still in flight.
func (v *VisualEffect) Animating() bool { return v.tweening }
