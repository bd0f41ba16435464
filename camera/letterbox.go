package camera

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brawler/common"
)

const (
	defaultLetterboxSize = 0.10
	maxLetterboxSize     = 0.5

	// bars draw over every other effect
	letterboxPriority = 1000
)

// Letterbox slides a pair of black bars in from the top and bottom screen
// edges. Show and Hide are idempotent while the bars are already in (or
// heading to) the requested state.
type Letterbox struct {
	top     *VisualEffect
	bottom  *VisualEffect
	screenW float64
	screenH float64
	size    float64 // fraction of screen height per bar
	active  bool
}

func NewLetterbox(screenW, screenH float64) *Letterbox {
	black := color.NRGBA{A: 255}
	l := &Letterbox{
		screenW: screenW,
		screenH: screenH,
		size:    defaultLetterboxSize,
	}
	barH := l.barHeight()
	l.top = NewVisualEffect("letterbox_top", screenW, barH, black, letterboxPriority)
	l.bottom = NewVisualEffect("letterbox_bottom", screenW, barH, black, letterboxPriority)
	l.top.MoveTo(0, -barH)
	l.bottom.MoveTo(0, screenH)
	l.top.SetVisible(false)
	l.bottom.SetVisible(false)
	return l
}

func (l *Letterbox) barHeight() float64 {
	return l.screenH * l.size
}

// Show slides the bars in over duration seconds.
func (l *Letterbox) Show(duration float64) {
	if l.active {
		return
	}
	l.active = true
	l.top.SetVisible(true)
	l.bottom.SetVisible(true)
	barH := l.barHeight()
	l.top.AnimateTo(0, 0, duration, EaseOut)
	l.bottom.AnimateTo(0, l.screenH-barH, duration, EaseOut)
}

// Hide slides the bars back off screen over duration seconds.
func (l *Letterbox) Hide(duration float64) {
	if !l.active {
		return
	}
	l.active = false
	barH := l.barHeight()
	l.top.AnimateTo(0, -barH, duration, EaseIn)
	l.bottom.AnimateTo(0, l.screenH, duration, EaseIn)
}

// SetSize sets each bar's height as a fraction of screen height, clamped to
// [0, 0.5], and repositions the bars for the current state.
func (l *Letterbox) SetSize(frac float64) {
	l.size = common.Clamp(frac, 0, maxLetterboxSize)
	barH := l.barHeight()
	l.top.SetSize(l.screenW, barH)
	l.bottom.SetSize(l.screenW, barH)
	if l.active && !l.top.Animating() {
		l.top.MoveTo(0, 0)
		l.bottom.MoveTo(0, l.screenH-barH)
	} else if !l.active && !l.top.Animating() {
		l.top.MoveTo(0, -barH)
		l.bottom.MoveTo(0, l.screenH)
	}
}

func (l *Letterbox) Update(dt float64) {
	l.top.Update(dt)
	l.bottom.Update(dt)
	// bars that finished sliding out stop rendering entirely
	if !l.active && !l.top.Animating() {
		l.top.SetVisible(false)
		l.bottom.SetVisible(false)
	}
}

func (l *Letterbox) Render(screen *ebiten.Image) {
	l.top.Render(screen)
	l.bottom.Render(screen)
}

func (l *Letterbox) Active() bool { return l.active }

func (l *Letterbox) Size() float64 { return l.size }

// Bars exposes the underlying effects, mainly for debug overlays.
func (l *Letterbox) Bars() (top, bottom *VisualEffect) {
	return l.top, l.bottom
}
