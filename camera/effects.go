package camera

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ultimateLetterboxSize = 0.15
	ultimateLetterboxIn   = 0.5
	ultimateLetterboxOut  = 0.5
)

// EffectsManager owns the screen-space effects: an ordered set of rectangles
// plus the letterbox, which always draws last. Scheduled work runs off
// countdowns checked in Update, so a pending hide fires even after whatever
// requested it has moved on.
type EffectsManager struct {
	effects   []*VisualEffect
	letterbox *Letterbox

	hidePending   bool
	hideCountdown float64
}

func NewEffectsManager(screenW, screenH float64) *EffectsManager {
	return &EffectsManager{
		letterbox: NewLetterbox(screenW, screenH),
	}
}

// AddEffect registers an effect, keeping the render order sorted by ascending
// priority. An effect with the same name replaces the old one.
func (m *EffectsManager) AddEffect(effect *VisualEffect) {
	m.RemoveEffect(effect.Name())
	m.effects = append(m.effects, effect)
	sort.SliceStable(m.effects, func(i, j int) bool {
		return m.effects[i].Priority() < m.effects[j].Priority()
	})
}

func (m *EffectsManager) RemoveEffect(name string) {
	for i, e := range m.effects {
		if e.Name() == name {
			m.effects = append(m.effects[:i], m.effects[i+1:]...)
			return
		}
	}
}

// Effect returns a registered effect by name, or nil.
func (m *EffectsManager) Effect(name string) *VisualEffect {
	for _, e := range m.effects {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

func (m *EffectsManager) Letterbox() *Letterbox { return m.letterbox }

// UltimateAttackEffect runs the full-screen treatment for the ultimate:
// widen the letterbox to 15%, slide it in, and schedule a one-shot hide after
// duration seconds. Scheduling again replaces any pending hide.
func (m *EffectsManager) UltimateAttackEffect(duration float64) {
	m.letterbox.SetSize(ultimateLetterboxSize)
	m.letterbox.Show(ultimateLetterboxIn)
	m.hidePending = true
	m.hideCountdown = duration
}

func (m *EffectsManager) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	for _, e := range m.effects {
		e.Update(dt)
	}
	m.letterbox.Update(dt)

	if m.hidePending {
		m.hideCountdown -= dt
		if m.hideCountdown <= 0 {
			m.hidePending = false
			m.letterbox.Hide(ultimateLetterboxOut)
		}
	}
}

func (m *EffectsManager) Render(screen *ebiten.Image) {
	for _, e := range m.effects {
		if e.Visible() {
			e.Render(screen)
		}
	}
	m.letterbox.Render(screen)
}
