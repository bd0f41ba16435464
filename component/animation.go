package component

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	runStartMaxAge   = 0.2 // seconds since the state change
	runStartMaxSpeed = 400
)

// Animation resolves the player's state, movement context, and transient
// flags to the active sprite, and detects animation-driven completions. It
// owns the current sprite handle; everything else reads it through the
// player.
type Animation struct {
	player   AnimationEntity
	provider SpriteProvider
	attack   *Attack // optional, for combo/ultimate sprite overrides

	current     *Sprite
	currentName string
}

func NewAnimation(player AnimationEntity, provider SpriteProvider) *Animation {
	a := &Animation{player: player, provider: provider}
	a.Refresh()
	return a
}

// BindAttack lets the resolver consult the attack component for contextual
// overrides (combo stage, ultimate execution). Composition is fixed at
// construction time; there is no runtime component lookup.
func (a *Animation) BindAttack(atk *Attack) {
	a.attack = atk
}

// Update advances the active sprite by dt (scaled) seconds, handles
// non-looping completion, and re-resolves the sprite for the current state.
func (a *Animation) Update(dt float64) {
	if a.current != nil {
		a.current.Update(dt)
		if !a.current.Looping() && a.current.Completed() {
			a.handleComplete()
		}
	}
	a.Refresh()
}

// handleComplete is the animation-driven completion path. The attack
// component runs its own timer/frame check for the combat state; the two
// converge on the same end state within a frame.
func (a *Animation) handleComplete() {
	switch a.player.State() {
	case StateLanding:
		a.player.SetState(StateIdle)
		a.player.SetMovementContext(ContextNormal)
	case StateAttacking:
		a.player.SetAttacking(false)
		a.player.SetState(StateIdle)
	}
}

// Refresh re-resolves the sprite for the current state and swaps it in,
// resetting the new sprite to its first frame. A name that resolves to no
// sprite keeps the previous one (recoverable; the provider is the one that
// knows why the asset is missing).
func (a *Animation) Refresh() {
	name := a.resolveName()
	if name == a.currentName && a.current != nil {
		return
	}
	sprite := a.lookup(name)
	if sprite == nil {
		if a.current != nil {
			fmt.Printf("animation: no sprite for %q, keeping %q\n", name, a.currentName)
		}
		return
	}
	if sprite != a.current {
		a.current = sprite
		a.current.Reset()
	}
	a.currentName = name
}

// resolveName picks the logical animation for the current state. Contextual
// sprites take priority over the generic state sprite.
func (a *Animation) resolveName() string {
	switch a.player.State() {
	case StateAttacking:
		if a.attack != nil && a.attack.ComboCount() > 0 {
			return "combo_attack"
		}
		return "light_attack"

	case StateCasting:
		if a.attack != nil && a.attack.IsExecuting() {
			return "ultimate"
		}
		return "cast"

	case StateRunning:
		if a.player.Turning() || a.player.MovementContext() == ContextTurning {
			return "break_run"
		}
		vx, _ := a.player.Velocity()
		if a.player.StateAge() < runStartMaxAge && abs(vx) < runStartMaxSpeed {
			return "to_run"
		}
		return "run"

	case StateWalking:
		return "walk"
	case StateDashing:
		return "dash"
	case StateLanding:
		return "land"
	case StateJumping:
		return "jump"
	case StateFalling:
		return "fall"
	default:
		return "idle"
	}
}

// lookup resolves a contextual name with a generic state-sprite fallback.
func (a *Animation) lookup(name string) *Sprite {
	if s := a.provider.Sprite(name); s != nil {
		return s
	}
	// contextual misses fall back to the generic state sprite
	if s := a.provider.Sprite(a.player.State().String()); s != nil {
		return s
	}
	return nil
}

// CurrentSprite returns the active sprite, or nil before the first resolve.
func (a *Animation) CurrentSprite() *Sprite {
	return a.current
}

// RestartCurrent rewinds the active sprite to its first frame.
func (a *Animation) RestartCurrent() {
	if a.current != nil {
		a.current.Reset()
	}
}

// RenderPosition returns the top-left screen position for the active sprite,
// honoring its scale and pixel offset.
func (a *Animation) RenderPosition() (int, int) {
	if a.current == nil {
		px, py := a.player.Position()
		return int(px), int(py)
	}
	px, py := a.player.Position()
	return a.current.RenderX(px), a.current.RenderY(py, a.player.CollisionHeight())
}

// Draw renders the active sprite under the camera's world transform,
// mirrored about its own width when facing left. A sprite without a frame
// image draws nothing; callers may render a placeholder instead.
func (a *Animation) Draw(screen *ebiten.Image, world ebiten.GeoM) {
	if a.current == nil {
		return
	}
	frame := a.current.Frame()
	if frame == nil {
		return
	}

	x, y := a.RenderPosition()
	w, h := a.current.Size()
	fw := frame.Bounds().Dx()
	fh := frame.Bounds().Dy()
	if fw == 0 || fh == 0 {
		return
	}
	sx := float64(w) / float64(fw)
	sy := float64(h) / float64(fh)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if a.player.FacingRight() {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(x), float64(y))
	} else {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(float64(x)+float64(w), float64(y))
	}
	op.GeoM.Concat(world)
	screen.DrawImage(frame, op)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
