package camera

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/brawler/common"
)

const (
	focusApproachRate = 5.0

	zoomResetDuration = 0.5

	flashFrames = 3
	flashAlpha  = 0.5
)

// Cinematic layers zoom transitions, focus overrides, flashes, and the
// effect stack on top of the base follow camera. The combat state machine
// drives it through small imperative calls; all timing runs in Update.
type Cinematic struct {
	*Camera
	effects *EffectsManager

	zoomX, zoomY float64
	zoomStartX   float64
	zoomStartY   float64
	zoomTargetX  float64
	zoomTargetY  float64
	zoomDuration float64
	zoomTimer    float64
	zooming      bool

	resetPending   bool
	resetCountdown float64

	focusX, focusY float64
	focused        bool

	flashLeft  int
	flashColor color.NRGBA
	flashA     float64
}

func NewCinematic(viewportW, viewportH float64) *Cinematic {
	return &Cinematic{
		Camera:  NewCamera(viewportW, viewportH),
		effects: NewEffectsManager(viewportW, viewportH),
		zoomX:   1,
		zoomY:   1,
	}
}

func (c *Cinematic) Effects() *EffectsManager { return c.effects }

func (c *Cinematic) Zoom() (float64, float64) { return c.zoomX, c.zoomY }

// SetZoom transitions toward the given zoom over duration seconds. The
// transition starts from the current zoom, so re-targeting mid-flight never
// causes a visible jump.
func (c *Cinematic) SetZoom(zoomX, zoomY, duration float64) {
	c.resetPending = false
	if duration <= 0 {
		c.zoomX, c.zoomY = zoomX, zoomY
		c.zooming = false
		return
	}
	c.zoomStartX, c.zoomStartY = c.zoomX, c.zoomY
	c.zoomTargetX, c.zoomTargetY = zoomX, zoomY
	c.zoomDuration = duration
	c.zoomTimer = duration
	c.zooming = true
}

// SetZoomWithReset transitions like SetZoom, then reverts to (1, 1) on its
// own after resetDelay seconds past transition completion.
func (c *Cinematic) SetZoomWithReset(zoomX, zoomY, duration, resetDelay float64) {
	c.SetZoom(zoomX, zoomY, duration)
	if resetDelay < 0 {
		resetDelay = 0
	}
	c.resetPending = true
	c.resetCountdown = resetDelay
}

// SetFocusTarget overrides the normal follow target with a world position.
// Non-immediate focus approaches the point proportionally per second.
func (c *Cinematic) SetFocusTarget(x, y float64, immediate bool) {
	c.focusX, c.focusY = x, y
	c.focused = true
	if immediate {
		c.SnapTo(x, y)
	}
}

// ClearFocus resumes normal target following.
func (c *Cinematic) ClearFocus() {
	c.focused = false
}

func (c *Cinematic) Focused() bool { return c.focused }

// Flash covers the screen with a white overlay for the given number of
// update ticks.
func (c *Cinematic) Flash(frames int, alpha float64) {
	c.FlashColor(frames, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, alpha)
}

// FlashColor is Flash with an explicit overlay color.
func (c *Cinematic) FlashColor(frames int, clr color.NRGBA, alpha float64) {
	if frames <= 0 {
		return
	}
	c.flashLeft = frames
	c.flashColor = clr
	c.flashA = common.Clamp01(alpha)
}

func (c *Cinematic) Flashing() bool { return c.flashLeft > 0 }

// UltimateAttackEffect runs the whole ultimate screen treatment at once:
// letterbox in with a scheduled hide, a short white flash, and a vertical
// squeeze zoom that reverts on its own before the letterbox leaves.
func (c *Cinematic) UltimateAttackEffect(duration float64) {
	c.effects.UltimateAttackEffect(duration)
	c.Flash(flashFrames, flashAlpha)
	c.SetZoomWithReset(1.2, 0.8, 0.1, duration-ultimateLetterboxOut)
}

func (c *Cinematic) ShowLetterbox(duration float64) {
	c.effects.Letterbox().Show(duration)
}

func (c *Cinematic) HideLetterbox(duration float64) {
	c.effects.Letterbox().Hide(duration)
}

// Update advances follow/focus movement, the zoom transition, the flash
// counter, and the effect stack. targetX/targetY is the normal follow target
// used when no focus override is set. dt must be unscaled time; cinematic
// motion keeps its pace inside slow motion.
func (c *Cinematic) Update(targetX, targetY, dt float64) {
	if dt < 0 {
		dt = 0
	}

	if c.focused {
		t := focusApproachRate * dt
		if t > 1 {
			t = 1
		}
		x, y := c.Position()
		c.SnapTo(x+(c.focusX-x)*t, y+(c.focusY-y)*t)
	} else {
		c.Follow(targetX, targetY, dt)
	}

	c.updateZoom(dt)

	if c.flashLeft > 0 {
		c.flashLeft--
	}

	c.effects.Update(dt)
}

func (c *Cinematic) updateZoom(dt float64) {
	if c.zooming {
		progress := 1 - c.zoomTimer/c.zoomDuration
		eased := common.EaseInOutQuad(common.Clamp01(progress))
		c.zoomX = common.Lerp(c.zoomStartX, c.zoomTargetX, eased)
		c.zoomY = common.Lerp(c.zoomStartY, c.zoomTargetY, eased)

		c.zoomTimer -= dt
		if c.zoomTimer <= 0 {
			c.zoomX, c.zoomY = c.zoomTargetX, c.zoomTargetY
			c.zooming = false
		}
		return
	}

	if c.resetPending {
		c.resetCountdown -= dt
		if c.resetCountdown <= 0 {
			c.resetPending = false
			c.SetZoom(1, 1, zoomResetDuration)
		}
	}
}

// WorldTransform builds the world-to-screen matrix: translate the camera
// center to the origin, apply zoom, then move the origin to the viewport
// center.
func (c *Cinematic) WorldTransform() ebiten.GeoM {
	var m ebiten.GeoM
	x, y := c.Position()
	vw, vh := c.Viewport()
	m.Translate(-x, -y)
	m.Scale(c.zoomX, c.zoomY)
	m.Translate(vw/2, vh/2)
	return m
}

// RenderOverlays draws the screen-space layers: the flash first, then the
// effect stack with the letterbox on top.
func (c *Cinematic) RenderOverlays(screen *ebiten.Image) {
	if c.flashLeft > 0 {
		vw, vh := c.Viewport()
		clr := c.flashColor
		clr.A = uint8(float64(clr.A) * c.flashA)
		vector.FillRect(screen, 0, 0, float32(vw), float32(vh), clr, false)
	}
	c.effects.Render(screen)
}
