// Package timescale slows down or speeds up gameplay time for cinematic
// effects and special abilities. The controller is owned by the game loop and
// handed to whoever needs it; it is not a process-wide singleton so tests can
// run independent instances.
package timescale

import "github.com/milk9111/brawler/common"

// Controller applies a scalar to elapsed gameplay time. Transitions between
// scales are eased, and an optional delay returns the scale to normal
// automatically.
type Controller struct {
	scale              float64
	targetScale        float64
	transitionDuration float64
	transitionTimer    float64
	returnDelayTimer   float64
	returning          bool
}

func NewController() *Controller {
	return &Controller{scale: 1.0, targetScale: 1.0}
}

// Update advances transitions. The delta time passed here must be unscaled
// (real time), otherwise a deep slow-motion would never finish.
func (c *Controller) Update(unscaledDT float64) {
	if unscaledDT < 0 {
		unscaledDT = 0
	}

	if c.returnDelayTimer > 0 {
		c.returnDelayTimer -= unscaledDT
		if c.returnDelayTimer <= 0 {
			if c.transitionDuration > 0 {
				c.returning = true
				c.transitionTimer = c.transitionDuration
			} else {
				c.scale = 1.0
				c.targetScale = 1.0
			}
		}
	}

	if c.transitionTimer > 0 {
		progress := 1.0 - c.transitionTimer/c.transitionDuration
		eased := common.EaseInOutCubic(common.Clamp01(progress))

		if c.returning {
			c.scale = common.Lerp(c.targetScale, 1.0, eased)
		} else {
			c.scale = common.Lerp(1.0, c.targetScale, eased)
		}

		c.transitionTimer -= unscaledDT
		if c.transitionTimer <= 0 {
			if c.returning {
				c.scale = 1.0
				c.returning = false
			} else {
				c.scale = c.targetScale
			}
		}
	}
}

// SetScale starts a smooth transition toward scale over transitionTime
// seconds. If returnAfter is positive the controller waits that long and then
// transitions back to 1.0 over the same duration.
func (c *Controller) SetScale(scale, transitionTime, returnAfter float64) {
	c.targetScale = scale
	c.transitionDuration = transitionTime
	c.transitionTimer = transitionTime
	c.returnDelayTimer = returnAfter
	c.returning = false
	if transitionTime <= 0 {
		c.scale = scale
		c.transitionTimer = 0
	}
}

// Reset snaps back to normal time immediately.
func (c *Controller) Reset() {
	c.scale = 1.0
	c.targetScale = 1.0
	c.transitionTimer = 0
	c.returnDelayTimer = 0
	c.returning = false
}

// Scale returns the current time scale.
func (c *Controller) Scale() float64 {
	return c.scale
}

// ScaleDelta applies the current scale to a delta time value.
func (c *Controller) ScaleDelta(dt float64) float64 {
	return dt * c.scale
}
