// Package camera provides the world camera and the screen-space effect stack
// that cinematic combat moments drive: zoom, focus overrides, flashes, and
// letterboxing.
package camera

// Camera tracks a world-space center position over a fixed viewport. Follow
// approaches the target proportionally per second so motion settles instead
// of snapping.
type Camera struct {
	viewportW float64
	viewportH float64
	x, y      float64 // world-space center

	followRate float64
}

const defaultFollowRate = 10.0

func NewCamera(viewportW, viewportH float64) *Camera {
	return &Camera{
		viewportW:  viewportW,
		viewportH:  viewportH,
		followRate: defaultFollowRate,
	}
}

// Follow moves the camera center toward the target.
func (c *Camera) Follow(targetX, targetY, dt float64) {
	t := c.followRate * dt
	if t > 1 {
		t = 1
	}
	c.x += (targetX - c.x) * t
	c.y += (targetY - c.y) * t
}

// SnapTo centers the camera on a world position immediately.
func (c *Camera) SnapTo(x, y float64) {
	c.x, c.y = x, y
}

func (c *Camera) Position() (float64, float64) { return c.x, c.y }

func (c *Camera) Viewport() (float64, float64) { return c.viewportW, c.viewportH }

func (c *Camera) SetFollowRate(rate float64) {
	if rate > 0 {
		c.followRate = rate
	}
}
