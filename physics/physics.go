// Package physics owns the Chipmunk space: the player body, static level
// geometry, and grounded detection through a foot sensor.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeGroundSensor
)

const (
	// Gravity is world gravity in px/s^2, y-down.
	Gravity = 2400.0

	groundGraceSteps = 6
)

// World wraps the Chipmunk space and the bodies living in it.
type World struct {
	space  *cp.Space
	bodies []*Body
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})

	w := &World{space: space}
	w.setupHandlers()
	return w
}

func (w *World) Space() *cp.Space { return w.space }

// AddStaticBox adds an axis-aligned solid, x/y being the top-left corner.
func (w *World) AddStaticBox(x, y, width, height float64) {
	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
}

// AddBounds walls off a rectangular play area.
func (w *World) AddBounds(width, height, thickness float64) {
	segments := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: width, Y: height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		w.space.AddShape(shape)
	}
}

// Step advances the simulation. dt should already have the time scale
// applied; the simulation slows down with gameplay, not with the camera.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.groundGrace > 0 {
			b.groundGrace--
		}
	}
	w.space.Step(dt)
}

func (w *World) setupHandlers() {
	handler := w.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	handler.UserData = w
	handler.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		for _, b := range world.bodies {
			if b.groundShape == shapeA || b.groundShape == shapeB {
				b.groundGrace = groundGraceSteps
			}
		}
		return true
	}
}

// Body is a fixed-rotation dynamic box with a foot sensor.
type Body struct {
	body        *cp.Body
	shape       *cp.Shape
	groundShape *cp.Shape

	width  float64
	height float64

	gravityEnabled bool
	groundGrace    int
}

// NewPlayerBody adds a player-sized body centered at (x, y).
func (w *World) NewPlayerBody(x, y, width, height float64) *Body {
	mass := 1.0
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypePlayer)

	sensorBB := cp.BB{
		L: -width * 0.45,
		B: height / 2,
		R: width * 0.45,
		T: height/2 + 2,
	}
	groundShape := cp.NewBox2(cpBody, sensorBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypeGroundSensor)

	b := &Body{
		body:           cpBody,
		shape:          shape,
		groundShape:    groundShape,
		width:          width,
		height:         height,
		gravityEnabled: true,
	}

	// gravity is consulted per step so the toggle takes effect immediately
	cpBody.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		if !b.gravityEnabled {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
			return
		}
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
	})

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)
	w.space.AddShape(groundShape)
	w.bodies = append(w.bodies, b)
	return b
}

func (b *Body) Position() (float64, float64) {
	pos := b.body.Position()
	return pos.X, pos.Y
}

func (b *Body) SetPosition(x, y float64) {
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

func (b *Body) Velocity() (float64, float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocity(vx, vy float64) {
	b.body.SetVelocity(vx, vy)
}

// SetVelocityX changes horizontal speed without touching the vertical
// component the solver owns.
func (b *Body) SetVelocityX(vx float64) {
	v := b.body.Velocity()
	b.body.SetVelocity(vx, v.Y)
}

func (b *Body) SetGravityEnabled(on bool) { b.gravityEnabled = on }

func (b *Body) GravityEnabled() bool { return b.gravityEnabled }

// Grounded reports foot-sensor contact within the last few steps. The grace
// window keeps one-frame separation during slope transitions from flickering
// the grounded state.
func (b *Body) Grounded() bool { return b.groundGrace > 0 }

func (b *Body) Size() (float64, float64) { return b.width, b.height }
