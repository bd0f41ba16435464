package component

// CombatEntity is the slice of the player the attack component drives. The
// concrete player implements it; tests use lightweight fakes.
type CombatEntity interface {
	Position() (x, y float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	Grounded() bool
	SetGravityEnabled(enabled bool)
	FacingRight() bool
	Dashing() bool

	State() PlayerState
	SetState(s PlayerState)
	SetCasting(casting bool)
	SetAttacking(attacking bool)
	SetInputEnabled(enabled bool)

	AnimationLocked() bool
	LockAnimation(seconds float64)
	UnlockAnimation()

	Mana() int
	SetMana(v int)

	// CurrentSprite exposes the resolver's active sprite for attack
	// completion detection. May return nil.
	CurrentSprite() *Sprite
	// RestartSprite rewinds the active sprite, used when a combo stage
	// replays the current attack animation.
	RestartSprite()
}

// AnimationEntity is the slice of the player the animation resolver reads
// and mutates.
type AnimationEntity interface {
	State() PlayerState
	SetState(s PlayerState)
	MovementContext() MovementContext
	SetMovementContext(c MovementContext)
	SetAttacking(attacking bool)
	FacingRight() bool
	Turning() bool
	Velocity() (vx, vy float64)
	Grounded() bool
	// StateAge is the time in seconds since the last state change.
	StateAge() float64
	Position() (x, y float64)
	CollisionHeight() float64
}

// CameraDirector is the cinematic camera surface the attack component
// drives during the ultimate ability.
type CameraDirector interface {
	SetZoom(zoomX, zoomY, duration float64)
	SetZoomWithReset(zoomX, zoomY, duration, resetDelay float64)
	SetFocusTarget(x, y float64, immediate bool)
	ClearFocus()
	Flash(frames int, alpha float64)
	UltimateAttackEffect(duration float64)
	ShowLetterbox(duration float64)
	HideLetterbox(duration float64)
}

// AudioSink plays an effect by name. Calls are fire-and-forget; a nil or
// missing clip is silently ignored.
type AudioSink interface {
	Play(name string, volume float64)
}

// SpriteProvider resolves a logical animation name to a sprite handle.
// Returns nil when no animation is registered under that name.
type SpriteProvider interface {
	Sprite(name string) *Sprite
}
