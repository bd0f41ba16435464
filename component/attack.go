package component

import (
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/timescale"
)

// Audio cue names fired by the attack component.
const (
	SoundAttack           = "attack"
	SoundCombo            = "combo"
	SoundUltimateCharge   = "ultimate_charge"
	SoundUltimateExecute  = "ultimate_execute"
	SoundUltimateComplete = "ultimate_complete"
)

const (
	chargeZoom          = 0.9
	chargeZoomDuration  = 0.3
	chargeRampDuration  = 0.3
	chargeLetterboxAt   = 0.5 // charge progress past which the letterbox shows
	chargeLetterboxTime = 0.25
	executeZoomX        = 1.2
	executeZoomY        = 0.8
	executeZoomDuration = 0.1
	executeRampDuration = 0.1
	executeSlowReturn   = 1.0
	completeFlashAlpha  = 0.9
	cancelZoomDuration  = 0.2
)

// Attack owns the player's attack, combo, and ultimate ability state. It
// maps action requests to state transitions, and during the ultimate it
// drives the time scale controller and the cinematic camera in lockstep with
// its own timers.
//
// Requests that arrive while locked, on cooldown, or under-resourced are
// silent no-ops; callers poll the readiness queries instead of handling
// rejections.
type Attack struct {
	player CombatEntity
	camera CameraDirector        // optional
	tempo  *timescale.Controller // optional
	audio  AudioSink             // optional
	tuning Tuning

	now float64 // accumulated unscaled time

	attacking    bool
	comboActive  bool
	comboCount   int
	lastAttackAt float64

	charging       bool
	executing      bool
	chargeStartAt  float64
	executeStartAt float64
	chargeProgress float64
	lastUltimateAt float64
	letterboxShown bool
}

// NewAttack wires the attack component to its collaborators. camera, tempo,
// and audio may be nil; the component then skips the corresponding side
// effects.
func NewAttack(player CombatEntity, camera CameraDirector, tempo *timescale.Controller, audio AudioSink) *Attack {
	t := DefaultTuning()
	return &Attack{
		player: player,
		camera: camera,
		tempo:  tempo,
		audio:  audio,
		tuning: t,
		// ultimate starts off cooldown
		lastUltimateAt: -t.UltimateCooldown,
	}
}

// SetTuning swaps the balance table, e.g. after a hot reload. Invalid tuning
// is ignored.
func (a *Attack) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.tuning = t
	return nil
}

func (a *Attack) Tuning() Tuning { return a.tuning }

// Update advances all attack sub-states. dt must be unscaled (real) time:
// combat timers keep running at full speed inside the slow-motion the
// ultimate itself creates.
func (a *Attack) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	a.now += dt

	if a.attacking {
		a.updateAttack()
	}
	if a.charging {
		a.updateCharging()
	}
	if a.executing {
		a.updateExecution()
	}

	// combo decays when no follow-up input arrives within the window
	if a.comboCount > 0 && a.now-a.lastAttackAt > a.tuning.ComboWindow {
		a.resetCombo()
	}
}

// RequestLightAttack starts a light attack, or escalates the combo when one
// is already playing and the input landed inside the combo window.
func (a *Attack) RequestLightAttack() {
	if a.player.AnimationLocked() || a.attacking || a.charging || a.executing {
		if a.attacking && a.comboCount < a.tuning.MaxCombo && a.now-a.lastAttackAt < a.tuning.ComboWindow {
			a.stepCombo()
		}
		return
	}

	a.attacking = true
	a.comboActive = false
	a.player.SetAttacking(true)
	a.lastAttackAt = a.now

	a.player.SetState(StateAttacking)
	a.player.LockAnimation(a.tuning.LightAttackLock)
	a.play(SoundAttack, 0.8)
}

func (a *Attack) stepCombo() {
	a.comboCount++
	a.comboActive = true
	a.lastAttackAt = a.now

	// same sprite replays per stage, so rewind it explicitly
	a.player.RestartSprite()
	a.player.LockAnimation(a.tuning.ComboAttackLock)
	a.play(SoundCombo, 0.8)
}

// RequestDashAttack starts an attack that rides an in-progress dash. It is a
// no-op when the player is not dashing.
func (a *Attack) RequestDashAttack() {
	if a.player.AnimationLocked() || !a.player.Dashing() {
		return
	}
	if a.attacking || a.charging || a.executing {
		return
	}

	a.attacking = true
	a.comboActive = false
	a.lastAttackAt = a.now
	a.player.SetAttacking(true)
	a.player.LockAnimation(a.tuning.LightAttackLock)
	a.play(SoundAttack, 0.8)
}

// RequestUltimateCharge begins charging the ultimate. Gated on cooldown,
// mana, and not being mid-action; failed gates are silent no-ops.
func (a *Attack) RequestUltimateCharge() {
	if a.charging || a.executing {
		return
	}
	if a.now-a.lastUltimateAt < a.tuning.UltimateCooldown {
		return
	}
	if a.player.Mana() < a.tuning.UltimateManaCost {
		return
	}
	if a.attacking || a.player.AnimationLocked() {
		return
	}

	a.charging = true
	a.chargeStartAt = a.now
	a.chargeProgress = 0
	a.letterboxShown = false

	a.player.SetState(StateCasting)
	a.player.SetCasting(true)
	a.player.LockAnimation(a.tuning.UltimateCharge)
	a.player.SetInputEnabled(false)

	if a.tempo != nil {
		a.tempo.SetScale(a.tuning.UltimateTimeScale, chargeRampDuration, 0)
	}
	if a.camera != nil {
		a.camera.SetZoom(chargeZoom, chargeZoom, chargeZoomDuration)
	}
	a.play(SoundUltimateCharge, 0.9)
}

// CancelUltimateCharge aborts a charge in progress, unwinding every partial
// side effect in the same tick. Calling it when not charging, or calling it
// repeatedly, is a no-op.
func (a *Attack) CancelUltimateCharge() {
	if !a.charging {
		return
	}
	a.charging = false
	a.chargeProgress = 0

	a.player.SetInputEnabled(true)
	a.player.SetCasting(false)
	a.player.UnlockAnimation()
	a.restoreMovementState()

	if a.tempo != nil {
		a.tempo.Reset()
	}
	if a.camera != nil {
		if a.letterboxShown {
			a.camera.HideLetterbox(chargeLetterboxTime)
			a.letterboxShown = false
		}
		a.camera.SetZoom(1, 1, cancelZoomDuration)
	}
}

func (a *Attack) updateCharging() {
	elapsed := a.now - a.chargeStartAt
	if p := common.Clamp01(elapsed / a.tuning.UltimateCharge); p > a.chargeProgress {
		a.chargeProgress = p
	}

	if a.chargeProgress >= chargeLetterboxAt && !a.letterboxShown && a.camera != nil {
		a.camera.ShowLetterbox(chargeLetterboxTime)
		a.letterboxShown = true
	}

	if elapsed >= a.tuning.UltimateCharge {
		a.executeUltimate()
	}
}

func (a *Attack) executeUltimate() {
	a.charging = false
	a.executing = true
	a.executeStartAt = a.now
	a.chargeProgress = 1

	a.player.SetMana(a.player.Mana() - a.tuning.UltimateManaCost)

	dir := 1.0
	if !a.player.FacingRight() {
		dir = -1.0
	}
	a.player.SetVelocity(dir*a.tuning.UltimateDashSpeed, 0)
	a.player.SetGravityEnabled(false)

	if a.camera != nil {
		px, py := a.player.Position()
		a.camera.SetFocusTarget(px+dir*a.tuning.UltimateRange/2, py, false)
		a.camera.SetZoom(executeZoomX, executeZoomY, executeZoomDuration)
		a.camera.UltimateAttackEffect(a.tuning.CinematicDuration)
	}
	if a.tempo != nil {
		a.tempo.SetScale(a.tuning.UltimateTimeScale, executeRampDuration, executeSlowReturn)
	}
	a.play(SoundUltimateExecute, 1.0)
}

func (a *Attack) updateExecution() {
	if a.now-a.executeStartAt >= a.tuning.UltimateExecution {
		a.completeUltimate()
	}
}

func (a *Attack) completeUltimate() {
	a.executing = false
	a.lastUltimateAt = a.now // cooldown anchor
	a.chargeProgress = 0
	a.letterboxShown = false

	a.player.SetGravityEnabled(true)
	a.player.SetCasting(false)
	a.player.SetInputEnabled(true)
	a.player.UnlockAnimation()
	a.restoreMovementState()

	if a.camera != nil {
		a.camera.Flash(1, completeFlashAlpha)
		a.camera.SetZoomWithReset(1, 1, 0.5, 0)
		a.camera.ClearFocus()
	}
	if a.tempo != nil {
		a.tempo.Reset()
	}
	a.play(SoundUltimateComplete, 0.9)
}

// updateAttack watches the active attack animation for completion. The
// sprite's completion flag is the primary signal; the frame-index check is a
// fallback for providers whose sprites never raise the flag. The animation
// resolver runs its own completion path for the sprite swap; both land on
// the same end state within a frame of each other.
func (a *Attack) updateAttack() {
	if s := a.player.State(); s != StateAttacking && s != StateDashing {
		// the animation-driven completion path already ended this attack;
		// converge on the combat-side bookkeeping and final state
		a.completeAttack()
		return
	}
	sprite := a.player.CurrentSprite()
	if sprite == nil {
		// missing asset: fall back to the animation lock timer so the
		// attack state can never wedge
		if !a.player.AnimationLocked() {
			a.completeAttack()
		}
		return
	}
	if sprite.Looping() {
		return
	}
	if sprite.Completed() {
		a.completeAttack()
		return
	}
	if n := sprite.FrameCount(); n > 0 && sprite.FrameIndex() >= n-1 {
		a.completeAttack()
	}
}

func (a *Attack) completeAttack() {
	a.attacking = false
	a.player.SetAttacking(false)
	a.restoreMovementState()
	a.player.UnlockAnimation()
}

// restoreMovementState picks the state to land in after an action ends.
func (a *Attack) restoreMovementState() {
	if a.player.Grounded() {
		a.player.SetState(StateIdle)
		return
	}
	if _, vy := a.player.Velocity(); vy < 0 {
		a.player.SetState(StateJumping)
	} else {
		a.player.SetState(StateFalling)
	}
}

func (a *Attack) resetCombo() {
	a.comboCount = 0
	a.comboActive = false
}

// HitboxFor returns the world-space hitbox for an attack kind, mirrored
// about the entity anchor when facing left. The placement is recomputed on
// every call; it is never cached across a facing change.
func (a *Attack) HitboxFor(kind string) (common.Rect, bool) {
	spec, ok := a.tuning.Attacks[kind]
	if !ok {
		return common.Rect{}, false
	}
	px, py := a.player.Position()
	world := common.Rect{
		X:      px + spec.Hitbox.X,
		Y:      py + spec.Hitbox.Y,
		Width:  spec.Hitbox.Width,
		Height: spec.Hitbox.Height,
	}
	if !a.player.FacingRight() {
		world = world.MirrorX(px)
	}
	return world, true
}

// DamageFor returns the damage value for an attack kind.
func (a *Attack) DamageFor(kind string) int {
	return a.tuning.Attacks[kind].Damage
}

// ActiveHitbox returns the kind and world-space hitbox of whatever attack is
// currently live, if any.
func (a *Attack) ActiveHitbox() (string, common.Rect, bool) {
	var kind string
	switch {
	case a.executing:
		kind = AttackUltimate
	case a.attacking && a.comboActive:
		switch a.comboCount {
		case 1:
			kind = AttackCombo1
		case 2:
			kind = AttackCombo2
		default:
			kind = AttackCombo3
		}
	case a.attacking && a.player.Dashing():
		kind = AttackDash
	case a.attacking:
		kind = AttackLight
	default:
		return "", common.Rect{}, false
	}
	rect, ok := a.HitboxFor(kind)
	return kind, rect, ok
}

// IsUltimateReady reports whether a charge request would currently pass the
// cooldown and resource gates.
func (a *Attack) IsUltimateReady() bool {
	return a.now-a.lastUltimateAt >= a.tuning.UltimateCooldown &&
		a.player.Mana() >= a.tuning.UltimateManaCost
}

// UltimateCooldownProgress reports cooldown recovery in [0, 1]; 1 means off
// cooldown.
func (a *Attack) UltimateCooldownProgress() float64 {
	return common.Clamp01((a.now - a.lastUltimateAt) / a.tuning.UltimateCooldown)
}

// UltimateChargeProgress reports charge completion in [0, 1]. It is 0 except
// while charging or executing, and monotone non-decreasing within a charge.
func (a *Attack) UltimateChargeProgress() float64 {
	return a.chargeProgress
}

func (a *Attack) IsCharging() bool { return a.charging }

func (a *Attack) IsExecuting() bool { return a.executing }

func (a *Attack) IsAttacking() bool { return a.attacking }

func (a *Attack) ComboCount() int { return a.comboCount }

func (a *Attack) play(name string, volume float64) {
	if a.audio != nil {
		a.audio.Play(name, volume)
	}
}
