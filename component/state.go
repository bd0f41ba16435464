package component

// PlayerState is the single active movement/action state of the player.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateWalking
	StateRunning
	StateJumping
	StateFalling
	StateDashing
	StateAttacking
	StateCasting
	StateLanding
)

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	case StateDashing:
		return "dashing"
	case StateAttacking:
		return "attacking"
	case StateCasting:
		return "casting"
	case StateLanding:
		return "landing"
	default:
		return "unknown"
	}
}

// MovementContext is a sub-mode within a state, orthogonal to PlayerState.
type MovementContext int

const (
	ContextNormal MovementContext = iota
	ContextTurning
)

func (c MovementContext) String() string {
	switch c {
	case ContextTurning:
		return "turning"
	default:
		return "normal"
	}
}
