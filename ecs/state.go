package ecs

// State is the control state that gates scheduled stages. Games define their
// own values, e.g. "moving" and "locked", and tell gated stages which one
// counts as active.
type State string

// StateAlwaysActive is the state a new world starts in.
const StateAlwaysActive State = "always_active"

func (w *World) State() State {
	if w == nil {
		return ""
	}
	return w.state
}

// SetState switches the control state. The change is seen by the next stage
// that checks its gate.
func (w *World) SetState(s State) {
	if w == nil {
		return
	}
	w.state = s
}
