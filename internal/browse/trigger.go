package browse

// TriggerState is the scroll trigger's position in its cycle.
type TriggerState int

// Trigger states.
const (
	TriggerIdle TriggerState = iota
	TriggerArmed
	TriggerFiring
)

func (s TriggerState) String() string {
	switch s {
	case TriggerArmed:
		return "armed"
	case TriggerFiring:
		return "firing"
	default:
		return "idle"
	}
}

// Viewport describes what part of the rendered list is on screen, in lines.
// SentinelLine < 0 means no sentinel is rendered.
type Viewport struct {
	Offset       int
	Height       int
	SentinelLine int
}

// SentinelVisible reports whether the sentinel lies inside the viewport
// extended forward by margin lines.
func (v Viewport) SentinelVisible(margin int) bool {
	if v.SentinelLine < 0 || v.Height <= 0 {
		return false
	}
	return v.SentinelLine >= v.Offset && v.SentinelLine < v.Offset+v.Height+margin
}

// Trigger advances the page counter when the sentinel scrolls into view.
type Trigger struct {
	margin   int
	state    TriggerState
	attached bool
}

// NewTrigger creates a detached trigger with a forward margin in lines.
func NewTrigger(margin int) *Trigger {
	if margin < 0 {
		margin = 0
	}
	return &Trigger{margin: margin}
}

// Attach subscribes the trigger to viewport observations.
func (t *Trigger) Attach() { t.attached = true }

// Detach unsubscribes the trigger. A detached trigger never fires.
func (t *Trigger) Detach() {
	t.attached = false
	t.state = TriggerIdle
}

// Attached reports whether the trigger is subscribed.
func (t *Trigger) Attached() bool { return t.attached }

// State returns the state left by the last observation.
func (t *Trigger) State() TriggerState { return t.state }

// Observe re-evaluates the trigger against the current viewport and session.
// Callers invoke it after every viewport change and every in-flight change.
// It returns true when it fired, i.e. the page counter advanced.
func (t *Trigger) Observe(vp Viewport, s *Session) bool {
	if !t.attached || !vp.SentinelVisible(t.margin) || s.InFlight() {
		t.state = TriggerIdle
		return false
	}

	t.state = TriggerArmed
	if s.Exhausted() || s.Closed() {
		return false
	}

	t.state = TriggerFiring
	fired := s.Advance()
	t.state = TriggerIdle
	return fired
}
