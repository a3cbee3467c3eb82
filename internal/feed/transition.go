package feed

import "time"

// Phase of the transition state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimating
)

// DefaultTransitionDuration is how long a post transition animates
const DefaultTransitionDuration = 140 * time.Millisecond

// Transition animates one post out and the next one in. The navigator's
// index is committed before Start is called, so the outgoing post stops
// receiving engagement input the instant a transition begins; at rest exactly
// one post is visible and interactive.
//
// A navigation request arriving while a transition is running retargets it:
// the running transition is treated as complete and the new one starts from
// the committed post. This keeps rapid navigation deterministic instead of
// dropping some requests and honoring others.
type Transition struct {
	phase    Phase
	fromID   string
	toID     string
	dir      Direction
	progress float64
	duration time.Duration
}

// NewTransition creates an idle transition controller
func NewTransition(duration time.Duration) *Transition {
	if duration <= 0 {
		duration = DefaultTransitionDuration
	}
	return &Transition{duration: duration}
}

// Phase returns the current phase
func (t *Transition) Phase() Phase { return t.phase }

// Animating reports whether a transition is running
func (t *Transition) Animating() bool { return t.phase == PhaseAnimating }

// From returns the outgoing post id while animating
func (t *Transition) From() string { return t.fromID }

// To returns the incoming post id while animating
func (t *Transition) To() string { return t.toID }

// Direction returns the direction of the running (or last) transition
func (t *Transition) Direction() Direction { return t.dir }

// Progress returns animation progress in [0, 1]
func (t *Transition) Progress() float64 { return t.progress }

// Start begins animating from one post to another. If a transition is
// already running it is retargeted: the new animation starts fresh toward
// the new destination.
func (t *Transition) Start(fromID, toID string, dir Direction) {
	t.phase = PhaseAnimating
	t.fromID = fromID
	t.toID = toID
	t.dir = dir
	t.progress = 0
}

// Step advances the animation clock by elapsed wall time. Returns true when
// the transition just settled back to idle.
func (t *Transition) Step(elapsed time.Duration) bool {
	if t.phase != PhaseAnimating {
		return false
	}
	t.progress += float64(elapsed) / float64(t.duration)
	if t.progress >= 1 {
		t.progress = 1
		t.phase = PhaseIdle
		return true
	}
	return false
}
