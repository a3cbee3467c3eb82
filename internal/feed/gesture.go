package feed

import "math"

// Decision is the single-shot outcome of a released drag
type Decision int

const (
	DecideNone Decision = iota
	DecideAdvance
	DecideRetreat
)

// DefaultThreshold is the confidence threshold for committing a swipe, in
// rows times rows-per-second. Equivalent to 10000 in pixel units at roughly
// 20 pixels per terminal row.
const DefaultThreshold = 25.0

// Recognizer turns a drag release into at most one navigation decision.
// Offset and velocity are measured along the vertical axis in terminal rows,
// with positive values pointing toward the next post (an upward swipe).
type Recognizer struct {
	threshold float64
}

// NewRecognizer creates a recognizer with the given confidence threshold
func NewRecognizer(threshold float64) *Recognizer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Recognizer{threshold: threshold}
}

// Resolve is evaluated exactly once per gesture, at release. Intermediate
// drag frames only drive the elastic follow effect and never commit
// navigation.
func (r *Recognizer) Resolve(offset, velocity float64) Decision {
	power := math.Abs(offset) * math.Abs(velocity)
	if power <= r.threshold {
		return DecideNone
	}
	// Offset and velocity must agree on a direction; a flick back against
	// the drag cancels the gesture
	switch {
	case offset > 0 && velocity > 0:
		return DecideAdvance
	case offset < 0 && velocity < 0:
		return DecideRetreat
	default:
		return DecideNone
	}
}
