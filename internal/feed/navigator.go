package feed

// Direction selects which edge a transition enters from
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// DefaultLookahead is how close to the loaded end the navigator gets before
// requesting the next page
const DefaultLookahead = 3

// Navigator owns the index of the currently shown post and the last
// navigation direction. Moving past either end of the loaded buffer is a
// boundary no-op, never an error.
type Navigator struct {
	index     int
	lastDir   Direction
	lookahead int
}

// NewNavigator creates a navigator pointing at nothing (index -1)
func NewNavigator(lookahead int) *Navigator {
	if lookahead < 1 {
		lookahead = DefaultLookahead
	}
	return &Navigator{index: -1, lastDir: Forward, lookahead: lookahead}
}

// Index returns the current index, or -1 when the buffer is empty
func (n *Navigator) Index() int { return n.index }

// LastDirection returns the direction of the last navigation
func (n *Navigator) LastDirection() Direction { return n.lastDir }

// Reset points the navigator at the first post, or at nothing for an empty
// buffer
func (n *Navigator) Reset(loaded int) {
	if loaded > 0 {
		n.index = 0
	} else {
		n.index = -1
	}
	n.lastDir = Forward
}

// Advance moves to the next loaded post. At the end of the loaded buffer the
// call is rejected and the index is unchanged.
func (n *Navigator) Advance(loaded int) bool {
	if n.index+1 >= loaded {
		return false
	}
	n.index++
	n.lastDir = Forward
	return true
}

// Retreat moves to the previous post. At the first post the call is rejected
// and the index is unchanged.
func (n *Navigator) Retreat() bool {
	if n.index-1 < 0 {
		return false
	}
	n.index--
	n.lastDir = Backward
	return true
}

// ShouldPrefetch reports whether the next page should be requested now:
// within the lookahead window of the loaded end, with more pages available
// and no fetch already in flight.
func (n *Navigator) ShouldPrefetch(loaded int, hasMore, fetching bool) bool {
	if !hasMore || fetching || n.index < 0 {
		return false
	}
	return loaded-1-n.index < n.lookahead
}
