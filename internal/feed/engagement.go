package feed

import "swipefeed/internal/domain"

// Mutation is an outgoing like toggle tagged with its per-post sequence
// number
type Mutation struct {
	PostID string
	Seq    uint64
}

// record tracks one post's like state. liked/count are what the user sees
// (optimistic); serverLiked/serverCount are the last confirmed truth and are
// restored when a mutation fails.
type record struct {
	liked       bool
	count       int
	serverLiked bool
	serverCount int
	seq         uint64 // latest issued mutation sequence
}

// Store keeps per-post like state with optimistic updates. Each outgoing
// mutation carries a monotonic per-post sequence; a response is applied only
// when it matches the latest issued sequence, so an out-of-order response can
// never overwrite a newer local state.
type Store struct {
	records map[string]*record
}

// NewStore creates an empty engagement store
func NewStore() *Store {
	return &Store{records: make(map[string]*record)}
}

// rec returns the record for a post, seeding it from the post's server
// values on first sight
func (s *Store) rec(p domain.Post) *record {
	r, ok := s.records[p.ID]
	if !ok {
		r = &record{
			liked:       p.Liked,
			count:       p.LikeCount,
			serverLiked: p.Liked,
			serverCount: p.LikeCount,
		}
		s.records[p.ID] = r
	}
	return r
}

// View returns the like state to render for a post
func (s *Store) View(p domain.Post) (liked bool, count int) {
	r := s.rec(p)
	return r.liked, r.count
}

// Toggle flips the like state optimistically and returns the mutation to
// send. This is the like-button path: it always toggles.
func (s *Store) Toggle(p domain.Post) Mutation {
	r := s.rec(p)
	if r.liked {
		r.liked = false
		r.count--
		if r.count < 0 {
			r.count = 0
		}
	} else {
		r.liked = true
		r.count++
	}
	r.seq++
	return Mutation{PostID: p.ID, Seq: r.seq}
}

// DoubleTap likes a post that is not yet liked. It never unlikes: a
// double-tap on an already-liked post leaves the state unchanged and issues
// no mutation, so the two input paths cannot double-fire one logical like.
func (s *Store) DoubleTap(p domain.Post) (Mutation, bool) {
	r := s.rec(p)
	if r.liked {
		return Mutation{}, false
	}
	return s.Toggle(p), true
}

// Confirm applies an authoritative server response. Responses older than the
// latest issued mutation for the post are discarded; the in-flight newest
// mutation will reconcile instead.
func (s *Store) Confirm(postID string, seq uint64, state domain.LikeState) bool {
	r, ok := s.records[postID]
	if !ok || seq != r.seq {
		return false
	}
	r.liked = state.Liked
	r.count = state.LikeCount
	r.serverLiked = state.Liked
	r.serverCount = state.LikeCount
	return true
}

// Fail reverts the optimistic flip for the latest mutation back to the last
// confirmed server state, so the counter never silently disagrees with the
// server. Stale failures are discarded like stale confirmations.
func (s *Store) Fail(postID string, seq uint64) bool {
	r, ok := s.records[postID]
	if !ok || seq != r.seq {
		return false
	}
	r.liked = r.serverLiked
	r.count = r.serverCount
	return true
}
