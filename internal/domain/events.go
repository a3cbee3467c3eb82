package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFeedLoadRequested   EventType = "FeedLoadRequested"
	EventFeedMoreRequested   EventType = "FeedMoreRequested"
	EventFeedPageLoaded      EventType = "FeedPageLoaded"
	EventFeedLoadFailed      EventType = "FeedLoadFailed"
	EventLikeToggleRequested EventType = "LikeToggleRequested"
	EventLikeUpdated         EventType = "LikeUpdated"
	EventLikeFailed          EventType = "LikeFailed"
	EventShareRequested      EventType = "ShareRequested"
	EventShareReady          EventType = "ShareReady"
	EventShareFailed         EventType = "ShareFailed"
	EventRemixRequested      EventType = "RemixRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FeedLoadRequestedEvent is emitted to request the first feed page
type FeedLoadRequestedEvent struct {
	Filter FeedFilter
}

func (e FeedLoadRequestedEvent) Type() EventType { return EventFeedLoadRequested }

// FeedMoreRequestedEvent is emitted to request the next feed page. Cursor is
// the opaque continuation token from the previous page.
type FeedMoreRequestedEvent struct {
	Cursor string
	Filter FeedFilter
}

func (e FeedMoreRequestedEvent) Type() EventType { return EventFeedMoreRequested }

// FeedPageLoadedEvent is emitted when a page fetch completes
type FeedPageLoadedEvent struct {
	Page    Page
	Initial bool
}

func (e FeedPageLoadedEvent) Type() EventType { return EventFeedPageLoaded }

// FeedLoadFailedEvent is emitted when a page fetch fails
type FeedLoadFailedEvent struct {
	Err     error
	Initial bool
}

func (e FeedLoadFailedEvent) Type() EventType { return EventFeedLoadFailed }

// LikeToggleRequestedEvent is emitted to send a like mutation to the server.
// Seq is the per-post mutation sequence assigned by the engagement store.
type LikeToggleRequestedEvent struct {
	PostID string
	Seq    uint64
}

func (e LikeToggleRequestedEvent) Type() EventType { return EventLikeToggleRequested }

// LikeUpdatedEvent carries the authoritative like state after a mutation
type LikeUpdatedEvent struct {
	PostID string
	Seq    uint64
	State  LikeState
}

func (e LikeUpdatedEvent) Type() EventType { return EventLikeUpdated }

// LikeFailedEvent is emitted when a like mutation fails server-side
type LikeFailedEvent struct {
	PostID string
	Seq    uint64
	Err    error
}

func (e LikeFailedEvent) Type() EventType { return EventLikeFailed }

// ShareRequestedEvent is emitted to request a share link for a post
type ShareRequestedEvent struct {
	PostID string
}

func (e ShareRequestedEvent) Type() EventType { return EventShareRequested }

// ShareReadyEvent carries the share URL returned by the server
type ShareReadyEvent struct {
	PostID string
	URL    string
}

func (e ShareReadyEvent) Type() EventType { return EventShareReady }

// ShareFailedEvent is emitted when the share call fails; the UI falls back to
// copying the post's canonical link
type ShareFailedEvent struct {
	PostID string
	Err    error
}

func (e ShareFailedEvent) Type() EventType { return EventShareFailed }

// RemixRequestedEvent hands the current post off to the remix flow, which
// lives outside this client
type RemixRequestedEvent struct {
	PostID string
}

func (e RemixRequestedEvent) Type() EventType { return EventRemixRequested }
