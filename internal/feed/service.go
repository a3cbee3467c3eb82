package feed

import (
	"context"

	"swipefeed/internal/domain"
	"swipefeed/internal/eventbus"
	"swipefeed/internal/logging"
	"swipefeed/internal/source"
)

// Service executes post source calls requested over the bus and publishes the
// results as domain events. All calls run in background goroutines under a
// single root context; Close cancels it, so callbacks resolving after the
// feed view is torn down become no-ops instead of mutating dead state.
type Service interface {
	Close()
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	client   source.Client
	pageSize int
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewService creates a feed service and subscribes it to request events
func NewService(bus eventbus.EventBus, client source.Client, pageSize int) Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &service{
		bus:      bus,
		client:   client,
		pageSize: pageSize,
		ctx:      ctx,
		cancel:   cancel,
	}

	bus.Subscribe(domain.EventFeedLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.FeedLoadRequestedEvent); ok {
			go s.loadPage("", event.Filter, true)
		}
	})

	bus.Subscribe(domain.EventFeedMoreRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.FeedMoreRequestedEvent); ok {
			go s.loadPage(event.Cursor, event.Filter, false)
		}
	})

	bus.Subscribe(domain.EventLikeToggleRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.LikeToggleRequestedEvent); ok {
			go s.toggleLike(event.PostID, event.Seq)
		}
	})

	bus.Subscribe(domain.EventShareRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ShareRequestedEvent); ok {
			go s.share(event.PostID)
		}
	})

	return s
}

// loadPage fetches one page and publishes the outcome
func (s *service) loadPage(cursor string, filter domain.FeedFilter, initial bool) {
	page, err := s.client.FetchPage(s.ctx, cursor, s.pageSize, filter)
	if s.ctx.Err() != nil {
		// View torn down while the call was in flight; drop the result
		return
	}
	if err != nil {
		logging.Warn("feed: page load failed", "initial", initial, "error", err)
		s.bus.Publish(domain.FeedLoadFailedEvent{Err: err, Initial: initial})
		return
	}
	logging.Debug("feed: page loaded", "posts", len(page.Posts), "next_cursor_set", page.NextCursor != "")
	s.bus.Publish(domain.FeedPageLoadedEvent{Page: *page, Initial: initial})
}

// toggleLike sends a like mutation and publishes the authoritative result
func (s *service) toggleLike(postID string, seq uint64) {
	state, err := s.client.ToggleLike(s.ctx, postID)
	if s.ctx.Err() != nil {
		return
	}
	if err != nil {
		logging.Warn("feed: like mutation failed", "post", postID, "seq", seq, "error", err)
		s.bus.Publish(domain.LikeFailedEvent{PostID: postID, Seq: seq, Err: err})
		return
	}
	s.bus.Publish(domain.LikeUpdatedEvent{PostID: postID, Seq: seq, State: state})
}

// share requests a share link for a post
func (s *service) share(postID string) {
	url, err := s.client.Share(s.ctx, postID)
	if s.ctx.Err() != nil {
		return
	}
	if err != nil {
		logging.Warn("feed: share failed", "post", postID, "error", err)
		s.bus.Publish(domain.ShareFailedEvent{PostID: postID, Err: err})
		return
	}
	s.bus.Publish(domain.ShareReadyEvent{PostID: postID, URL: url})
}

// Close cancels in-flight calls
func (s *service) Close() {
	s.cancel()
}
