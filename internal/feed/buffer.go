package feed

import "swipefeed/internal/domain"

// Buffer holds the loaded feed in server order. Growth is append-only: posts
// are never removed or reordered once loaded, and a post id that reappears on
// a later page is kept as a second entry rather than deduplicated.
type Buffer struct {
	posts    []domain.Post
	cursor   string
	hasMore  bool
	fetching bool
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{hasMore: true}
}

// Len returns the number of loaded posts
func (b *Buffer) Len() int { return len(b.posts) }

// Post returns the post at index i
func (b *Buffer) Post(i int) (domain.Post, bool) {
	if i < 0 || i >= len(b.posts) {
		return domain.Post{}, false
	}
	return b.posts[i], true
}

// Posts returns the loaded posts in order
func (b *Buffer) Posts() []domain.Post { return b.posts }

// Cursor returns the opaque continuation token for the next fetch
func (b *Buffer) Cursor() string { return b.cursor }

// HasMore reports whether further pages may exist
func (b *Buffer) HasMore() bool { return b.hasMore }

// Fetching reports whether a fetch is in flight
func (b *Buffer) Fetching() bool { return b.fetching }

// BeginInitial marks the start of a first-page load and clears the buffer so
// a retry starts from a clean slate. Returns false while a fetch is already
// in flight.
func (b *Buffer) BeginInitial() bool {
	if b.fetching {
		return false
	}
	b.posts = nil
	b.cursor = ""
	b.hasMore = true
	b.fetching = true
	return true
}

// BeginFetch marks the start of a next-page load. Returns false while a fetch
// is outstanding or when no further pages exist, so a duplicate call is a
// silent no-op rather than a second network request.
func (b *Buffer) BeginFetch() bool {
	if b.fetching || !b.hasMore {
		return false
	}
	b.fetching = true
	return true
}

// CompleteFetch appends the fetched page in order and records its
// continuation cursor. An empty page with a cursor is tolerated; this is one
// fetch per call, never a retry loop.
func (b *Buffer) CompleteFetch(page domain.Page) {
	b.posts = append(b.posts, page.Posts...)
	b.cursor = page.NextCursor
	b.hasMore = page.NextCursor != ""
	b.fetching = false
}

// FailFetch clears the in-flight flag. Already-loaded posts are kept so a
// failed page load never corrupts what the user is looking at.
func (b *Buffer) FailFetch() {
	b.fetching = false
}
