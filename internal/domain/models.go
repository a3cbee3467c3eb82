package domain

// Post is a single feed item as returned by the post source. The engagement
// fields carry the server's last known truth; optimistic like state is
// overlaid by the engagement store and never written back into the post.
type Post struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	Author       string `json:"author_display_name"`
	LikeCount    int    `json:"like_count"`
	Liked        bool   `json:"liked"`
	CommentCount int    `json:"comment_count"`
	RemixCount   int    `json:"remix_count"`
}

// Page is one fetch result from the post source. NextCursor is an opaque
// continuation token, passed back verbatim on the next fetch; an empty value
// means no further pages exist.
type Page struct {
	Posts      []Post `json:"posts"`
	NextCursor string `json:"next_cursor"`
}

// LikeState is the authoritative engagement state returned by a like mutation.
type LikeState struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// FeedFilter narrows the feed to a category. The zero value applies no filter.
type FeedFilter struct {
	Category string
}
