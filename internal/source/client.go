package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"swipefeed/internal/domain"
	"swipefeed/internal/logging"
)

// Client is the post source contract consumed by the feed. Implementations
// must treat cursors as opaque: the token from one page is passed back
// verbatim on the next fetch, never parsed or constructed.
type Client interface {
	FetchPage(ctx context.Context, cursor string, pageSize int, filter domain.FeedFilter) (*domain.Page, error)
	ToggleLike(ctx context.Context, postID string) (domain.LikeState, error)
	Share(ctx context.Context, postID string) (string, error)
}

// httpClient talks to the backend's REST API
type httpClient struct {
	rc *resty.Client
}

// NewClient creates a post source client against the given base URL
func NewClient(baseURL string, timeout time.Duration) Client {
	rc := resty.New()
	rc.SetBaseURL(baseURL)
	rc.SetTimeout(timeout)
	rc.SetHeader("User-Agent", "swipefeed/0.1.0")
	rc.JSONMarshal = jsoniter.Marshal
	rc.JSONUnmarshal = jsoniter.Unmarshal

	rc.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("http request", "method", req.Method, "url", req.URL)
		return nil
	})
	rc.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("http response", "status", resp.StatusCode(), "url", resp.Request.URL)
		return nil
	})

	return &httpClient{rc: rc}
}

// FetchPage retrieves one page of the feed. An absent cursor fetches the
// first page.
func (c *httpClient) FetchPage(ctx context.Context, cursor string, pageSize int, filter domain.FeedFilter) (*domain.Page, error) {
	var page domain.Page

	req := c.rc.R().
		SetContext(ctx).
		SetQueryParam("page_size", strconv.Itoa(pageSize)).
		SetResult(&page)
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}

	resp, err := req.Get("/api/v1/feed")
	if err != nil {
		return nil, &FetchError{Op: "fetch feed page", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{Op: "fetch feed page", StatusCode: resp.StatusCode()}
	}

	return &page, nil
}

// ToggleLike flips the viewer's like on a post and returns the authoritative
// state. Each call carries a fresh idempotency key so a retried request
// cannot double-count on the server.
func (c *httpClient) ToggleLike(ctx context.Context, postID string) (domain.LikeState, error) {
	var state domain.LikeState

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetResult(&state).
		Post(fmt.Sprintf("/api/v1/posts/%s/like", postID))

	if err != nil {
		return domain.LikeState{}, &MutationError{PostID: postID, Err: err}
	}
	if !resp.IsSuccess() {
		return domain.LikeState{}, &MutationError{PostID: postID, StatusCode: resp.StatusCode()}
	}

	return state, nil
}

// Share asks the server for a shareable link to a post
func (c *httpClient) Share(ctx context.Context, postID string) (string, error) {
	var result struct {
		URL string `json:"url"`
	}

	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&result).
		Post(fmt.Sprintf("/api/v1/posts/%s/share", postID))

	if err != nil {
		return "", &MutationError{PostID: postID, Err: err}
	}
	if !resp.IsSuccess() {
		return "", &MutationError{PostID: postID, StatusCode: resp.StatusCode()}
	}

	return result.URL, nil
}
