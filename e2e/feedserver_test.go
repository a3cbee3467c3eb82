//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// stubPost mirrors the backend's feed item wire format
type stubPost struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	Author       string `json:"author_display_name"`
	LikeCount    int    `json:"like_count"`
	Liked        bool   `json:"liked"`
	CommentCount int    `json:"comment_count"`
	RemixCount   int    `json:"remix_count"`
}

// stubFeedServer is an in-process stand-in for the backend. Cursors are plain
// offsets encoded as strings; the client must treat them as opaque either way.
type stubFeedServer struct {
	mu       sync.Mutex
	posts    []stubPost
	pageSize int
	srv      *httptest.Server

	failFeed bool
	failLike bool
}

func newStubFeedServer(total, pageSize int) *stubFeedServer {
	posts := make([]stubPost, total)
	for i := range posts {
		posts[i] = stubPost{
			ID:        fmt.Sprintf("post-%d", i),
			ImageURL:  fmt.Sprintf("https://img.example.com/%d.png", i),
			Title:     fmt.Sprintf("Post number %d", i),
			Author:    "testuser",
			LikeCount: 5,
		}
	}
	s := &stubFeedServer{posts: posts, pageSize: pageSize}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *stubFeedServer) URL() string { return s.srv.URL }
func (s *stubFeedServer) Close()      { s.srv.Close() }

func (s *stubFeedServer) setFailFeed(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failFeed = v
}

func (s *stubFeedServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/v1/feed":
		if s.failFeed {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		offset := 0
		if c := r.URL.Query().Get("cursor"); c != "" {
			offset, _ = strconv.Atoi(c)
		}
		end := offset + s.pageSize
		if end > len(s.posts) {
			end = len(s.posts)
		}
		next := ""
		if end < len(s.posts) {
			next = strconv.Itoa(end)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"posts":       s.posts[offset:end],
			"next_cursor": next,
		})

	case strings.HasPrefix(r.URL.Path, "/api/v1/posts/") && strings.HasSuffix(r.URL.Path, "/like"):
		if s.failLike {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v1/posts/"), "/like")
		for i := range s.posts {
			if s.posts[i].ID == id {
				if s.posts[i].Liked {
					s.posts[i].Liked = false
					s.posts[i].LikeCount--
				} else {
					s.posts[i].Liked = true
					s.posts[i].LikeCount++
				}
				json.NewEncoder(w).Encode(map[string]any{
					"liked":      s.posts[i].Liked,
					"like_count": s.posts[i].LikeCount,
				})
				return
			}
		}
		http.NotFound(w, r)

	case strings.HasPrefix(r.URL.Path, "/api/v1/posts/") && strings.HasSuffix(r.URL.Path, "/share"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v1/posts/"), "/share")
		json.NewEncoder(w).Encode(map[string]string{
			"url": "https://share.example.com/p/" + id,
		})

	default:
		http.NotFound(w, r)
	}
}
