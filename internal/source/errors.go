package source

import "fmt"

// FetchError reports a failed page load. The buffer keeps whatever it already
// holds and the caller surfaces a retry.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError reports a failed engagement mutation. It is recovered locally
// by reverting the optimistic flip; it never reaches the navigation layer.
type MutationError struct {
	PostID     string
	StatusCode int
	Err        error
}

func (e *MutationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mutation for post %s: %v", e.PostID, e.Err)
	}
	return fmt.Sprintf("mutation for post %s: unexpected status %d", e.PostID, e.StatusCode)
}

func (e *MutationError) Unwrap() error { return e.Err }
