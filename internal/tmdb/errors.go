package tmdb

import "fmt"

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d from %s", e.StatusCode, e.URL)
}
