package requests

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"leaguestats/pkg/messages"
)

// UpstreamError is returned for any non success status other than 429.
type UpstreamError struct {
	URL    string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Riot API %d: %s", e.Status, e.Body)
}

// RateLimitExhaustedError is returned when the API kept answering 429 after every retry.
type RateLimitExhaustedError struct {
	URL     string
	Retries int
}

func (e *RateLimitExhaustedError) Error() string {
	return fmt.Sprintf(messages.RateLimitExhaustedMsg, e.Retries, e.URL)
}

// TimeoutError is returned when a single request exceeded its deadline.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf(messages.TimeoutMsg, e.Timeout, e.URL)
}

// IsNotFound reports if the error is a upstream 404.
func IsNotFound(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.Status == http.StatusNotFound
}
