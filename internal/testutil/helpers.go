package testutil

import (
	"net/http"
	"time"

	"leaguestats/fetcher/requests"
)

// Shared upstream failures.
func NotFoundError(url string) error {
	return &requests.UpstreamError{URL: url, Status: http.StatusNotFound, Body: `{"status":{"message":"Data not found","status_code":404}}`}
}

func ServerError(url string) error {
	return &requests.UpstreamError{URL: url, Status: http.StatusInternalServerError, Body: "Internal server error"}
}

func RateLimitError(url string) error {
	return &requests.RateLimitExhaustedError{URL: url, Retries: 3}
}

func TimeoutError(url string) error {
	return &requests.TimeoutError{URL: url, Timeout: 8 * time.Second}
}
