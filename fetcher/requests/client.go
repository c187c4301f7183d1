package requests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"leaguestats/pkg/config"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/messages"
	"leaguestats/pkg/metrics"

	"github.com/goccy/go-json"
)

// Client is the Riot API client.
// The backoff and the limiter are shared by every request made through the same client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    *Backoff
	limiter    *RateLimiter
	metrics    metrics.Recorder
	logger     *logger.NewLogger
	sleep      func(ctx context.Context, d time.Duration) error
}

// ClientOptions to create a client.
// Zero values fall back to the configuration defaults.
type ClientOptions struct {
	ApiKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries int
	Limiter    *RateLimiter
	Metrics    metrics.Recorder
	Logger     *logger.NewLogger
}

// NewClient creates a client.
func NewClient(opts ClientOptions) *Client {
	c := &Client{
		apiKey:     opts.ApiKey,
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		timeout:    opts.Timeout,
		maxRetries: opts.MaxRetries,
		backoff:    &Backoff{},
		limiter:    opts.Limiter,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		sleep:      Sleep,
	}

	if c.baseURL == "" {
		c.baseURL = config.DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = config.DefaultRequestTimeout
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	if c.metrics == nil {
		c.metrics = metrics.Noop{}
	}
	if c.logger == nil {
		c.logger = logger.Discard()
	}
	return c
}

// NewClientFromConfig creates the client used by the application.
// A RIOT_RATE_LIMITS of "off" disables the application windows.
func NewClientFromConfig(cfg *config.Config, log *logger.NewLogger, recorder metrics.Recorder) (*Client, error) {
	var limiter *RateLimiter
	if cfg.Riot.RateLimits != "off" {
		windows, err := ParseWindows(cfg.Riot.RateLimits)
		if err != nil {
			return nil, err
		}
		limiter = NewRateLimiter(windows...)
	}

	return NewClient(ClientOptions{
		ApiKey:     cfg.Riot.ApiKey,
		BaseURL:    cfg.Riot.BaseURL,
		Timeout:    cfg.Riot.RequestTimeout,
		MaxRetries: cfg.Riot.MaxRetries,
		Limiter:    limiter,
		Metrics:    recorder,
		Logger:     log,
	}), nil
}

// Backoff exposes the shared adaptive delay.
func (c *Client) Backoff() *Backoff {
	return c.backoff
}

// URL builds a full URL for a routing value, like "americas" or "br1".
func (c *Client) URL(routing string, pathFormat string, args ...any) string {
	host := fmt.Sprintf(c.baseURL, strings.ToLower(routing))
	return host + fmt.Sprintf(pathFormat, args...)
}

// GetJSON requests the URL and decodes the body into out.
// Retries on 429 with the adaptive backoff, every other failure is returned.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	for attempt := 0; ; attempt++ {
		if wait := c.backoff.Current(); wait > 0 {
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		status, body, retryAfter, err := c.do(ctx, url)
		if err != nil {
			c.metrics.IncUpstreamRequests(0)
			return err
		}
		c.metrics.IncUpstreamRequests(status)

		if status == http.StatusTooManyRequests {
			c.metrics.IncRateLimited()
			if attempt >= c.maxRetries {
				return &RateLimitExhaustedError{URL: url, Retries: c.maxRetries}
			}

			wait := c.backoff.Raise(retryAfter)
			c.logger.Warnf("Rate limited on %s, waiting %s (attempt %d)", url, wait, attempt+1)
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
			c.backoff.Escalate()
			continue
		}

		if status < 200 || status > 299 {
			if len(body) == 0 {
				body = []byte(url)
			}
			return &UpstreamError{URL: url, Status: status, Body: string(body)}
		}

		c.backoff.Relax()
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf(messages.FailedToParseMsg, url, err)
		}
		return nil
	}
}

// do runs a single attempt under the request timeout.
func (c *Client) do(ctx context.Context, url string) (int, []byte, time.Duration, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, 0, fmt.Errorf(messages.RequestFailedMsg, url, err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, 0, c.attemptError(ctx, reqCtx, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			return 0, nil, 0, c.attemptError(ctx, reqCtx, url, err)
		}
		// The status is enough for the failure path.
		body = nil
	}

	return resp.StatusCode, body, retryAfter(resp.Header.Get("Retry-After")), nil
}

// attemptError tells the request timeout apart from the caller cancelling.
func (c *Client) attemptError(ctx, reqCtx context.Context, url string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{URL: url, Timeout: c.timeout}
	}
	return fmt.Errorf(messages.RequestFailedMsg, url, err)
}

// retryAfter parses the header in seconds, defaulting to one.
func retryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}
