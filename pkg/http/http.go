// Package http wraps an http client so that 429 responses are retried with backoff.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Millisecond * 500
)

var ErrRateLimited = errors.New("rate limit exceeded")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RateLimitedClient retries requests answered with 429. It is safe for concurrent use.
type RateLimitedClient struct {
	client      HTTPClient
	baseBackoff time.Duration
	maxRetries  int
}

type ClientOption func(*RateLimitedClient)

func NewRateLimitedHTTPClient(opts ...ClientOption) *RateLimitedClient {
	c := &RateLimitedClient{
		client:      http.DefaultClient,
		maxRetries:  DefaultMaxRetries,
		baseBackoff: DefaultBaseBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxRetries < 1 {
		c.maxRetries = 1
	}

	return c
}

// WithMaxRetries sets how many attempts a request gets before giving up
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RateLimitedClient) {
		c.maxRetries = maxRetries
	}
}

func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		c.baseBackoff = baseBackoff
	}
}

func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RateLimitedClient) {
		c.client = client
	}
}

// Do executes the request, waiting between attempts while the server answers 429.
// Every rate limited response is closed. When all attempts were rate limited only ErrRateLimited is returned.
// The wait is cut short when the request context is done.
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		wait := c.getRetryAfter(resp, attempt)
		resp.Body.Close()

		if attempt == c.maxRetries-1 {
			break
		}

		timer := time.NewTimer(wait)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("%w after %d retries", ErrRateLimited, c.maxRetries)
}

func (c *RateLimitedClient) getRetryAfter(resp *http.Response, attempt int) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		seconds, err := strconv.Atoi(header)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	backoff := time.Duration(1<<attempt) * c.baseBackoff
	if c.baseBackoff <= 0 {
		return backoff
	}

	// spread out clients that were limited at the same time
	return backoff + time.Duration(rand.Int63n(int64(c.baseBackoff)))
}
