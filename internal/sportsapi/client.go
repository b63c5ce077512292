package sportsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/sportsdash/internal/logging"
	"github.com/muurk/sportsdash/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 10 * time.Second

	// DefaultCacheDuration is how long standings are served from memory
	DefaultCacheDuration = 30 * time.Second

	// maxBodySize caps response bodies read from the service
	maxBodySize = 8 << 20
)

// Client is an HTTP client for the sports data service
type Client struct {
	// BaseURL is the service root (e.g., "https://stats.example.com/v1")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration

	// CacheDuration is how long to cache standings (0 = no cache)
	CacheDuration time.Duration

	cachedStandings []Standing
	cacheTime       time.Time
	cacheMutex      sync.RWMutex
}

// NewClient creates a new data service client
// baseURL: service root, without trailing slash
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		HTTPClient:    &http.Client{Timeout: DefaultTimeout},
		MaxRetries:    DefaultMaxRetries,
		RetryDelay:    DefaultRetryDelay,
		MaxRetryDelay: DefaultMaxRetryDelay,
		CacheDuration: DefaultCacheDuration,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// InvalidateCache drops cached standings so the next call hits the service
func (c *Client) InvalidateCache() {
	c.cacheMutex.Lock()
	c.cachedStandings = nil
	c.cacheTime = time.Time{}
	c.cacheMutex.Unlock()
}

// Standings returns the league table.
// Uses cached standings if available and fresh.
func (c *Client) Standings(ctx context.Context) ([]Standing, error) {
	if c.CacheDuration > 0 {
		c.cacheMutex.RLock()
		if c.cachedStandings != nil && time.Since(c.cacheTime) < c.CacheDuration {
			cached := append([]Standing(nil), c.cachedStandings...)
			c.cacheMutex.RUnlock()
			return cached, nil
		}
		c.cacheMutex.RUnlock()
	}

	var payload struct {
		Standings []Standing `json:"standings"`
	}
	if err := c.get(ctx, "/standings", &payload); err != nil {
		return nil, err
	}

	if c.CacheDuration > 0 {
		c.cacheMutex.Lock()
		c.cachedStandings = append([]Standing(nil), payload.Standings...)
		c.cacheTime = time.Now()
		c.cacheMutex.Unlock()
	}

	return payload.Standings, nil
}

// Schedule returns every game on date (YYYY-MM-DD)
func (c *Client) Schedule(ctx context.Context, date string) (Schedule, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Schedule{}, fmt.Errorf("invalid schedule date %q: %w", date, err)
	}

	var schedule Schedule
	if err := c.get(ctx, "/schedule/"+date, &schedule); err != nil {
		return Schedule{}, err
	}
	if schedule.Date == "" {
		schedule.Date = date
	}
	return schedule, nil
}

// Game returns the box score of one game
func (c *Client) Game(ctx context.Context, id int) (GameDetail, error) {
	var detail GameDetail
	err := c.get(ctx, "/games/"+strconv.Itoa(id), &detail)
	return detail, err
}

// Team returns a team profile and roster
func (c *Client) Team(ctx context.Context, abbrev string) (Team, error) {
	var team Team
	err := c.get(ctx, "/teams/"+url.PathEscape(abbrev), &team)
	return team, err
}

// Player returns a player profile with season totals
func (c *Client) Player(ctx context.Context, id int) (Player, error) {
	var player Player
	err := c.get(ctx, "/players/"+strconv.Itoa(id), &player)
	return player, err
}

// get fetches path and decodes the JSON body into out, retrying
// retryable failures with exponential backoff
func (c *Client) get(ctx context.Context, path string, out any) error {
	var lastErr error
	currentDelay := c.RetryDelay
	start := time.Now()

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(currentDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return NewNetworkError("request canceled during retry", ctx.Err())
			case <-timer.C:
			}

			currentDelay *= 2
			if currentDelay > c.MaxRetryDelay {
				currentDelay = c.MaxRetryDelay
			}
		}

		err := c.getAttempt(ctx, path, out)
		if err == nil {
			logging.LogFetch(path, time.Since(start), nil)
			return nil
		}

		lastErr = err
		if !IsRetryable(err) {
			break
		}
		logging.Debug("Retrying request",
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	logging.LogFetch(path, time.Since(start), lastErr)
	return lastErr
}

// getAttempt performs a single GET request
func (c *Client) getAttempt(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return NewNetworkError("failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("GET %s: unexpected status code %d", path, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewParseError(fmt.Sprintf("failed to parse %s response", path), err)
	}

	return nil
}
