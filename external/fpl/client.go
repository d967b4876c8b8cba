package fpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	domain "github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/resilience"
	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fpl-annoyer/1.0"
	defaultTimeout   = 12 * time.Second
	maxResponseBytes = 8 << 20
)

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

var errFPLTransient = crerr.New("fpl transient failure")

// FetchObserver receives one observation per upstream document request.
type FetchObserver interface {
	ObserveFetch(document, outcome string, elapsed time.Duration)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Observer       FetchObserver
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public Fantasy Premier League API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	maxRetries     int
	logger         *logging.Logger
	observer       FetchObserver
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.Group[[]byte]
}

var _ domain.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = "fpl"
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      userAgent,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		observer:       cfg.Observer,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchBootstrap(ctx context.Context) (domain.Bootstrap, error) {
	var doc bootstrapDocument
	if err := c.doJSON(ctx, "bootstrap", "/bootstrap-static/", &doc); err != nil {
		return domain.Bootstrap{}, fmt.Errorf("fetch bootstrap: %w", err)
	}
	return doc.toDomain(), nil
}

func (c *Client) FetchEntry(ctx context.Context, teamID int64) (domain.Entry, error) {
	var doc entryDocument
	if err := c.doJSON(ctx, "entry", fmt.Sprintf("/entry/%d/", teamID), &doc); err != nil {
		return domain.Entry{}, fmt.Errorf("fetch entry team_id=%d: %w", teamID, err)
	}
	return doc.toDomain(), nil
}

func (c *Client) FetchPicks(ctx context.Context, teamID int64, eventID int) ([]domain.Pick, error) {
	var doc picksDocument
	path := fmt.Sprintf("/entry/%d/event/%d/picks/", teamID, eventID)
	if err := c.doJSON(ctx, "picks", path, &doc); err != nil {
		return nil, fmt.Errorf("fetch picks team_id=%d event=%d: %w", teamID, eventID, err)
	}
	return doc.toDomain(), nil
}

func (c *Client) FetchHistory(ctx context.Context, teamID int64) (domain.History, error) {
	var doc historyDocument
	if err := c.doJSON(ctx, "history", fmt.Sprintf("/entry/%d/history/", teamID), &doc); err != nil {
		return domain.History{}, fmt.Errorf("fetch history team_id=%d: %w", teamID, err)
	}
	return doc.toDomain(), nil
}

func (c *Client) FetchFixtures(ctx context.Context) ([]domain.Fixture, error) {
	var items []fixtureItem
	if err := c.doJSON(ctx, "fixtures", "/fixtures/", &items); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	return fixturesToDomain(items), nil
}

func (c *Client) doJSON(ctx context.Context, document, path string, target any) error {
	started := time.Now()
	fullURL := c.baseURL + path
	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		if !c.circuitEnabled {
			return c.executeRequest(ctx, fullURL)
		}
		var body []byte
		reqErr := c.breaker.Execute(func() error {
			var execErr error
			body, execErr = c.executeRequest(ctx, fullURL)
			return execErr
		}, isCircuitFailure)
		return body, reqErr
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "document", document, "state", c.breaker.State())
		c.observe(document, OutcomeRejected, started)
		return wrapUnavailable(err)
	}
	if err != nil {
		c.observe(document, OutcomeFailure, started)
		return wrapUnavailable(err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		c.observe(document, OutcomeFailure, started)
		return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, crerr.Wrapf(err, "decode %s payload", document))
	}

	c.observe(document, OutcomeSuccess, started)
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFPLTransient, err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFPLTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: provider status=%d", usecase.ErrNotFound, resp.StatusCode)
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFPLTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// readBody copies at most maxResponseBytes through a pooled buffer.
func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func (c *Client) observe(document, outcome string, started time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveFetch(document, outcome, time.Since(started))
}

func wrapUnavailable(err error) error {
	if errors.Is(err, usecase.ErrDependencyUnavailable) {
		return err
	}
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: fpl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, errFPLTransient) || errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 256 {
		return text
	}
	return text[:256] + "..."
}
