package matchapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/platform/id"
	"github.com/hieudt/matchday/internal/platform/logging"
	"github.com/hieudt/matchday/internal/platform/resilience"
	"github.com/hieudt/matchday/internal/usecase"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 4 << 20

	// Shown when the server fails without a usable message of its own.
	defaultErrorMessage = "Đã có lỗi xảy ra, vui lòng thử lại sau."
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errMatchAPITransient = crerr.New("match api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	TimeZone       *time.Location
	Logger         *logging.Logger
	IDs            id.Generator
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Remote Match API, the source of truth for match
// lifecycle state. List calls are deduplicated and retried; mutations
// are sent exactly once.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	timezone       *time.Location
	logger         *logging.Logger
	ids            id.Generator
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

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

	timezone := cfg.TimeZone
	if timezone == nil {
		timezone = time.UTC
	}

	ids := cfg.IDs
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		timezone:       timezone,
		logger:         logger,
		ids:            ids,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// ListMatches fetches one page of a bucket's canonical status filter,
// viewed from the calling team's side.
func (c *Client) ListMatches(ctx context.Context, q usecase.ListMatchesQuery) ([]match.Match, match.Pagination, error) {
	values := url.Values{}
	for _, status := range q.Statuses {
		values.Add("statuses[]", string(status))
	}
	values.Set("teamId", q.TeamID)
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))

	var envelope listMatchesEnvelope
	if err := c.getJSON(ctx, "/matches", values, &envelope); err != nil {
		return nil, match.Pagination{}, err
	}
	if !envelope.Success {
		return nil, match.Pagination{}, crerr.New(messageOrDefault(envelope.Error))
	}

	matches := make([]match.Match, 0, len(envelope.Data.Matches))
	for _, record := range envelope.Data.Matches {
		transformed, err := transformMatch(record, q.TeamID, c.timezone)
		if err != nil {
			return nil, match.Pagination{}, fmt.Errorf("transform match %s: %w", record.ID, err)
		}
		matches = append(matches, transformed)
	}

	return matches, envelope.Data.Pagination.toDomain(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, values url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "match api circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	if values == nil {
		values = url.Values{}
	}
	if c.apiKey != "" {
		values.Set("api_key", c.apiKey)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeGet(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errMatchAPITransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode match api payload: %w", err)
	}
	return nil
}

func (c *Client) executeGet(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errMatchAPITransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errMatchAPITransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: status=%d body=%s", errMatchAPITransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("match api status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
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
		lastErr = fmt.Errorf("match api request failed")
	}
	c.logger.WarnContext(ctx, "match api request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func redactAPIURL(fullURL string) string {
	return apiKeyParamRegex.ReplaceAllString(fullURL, "api_key=REDACTED")
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

func messageOrDefault(apiErr *apiError) string {
	if apiErr != nil && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return defaultErrorMessage
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
