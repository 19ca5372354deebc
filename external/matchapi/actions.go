package matchapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/usecase"
)

func (c *Client) Accept(ctx context.Context, matchID, teamID string) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/accept", teamID, map[string]any{
		"teamId": teamID,
	})
}

func (c *Client) Decline(ctx context.Context, matchID, teamID string) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/decline", teamID, map[string]any{
		"teamId": teamID,
	})
}

func (c *Client) SendRequest(ctx context.Context, matchID, teamID string, terms usecase.RequestTerms) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/request", teamID, requestTermsPayload(teamID, terms))
}

// UpdateRequest amends a previously sent request in place.
func (c *Client) UpdateRequest(ctx context.Context, matchID, teamID string, terms usecase.RequestTerms) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPut, "/matches/"+url.PathEscape(matchID)+"/request", teamID, requestTermsPayload(teamID, terms))
}

func (c *Client) Confirm(ctx context.Context, matchID, teamID string, confirmation usecase.Confirmation) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/confirm", teamID, map[string]any{
		"teamId":      teamID,
		"date":        confirmation.Date,
		"time":        confirmation.Time,
		"stadiumName": confirmation.StadiumName,
		"mapUrl":      confirmation.MapURL,
	})
}

func (c *Client) Finish(ctx context.Context, matchID, teamID string, result usecase.Result) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/finish", teamID, map[string]any{
		"teamId":     teamID,
		"scoreTeamA": result.ScoreTeamA,
		"scoreTeamB": result.ScoreTeamB,
		"notes":      result.Notes,
	})
}

func (c *Client) Cancel(ctx context.Context, matchID, teamID, reason string) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/cancel", teamID, map[string]any{
		"teamId": teamID,
		"reason": reason,
	})
}

func (c *Client) Rematch(ctx context.Context, matchID, teamID string, terms usecase.RequestTerms) (match.Match, error) {
	return c.mutateMatch(ctx, http.MethodPost, "/matches/"+url.PathEscape(matchID)+"/rematch", teamID, requestTermsPayload(teamID, terms))
}

func requestTermsPayload(teamID string, terms usecase.RequestTerms) map[string]any {
	return map[string]any{
		"teamId":        teamID,
		"proposedDate":  terms.ProposedDate,
		"proposedTime":  terms.ProposedTime,
		"proposedPitch": terms.ProposedPitch,
		"notes":         terms.Notes,
	}
}

// mutateMatch sends one lifecycle mutation. Mutations are never retried
// and never deduplicated: the caller owns idempotency via request IDs.
func (c *Client) mutateMatch(ctx context.Context, method, path, viewerTeamID string, payload map[string]any) (match.Match, error) {
	var envelope matchEnvelope
	if err := c.sendJSON(ctx, method, path, payload, &envelope); err != nil {
		return match.Match{}, err
	}
	if !envelope.Success || envelope.Data == nil {
		return match.Match{}, crerr.New(messageOrDefault(envelope.Error))
	}

	transformed, err := transformMatch(*envelope.Data, viewerTeamID, c.timezone)
	if err != nil {
		return match.Match{}, fmt.Errorf("transform match %s: %w", envelope.Data.ID, err)
	}
	return transformed, nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "match api circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request payload: %w", err)
	}

	fullURL := c.baseURL + path
	if c.apiKey != "" {
		fullURL += "?api_key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID, idErr := c.ids.NewID(); idErr == nil {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if c.circuitEnabled {
		if err != nil {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return fmt.Errorf("send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	// Non-2xx responses still carry the envelope; let the caller surface
	// the server's message instead of a bare status code when possible.
	if decodeErr := sonic.Unmarshal(raw, target); decodeErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("match api status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		}
		return fmt.Errorf("decode match api payload: %w", decodeErr)
	}

	return nil
}
