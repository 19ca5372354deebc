package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/domain/team"
	"github.com/hieudt/matchday/internal/infrastructure/repository/memory"
	"github.com/hieudt/matchday/internal/usecase"
)

type stubGateway struct {
	listCalls atomic.Int32
	matches   []match.Match
	updated   match.Match
	err       error
}

func (g *stubGateway) ListMatches(_ context.Context, q usecase.ListMatchesQuery) ([]match.Match, match.Pagination, error) {
	g.listCalls.Add(1)
	if g.err != nil {
		return nil, match.Pagination{}, g.err
	}
	return g.matches, match.Pagination{Page: q.Page, Limit: q.Limit, Total: len(g.matches), TotalPages: 1}, nil
}

func (g *stubGateway) Accept(_ context.Context, _, _ string) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) Decline(_ context.Context, _, _ string) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) SendRequest(_ context.Context, _, _ string, _ usecase.RequestTerms) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) UpdateRequest(_ context.Context, _, _ string, _ usecase.RequestTerms) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) Confirm(_ context.Context, _, _ string, _ usecase.Confirmation) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) Finish(_ context.Context, _, _ string, _ usecase.Result) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) Cancel(_ context.Context, _, _, _ string) (match.Match, error) {
	return g.updated, g.err
}

func (g *stubGateway) Rematch(_ context.Context, _, _ string, _ usecase.RequestTerms) (match.Match, error) {
	return g.updated, g.err
}

func pendingMatch(id string) match.Match {
	return match.Match{
		ID:          id,
		TeamA:       match.TeamSummary{ID: "team-a", Name: "FC Alpha"},
		TeamB:       match.TeamSummary{ID: "team-b", Name: "FC Beta"},
		Venue:       match.VenueTBD,
		Status:      match.StatusRequested,
		RequestedBy: "team-b",
		Type:        match.TypeReceived,
	}
}

func newTestRouter(t *testing.T, gateway *stubGateway) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := memory.NewMatchCacheRepository()
	feed := usecase.NewFeedService(gateway, cache, nil)
	actions := usecase.NewActionService(gateway, cache, nil, nil)
	overview := usecase.NewOverviewService(feed, nil)
	selection := usecase.NewSelectionService(memory.NewSelectionRepository())

	handler := NewHandler(feed, actions, overview, nil, selection, 2*time.Hour, logger)
	verifier := stubVerifier{principal: team.Principal{UserID: "user-1", TeamID: "team-a"}}
	return NewRouter(handler, verifier, logger, nil)
}

func TestRouterGetBucket_ReturnsSnapshot(t *testing.T) {
	gateway := &stubGateway{matches: []match.Match{pendingMatch("m-1")}}
	router := newTestRouter(t, gateway)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/pending", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Bucket string `json:"bucket"`
			Items  []struct {
				ID       string `json:"id"`
				Stage    string `json:"stage"`
				Opponent struct {
					ID string `json:"id"`
				} `json:"opponent"`
			} `json:"items"`
			Fetched bool `json:"fetched"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Data.Bucket != "pending" || !body.Data.Fetched {
		t.Fatalf("unexpected snapshot: %+v", body.Data)
	}
	if len(body.Data.Items) != 1 || body.Data.Items[0].ID != "m-1" {
		t.Fatalf("unexpected items: %+v", body.Data.Items)
	}
	if body.Data.Items[0].Stage != "pending" {
		t.Fatalf("unexpected stage: %s", body.Data.Items[0].Stage)
	}
	if body.Data.Items[0].Opponent.ID != "team-b" {
		t.Fatalf("unexpected opponent: %s", body.Data.Items[0].Opponent.ID)
	}
}

func TestRouterGetBucket_UnknownBucket(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/archive", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouterGetBucket_RequiresAuth(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouterAcceptMatch_RequiresCachedReceivedRequest(t *testing.T) {
	accepted := pendingMatch("m-1")
	accepted.Status = match.StatusAccepted
	accepted.Type = match.TypeAccepted
	gateway := &stubGateway{matches: []match.Match{pendingMatch("m-1")}, updated: accepted}
	router := newTestRouter(t, gateway)

	// Populate the pending bucket first; accept preconditions read from it.
	warm := httptest.NewRequest(http.MethodGet, "/v1/matches/pending", nil)
	warm.Header.Set("Authorization", "Bearer token-abc")
	router.ServeHTTP(httptest.NewRecorder(), warm)

	req := httptest.NewRequest(http.MethodPost, "/v1/matches/m-1/accept", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Status string `json:"status"`
			Type   string `json:"type"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Data.Status != "ACCEPTED" {
		t.Fatalf("unexpected status: %s", body.Data.Status)
	}
}

func TestRouterAcceptMatch_UncachedMatchIsConflict(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	req := httptest.NewRequest(http.MethodPost, "/v1/matches/m-404/accept", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound && rec.Code != http.StatusConflict {
		t.Fatalf("expected 404 or 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouterConfirmMatch_RejectsBadDate(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	payload := strings.NewReader(`{"date":"05/09/2026","time":"18:30","stadium_name":"Sân Thống Nhất"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/matches/m-1/confirm", payload)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouterSelectionLifecycle(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	put := httptest.NewRequest(http.MethodPut, "/v1/selection", strings.NewReader(`{"match_id":"m-1"}`))
	put.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, put)
	if rec.Code != http.StatusOK {
		t.Fatalf("put selection: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/v1/selection", nil)
	get.Header.Set("Authorization", "Bearer token-abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, get)
	if rec.Code != http.StatusOK {
		t.Fatalf("get selection: expected 200, got %d", rec.Code)
	}

	del := httptest.NewRequest(http.MethodDelete, "/v1/selection", nil)
	del.Header.Set("Authorization", "Bearer token-abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, del)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete selection: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	get = httptest.NewRequest(http.MethodGet, "/v1/selection", nil)
	get.Header.Set("Authorization", "Bearer token-abc")
	router.ServeHTTP(rec, get)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cleared selection: expected 404, got %d", rec.Code)
	}
}
