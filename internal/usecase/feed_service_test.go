package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hieudt/matchday/internal/domain/discovery"
	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/domain/team"
	"github.com/hieudt/matchday/internal/infrastructure/repository/memory"
	"github.com/hieudt/matchday/internal/platform/logging"
)

var errUnexpectedCall = errors.New("unexpected gateway call")

// stubMatchGateway fails every call unless the matching fn is set.
type stubMatchGateway struct {
	listFn    func(ctx context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error)
	listCalls atomic.Int32
}

func (g *stubMatchGateway) ListMatches(ctx context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
	g.listCalls.Add(1)
	if g.listFn == nil {
		return nil, match.Pagination{}, errUnexpectedCall
	}
	return g.listFn(ctx, q)
}

func (g *stubMatchGateway) Accept(context.Context, string, string) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) Decline(context.Context, string, string) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) SendRequest(context.Context, string, string, RequestTerms) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) UpdateRequest(context.Context, string, string, RequestTerms) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) Confirm(context.Context, string, string, Confirmation) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) Finish(context.Context, string, string, Result) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) Cancel(context.Context, string, string, string) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

func (g *stubMatchGateway) Rematch(context.Context, string, string, RequestTerms) (match.Match, error) {
	return match.Match{}, errUnexpectedCall
}

// stubDiscoveryGateway mirrors stubMatchGateway for the discovery side.
type stubDiscoveryGateway struct {
	listFn       func(ctx context.Context, teamID string, page, limit int) ([]discovery.Candidate, match.Pagination, error)
	likeFn       func(ctx context.Context, teamID, candidateTeamID string) (*match.Match, error)
	skipFn       func(ctx context.Context, teamID, candidateTeamID string) error
	profileFn    func(ctx context.Context, teamID string) (team.Profile, error)
	listCalls    atomic.Int32
	profileCalls atomic.Int32
}

func (g *stubDiscoveryGateway) ListCandidates(ctx context.Context, teamID string, page, limit int) ([]discovery.Candidate, match.Pagination, error) {
	g.listCalls.Add(1)
	if g.listFn == nil {
		return nil, match.Pagination{}, errUnexpectedCall
	}
	return g.listFn(ctx, teamID, page, limit)
}

func (g *stubDiscoveryGateway) Like(ctx context.Context, teamID, candidateTeamID string) (*match.Match, error) {
	if g.likeFn == nil {
		return nil, errUnexpectedCall
	}
	return g.likeFn(ctx, teamID, candidateTeamID)
}

func (g *stubDiscoveryGateway) Skip(ctx context.Context, teamID, candidateTeamID string) error {
	if g.skipFn == nil {
		return errUnexpectedCall
	}
	return g.skipFn(ctx, teamID, candidateTeamID)
}

func (g *stubDiscoveryGateway) TeamProfile(ctx context.Context, teamID string) (team.Profile, error) {
	g.profileCalls.Add(1)
	if g.profileFn == nil {
		return team.Profile{}, errUnexpectedCall
	}
	return g.profileFn(ctx, teamID)
}

func requestedMatch(id, viewerTeamID string) match.Match {
	return match.Match{
		ID:          id,
		TeamA:       match.TeamSummary{ID: viewerTeamID, Name: "FC Thủ Đức"},
		TeamB:       match.TeamSummary{ID: "team-b", Name: "Sài Gòn United"},
		Status:      match.StatusRequested,
		RequestedBy: "team-b",
		Type:        match.TypeReceived,
		Venue:       match.VenueTBD,
	}
}

func singlePage(items int) match.Pagination {
	return match.Pagination{Page: 1, Limit: 10, Total: items, TotalPages: 1}
}

func TestFeedService_FetchBucket_ServesCachedFirstPage(t *testing.T) {
	t.Parallel()

	gateway := &stubMatchGateway{
		listFn: func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
			return []match.Match{requestedMatch("m-1", "team-a")}, singlePage(1), nil
		},
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	first, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, false)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if !first.Fetched || len(first.Items) != 1 {
		t.Fatalf("unexpected first snapshot: fetched=%t items=%d", first.Fetched, len(first.Items))
	}

	second, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, false)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if len(second.Items) != 1 {
		t.Fatalf("unexpected second snapshot items: %d", len(second.Items))
	}
	if calls := gateway.listCalls.Load(); calls != 1 {
		t.Fatalf("expected cache hit without refetch, gateway calls=%d", calls)
	}
}

func TestFeedService_FetchBucket_ForceRefreshReplaces(t *testing.T) {
	t.Parallel()

	var serveSecond atomic.Bool
	gateway := &stubMatchGateway{}
	gateway.listFn = func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
		if serveSecond.Load() {
			return []match.Match{requestedMatch("m-2", "team-a")}, singlePage(1), nil
		}
		return []match.Match{requestedMatch("m-1", "team-a")}, singlePage(1), nil
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	if _, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, false); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	serveSecond.Store(true)
	snap, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, true)
	if err != nil {
		t.Fatalf("force refresh: %v", err)
	}
	if calls := gateway.listCalls.Load(); calls != 2 {
		t.Fatalf("expected refetch on forceRefresh, gateway calls=%d", calls)
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != "m-2" {
		t.Fatalf("expected replaced items, got %+v", snap.Items)
	}
}

func TestFeedService_FetchBucket_PageTwoAppends(t *testing.T) {
	t.Parallel()

	gateway := &stubMatchGateway{
		listFn: func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
			pagination := match.Pagination{Page: q.Page, Limit: 2, Total: 3, TotalPages: 2}
			if q.Page == 1 {
				return []match.Match{requestedMatch("m-1", "team-a"), requestedMatch("m-2", "team-a")}, pagination, nil
			}
			return []match.Match{requestedMatch("m-3", "team-a")}, pagination, nil
		},
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	first, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, false)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if !first.HasMore {
		t.Fatalf("expected HasMore after page 1 of 2")
	}

	second, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 2, false)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(second.Items) != 3 {
		t.Fatalf("expected appended items, got %d", len(second.Items))
	}
	if second.HasMore {
		t.Fatalf("expected HasMore=false after last page")
	}
}

func TestFeedService_FetchBucket_ErrorKeepsCachedItems(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	gateway := &stubMatchGateway{}
	gateway.listFn = func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
		if fail.Load() {
			return nil, match.Pagination{}, errors.New("upstream down")
		}
		return []match.Match{requestedMatch("m-1", "team-a")}, singlePage(1), nil
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	if _, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, false); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}

	fail.Store(true)
	snap, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, true)
	if err == nil {
		t.Fatalf("expected refresh error")
	}
	if len(snap.Items) != 1 {
		t.Fatalf("failed refresh must keep cached items, got %d", len(snap.Items))
	}
	if snap.LastError == "" {
		t.Fatalf("expected LastError to be recorded")
	}
	if !snap.Fetched {
		t.Fatalf("bucket must stay fetched after a failed refresh")
	}
}

func TestFeedService_FetchBucket_Validation(t *testing.T) {
	t.Parallel()

	svc := NewFeedService(&stubMatchGateway{}, memory.NewMatchCacheRepository(), logging.NewNop())

	if _, err := svc.FetchBucket(t.Context(), "  ", match.BucketPending, 1, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty team, got %v", err)
	}
	if _, err := svc.FetchBucket(t.Context(), "team-a", match.Bucket("archive"), 1, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown bucket, got %v", err)
	}
	if _, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 0, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for page 0, got %v", err)
	}
}

func TestFeedService_Snapshot_DerivesStagesAgainstClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC)
	kickoff := now.Add(-time.Hour)
	confirmed := match.Match{
		ID:      "m-live",
		TeamA:   match.TeamSummary{ID: "team-a"},
		TeamB:   match.TeamSummary{ID: "team-b"},
		Status:  match.StatusConfirmed,
		StartAt: &kickoff,
		Venue:   "Sân Thống Nhất",
	}

	gateway := &stubMatchGateway{
		listFn: func(context.Context, ListMatchesQuery) ([]match.Match, match.Pagination, error) {
			return []match.Match{confirmed}, singlePage(1), nil
		},
	}
	svc := NewFeedService(
		gateway,
		memory.NewMatchCacheRepository(),
		logging.NewNop(),
		withFixedClock(now),
		WithMatchDuration(2*time.Hour),
	)

	snap, err := svc.FetchBucket(t.Context(), "team-a", match.BucketUpcoming, 1, false)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if snap.Items[0].Stage != match.StageLive {
		t.Fatalf("expected live stage one hour into the match, got %s", snap.Items[0].Stage)
	}
}

// withFixedClock pins the service clock for deterministic stages.
func withFixedClock(now time.Time) FeedOption {
	return WithClock(func() time.Time { return now })
}

func TestFeedService_SwitchTeam_ClearsEveryBucket(t *testing.T) {
	t.Parallel()

	gateway := &stubMatchGateway{
		listFn: func(context.Context, ListMatchesQuery) ([]match.Match, match.Pagination, error) {
			return []match.Match{requestedMatch("m-1", "team-a")}, singlePage(1), nil
		},
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	if _, err := svc.FetchBucket(t.Context(), "team-a", match.BucketPending, 1, false); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}
	if err := svc.SwitchTeam(t.Context(), "team-b"); err != nil {
		t.Fatalf("switch team: %v", err)
	}

	if _, err := svc.FetchBucket(t.Context(), "team-b", match.BucketPending, 1, false); err != nil {
		t.Fatalf("fetch after switch: %v", err)
	}
	if calls := gateway.listCalls.Load(); calls != 2 {
		t.Fatalf("expected refetch after switch, gateway calls=%d", calls)
	}
}

func TestFeedService_WarmUp_PrefetchesAllBuckets(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[match.Status]bool{}
	gateway := &stubMatchGateway{
		listFn: func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
			mu.Lock()
			seen[q.Statuses[0]] = true
			mu.Unlock()
			return []match.Match{requestedMatch("m-"+string(q.Statuses[0]), "team-a")}, singlePage(1), nil
		},
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	if err := svc.WarmUp(t.Context(), "team-a", 2); err != nil {
		t.Fatalf("warm up: %v", err)
	}
	if calls := gateway.listCalls.Load(); calls != 3 {
		t.Fatalf("expected one fetch per bucket, gateway calls=%d", calls)
	}
	mu.Lock()
	defer mu.Unlock()
	for _, status := range []match.Status{match.StatusMatched, match.StatusConfirmed, match.StatusFinished} {
		if !seen[status] {
			t.Fatalf("bucket leading with status %s was not warmed", status)
		}
	}
}

func TestFeedService_WarmUp_ReportsFailedBuckets(t *testing.T) {
	t.Parallel()

	gateway := &stubMatchGateway{
		listFn: func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
			if q.Statuses[0] == match.StatusFinished {
				return nil, match.Pagination{}, errors.New("history unavailable")
			}
			return []match.Match{requestedMatch("m-1", "team-a")}, singlePage(1), nil
		},
	}
	svc := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())

	err := svc.WarmUp(t.Context(), "team-a", 3)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
