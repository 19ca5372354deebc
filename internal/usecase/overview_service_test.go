package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/infrastructure/repository/memory"
	"github.com/hieudt/matchday/internal/platform/logging"
)

func confirmedFixtureKickoff() time.Time {
	return time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC)
}

func newOverviewFixture(listFn func(ctx context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error)) *OverviewService {
	gateway := &stubMatchGateway{listFn: listFn}
	feed := NewFeedService(gateway, memory.NewMatchCacheRepository(), logging.NewNop())
	return NewOverviewService(feed, logging.NewNop())
}

func TestOverviewService_Get_BothBuckets(t *testing.T) {
	t.Parallel()

	svc := newOverviewFixture(func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
		if q.Statuses[0] == match.StatusConfirmed {
			kickoff := confirmedFixtureKickoff()
			return []match.Match{{
				ID:      "m-up",
				TeamA:   match.TeamSummary{ID: "team-a"},
				TeamB:   match.TeamSummary{ID: "team-b"},
				Status:  match.StatusConfirmed,
				StartAt: &kickoff,
				Venue:   "Sân Gò Vấp",
			}}, singlePage(1), nil
		}
		return []match.Match{requestedMatch("m-pen", "team-a")}, singlePage(1), nil
	})

	overview, err := svc.Get(t.Context(), "team-a", false)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if overview.Partial {
		t.Fatalf("expected complete overview")
	}
	if len(overview.Pending.Items) != 1 || overview.Pending.Items[0].ID != "m-pen" {
		t.Fatalf("unexpected pending leg: %+v", overview.Pending.Items)
	}
	if len(overview.Upcoming.Items) != 1 || overview.Upcoming.Items[0].ID != "m-up" {
		t.Fatalf("unexpected upcoming leg: %+v", overview.Upcoming.Items)
	}
}

func TestOverviewService_Get_OneLegFailingIsPartial(t *testing.T) {
	t.Parallel()

	svc := newOverviewFixture(func(_ context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error) {
		if q.Statuses[0] == match.StatusConfirmed {
			return nil, match.Pagination{}, errors.New("upcoming unavailable")
		}
		return []match.Match{requestedMatch("m-pen", "team-a")}, singlePage(1), nil
	})

	overview, err := svc.Get(t.Context(), "team-a", false)
	if !errors.Is(err, ErrPartialFetch) {
		t.Fatalf("expected ErrPartialFetch, got %v", err)
	}
	if !overview.Partial {
		t.Fatalf("expected Partial=true")
	}
	if len(overview.Pending.Items) != 1 {
		t.Fatalf("successful leg must survive, got %d items", len(overview.Pending.Items))
	}
}

func TestOverviewService_Get_BothLegsFailing(t *testing.T) {
	t.Parallel()

	svc := newOverviewFixture(func(context.Context, ListMatchesQuery) ([]match.Match, match.Pagination, error) {
		return nil, match.Pagination{}, errors.New("upstream down")
	})

	_, err := svc.Get(t.Context(), "team-a", false)
	if err == nil {
		t.Fatalf("expected error when both legs fail")
	}
	if errors.Is(err, ErrPartialFetch) {
		t.Fatalf("a total failure must not be reported as partial")
	}
}
