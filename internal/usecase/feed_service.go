package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/platform/logging"
	"github.com/hieudt/matchday/internal/platform/resilience"
)

const defaultBucketLimit = 10

// MatchView is a cached match plus its stage, recomputed at read time
// against a live clock.
type MatchView struct {
	match.Match
	Stage match.Stage
}

// BucketSnapshot is what consumers read: the cached items with derived
// stages, pagination, and the bucket's loading/error condition.
type BucketSnapshot struct {
	Bucket      match.Bucket
	Items       []MatchView
	Pagination  match.Pagination
	HasMore     bool
	Fetched     bool
	LastError   string
	Loading     bool
	LoadingMore bool
}

// FeedService owns the three bucket caches and the fetch guard. Guarding
// uses an in-flight map keyed (team, bucket, page): concurrent callers of
// the same page await one upstream call instead of racing past a flag.
type FeedService struct {
	gateway  MatchGateway
	cache    match.CacheRepository
	flight   resilience.SingleFlight
	logger   *logging.Logger
	duration time.Duration
	limit    int
	now      func() time.Time
}

type FeedOption func(*FeedService)

// WithMatchDuration overrides the assumed match length used for stage
// derivation.
func WithMatchDuration(d time.Duration) FeedOption {
	return func(s *FeedService) {
		if d > 0 {
			s.duration = d
		}
	}
}

func WithBucketLimit(limit int) FeedOption {
	return func(s *FeedService) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

func WithClock(now func() time.Time) FeedOption {
	return func(s *FeedService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewFeedService(gateway MatchGateway, cache match.CacheRepository, logger *logging.Logger, opts ...FeedOption) *FeedService {
	if logger == nil {
		logger = logging.Default()
	}

	s := &FeedService{
		gateway:  gateway,
		cache:    cache,
		logger:   logger,
		duration: match.DefaultDuration,
		limit:    defaultBucketLimit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchBucket loads one page of a bucket. Page 1 without forceRefresh is
// served from cache once the bucket has been fetched for the team and
// holds at least one item; there is no TTL, only forceRefresh bypasses.
// Page 1 or forceRefresh replaces the bucket's items, page > 1 appends.
// A failed fetch records the error on the bucket and propagates it
// without touching cached items.
func (s *FeedService) FetchBucket(ctx context.Context, teamID string, bucket match.Bucket, page int, forceRefresh bool) (BucketSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.FetchBucket")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return BucketSnapshot{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if len(bucket.Statuses()) == 0 {
		return BucketSnapshot{}, fmt.Errorf("%w: unknown bucket %q", ErrInvalidInput, bucket)
	}
	if page < 1 {
		return BucketSnapshot{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}

	state, err := s.cache.State(ctx, teamID, bucket)
	if err != nil {
		return BucketSnapshot{}, fmt.Errorf("read bucket cache: %w", err)
	}
	if page == 1 && !forceRefresh && state.Fetched && len(state.Items) > 0 {
		return s.snapshot(teamID, bucket, state), nil
	}

	key := feedFlightKey(teamID, bucket, page)
	_, err, shared := s.flight.Do(key, func() (any, error) {
		items, pagination, fetchErr := s.gateway.ListMatches(ctx, ListMatchesQuery{
			Statuses: bucket.Statuses(),
			TeamID:   teamID,
			Page:     page,
			Limit:    s.limit,
		})
		if fetchErr != nil {
			if cacheErr := s.cache.SetError(ctx, teamID, bucket, fetchErr.Error()); cacheErr != nil {
				s.logger.WarnContext(ctx, "record bucket fetch error failed", "bucket", bucket, "error", cacheErr)
			}
			return nil, fetchErr
		}

		if page == 1 || forceRefresh {
			return nil, s.cache.Replace(ctx, teamID, bucket, items, pagination)
		}
		return nil, s.cache.Append(ctx, teamID, bucket, items, pagination)
	})
	if shared {
		s.logger.DebugContext(ctx, "bucket fetch deduplicated", "team_id", teamID, "bucket", bucket, "page", page)
	}

	state, stateErr := s.cache.State(ctx, teamID, bucket)
	if stateErr != nil {
		return BucketSnapshot{}, fmt.Errorf("read bucket cache: %w", stateErr)
	}
	snap := s.snapshot(teamID, bucket, state)
	if err != nil {
		return snap, fmt.Errorf("fetch %s bucket: %w", bucket, err)
	}

	return snap, nil
}

// Snapshot reads the bucket without triggering a fetch.
func (s *FeedService) Snapshot(ctx context.Context, teamID string, bucket match.Bucket) (BucketSnapshot, error) {
	state, err := s.cache.State(ctx, teamID, bucket)
	if err != nil {
		return BucketSnapshot{}, fmt.Errorf("read bucket cache: %w", err)
	}
	return s.snapshot(teamID, bucket, state), nil
}

// SwitchTeam drops every cached bucket. Server-side filters are
// team-scoped, so stale cross-team data must never be displayed.
func (s *FeedService) SwitchTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.SwitchTeam")
	defer span.End()

	if strings.TrimSpace(teamID) == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.cache.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear bucket caches: %w", err)
	}

	s.logger.InfoContext(ctx, "bucket caches invalidated", "team_id", teamID)
	return nil
}

// WarmUp prefetches the first page of every bucket for the team through
// a bounded worker pool. Individual bucket failures are logged and
// reported together; a warm-up failure is not fatal to the caller's flow.
func (s *FeedService) WarmUp(ctx context.Context, teamID string, workers int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.WarmUp")
	defer span.End()

	if workers < 1 {
		workers = len(match.Buckets())
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create warm-up pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []string

	for _, bucket := range match.Buckets() {
		bucket := bucket
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if _, fetchErr := s.FetchBucket(ctx, teamID, bucket, 1, false); fetchErr != nil {
				s.logger.WarnContext(ctx, "bucket warm-up failed", "team_id", teamID, "bucket", bucket, "error", fetchErr)
				mu.Lock()
				failed = append(failed, string(bucket))
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			return fmt.Errorf("submit warm-up task: %w", submitErr)
		}
	}
	wg.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("warm up buckets %s: %w", strings.Join(failed, ","), ErrDependencyUnavailable)
	}
	return nil
}

func (s *FeedService) snapshot(teamID string, bucket match.Bucket, state match.BucketState) BucketSnapshot {
	now := s.now()
	items := make([]MatchView, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, MatchView{
			Match: item,
			Stage: item.StageAt(now, s.duration),
		})
	}

	nextPage := state.Pagination.Page + 1
	return BucketSnapshot{
		Bucket:      bucket,
		Items:       items,
		Pagination:  state.Pagination,
		HasMore:     state.Pagination.HasMore(),
		Fetched:     state.Fetched,
		LastError:   state.LastError,
		Loading:     s.flight.InFlight(feedFlightKey(teamID, bucket, 1)),
		LoadingMore: s.flight.InFlight(feedFlightKey(teamID, bucket, nextPage)),
	}
}

func feedFlightKey(teamID string, bucket match.Bucket, page int) string {
	return teamID + "/" + string(bucket) + "/" + strconv.Itoa(page)
}
