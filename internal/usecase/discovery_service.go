package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hieudt/matchday/internal/domain/discovery"
	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/domain/team"
	"github.com/hieudt/matchday/internal/platform/cache"
	"github.com/hieudt/matchday/internal/platform/logging"
	"github.com/hieudt/matchday/internal/platform/resilience"
)

const defaultDiscoveryLimit = 20

// FeedSnapshot is the readable discovery feed for one team.
type FeedSnapshot struct {
	Items      []discovery.Candidate
	Pagination match.Pagination
	HasMore    bool
	Fetched    bool
	LastError  string
	Loading    bool
}

// DiscoveryService drives the candidate-team feed with the same guarded
// fetch semantics as the match buckets: one in-flight call per
// (team, page), freshness by fetched flag, forceRefresh to bypass.
type DiscoveryService struct {
	gateway    DiscoveryGateway
	feedCache  discovery.CacheRepository
	matchCache match.CacheRepository
	profiles   *cache.Store
	flight     resilience.SingleFlight
	logger     *logging.Logger
	limit      int
}

func NewDiscoveryService(
	gateway DiscoveryGateway,
	feedCache discovery.CacheRepository,
	matchCache match.CacheRepository,
	profiles *cache.Store,
	logger *logging.Logger,
) *DiscoveryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DiscoveryService{
		gateway:    gateway,
		feedCache:  feedCache,
		matchCache: matchCache,
		profiles:   profiles,
		logger:     logger,
		limit:      defaultDiscoveryLimit,
	}
}

func (s *DiscoveryService) FetchFeed(ctx context.Context, teamID string, page int, forceRefresh bool) (FeedSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.FetchFeed")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return FeedSnapshot{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if page < 1 {
		return FeedSnapshot{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}

	state, err := s.feedCache.State(ctx, teamID)
	if err != nil {
		return FeedSnapshot{}, fmt.Errorf("read discovery cache: %w", err)
	}
	if page == 1 && !forceRefresh && state.Fetched && len(state.Items) > 0 {
		return s.snapshot(teamID, state), nil
	}

	key := discoveryFlightKey(teamID, page)
	var shared bool
	_, err, shared = s.flight.Do(key, func() (any, error) {
		items, pagination, fetchErr := s.gateway.ListCandidates(ctx, teamID, page, s.limit)
		if fetchErr != nil {
			if cacheErr := s.feedCache.SetError(ctx, teamID, fetchErr.Error()); cacheErr != nil {
				s.logger.WarnContext(ctx, "record discovery fetch error failed", "error", cacheErr)
			}
			return nil, fetchErr
		}

		if page == 1 || forceRefresh {
			return nil, s.feedCache.Replace(ctx, teamID, items, pagination)
		}
		return nil, s.feedCache.Append(ctx, teamID, items, pagination)
	})
	if shared {
		s.logger.DebugContext(ctx, "discovery fetch deduplicated", "team_id", teamID, "page", page)
	}

	state, stateErr := s.feedCache.State(ctx, teamID)
	if stateErr != nil {
		return FeedSnapshot{}, fmt.Errorf("read discovery cache: %w", stateErr)
	}
	snap := s.snapshot(teamID, state)
	if err != nil {
		return snap, fmt.Errorf("fetch discovery feed: %w", err)
	}

	return snap, nil
}

// Like records interest in a candidate. The candidate leaves the local
// feed; if the interest is mutual the upstream returns a fresh MATCHED
// record, which is pushed straight into the pending bucket.
func (s *DiscoveryService) Like(ctx context.Context, teamID, candidateTeamID string) (*match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.Like")
	defer span.End()

	if strings.TrimSpace(teamID) == "" || strings.TrimSpace(candidateTeamID) == "" {
		return nil, fmt.Errorf("%w: team id and candidate team id are required", ErrInvalidInput)
	}

	paired, err := s.gateway.Like(ctx, teamID, candidateTeamID)
	if err != nil {
		return nil, fmt.Errorf("like candidate: %w", err)
	}

	if err := s.feedCache.Remove(ctx, teamID, candidateTeamID); err != nil {
		return nil, fmt.Errorf("project like: %w", err)
	}
	if paired != nil {
		if err := s.matchCache.Upsert(ctx, teamID, match.BucketPending, *paired); err != nil {
			return nil, fmt.Errorf("project mutual match: %w", err)
		}
		s.logger.InfoContext(ctx, "mutual match created", "team_id", teamID, "candidate_team_id", candidateTeamID, "match_id", paired.ID)
	}

	return paired, nil
}

func (s *DiscoveryService) Skip(ctx context.Context, teamID, candidateTeamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.Skip")
	defer span.End()

	if strings.TrimSpace(teamID) == "" || strings.TrimSpace(candidateTeamID) == "" {
		return fmt.Errorf("%w: team id and candidate team id are required", ErrInvalidInput)
	}

	if err := s.gateway.Skip(ctx, teamID, candidateTeamID); err != nil {
		return fmt.Errorf("skip candidate: %w", err)
	}

	if err := s.feedCache.Remove(ctx, teamID, candidateTeamID); err != nil {
		return fmt.Errorf("project skip: %w", err)
	}

	return nil
}

// TeamProfile serves a candidate's full card, TTL-cached.
func (s *DiscoveryService) TeamProfile(ctx context.Context, teamID string) (team.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.TeamProfile")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Profile{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if s.profiles == nil {
		return s.gateway.TeamProfile(ctx, teamID)
	}

	value, err := s.profiles.GetOrLoad(ctx, "team-profile:"+teamID, func(ctx context.Context) (any, error) {
		return s.gateway.TeamProfile(ctx, teamID)
	})
	if err != nil {
		return team.Profile{}, fmt.Errorf("load team profile: %w", err)
	}

	profile, ok := value.(team.Profile)
	if !ok {
		return team.Profile{}, fmt.Errorf("unexpected cached profile type %T", value)
	}
	return profile, nil
}

func (s *DiscoveryService) snapshot(teamID string, state discovery.FeedState) FeedSnapshot {
	return FeedSnapshot{
		Items:      state.Items,
		Pagination: state.Pagination,
		HasMore:    state.Pagination.HasMore(),
		Fetched:    state.Fetched,
		LastError:  state.LastError,
		Loading:    s.flight.InFlight(discoveryFlightKey(teamID, 1)),
	}
}

func discoveryFlightKey(teamID string, page int) string {
	return teamID + "/discovery/" + strconv.Itoa(page)
}
