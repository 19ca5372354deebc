package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/platform/logging"
)

// Overview is the home-screen payload: pending invitations and upcoming
// confirmed matches, fetched concurrently.
type Overview struct {
	Pending  BucketSnapshot
	Upcoming BucketSnapshot
	Partial  bool
}

// OverviewService fans out the two independent bucket fetches. One leg
// failing keeps the successful half (Partial=true, ErrPartialFetch);
// both failing is a blocking error.
type OverviewService struct {
	feed   *FeedService
	logger *logging.Logger
}

func NewOverviewService(feed *FeedService, logger *logging.Logger) *OverviewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &OverviewService{feed: feed, logger: logger}
}

func (s *OverviewService) Get(ctx context.Context, teamID string, forceRefresh bool) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Get")
	defer span.End()

	var (
		pending     BucketSnapshot
		upcoming    BucketSnapshot
		pendingErr  error
		upcomingErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		pending, pendingErr = s.feed.FetchBucket(ctx, teamID, match.BucketPending, 1, forceRefresh)
	})
	wg.Go(func() {
		upcoming, upcomingErr = s.feed.FetchBucket(ctx, teamID, match.BucketUpcoming, 1, forceRefresh)
	})
	wg.Wait()

	switch {
	case pendingErr != nil && upcomingErr != nil:
		return Overview{}, fmt.Errorf("fetch overview: pending: %v; upcoming: %w", pendingErr, upcomingErr)
	case pendingErr != nil:
		s.logger.WarnContext(ctx, "overview pending fetch failed", "team_id", teamID, "error", pendingErr)
		return Overview{Pending: pending, Upcoming: upcoming, Partial: true},
			fmt.Errorf("%w: pending: %v", ErrPartialFetch, pendingErr)
	case upcomingErr != nil:
		s.logger.WarnContext(ctx, "overview upcoming fetch failed", "team_id", teamID, "error", upcomingErr)
		return Overview{Pending: pending, Upcoming: upcoming, Partial: true},
			fmt.Errorf("%w: upcoming: %v", ErrPartialFetch, upcomingErr)
	}

	return Overview{Pending: pending, Upcoming: upcoming}, nil
}
