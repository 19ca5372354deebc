package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/platform/logging"
)

// ActionService executes lifecycle mutations. Every action is a command:
// the gateway call runs first and the local cache projection is applied
// only after it succeeds, so a failed call never leaves the cache
// mutated and nothing needs rolling back. The next bucket fetch
// reconciles full state.
type ActionService struct {
	gateway   MatchGateway
	cache     match.CacheRepository
	publisher EventPublisher
	logger    *logging.Logger
}

func NewActionService(gateway MatchGateway, cache match.CacheRepository, publisher EventPublisher, logger *logging.Logger) *ActionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ActionService{
		gateway:   gateway,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Accept takes a received request. The record leaves pending and comes
// back as ACCEPTED/CONFIRMED on the next fetch.
func (s *ActionService) Accept(ctx context.Context, teamID, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Accept")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketPending)
	if err != nil {
		return match.Match{}, err
	}
	if cached.Status != match.StatusRequested || cached.Type != match.TypeReceived {
		return match.Match{}, fmt.Errorf("%w: only a received request can be accepted (status=%s type=%s)", ErrPrecondition, cached.Status, cached.Type)
	}

	updated, err := s.gateway.Accept(ctx, matchID, teamID)
	if err != nil {
		return match.Match{}, fmt.Errorf("accept match: %w", err)
	}

	if err := s.cache.Remove(ctx, teamID, matchID, match.BucketPending); err != nil {
		return match.Match{}, fmt.Errorf("project accept: %w", err)
	}
	s.publish(ctx, matchID, teamID, "match.accepted")

	return updated, nil
}

// Decline rejects a pairing or a received request.
func (s *ActionService) Decline(ctx context.Context, teamID, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Decline")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketPending)
	if err != nil {
		return match.Match{}, err
	}
	if cached.Status != match.StatusRequested && cached.Status != match.StatusMatched {
		return match.Match{}, fmt.Errorf("%w: cannot decline a %s match", ErrPrecondition, cached.Status)
	}

	updated, err := s.gateway.Decline(ctx, matchID, teamID)
	if err != nil {
		return match.Match{}, fmt.Errorf("decline match: %w", err)
	}

	if err := s.cache.Remove(ctx, teamID, matchID, match.BucketPending); err != nil {
		return match.Match{}, fmt.Errorf("project decline: %w", err)
	}
	s.publish(ctx, matchID, teamID, "match.declined")

	return updated, nil
}

// SendRequest turns a MATCHED pairing into a concrete request with
// proposed terms. The server-returned record replaces the pending item.
func (s *ActionService) SendRequest(ctx context.Context, teamID, matchID string, terms RequestTerms) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.SendRequest")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketPending)
	if err != nil {
		return match.Match{}, err
	}
	if cached.Status != match.StatusMatched {
		return match.Match{}, fmt.Errorf("%w: a request can only be sent on a MATCHED record, got %s", ErrPrecondition, cached.Status)
	}

	updated, err := s.gateway.SendRequest(ctx, matchID, teamID, terms)
	if err != nil {
		return match.Match{}, fmt.Errorf("send match request: %w", err)
	}

	if err := s.cache.Upsert(ctx, teamID, match.BucketPending, updated); err != nil {
		return match.Match{}, fmt.Errorf("project request: %w", err)
	}
	s.publish(ctx, matchID, teamID, "match.requested")

	return updated, nil
}

// UpdateRequest amends the terms of a request this team already sent.
func (s *ActionService) UpdateRequest(ctx context.Context, teamID, matchID string, terms RequestTerms) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.UpdateRequest")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketPending)
	if err != nil {
		return match.Match{}, err
	}
	if cached.Status != match.StatusRequested || cached.Type != match.TypeSent {
		return match.Match{}, fmt.Errorf("%w: only a sent request can be updated (status=%s type=%s)", ErrPrecondition, cached.Status, cached.Type)
	}

	updated, err := s.gateway.UpdateRequest(ctx, matchID, teamID, terms)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match request: %w", err)
	}

	if err := s.cache.Upsert(ctx, teamID, match.BucketPending, updated); err != nil {
		return match.Match{}, fmt.Errorf("project request update: %w", err)
	}

	return updated, nil
}

// Confirm fixes date/time/venue on an accepted match. No local
// projection: the record moves buckets on the next fetch.
func (s *ActionService) Confirm(ctx context.Context, teamID, matchID string, confirmation Confirmation) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Confirm")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketPending)
	if err != nil {
		return match.Match{}, err
	}
	if cached.Status != match.StatusAccepted {
		return match.Match{}, fmt.Errorf("%w: only an ACCEPTED match can be confirmed, got %s", ErrPrecondition, cached.Status)
	}

	updated, err := s.gateway.Confirm(ctx, matchID, teamID, confirmation)
	if err != nil {
		return match.Match{}, fmt.Errorf("confirm match: %w", err)
	}
	s.publish(ctx, matchID, teamID, "match.confirmed")

	return updated, nil
}

// Finish records the result of a confirmed match.
func (s *ActionService) Finish(ctx context.Context, teamID, matchID string, result Result) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Finish")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketUpcoming)
	if err != nil {
		return match.Match{}, err
	}
	if cached.Status != match.StatusConfirmed {
		return match.Match{}, fmt.Errorf("%w: only a CONFIRMED match can be finished, got %s", ErrPrecondition, cached.Status)
	}

	updated, err := s.gateway.Finish(ctx, matchID, teamID, result)
	if err != nil {
		return match.Match{}, fmt.Errorf("finish match: %w", err)
	}

	if err := s.cache.Remove(ctx, teamID, matchID, match.BucketUpcoming); err != nil {
		return match.Match{}, fmt.Errorf("project finish: %w", err)
	}
	s.publish(ctx, matchID, teamID, "match.finished")

	return updated, nil
}

// Cancel aborts any non-terminal match. The record is dropped from both
// pending and upcoming so it disappears immediately, regardless of which
// bucket currently holds it.
func (s *ActionService) Cancel(ctx context.Context, teamID, matchID, reason string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Cancel")
	defer span.End()

	cached, err := s.findCached(ctx, teamID, matchID, match.BucketPending, match.BucketUpcoming)
	if err != nil {
		return match.Match{}, err
	}
	if match.IsTerminal(cached.Status) {
		return match.Match{}, fmt.Errorf("%w: cannot cancel a %s match", ErrPrecondition, cached.Status)
	}

	updated, err := s.gateway.Cancel(ctx, matchID, teamID, reason)
	if err != nil {
		return match.Match{}, fmt.Errorf("cancel match: %w", err)
	}

	if err := s.cache.Remove(ctx, teamID, matchID, match.BucketPending, match.BucketUpcoming); err != nil {
		return match.Match{}, fmt.Errorf("project cancel: %w", err)
	}
	s.publish(ctx, matchID, teamID, "match.cancelled")

	return updated, nil
}

// Rematch spawns a brand-new MATCHED record from a terminal one; the
// original stays in history untouched.
func (s *ActionService) Rematch(ctx context.Context, teamID, matchID string, terms RequestTerms) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Rematch")
	defer span.End()

	cached, err := s.requireCached(ctx, teamID, matchID, match.BucketHistory)
	if err != nil {
		return match.Match{}, err
	}
	if !match.IsTerminal(cached.Status) {
		return match.Match{}, fmt.Errorf("%w: rematch requires a finished or cancelled match, got %s", ErrPrecondition, cached.Status)
	}

	created, err := s.gateway.Rematch(ctx, matchID, teamID, terms)
	if err != nil {
		return match.Match{}, fmt.Errorf("rematch: %w", err)
	}

	if err := s.cache.Upsert(ctx, teamID, match.BucketPending, created); err != nil {
		return match.Match{}, fmt.Errorf("project rematch: %w", err)
	}
	s.publish(ctx, created.ID, teamID, "match.rematched")

	return created, nil
}

func (s *ActionService) requireCached(ctx context.Context, teamID, matchID string, bucket match.Bucket) (match.Match, error) {
	return s.findCached(ctx, teamID, matchID, bucket)
}

func (s *ActionService) findCached(ctx context.Context, teamID, matchID string, buckets ...match.Bucket) (match.Match, error) {
	teamID = strings.TrimSpace(teamID)
	matchID = strings.TrimSpace(matchID)
	if teamID == "" || matchID == "" {
		return match.Match{}, fmt.Errorf("%w: team id and match id are required", ErrInvalidInput)
	}

	for _, bucket := range buckets {
		state, err := s.cache.State(ctx, teamID, bucket)
		if err != nil {
			return match.Match{}, fmt.Errorf("read %s cache: %w", bucket, err)
		}
		for _, item := range state.Items {
			if item.ID == matchID {
				return item, nil
			}
		}
	}

	return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
}

func (s *ActionService) publish(ctx context.Context, matchID, teamID, kind string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishMatchEvent(ctx, MatchEvent{MatchID: matchID, TeamID: teamID, Kind: kind}); err != nil {
		s.logger.WarnContext(ctx, "publish match event failed", "match_id", matchID, "kind", kind, "error", err)
	}
}
