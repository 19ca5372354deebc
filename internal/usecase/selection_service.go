package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hieudt/matchday/internal/domain/selection"
)

// SelectionService persists the only client state that survives reloads:
// the currently-selected match per team.
type SelectionService struct {
	repo selection.Repository
	now  func() time.Time
}

func NewSelectionService(repo selection.Repository) *SelectionService {
	return &SelectionService{repo: repo, now: time.Now}
}

func (s *SelectionService) Select(ctx context.Context, teamID, matchID string) (selection.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Select")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	matchID = strings.TrimSpace(matchID)
	if teamID == "" || matchID == "" {
		return selection.Selection{}, fmt.Errorf("%w: team id and match id are required", ErrInvalidInput)
	}

	sel := selection.Selection{
		TeamID:     teamID,
		MatchID:    matchID,
		SelectedAt: s.now().UTC(),
	}
	if err := s.repo.Put(ctx, sel); err != nil {
		return selection.Selection{}, fmt.Errorf("persist selection: %w", err)
	}

	return sel, nil
}

func (s *SelectionService) Current(ctx context.Context, teamID string) (selection.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Current")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return selection.Selection{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	sel, exists, err := s.repo.Get(ctx, teamID)
	if err != nil {
		return selection.Selection{}, fmt.Errorf("get selection: %w", err)
	}
	if !exists {
		return selection.Selection{}, fmt.Errorf("%w: no selection for team=%s", ErrNotFound, teamID)
	}

	return sel, nil
}

func (s *SelectionService) Clear(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Clear")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	return nil
}
