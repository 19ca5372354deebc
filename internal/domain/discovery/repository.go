package discovery

import (
	"context"

	"github.com/hieudt/matchday/internal/domain/match"
)

// FeedState is the cached discovery feed for one team.
type FeedState struct {
	Items      []Candidate
	Pagination match.Pagination
	Fetched    bool
	LastError  string
}

// CacheRepository holds the per-team candidate feed.
type CacheRepository interface {
	State(ctx context.Context, teamID string) (FeedState, error)
	Replace(ctx context.Context, teamID string, items []Candidate, page match.Pagination) error
	Append(ctx context.Context, teamID string, items []Candidate, page match.Pagination) error
	SetError(ctx context.Context, teamID string, message string) error
	Remove(ctx context.Context, teamID, candidateTeamID string) error
	Clear(ctx context.Context, teamID string) error
}
