package memory

import (
	"context"
	"sync"

	"github.com/hieudt/matchday/internal/domain/discovery"
	"github.com/hieudt/matchday/internal/domain/match"
)

// DiscoveryCacheRepository is the in-memory per-team candidate feed.
type DiscoveryCacheRepository struct {
	mu    sync.RWMutex
	feeds map[string]*discovery.FeedState
}

func NewDiscoveryCacheRepository() *DiscoveryCacheRepository {
	return &DiscoveryCacheRepository{feeds: make(map[string]*discovery.FeedState)}
}

func (r *DiscoveryCacheRepository) State(_ context.Context, teamID string) (discovery.FeedState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.feeds[teamID]
	if !ok {
		return discovery.FeedState{}, nil
	}

	out := *state
	out.Items = append([]discovery.Candidate(nil), state.Items...)
	return out, nil
}

func (r *DiscoveryCacheRepository) Replace(_ context.Context, teamID string, items []discovery.Candidate, page match.Pagination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ensure(teamID)
	state.Items = append([]discovery.Candidate(nil), items...)
	state.Pagination = page
	state.Fetched = true
	state.LastError = ""
	return nil
}

func (r *DiscoveryCacheRepository) Append(_ context.Context, teamID string, items []discovery.Candidate, page match.Pagination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ensure(teamID)
	state.Items = append(state.Items, items...)
	state.Pagination = page
	state.Fetched = true
	state.LastError = ""
	return nil
}

func (r *DiscoveryCacheRepository) SetError(_ context.Context, teamID string, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensure(teamID).LastError = message
	return nil
}

func (r *DiscoveryCacheRepository) Remove(_ context.Context, teamID, candidateTeamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.feeds[teamID]
	if !ok {
		return nil
	}
	filtered := state.Items[:0]
	for _, item := range state.Items {
		if item.TeamID != candidateTeamID {
			filtered = append(filtered, item)
		}
	}
	state.Items = filtered
	return nil
}

func (r *DiscoveryCacheRepository) Clear(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.feeds, teamID)
	return nil
}

func (r *DiscoveryCacheRepository) ensure(teamID string) *discovery.FeedState {
	state, ok := r.feeds[teamID]
	if !ok {
		state = &discovery.FeedState{}
		r.feeds[teamID] = state
	}
	return state
}
