package memory

import (
	"context"
	"sync"

	"github.com/hieudt/matchday/internal/domain/match"
)

type bucketKey struct {
	teamID string
	bucket match.Bucket
}

// MatchCacheRepository is the in-memory tab cache: ordered items plus
// pagination metadata per (team, bucket). Mutations are last-write-wins
// within a bucket.
type MatchCacheRepository struct {
	mu      sync.RWMutex
	buckets map[bucketKey]*match.BucketState
}

func NewMatchCacheRepository() *MatchCacheRepository {
	return &MatchCacheRepository{buckets: make(map[bucketKey]*match.BucketState)}
}

func (r *MatchCacheRepository) State(_ context.Context, teamID string, bucket match.Bucket) (match.BucketState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.buckets[bucketKey{teamID, bucket}]
	if !ok {
		return match.BucketState{}, nil
	}

	out := *state
	out.Items = append([]match.Match(nil), state.Items...)
	return out, nil
}

func (r *MatchCacheRepository) Replace(_ context.Context, teamID string, bucket match.Bucket, items []match.Match, page match.Pagination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ensure(teamID, bucket)
	state.Items = append([]match.Match(nil), items...)
	state.Pagination = page
	state.Fetched = true
	state.LastError = ""
	return nil
}

func (r *MatchCacheRepository) Append(_ context.Context, teamID string, bucket match.Bucket, items []match.Match, page match.Pagination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ensure(teamID, bucket)
	state.Items = append(state.Items, items...)
	state.Pagination = page
	state.Fetched = true
	state.LastError = ""
	return nil
}

// SetError records a failed refresh. Cached items are deliberately left
// intact: failure is additive information, not an invalidation.
func (r *MatchCacheRepository) SetError(_ context.Context, teamID string, bucket match.Bucket, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensure(teamID, bucket).LastError = message
	return nil
}

// Upsert replaces the item in place when present, otherwise appends it.
func (r *MatchCacheRepository) Upsert(_ context.Context, teamID string, bucket match.Bucket, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ensure(teamID, bucket)
	for i := range state.Items {
		if state.Items[i].ID == item.ID {
			state.Items[i] = item
			return nil
		}
	}
	state.Items = append(state.Items, item)
	return nil
}

func (r *MatchCacheRepository) Remove(_ context.Context, teamID string, matchID string, buckets ...match.Bucket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, bucket := range buckets {
		state, ok := r.buckets[bucketKey{teamID, bucket}]
		if !ok {
			continue
		}
		filtered := state.Items[:0]
		for _, item := range state.Items {
			if item.ID != matchID {
				filtered = append(filtered, item)
			}
		}
		state.Items = filtered
	}
	return nil
}

func (r *MatchCacheRepository) Clear(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.buckets {
		if key.teamID == teamID {
			delete(r.buckets, key)
		}
	}
	return nil
}

func (r *MatchCacheRepository) ClearAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buckets = make(map[bucketKey]*match.BucketState)
	return nil
}

func (r *MatchCacheRepository) ensure(teamID string, bucket match.Bucket) *match.BucketState {
	key := bucketKey{teamID, bucket}
	state, ok := r.buckets[key]
	if !ok {
		state = &match.BucketState{}
		r.buckets[key] = state
	}
	return state
}
