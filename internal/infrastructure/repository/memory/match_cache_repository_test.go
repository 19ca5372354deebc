package memory

import (
	"testing"

	"github.com/hieudt/matchday/internal/domain/match"
)

func pendingItem(id string) match.Match {
	return match.Match{
		ID:     id,
		TeamA:  match.TeamSummary{ID: "team-a"},
		TeamB:  match.TeamSummary{ID: "team-b"},
		Status: match.StatusRequested,
		Type:   match.TypeReceived,
		Venue:  match.VenueTBD,
	}
}

func TestMatchCacheRepository_ReplaceThenState(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	page := match.Pagination{Page: 1, Limit: 10, Total: 2, TotalPages: 1}

	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1"), pendingItem("m-2")}, page); err != nil {
		t.Fatalf("replace: %v", err)
	}

	state, err := repo.State(t.Context(), "team-a", match.BucketPending)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !state.Fetched || len(state.Items) != 2 {
		t.Fatalf("unexpected state: fetched=%t items=%d", state.Fetched, len(state.Items))
	}

	// Mutating the returned slice must not leak into the cache.
	state.Items[0].ID = "mutated"
	again, err := repo.State(t.Context(), "team-a", match.BucketPending)
	if err != nil {
		t.Fatalf("state again: %v", err)
	}
	if again.Items[0].ID != "m-1" {
		t.Fatalf("state must return a copy, got %s", again.Items[0].ID)
	}
}

func TestMatchCacheRepository_StateOfUnknownBucket(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	state, err := repo.State(t.Context(), "team-a", match.BucketHistory)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Fetched || len(state.Items) != 0 {
		t.Fatalf("unknown bucket must read as unfetched and empty")
	}
}

func TestMatchCacheRepository_AppendKeepsExistingItems(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	pageOne := match.Pagination{Page: 1, Limit: 1, Total: 2, TotalPages: 2}
	pageTwo := match.Pagination{Page: 2, Limit: 1, Total: 2, TotalPages: 2}

	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1")}, pageOne); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.Append(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-2")}, pageTwo); err != nil {
		t.Fatalf("append: %v", err)
	}

	state, _ := repo.State(t.Context(), "team-a", match.BucketPending)
	if len(state.Items) != 2 || state.Pagination.Page != 2 {
		t.Fatalf("unexpected state after append: items=%d page=%d", len(state.Items), state.Pagination.Page)
	}
}

func TestMatchCacheRepository_SetErrorKeepsItems(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1")}, match.Pagination{Page: 1, TotalPages: 1}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.SetError(t.Context(), "team-a", match.BucketPending, "upstream down"); err != nil {
		t.Fatalf("set error: %v", err)
	}

	state, _ := repo.State(t.Context(), "team-a", match.BucketPending)
	if state.LastError != "upstream down" {
		t.Fatalf("unexpected LastError: %q", state.LastError)
	}
	if len(state.Items) != 1 || !state.Fetched {
		t.Fatalf("a recorded error must not drop cached items")
	}

	// A successful refresh clears the recorded error.
	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1")}, match.Pagination{Page: 1, TotalPages: 1}); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	state, _ = repo.State(t.Context(), "team-a", match.BucketPending)
	if state.LastError != "" {
		t.Fatalf("refresh must clear LastError, got %q", state.LastError)
	}
}

func TestMatchCacheRepository_UpsertReplacesInPlace(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1"), pendingItem("m-2")}, match.Pagination{Page: 1, TotalPages: 1}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	updated := pendingItem("m-1")
	updated.Status = match.StatusAccepted
	if err := repo.Upsert(t.Context(), "team-a", match.BucketPending, updated); err != nil {
		t.Fatalf("upsert existing: %v", err)
	}
	if err := repo.Upsert(t.Context(), "team-a", match.BucketPending, pendingItem("m-3")); err != nil {
		t.Fatalf("upsert new: %v", err)
	}

	state, _ := repo.State(t.Context(), "team-a", match.BucketPending)
	if len(state.Items) != 3 {
		t.Fatalf("unexpected item count: %d", len(state.Items))
	}
	if state.Items[0].ID != "m-1" || state.Items[0].Status != match.StatusAccepted {
		t.Fatalf("upsert must replace in place, got %+v", state.Items[0])
	}
}

func TestMatchCacheRepository_RemoveAcrossBuckets(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	page := match.Pagination{Page: 1, TotalPages: 1}
	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1")}, page); err != nil {
		t.Fatalf("seed pending: %v", err)
	}
	if err := repo.Replace(t.Context(), "team-a", match.BucketUpcoming, []match.Match{pendingItem("m-1")}, page); err != nil {
		t.Fatalf("seed upcoming: %v", err)
	}

	if err := repo.Remove(t.Context(), "team-a", "m-1", match.BucketPending, match.BucketUpcoming); err != nil {
		t.Fatalf("remove: %v", err)
	}

	for _, bucket := range []match.Bucket{match.BucketPending, match.BucketUpcoming} {
		state, _ := repo.State(t.Context(), "team-a", bucket)
		if len(state.Items) != 0 {
			t.Fatalf("expected %s bucket emptied", bucket)
		}
	}
}

func TestMatchCacheRepository_ClearScopesToTeam(t *testing.T) {
	t.Parallel()

	repo := NewMatchCacheRepository()
	page := match.Pagination{Page: 1, TotalPages: 1}
	if err := repo.Replace(t.Context(), "team-a", match.BucketPending, []match.Match{pendingItem("m-1")}, page); err != nil {
		t.Fatalf("seed team-a: %v", err)
	}
	if err := repo.Replace(t.Context(), "team-b", match.BucketPending, []match.Match{pendingItem("m-2")}, page); err != nil {
		t.Fatalf("seed team-b: %v", err)
	}

	if err := repo.Clear(t.Context(), "team-a"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	stateA, _ := repo.State(t.Context(), "team-a", match.BucketPending)
	if stateA.Fetched {
		t.Fatalf("team-a must be cleared")
	}
	stateB, _ := repo.State(t.Context(), "team-b", match.BucketPending)
	if len(stateB.Items) != 1 {
		t.Fatalf("team-b must be untouched")
	}
}
