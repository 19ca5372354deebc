package match

import "context"

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func (p Pagination) HasMore() bool {
	return p.Page < p.TotalPages
}

// BucketState is one bucket's cached projection for one team. LastError
// is additive information: a failed refresh records it without touching
// Items.
type BucketState struct {
	Items      []Match
	Pagination Pagination
	Fetched    bool
	LastError  string
}

// CacheRepository holds the per-(team, bucket) feed cache. Implementations
// must be safe for concurrent use; all mutations are last-write-wins
// within a bucket.
type CacheRepository interface {
	State(ctx context.Context, teamID string, bucket Bucket) (BucketState, error)
	Replace(ctx context.Context, teamID string, bucket Bucket, items []Match, page Pagination) error
	Append(ctx context.Context, teamID string, bucket Bucket, items []Match, page Pagination) error
	SetError(ctx context.Context, teamID string, bucket Bucket, message string) error
	Upsert(ctx context.Context, teamID string, bucket Bucket, item Match) error
	Remove(ctx context.Context, teamID string, matchID string, buckets ...Bucket) error
	Clear(ctx context.Context, teamID string) error
	ClearAll(ctx context.Context) error
}
