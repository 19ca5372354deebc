package selection

import "context"

// Repository persists the current selection per team.
type Repository interface {
	Get(ctx context.Context, teamID string) (Selection, bool, error)
	Put(ctx context.Context, sel Selection) error
	Delete(ctx context.Context, teamID string) error
}
