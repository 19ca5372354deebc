package memory

import (
	"context"
	"sync"

	"github.com/hieudt/matchday/internal/domain/selection"
)

// SelectionRepository keeps selections in memory, for tests and for
// running without a database.
type SelectionRepository struct {
	mu         sync.RWMutex
	selections map[string]selection.Selection
}

func NewSelectionRepository() *SelectionRepository {
	return &SelectionRepository{selections: make(map[string]selection.Selection)}
}

func (r *SelectionRepository) Get(_ context.Context, teamID string) (selection.Selection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sel, ok := r.selections[teamID]
	return sel, ok, nil
}

func (r *SelectionRepository) Put(_ context.Context, sel selection.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selections[sel.TeamID] = sel
	return nil
}

func (r *SelectionRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.selections, teamID)
	return nil
}
