package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hieudt/matchday/internal/domain/selection"
)

// SelectionRepository persists the currently-selected match per team.
// This is the only client state kept across reloads; bucket lists are
// always refetched.
type SelectionRepository struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

func (r *SelectionRepository) Get(ctx context.Context, teamID string) (selection.Selection, bool, error) {
	const query = `SELECT team_id, match_id, selected_at FROM selected_matches WHERE team_id = $1`

	var row selectionTableModel
	if err := r.db.GetContext(ctx, &row, query, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return selection.Selection{}, false, nil
		}
		return selection.Selection{}, false, fmt.Errorf("get selection: %w", err)
	}

	return selection.Selection{
		TeamID:     row.TeamID,
		MatchID:    row.MatchID,
		SelectedAt: row.SelectedAt,
	}, true, nil
}

func (r *SelectionRepository) Put(ctx context.Context, sel selection.Selection) error {
	const query = `
		INSERT INTO selected_matches (team_id, match_id, selected_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id)
		DO UPDATE SET match_id = EXCLUDED.match_id, selected_at = EXCLUDED.selected_at`

	if _, err := r.db.ExecContext(ctx, query, sel.TeamID, sel.MatchID, sel.SelectedAt); err != nil {
		return fmt.Errorf("upsert selection: %w", err)
	}
	return nil
}

func (r *SelectionRepository) Delete(ctx context.Context, teamID string) error {
	const query = `DELETE FROM selected_matches WHERE team_id = $1`

	if _, err := r.db.ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	return nil
}
