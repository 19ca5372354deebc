package postgres

import "time"

type selectionTableModel struct {
	TeamID     string    `db:"team_id"`
	MatchID    string    `db:"match_id"`
	SelectedAt time.Time `db:"selected_at"`
}
