package selection

import "time"

// Selection is the only client state persisted across reloads: the match
// a team is currently looking at. Bucket lists are always refetched.
type Selection struct {
	TeamID     string
	MatchID    string
	SelectedAt time.Time
}
