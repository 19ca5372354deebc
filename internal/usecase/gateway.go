package usecase

import (
	"context"

	"github.com/hieudt/matchday/internal/domain/discovery"
	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/domain/team"
)

// ListMatchesQuery is the canonical bucket query against the upstream
// match API: a status filter plus team-scoped pagination.
type ListMatchesQuery struct {
	Statuses []match.Status
	TeamID   string
	Page     int
	Limit    int
}

// RequestTerms carries the proposed date/time/pitch of a match request
// or a rematch. Date is YYYY-MM-DD, Time is HH:MM; empty means TBD.
type RequestTerms struct {
	ProposedDate  string
	ProposedTime  string
	ProposedPitch string
	Notes         string
}

// Confirmation fixes the concrete kickoff and venue of an accepted match.
type Confirmation struct {
	Date        string
	Time        string
	StadiumName string
	MapURL      string
}

// Result records the final score of a confirmed match.
type Result struct {
	ScoreTeamA int
	ScoreTeamB int
	Notes      string
}

// MatchGateway is the upstream Remote Match API, the source of truth for
// every lifecycle mutation. Returned records are already viewed from the
// calling team's side.
type MatchGateway interface {
	ListMatches(ctx context.Context, q ListMatchesQuery) ([]match.Match, match.Pagination, error)
	Accept(ctx context.Context, matchID, teamID string) (match.Match, error)
	Decline(ctx context.Context, matchID, teamID string) (match.Match, error)
	SendRequest(ctx context.Context, matchID, teamID string, terms RequestTerms) (match.Match, error)
	UpdateRequest(ctx context.Context, matchID, teamID string, terms RequestTerms) (match.Match, error)
	Confirm(ctx context.Context, matchID, teamID string, confirmation Confirmation) (match.Match, error)
	Finish(ctx context.Context, matchID, teamID string, result Result) (match.Match, error)
	Cancel(ctx context.Context, matchID, teamID, reason string) (match.Match, error)
	Rematch(ctx context.Context, matchID, teamID string, terms RequestTerms) (match.Match, error)
}

// DiscoveryGateway is the upstream discovery surface: browse candidate
// opponents and record interest. A mutual like comes back as a fresh
// MATCHED record.
type DiscoveryGateway interface {
	ListCandidates(ctx context.Context, teamID string, page, limit int) ([]discovery.Candidate, match.Pagination, error)
	Like(ctx context.Context, teamID, candidateTeamID string) (*match.Match, error)
	Skip(ctx context.Context, teamID, candidateTeamID string) error
	TeamProfile(ctx context.Context, teamID string) (team.Profile, error)
}

// MatchEvent is a best-effort notification about a lifecycle transition.
type MatchEvent struct {
	MatchID string `json:"match_id"`
	TeamID  string `json:"team_id"`
	Kind    string `json:"kind"`
}

// EventPublisher enqueues match events for downstream notification
// delivery. Publishing is fire-and-forget; delivery is not this
// service's concern.
type EventPublisher interface {
	PublishMatchEvent(ctx context.Context, event MatchEvent) error
}
