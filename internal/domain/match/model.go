package match

import (
	"fmt"
	"strings"
	"time"
)

// Status is the server-owned lifecycle status. Exactly one is set at any
// time; everything the UI shows on top of it is derived, never stored.
type Status string

const (
	StatusMatched   Status = "MATCHED"
	StatusRequested Status = "REQUESTED"
	StatusAccepted  Status = "ACCEPTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusFinished  Status = "FINISHED"
	StatusCancelled Status = "CANCELLED"
)

// Type tags who holds the next move during pre-confirmation negotiation.
// It is meaningful only while the status is MATCHED/REQUESTED/ACCEPTED;
// terminal and confirmed records carry TypeUndefined and rely on Stage.
type Type string

const (
	TypeMatched   Type = "matched"
	TypeSent      Type = "sent"
	TypeReceived  Type = "received"
	TypeAccepted  Type = "accepted"
	TypeUndefined Type = ""
)

// Bucket is one of the three independently paginated cache projections.
// A match belongs to exactly one bucket at fetch time, decided by the
// server-side status filter, never recomputed client-side across buckets.
type Bucket string

const (
	BucketPending  Bucket = "pending"
	BucketUpcoming Bucket = "upcoming"
	BucketHistory  Bucket = "history"
)

// Stage is the UI-visible lifecycle phase, a pure function of
// (status, start time, now). See ResolveStage.
type Stage string

const (
	StagePending  Stage = "pending"
	StageUpcoming Stage = "upcoming"
	StageLive     Stage = "live"
	StageFinished Stage = "finished"
)

// VenueTBD is the sentinel the UI checks for when no venue has been
// agreed yet.
const VenueTBD = "TBD"

// DefaultDuration is the assumed length of a friendly match, used to
// derive the live window for confirmed records.
const DefaultDuration = 2 * time.Hour

type TeamSummary struct {
	ID      string
	Name    string
	LogoURL string
	Level   string
}

type Score struct {
	TeamA int
	TeamB int
}

// Match is one arrangement between two teams. StartAt is nil while no
// concrete kickoff has been agreed ("TBD"); Score is nil until a result
// is recorded.
type Match struct {
	ID          string
	TeamA       TeamSummary
	TeamB       TeamSummary
	Score       *Score
	StartAt     *time.Time
	Venue       string
	Status      Status
	RequestedBy string
	AcceptedBy  string
	Type        Type
	Notes       string
}

func ParseBucket(value string) (Bucket, error) {
	switch Bucket(strings.ToLower(strings.TrimSpace(value))) {
	case BucketPending:
		return BucketPending, nil
	case BucketUpcoming:
		return BucketUpcoming, nil
	case BucketHistory:
		return BucketHistory, nil
	default:
		return "", fmt.Errorf("unknown bucket %q", value)
	}
}

// Statuses returns the canonical server-side filter for the bucket.
func (b Bucket) Statuses() []Status {
	switch b {
	case BucketPending:
		return []Status{StatusMatched, StatusRequested, StatusAccepted}
	case BucketUpcoming:
		return []Status{StatusConfirmed}
	case BucketHistory:
		return []Status{StatusFinished, StatusCancelled}
	default:
		return nil
	}
}

func Buckets() []Bucket {
	return []Bucket{BucketPending, BucketUpcoming, BucketHistory}
}

func IsTerminal(status Status) bool {
	return status == StatusFinished || status == StatusCancelled
}

// DeriveType computes the negotiation tag from the viewer's side.
func DeriveType(status Status, requestedBy, viewerTeamID string) Type {
	switch status {
	case StatusMatched:
		return TypeMatched
	case StatusRequested:
		if requestedBy == viewerTeamID {
			return TypeSent
		}
		return TypeReceived
	case StatusAccepted:
		return TypeAccepted
	default:
		return TypeUndefined
	}
}

// Opponent returns the other team's summary from the viewer's side.
func (m Match) Opponent(viewerTeamID string) TeamSummary {
	if m.TeamA.ID == viewerTeamID {
		return m.TeamB
	}
	return m.TeamA
}
