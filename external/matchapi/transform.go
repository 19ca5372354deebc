package matchapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/hieudt/matchday/internal/domain/match"
)

// transformMatch builds the domain record from a raw one, viewed from
// viewerTeamID's side. Schedule strings must be ISO-8601: a date is
// RFC3339 or YYYY-MM-DD, a time is HH:MM or HH:MM:SS. A present but
// malformed value is a hard error surfaced to the caller; only absence
// takes the TBD path (nil StartAt, sentinel venue).
func transformMatch(record matchDTO, viewerTeamID string, loc *time.Location) (match.Match, error) {
	status := match.Status(strings.ToUpper(strings.TrimSpace(record.Status)))

	date := firstNonEmpty(record.Date, record.ProposedDate)
	clock := firstNonEmpty(record.Time, record.ProposedTime)
	startAt, err := parseSchedule(date, clock, loc)
	if err != nil {
		return match.Match{}, err
	}

	venue := match.VenueTBD
	if record.Location != nil && strings.TrimSpace(record.Location.Address) != "" {
		venue = strings.TrimSpace(record.Location.Address)
	} else if strings.TrimSpace(record.ProposedPitch) != "" {
		venue = strings.TrimSpace(record.ProposedPitch)
	}

	var score *match.Score
	if record.Score != nil {
		score = &match.Score{TeamA: record.Score.TeamA, TeamB: record.Score.TeamB}
	}

	return match.Match{
		ID:          record.ID,
		TeamA:       transformTeamSummary(record.TeamA),
		TeamB:       transformTeamSummary(record.TeamB),
		Score:       score,
		StartAt:     startAt,
		Venue:       venue,
		Status:      status,
		RequestedBy: record.RequestedByTeam,
		AcceptedBy:  record.AcceptedByTeam,
		Type:        match.DeriveType(status, record.RequestedByTeam, viewerTeamID),
		Notes:       record.Notes,
	}, nil
}

// parseSchedule combines a date and a wall-clock time into a kickoff
// timestamp. Both parts must be present to pin a kickoff; a date alone
// cannot open a live window, so it resolves to TBD like full absence.
func parseSchedule(date, clock string, loc *time.Location) (*time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	if date == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, date); err == nil {
		parsed = parsed.In(loc)
		return &parsed, nil
	}

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("date %q is not ISO-8601", date)
	}

	if clock == "" {
		return nil, nil
	}

	layout := "15:04"
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	tod, err := time.ParseInLocation(layout, clock, loc)
	if err != nil {
		return nil, fmt.Errorf("time %q is not HH:MM", clock)
	}

	combined := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
	return &combined, nil
}

func transformTeamSummary(record teamDTO) match.TeamSummary {
	return match.TeamSummary{
		ID:      record.ID,
		Name:    record.Name,
		LogoURL: record.Logo,
		Level:   record.Level,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
