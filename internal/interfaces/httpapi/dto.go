package httpapi

import (
	"time"

	"github.com/hieudt/matchday/internal/domain/discovery"
	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/domain/selection"
	"github.com/hieudt/matchday/internal/domain/team"
	"github.com/hieudt/matchday/internal/usecase"
)

type teamSummaryDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Level   string `json:"level,omitempty"`
}

type scoreDTO struct {
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

type matchViewDTO struct {
	ID       string         `json:"id"`
	TeamA    teamSummaryDTO `json:"team_a"`
	TeamB    teamSummaryDTO `json:"team_b"`
	Opponent teamSummaryDTO `json:"opponent"`
	Score    *scoreDTO      `json:"score,omitempty"`
	StartAt  *string        `json:"start_at"`
	Venue    string         `json:"venue"`
	Status   string         `json:"status"`
	Type     string         `json:"type,omitempty"`
	Stage    string         `json:"stage"`
	Notes    string         `json:"notes,omitempty"`
}

type paginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type bucketSnapshotDTO struct {
	Bucket      string         `json:"bucket"`
	Items       []matchViewDTO `json:"items"`
	Pagination  paginationDTO  `json:"pagination"`
	HasMore     bool           `json:"has_more"`
	Fetched     bool           `json:"fetched"`
	LastError   string         `json:"last_error,omitempty"`
	Loading     bool           `json:"loading"`
	LoadingMore bool           `json:"loading_more"`
}

type overviewDTO struct {
	Pending  bucketSnapshotDTO `json:"pending"`
	Upcoming bucketSnapshotDTO `json:"upcoming"`
	Partial  bool              `json:"partial"`
}

type candidateDTO struct {
	TeamID     string  `json:"team_id"`
	Name       string  `json:"name"`
	LogoURL    string  `json:"logo_url,omitempty"`
	Level      string  `json:"level,omitempty"`
	City       string  `json:"city,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
	Bio        string  `json:"bio,omitempty"`
}

type discoveryFeedDTO struct {
	Items      []candidateDTO `json:"items"`
	Pagination paginationDTO  `json:"pagination"`
	HasMore    bool           `json:"has_more"`
	Fetched    bool           `json:"fetched"`
	LastError  string         `json:"last_error,omitempty"`
	Loading    bool           `json:"loading"`
}

type likeResultDTO struct {
	Matched bool          `json:"matched"`
	Match   *matchViewDTO `json:"match,omitempty"`
}

type teamProfileDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url,omitempty"`
	Level       string `json:"level,omitempty"`
	City        string `json:"city,omitempty"`
	HomeGround  string `json:"home_ground,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

type selectionDTO struct {
	MatchID    string `json:"match_id"`
	SelectedAt string `json:"selected_at"`
}

type sendRequestPayload struct {
	ProposedDate  string `json:"proposed_date" validate:"omitempty,datetime=2006-01-02"`
	ProposedTime  string `json:"proposed_time" validate:"omitempty,datetime=15:04"`
	ProposedPitch string `json:"proposed_pitch" validate:"omitempty,max=200"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
}

func (p sendRequestPayload) toTerms() usecase.RequestTerms {
	return usecase.RequestTerms{
		ProposedDate:  p.ProposedDate,
		ProposedTime:  p.ProposedTime,
		ProposedPitch: p.ProposedPitch,
		Notes:         p.Notes,
	}
}

type confirmPayload struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	StadiumName string `json:"stadium_name" validate:"required,max=200"`
	MapURL      string `json:"map_url" validate:"omitempty,url"`
}

type finishPayload struct {
	ScoreTeamA int    `json:"score_team_a" validate:"min=0"`
	ScoreTeamB int    `json:"score_team_b" validate:"min=0"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

type cancelPayload struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type selectMatchPayload struct {
	MatchID string `json:"match_id" validate:"required"`
}

func matchViewToDTO(view usecase.MatchView, viewerTeamID string) matchViewDTO {
	var startAt *string
	if view.StartAt != nil {
		formatted := view.StartAt.Format(time.RFC3339)
		startAt = &formatted
	}

	var score *scoreDTO
	if view.Score != nil {
		score = &scoreDTO{TeamA: view.Score.TeamA, TeamB: view.Score.TeamB}
	}

	return matchViewDTO{
		ID:       view.ID,
		TeamA:    teamSummaryToDTO(view.TeamA),
		TeamB:    teamSummaryToDTO(view.TeamB),
		Opponent: teamSummaryToDTO(view.Opponent(viewerTeamID)),
		Score:    score,
		StartAt:  startAt,
		Venue:    view.Venue,
		Status:   string(view.Status),
		Type:     string(view.Type),
		Stage:    string(view.Stage),
		Notes:    view.Notes,
	}
}

func teamSummaryToDTO(summary match.TeamSummary) teamSummaryDTO {
	return teamSummaryDTO{
		ID:      summary.ID,
		Name:    summary.Name,
		LogoURL: summary.LogoURL,
		Level:   summary.Level,
	}
}

func bucketSnapshotToDTO(snapshot usecase.BucketSnapshot, viewerTeamID string) bucketSnapshotDTO {
	items := make([]matchViewDTO, 0, len(snapshot.Items))
	for _, view := range snapshot.Items {
		items = append(items, matchViewToDTO(view, viewerTeamID))
	}

	return bucketSnapshotDTO{
		Bucket:      string(snapshot.Bucket),
		Items:       items,
		Pagination:  paginationToDTO(snapshot.Pagination),
		HasMore:     snapshot.HasMore,
		Fetched:     snapshot.Fetched,
		LastError:   snapshot.LastError,
		Loading:     snapshot.Loading,
		LoadingMore: snapshot.LoadingMore,
	}
}

func paginationToDTO(p match.Pagination) paginationDTO {
	return paginationDTO{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func feedSnapshotToDTO(snapshot usecase.FeedSnapshot) discoveryFeedDTO {
	items := make([]candidateDTO, 0, len(snapshot.Items))
	for _, candidate := range snapshot.Items {
		items = append(items, candidateToDTO(candidate))
	}

	return discoveryFeedDTO{
		Items:      items,
		Pagination: paginationToDTO(snapshot.Pagination),
		HasMore:    snapshot.HasMore,
		Fetched:    snapshot.Fetched,
		LastError:  snapshot.LastError,
		Loading:    snapshot.Loading,
	}
}

func candidateToDTO(candidate discovery.Candidate) candidateDTO {
	return candidateDTO{
		TeamID:     candidate.TeamID,
		Name:       candidate.Name,
		LogoURL:    candidate.LogoURL,
		Level:      candidate.Level,
		City:       candidate.City,
		DistanceKm: candidate.DistanceKm,
		Bio:        candidate.Bio,
	}
}

func teamProfileToDTO(profile team.Profile) teamProfileDTO {
	return teamProfileDTO{
		ID:          profile.ID,
		Name:        profile.Name,
		LogoURL:     profile.LogoURL,
		Level:       profile.Level,
		City:        profile.City,
		HomeGround:  profile.HomeGround,
		MemberCount: profile.MemberCount,
		Bio:         profile.Bio,
	}
}

func selectionToDTO(s selection.Selection) selectionDTO {
	return selectionDTO{
		MatchID:    s.MatchID,
		SelectedAt: s.SelectedAt.Format(time.RFC3339),
	}
}
