package matchapi

import "github.com/hieudt/matchday/internal/domain/match"

type apiError struct {
	Message string `json:"message"`
}

type paginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func (p paginationDTO) toDomain() match.Pagination {
	return match.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Level   string `json:"level"`
	City    string `json:"city"`
	Stadium string `json:"stadium"`
	Members int    `json:"members"`
	Bio     string `json:"bio"`
}

type scoreDTO struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

type locationDTO struct {
	Address string `json:"address"`
	MapURL  string `json:"mapUrl"`
}

// matchDTO is the raw wire record. Confirmed fields (date/time/location)
// win over the proposed ones; absent schedule fields mean TBD.
type matchDTO struct {
	ID              string       `json:"id"`
	TeamA           teamDTO      `json:"teamA"`
	TeamB           teamDTO      `json:"teamB"`
	Score           *scoreDTO    `json:"score"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	ProposedDate    string       `json:"proposedDate"`
	ProposedTime    string       `json:"proposedTime"`
	Location        *locationDTO `json:"location"`
	ProposedPitch   string       `json:"proposedPitch"`
	Status          string       `json:"status"`
	RequestedByTeam string       `json:"requestedByTeam"`
	AcceptedByTeam  string       `json:"acceptedByTeam"`
	Notes           string       `json:"notes"`
}

type listMatchesEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Matches    []matchDTO    `json:"matches"`
		Pagination paginationDTO `json:"pagination"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type matchEnvelope struct {
	Success bool      `json:"success"`
	Data    *matchDTO `json:"data"`
	Error   *apiError `json:"error"`
}

type candidateDTO struct {
	TeamID     string  `json:"teamId"`
	Name       string  `json:"name"`
	Logo       string  `json:"logo"`
	Level      string  `json:"level"`
	City       string  `json:"city"`
	DistanceKm float64 `json:"distanceKm"`
	Bio        string  `json:"bio"`
}

type listCandidatesEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Candidates []candidateDTO `json:"candidates"`
		Pagination paginationDTO  `json:"pagination"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type likeEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Matched bool      `json:"matched"`
		Match   *matchDTO `json:"match"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type teamEnvelope struct {
	Success bool      `json:"success"`
	Data    *teamDTO  `json:"data"`
	Error   *apiError `json:"error"`
}

type statusEnvelope struct {
	Success bool      `json:"success"`
	Error   *apiError `json:"error"`
}
