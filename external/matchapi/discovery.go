package matchapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/hieudt/matchday/internal/domain/discovery"
	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/domain/team"
)

func (c *Client) ListCandidates(ctx context.Context, teamID string, page, limit int) ([]discovery.Candidate, match.Pagination, error) {
	values := url.Values{}
	values.Set("teamId", teamID)
	values.Set("page", strconv.Itoa(maxInt(page, 1)))
	values.Set("limit", strconv.Itoa(maxInt(limit, 1)))

	var envelope listCandidatesEnvelope
	if err := c.getJSON(ctx, "/discovery/candidates", values, &envelope); err != nil {
		return nil, match.Pagination{}, err
	}
	if !envelope.Success {
		return nil, match.Pagination{}, crerr.New(messageOrDefault(envelope.Error))
	}

	candidates := make([]discovery.Candidate, 0, len(envelope.Data.Candidates))
	for _, record := range envelope.Data.Candidates {
		candidates = append(candidates, discovery.Candidate{
			TeamID:     record.TeamID,
			Name:       record.Name,
			LogoURL:    record.Logo,
			Level:      record.Level,
			City:       record.City,
			DistanceKm: record.DistanceKm,
			Bio:        record.Bio,
		})
	}

	return candidates, envelope.Data.Pagination.toDomain(), nil
}

// Like records interest in a candidate. A mutual like pairs the two
// teams immediately and the fresh MATCHED record comes back inline.
func (c *Client) Like(ctx context.Context, teamID, candidateTeamID string) (*match.Match, error) {
	var envelope likeEnvelope
	err := c.sendJSON(ctx, http.MethodPost, "/discovery/candidates/"+url.PathEscape(candidateTeamID)+"/like", map[string]any{
		"teamId": teamID,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, crerr.New(messageOrDefault(envelope.Error))
	}
	if !envelope.Data.Matched || envelope.Data.Match == nil {
		return nil, nil
	}

	paired, err := transformMatch(*envelope.Data.Match, teamID, c.timezone)
	if err != nil {
		return nil, fmt.Errorf("transform paired match %s: %w", envelope.Data.Match.ID, err)
	}
	return &paired, nil
}

func (c *Client) Skip(ctx context.Context, teamID, candidateTeamID string) error {
	var envelope statusEnvelope
	err := c.sendJSON(ctx, http.MethodPost, "/discovery/candidates/"+url.PathEscape(candidateTeamID)+"/skip", map[string]any{
		"teamId": teamID,
	}, &envelope)
	if err != nil {
		return err
	}
	if !envelope.Success {
		return crerr.New(messageOrDefault(envelope.Error))
	}
	return nil
}

func (c *Client) TeamProfile(ctx context.Context, teamID string) (team.Profile, error) {
	var envelope teamEnvelope
	if err := c.getJSON(ctx, "/teams/"+url.PathEscape(teamID), nil, &envelope); err != nil {
		return team.Profile{}, err
	}
	if !envelope.Success || envelope.Data == nil {
		return team.Profile{}, crerr.New(messageOrDefault(envelope.Error))
	}

	record := envelope.Data
	return team.Profile{
		ID:          record.ID,
		Name:        record.Name,
		LogoURL:     record.Logo,
		Level:       record.Level,
		City:        record.City,
		HomeGround:  record.Stadium,
		MemberCount: record.Members,
		Bio:         record.Bio,
	}, nil
}
