package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/hieudt/matchday/internal/domain/match"
	"github.com/hieudt/matchday/internal/usecase"
)

const warmUpWorkers = 3

type Handler struct {
	feedService      *usecase.FeedService
	actionService    *usecase.ActionService
	overviewService  *usecase.OverviewService
	discoveryService *usecase.DiscoveryService
	selectionService *usecase.SelectionService
	matchDuration    time.Duration
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	feedService *usecase.FeedService,
	actionService *usecase.ActionService,
	overviewService *usecase.OverviewService,
	discoveryService *usecase.DiscoveryService,
	selectionService *usecase.SelectionService,
	matchDuration time.Duration,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if matchDuration <= 0 {
		matchDuration = match.DefaultDuration
	}

	return &Handler{
		feedService:      feedService,
		actionService:    actionService,
		overviewService:  overviewService,
		discoveryService: discoveryService,
		selectionService: selectionService,
		matchDuration:    matchDuration,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetBucket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBucket")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	bucket, err := match.ParseBucket(r.PathValue("bucket"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	page := queryInt(r, "page", 1)
	forceRefresh := queryBool(r, "refresh")

	snapshot, err := h.feedService.FetchBucket(ctx, principal.TeamID, bucket, page, forceRefresh)
	if err != nil {
		// A failed refresh over a previously fetched bucket still has
		// content worth serving; the snapshot carries the error text.
		if !snapshot.Fetched || len(snapshot.Items) == 0 {
			h.logger.WarnContext(ctx, "bucket fetch failed", "team_id", principal.TeamID, "bucket", bucket, "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, bucketSnapshotToDTO(snapshot, principal.TeamID))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	overview, err := h.overviewService.Get(ctx, principal.TeamID, queryBool(r, "refresh"))
	if err != nil && !errors.Is(err, usecase.ErrPartialFetch) {
		h.logger.WarnContext(ctx, "overview fetch failed", "team_id", principal.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewDTO{
		Pending:  bucketSnapshotToDTO(overview.Pending, principal.TeamID),
		Upcoming: bucketSnapshotToDTO(overview.Upcoming, principal.TeamID),
		Partial:  overview.Partial,
	})
}

func (h *Handler) SwitchTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwitchTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	if err := h.feedService.SwitchTeam(ctx, principal.TeamID); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.feedService.WarmUp(ctx, principal.TeamID, warmUpWorkers); err != nil {
		// Warm-up is best effort: empty buckets lazily refetch on read.
		h.logger.WarnContext(ctx, "bucket warm-up incomplete", "team_id", principal.TeamID, "error", err)
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"team_id": principal.TeamID})
}

func (h *Handler) AcceptMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AcceptMatch")
	defer span.End()

	h.runMatchAction(ctx, w, r, "accept", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.Accept(ctx, teamID, matchID)
	})
}

func (h *Handler) DeclineMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeclineMatch")
	defer span.End()

	h.runMatchAction(ctx, w, r, "decline", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.Decline(ctx, teamID, matchID)
	})
}

func (h *Handler) SendMatchRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendMatchRequest")
	defer span.End()

	var payload sendRequestPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runMatchAction(ctx, w, r, "request", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.SendRequest(ctx, teamID, matchID, payload.toTerms())
	})
}

func (h *Handler) UpdateMatchRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchRequest")
	defer span.End()

	var payload sendRequestPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runMatchAction(ctx, w, r, "update-request", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.UpdateRequest(ctx, teamID, matchID, payload.toTerms())
	})
}

func (h *Handler) ConfirmMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmMatch")
	defer span.End()

	var payload confirmPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runMatchAction(ctx, w, r, "confirm", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.Confirm(ctx, teamID, matchID, usecase.Confirmation{
			Date:        payload.Date,
			Time:        payload.Time,
			StadiumName: payload.StadiumName,
			MapURL:      payload.MapURL,
		})
	})
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishMatch")
	defer span.End()

	var payload finishPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runMatchAction(ctx, w, r, "finish", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.Finish(ctx, teamID, matchID, usecase.Result{
			ScoreTeamA: payload.ScoreTeamA,
			ScoreTeamB: payload.ScoreTeamB,
			Notes:      payload.Notes,
		})
	})
}

func (h *Handler) CancelMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelMatch")
	defer span.End()

	var payload cancelPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runMatchAction(ctx, w, r, "cancel", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.Cancel(ctx, teamID, matchID, payload.Reason)
	})
}

func (h *Handler) RematchMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RematchMatch")
	defer span.End()

	var payload sendRequestPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runMatchAction(ctx, w, r, "rematch", func(ctx context.Context, teamID, matchID string) (match.Match, error) {
		return h.actionService.Rematch(ctx, teamID, matchID, payload.toTerms())
	})
}

func (h *Handler) runMatchAction(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	action string,
	run func(ctx context.Context, teamID, matchID string) (match.Match, error),
) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if matchID == "" {
		writeError(ctx, w, fmt.Errorf("%w: match id is required", usecase.ErrInvalidInput))
		return
	}

	updated, err := run(ctx, principal.TeamID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match action failed",
			"action", action,
			"team_id", principal.TeamID,
			"match_id", matchID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	view := usecase.MatchView{Match: updated, Stage: updated.StageAt(time.Now(), h.matchDuration)}
	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view, principal.TeamID))
}

func (h *Handler) GetDiscoveryFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDiscoveryFeed")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	snapshot, err := h.discoveryService.FetchFeed(ctx, principal.TeamID, queryInt(r, "page", 1), queryBool(r, "refresh"))
	if err != nil {
		if !snapshot.Fetched || len(snapshot.Items) == 0 {
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, feedSnapshotToDTO(snapshot))
}

func (h *Handler) LikeCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LikeCandidate")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	candidateTeamID := strings.TrimSpace(r.PathValue("teamID"))
	if candidateTeamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: candidate team id is required", usecase.ErrInvalidInput))
		return
	}

	paired, err := h.discoveryService.Like(ctx, principal.TeamID, candidateTeamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := likeResultDTO{Matched: paired != nil}
	if paired != nil {
		view := usecase.MatchView{Match: *paired, Stage: paired.StageAt(time.Now(), h.matchDuration)}
		dto := matchViewToDTO(view, principal.TeamID)
		result.Match = &dto
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) SkipCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SkipCandidate")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	candidateTeamID := strings.TrimSpace(r.PathValue("teamID"))
	if candidateTeamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: candidate team id is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.discoveryService.Skip(ctx, principal.TeamID, candidateTeamID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"team_id": candidateTeamID})
}

func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamProfile")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	if teamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput))
		return
	}

	profile, err := h.discoveryService.TeamProfile(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamProfileToDTO(profile))
}

func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelection")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	current, err := h.selectionService.Current(ctx, principal.TeamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionToDTO(current))
}

func (h *Handler) PutSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutSelection")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var payload selectMatchPayload
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	selected, err := h.selectionService.Select(ctx, principal.TeamID, payload.MatchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionToDTO(selected))
}

func (h *Handler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSelection")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	if err := h.selectionService.Clear(ctx, principal.TeamID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"team_id": principal.TeamID})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		// An absent body is a valid zero payload for actions whose
		// fields are all optional; validation still runs below.
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func queryBool(r *http.Request, name string) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	return err == nil && value
}
