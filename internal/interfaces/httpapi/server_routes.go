package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedMatchRoutes(mux, handler, verifier)
	registerAuthorizedDiscoveryRoutes(mux, handler, verifier)
	registerAuthorizedSelectionRoutes(mux, handler, verifier)
}

func registerAuthorizedMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/matches/{bucket}", RequireAuth(verifier, http.HandlerFunc(handler.GetBucket)))
	mux.Handle("GET /v1/overview", RequireAuth(verifier, http.HandlerFunc(handler.GetOverview)))
	mux.Handle("POST /v1/feed/switch", RequireAuth(verifier, http.HandlerFunc(handler.SwitchTeam)))

	mux.Handle("POST /v1/matches/{matchID}/accept", RequireAuth(verifier, http.HandlerFunc(handler.AcceptMatch)))
	mux.Handle("POST /v1/matches/{matchID}/decline", RequireAuth(verifier, http.HandlerFunc(handler.DeclineMatch)))
	mux.Handle("POST /v1/matches/{matchID}/request", RequireAuth(verifier, http.HandlerFunc(handler.SendMatchRequest)))
	mux.Handle("PUT /v1/matches/{matchID}/request", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatchRequest)))
	mux.Handle("POST /v1/matches/{matchID}/confirm", RequireAuth(verifier, http.HandlerFunc(handler.ConfirmMatch)))
	mux.Handle("POST /v1/matches/{matchID}/finish", RequireAuth(verifier, http.HandlerFunc(handler.FinishMatch)))
	mux.Handle("POST /v1/matches/{matchID}/cancel", RequireAuth(verifier, http.HandlerFunc(handler.CancelMatch)))
	mux.Handle("POST /v1/matches/{matchID}/rematch", RequireAuth(verifier, http.HandlerFunc(handler.RematchMatch)))
}

func registerAuthorizedDiscoveryRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/discovery", RequireAuth(verifier, http.HandlerFunc(handler.GetDiscoveryFeed)))
	mux.Handle("POST /v1/discovery/{teamID}/like", RequireAuth(verifier, http.HandlerFunc(handler.LikeCandidate)))
	mux.Handle("POST /v1/discovery/{teamID}/skip", RequireAuth(verifier, http.HandlerFunc(handler.SkipCandidate)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeamProfile)))
}

func registerAuthorizedSelectionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/selection", RequireAuth(verifier, http.HandlerFunc(handler.GetSelection)))
	mux.Handle("PUT /v1/selection", RequireAuth(verifier, http.HandlerFunc(handler.PutSelection)))
	mux.Handle("DELETE /v1/selection", RequireAuth(verifier, http.HandlerFunc(handler.DeleteSelection)))
}
