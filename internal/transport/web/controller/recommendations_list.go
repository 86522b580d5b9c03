package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/glowcircle/askmatch/internal/command"
	"github.com/glowcircle/askmatch/internal/domain"
)

type RecommendationsList struct {
	Command *command.RecommendUsers
}

type RecommendationsListResponse struct {
	Data  []domain.RecommendedUser `json:"data"`
	State domain.PresentationState `json:"state"`
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	viewerID := domain.UserIDFromContext(ctx)
	if viewerID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	queryText := strings.TrimSpace(r.URL.Query().Get("q"))
	if queryText == "" {
		logger.ErrorContext(ctx, "missing query text in recommendations request")

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Command.Execute(ctx, command.RecommendUsersRequest{
		ViewerID:  viewerID,
		QueryText: queryText,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommended users", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	users := result.Users
	if users == nil {
		users = []domain.RecommendedUser{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsListResponse{
		Data:  users,
		State: result.State,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommended users to response", "error", err)
	}
}
