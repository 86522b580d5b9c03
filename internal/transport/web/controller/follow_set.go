package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glowcircle/askmatch/internal/command"
	"github.com/glowcircle/askmatch/internal/domain"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

type FollowSet struct {
	SetFollowCmd command.Command[command.SetFollowStateRequest, command.Empty]
}

func (c FollowSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	authorID := vars["author_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("author_id", authorID))

	if authorID == "" {
		logger.ErrorContext(ctx, "missing author ID in follow request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var following bool
	switch vars["following"] {
	case boolTrue:
		following = true
	case boolFalse:
		following = false
	default:
		logger.ErrorContext(ctx, "invalid follow state", "state", vars["following"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	viewerID := domain.UserIDFromContext(ctx)
	if viewerID == authorID {
		logger.ErrorContext(ctx, "attempt to follow self")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := c.SetFollowCmd.Execute(ctx, command.SetFollowStateRequest{
		ViewerID:  viewerID,
		AuthorID:  authorID,
		Following: following,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to set follow state", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
