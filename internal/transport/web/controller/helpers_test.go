package controller

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/glowcircle/askmatch/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		return r.WithContext(domain.ContextWithLogger(r.Context(), logger))
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		r = testContext()(r)
		return r.WithContext(domain.ContextWithUserID(r.Context(), userID))
	}
}
