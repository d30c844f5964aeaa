// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftboard/craftboard/internal/platform/notify"
	"github.com/craftboard/craftboard/internal/platform/respond"
)

// Handler exposes the session cache to the Presentation Shell.
type Handler struct {
	store *Store
	feed  *notify.Feed
}

// NewHandler constructs a new [Handler].
func NewHandler(store *Store, feed *notify.Feed) *Handler {
	return &Handler{store: store, feed: feed}
}

// Routes returns a [chi.Router] configured with session routes.
//
// # Endpoints
//   - GET  /              : Current session snapshot (principal, admin flag, loading).
//   - POST /sign-out      : Terminate the remote session.
//   - GET  /notifications : Drain pending transient notifications.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.currentState)
	router.Post("/sign-out", handler.signOut)
	router.Get("/notifications", handler.notifications)

	return router
}

func (handler *Handler) currentState(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.store.CurrentState())
}

func (handler *Handler) signOut(writer http.ResponseWriter, request *http.Request) {
	if err := handler.store.SignOut(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.store.CurrentState())
}

func (handler *Handler) notifications(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.feed.Drain())
}
