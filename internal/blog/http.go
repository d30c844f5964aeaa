// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftboard/craftboard/internal/platform/middleware"
	requestutil "github.com/craftboard/craftboard/internal/platform/request"
	"github.com/craftboard/craftboard/internal/platform/respond"
	"github.com/craftboard/craftboard/internal/platform/sec"
	"github.com/craftboard/craftboard/internal/users/account"
	"github.com/craftboard/craftboard/pkg/query"
)

// Handler implements the blog HTTP endpoints.
type Handler struct {
	service  *Service
	accounts *account.Service
}

// NewHandler constructs a new [Handler] with its service dependencies.
func NewHandler(service *Service, accounts *account.Service) *Handler {
	return &Handler{service: service, accounts: accounts}
}

// Routes returns a [chi.Router] configured with blog routes.
//
// # Endpoints
//   - GET    /          : Published posts, newest first.
//   - GET    /{slug}    : One published post.
//   - GET    /all       : Every post including drafts (admin).
//   - GET    /all/{slug}: One post regardless of status (admin).
//   - POST   /          : Create a post (admin).
//   - PUT    /{slug}    : Edit a post (admin).
//   - DELETE /{id}      : Remove a post, requires ?confirm=true (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPublished)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/all", handler.listAll)
		r.Get("/all/{slug}", handler.getAnyStatus)
		r.Post("/", handler.create)
		r.Put("/{slug}", handler.update)
		r.Delete("/{id}", handler.remove)
	})

	// The static /all route takes priority over this wildcard.
	router.Get("/{slug}", handler.getPublished)

	return router
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListPublished(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetPublished(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

// getAnyStatus serves a post to editors regardless of publication state.
func (handler *Handler) getAnyStatus(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.accounts.GetAuthor(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := Draft{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), author, payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload := Draft{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), requestutil.Param(request, "slug"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	confirmed := query.Flag(request.URL.Query().Get("confirm"))

	err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"), confirmed)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
