// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftboard/craftboard/internal/platform/constants"
	"github.com/craftboard/craftboard/internal/platform/middleware"
	requestutil "github.com/craftboard/craftboard/internal/platform/request"
	"github.com/craftboard/craftboard/internal/platform/respond"
	"github.com/craftboard/craftboard/internal/platform/sec"
	"github.com/craftboard/craftboard/internal/platform/validate"
	"github.com/craftboard/craftboard/internal/users/account"
	"github.com/craftboard/craftboard/pkg/pagination"
	"github.com/craftboard/craftboard/pkg/query"
)

// Handler implements the project HTTP endpoints.
type Handler struct {
	service  *Service
	accounts *account.Service
}

// NewHandler constructs a new [Handler] with its service dependencies.
func NewHandler(service *Service, accounts *account.Service) *Handler {
	return &Handler{service: service, accounts: accounts}
}

// Routes returns a [chi.Router] configured with project routes.
//
// # Endpoints
//   - GET    /              : Public feed (filter/search/sort + pagination).
//   - GET    /featured      : Promoted projects for the home page.
//   - POST   /              : Submit a new project (authenticated).
//   - GET    /pending       : Review queue (admin).
//   - POST   /{id}/review   : Apply a review decision (admin).
//   - DELETE /{id}          : Remove a project, requires ?confirm=true (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listApproved)
	router.Get("/featured", handler.listFeatured)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.submit)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/pending", handler.listPending)
		r.Post("/{id}/review", handler.review)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

type reviewRequest struct {
	Action   string `json:"action"`
	Featured bool   `json:"featured"`
}

const (
	reviewActionApprove = "approve"
	reviewActionReject  = "reject"
)

/*
listApproved serves the public feed.

Query parameters:
  - categories: Comma-separated category filter (OR semantics)
  - q: Case-insensitive text search over title and description
  - sort: "latest" (default) or "popular"
  - page, limit: Standard pagination
*/
func (handler *Handler) listApproved(writer http.ResponseWriter, request *http.Request) {
	approved, err := handler.service.ListApproved(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := request.URL.Query()
	listed := ApplyListing(approved, ListingInput{
		Categories: query.StringSlice(params.Get("categories")),
		Query:      params.Get("q"),
		SortBy:     ParseSortOption(params.Get("sort")),
	})

	page := pagination.FromRequest(request)
	respond.Paginated(writer, paginate(listed, page), pagination.NewMeta(page.Page, page.Limit, len(listed)))
}

func (handler *Handler) listFeatured(writer http.ResponseWriter, request *http.Request) {
	featured, err := handler.service.ListFeatured(request.Context(), constants.FeaturedProjectLimit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, featured)
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Resolve the denormalized author block from the profile store so the
	// feed never needs a per-row profile lookup.
	author, err := handler.accounts.GetAuthor(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := Submission{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Submit(request.Context(), author, payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) listPending(writer http.ResponseWriter, request *http.Request) {
	pending, err := handler.service.ListPending(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pending)
}

func (handler *Handler) review(writer http.ResponseWriter, request *http.Request) {
	payload := reviewRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	err := validator.
		Required("action", payload.Action).
		OneOf("action", payload.Action, reviewActionApprove, reviewActionReject).
		Custom("featured", payload.Action == reviewActionReject && payload.Featured,
			"A rejected project cannot be featured").
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	decision := Reject()
	if payload.Action == reviewActionApprove {
		decision = Approve(payload.Featured)
	}

	if err := handler.service.Review(request.Context(), requestutil.Param(request, "id"), decision); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
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

// paginate windows an already-listed slice for the response body.
func paginate(projects []Project, params pagination.Params) []Project {
	start := params.Offset()
	if start >= len(projects) {
		return []Project{}
	}

	end := start + params.Limit
	if end > len(projects) {
		end = len(projects)
	}

	return projects[start:end]
}
