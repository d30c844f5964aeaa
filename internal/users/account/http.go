// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftboard/craftboard/internal/platform/middleware"
	requestutil "github.com/craftboard/craftboard/internal/platform/request"
	"github.com/craftboard/craftboard/internal/platform/respond"
)

// Handler implements profile-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with profile routes.
//
// # Endpoints
//   - GET /{id}  : Public profile view.
//   - GET /me    : Current user's own profile.
//   - PUT /me    : Update own profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getProfile)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.getOwnProfile)
		r.Put("/me", handler.updateOwnProfile)
	})

	return router
}

type updateProfileRequest struct {
	Name      string            `json:"name"`
	AvatarURL string            `json:"avatar"`
	Bio       string            `json:"bio"`
	Website   string            `json:"website"`
	Social    map[string]string `json:"social"`
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetProfile(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) getOwnProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) updateOwnProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := updateProfileRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.UpdateProfile(request.Context(), userID, UpdateInput{
		Name:      payload.Name,
		AvatarURL: payload.AvatarURL,
		Bio:       payload.Bio,
		Website:   payload.Website,
		Social:    payload.Social,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
