// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/craftboard/craftboard/internal/platform/validate"
)

// Service implements profile use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// GetProfile loads a profile by ID.
func (service *Service) GetProfile(context context.Context, id string) (*Profile, error) {
	return service.repository.FindByID(context, id)
}

// GetAuthor loads the denormalized author block for content attribution.
func (service *Service) GetAuthor(context context.Context, id string) (Author, error) {
	profile, err := service.repository.FindByID(context, id)
	if err != nil {
		return Author{}, fmt.Errorf("account_service_get_author_failed: %w", err)
	}

	return Author{
		ID:        profile.ID,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
	}, nil
}

// UpdateInput holds the mutable profile fields a user may change.
type UpdateInput struct {
	Name      string
	AvatarURL string
	Bio       string
	Website   string
	Social    map[string]string
}

/*
UpdateProfile validates and persists profile changes for the given user.

Description: Role and email are deliberately not updatable here — role changes
are an operator action and email belongs to the identity provider.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateInput

Returns:
  - *Profile: The updated entity
  - error: Validation or storage errors
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateInput) (*Profile, error) {

	validator := &validate.Validator{}
	validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 80).
		MaxLen("bio", input.Bio, 500)
	if input.Website != "" {
		validator.URL("website", input.Website)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	profile, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.AvatarURL = input.AvatarURL
	profile.Bio = input.Bio
	profile.Website = input.Website
	profile.Social = input.Social

	if err := service.repository.Update(context, profile); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	return profile, nil
}
