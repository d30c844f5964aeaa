// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

/*
Package account handles user profile management.

Every authenticated principal has exactly one profile row. The profile's role
column is the source of truth for administrator capability — the session
store's admin flag is derived from it and nothing else.

# Architecture

  - Entities: Profile (public identity data, no credentials).
  - Repository: Abstracted persistence contract, implemented on pgx.
  - Security: Credentials never live here; authentication belongs to the
    remote identity provider.
*/
package account

import (
	"context"
	"time"

	"github.com/craftboard/craftboard/internal/platform/sec"
)

// # Domain Entities

// Profile represents a registered member of the Craftboard platform.
type Profile struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	AvatarURL string            `json:"avatar"`
	Role      sec.UserRole      `json:"role"`
	Bio       string            `json:"bio,omitempty"`
	Website   string            `json:"website,omitempty"`
	Social    map[string]string `json:"social,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Author is the denormalized author block embedded in project and blog
// listings.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
}

// # Repository Contracts

// Repository defines the persistence contract for user profiles.
type Repository interface {
	// FindByID retrieves a profile by its unique ID.
	FindByID(context context.Context, id string) (*Profile, error)

	// FindRoleByID performs the single point lookup of a principal's stored
	// role. Returns dberr.ErrNotFound when no profile row exists.
	FindRoleByID(context context.Context, id string) (sec.UserRole, error)

	// Update persists mutable profile fields (name, avatar, bio, website, social).
	Update(context context.Context, profile *Profile) error
}
