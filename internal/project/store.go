// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project

import (
	"context"
	"time"
)

// Repository is the typed gateway to the remote store for projects.
//
// All list operations return author-joined rows ordered newest-first.
// Every operation can fail with a wrapped persistence error; callers must
// treat any failure as "nothing happened remotely".
type Repository interface {
	// Insert persists a freshly submitted project.
	Insert(context context.Context, project *Project) error

	// ListApproved returns all approved projects.
	ListApproved(context context.Context) ([]Project, error)

	// ListFeatured returns up to limit approved-and-featured projects.
	ListFeatured(context context.Context, limit int) ([]Project, error)

	// ListPending returns all projects awaiting review.
	ListPending(context context.Context) ([]Project, error)

	// UpdateStatus applies a review outcome to a still-pending project.
	// approvedAt is nil for rejections. Returns dberr.ErrNotFound when the
	// project does not exist or was already reviewed.
	UpdateStatus(context context.Context, id string, status Status, featured bool, approvedAt *time.Time) error

	// Delete removes a project unconditionally, bypassing the state machine.
	Delete(context context.Context, id string) error
}
