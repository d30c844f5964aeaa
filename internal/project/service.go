// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/craftboard/craftboard/internal/platform/apperr"
	"github.com/craftboard/craftboard/internal/platform/notify"
	"github.com/craftboard/craftboard/internal/platform/validate"
	"github.com/craftboard/craftboard/internal/users/account"
	"github.com/craftboard/craftboard/pkg/pointer"
	"github.com/craftboard/craftboard/pkg/uuid"
)

// Service is the moderation engine.
//
// # Consistency
//
// The engine never applies an optimistic local mutation: the pending queue
// changes only after the remote store has confirmed the corresponding write.
// A failed remote call leaves the queue exactly as it was.
type Service struct {
	repository Repository
	notifier   notify.Notifier
	logger     *slog.Logger

	// now is injectable for deterministic approval timestamps in tests.
	now func() time.Time

	mu      sync.Mutex
	pending []Project
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, notifier notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// # Submission

/*
Submit creates a new project in the pending state.

Description: Requires an authenticated principal — an empty author ID fails
with Unauthenticated before anything is validated or persisted. New projects
always start pending and non-featured regardless of input.

Parameters:
  - context: context.Context
  - author: The submitting principal's identity (ID must be non-empty)
  - input: Submission fields

Returns:
  - *Project: The created record
  - error: Unauthenticated, validation, or persistence errors
*/
func (service *Service) Submit(context context.Context, author account.Author, input Submission) (*Project, error) {
	if author.ID == "" {
		return nil, apperr.Unauthenticated("Sign in to submit a project")
	}

	validator := &validate.Validator{}
	err := validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 120).
		Required("description", input.Description).
		MaxLen("description", input.Description, 2000).
		URL("project_url", input.ProjectURL).
		URL("image_url", input.ImageURL).
		NotEmptySlice("categories", input.Categories).
		Err()
	if err != nil {
		return nil, err
	}

	created := &Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ProjectURL:  input.ProjectURL,
		Categories:  input.Categories,
		Author:      author,
		Status:      StatusPending,
		Featured:    false,
		CreatedAt:   service.now(),
	}

	if err := service.repository.Insert(context, created); err != nil {
		return nil, fmt.Errorf("project_service_submit_failed: %w", err)
	}

	return created, nil
}

// # Review Queue

/*
ListPending loads the review queue from the remote store.

Description: The queue is cached in memory so a confirmed review can drop its
entry without a reload. Every call refreshes the cache wholesale.

Parameters:
  - context: context.Context

Returns:
  - []Project: Pending projects, newest first
  - error: Persistence errors (cache left unchanged)
*/
func (service *Service) ListPending(context context.Context) ([]Project, error) {
	pending, err := service.repository.ListPending(context)
	if err != nil {
		return nil, fmt.Errorf("project_service_list_pending_failed: %w", err)
	}

	service.mu.Lock()
	service.pending = pending
	snapshot := service.queueSnapshotLocked()
	service.mu.Unlock()

	return snapshot, nil
}

// PendingQueue returns a copy of the cached review queue.
func (service *Service) PendingQueue() []Project {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.queueSnapshotLocked()
}

/*
Review applies an administrator decision to a pending project.

Description: Approval stamps ApprovedAt and the featured flag; rejection never
features (unrepresentable via [Decision]). The queue entry is removed only
after the remote store confirms — a failed update leaves it in place and
emits a failure notification.

Parameters:
  - context: context.Context
  - projectID: string
  - decision: Decision built via [Approve] or [Reject]

Returns:
  - error: Persistence errors, or NotFound if the project was already reviewed
*/
func (service *Service) Review(context context.Context, projectID string, decision Decision) error {
	var approvedAt *time.Time
	if decision.Approved() {
		approvedAt = pointer.To(service.now())
	}

	err := service.repository.UpdateStatus(context, projectID, decision.Status(), decision.Featured(), approvedAt)
	if err != nil {
		service.logger.Error("project_review_failed",
			slog.String("project_id", projectID),
			slog.String("decision", string(decision.Status())),
			slog.Any("error", err),
		)
		service.notifier.Error(context, "Failed to update project status")
		return err
	}

	service.removeFromQueue(projectID)

	if decision.Approved() {
		service.notifier.Success(context, "Project approved successfully")
	} else {
		service.notifier.Success(context, "Project rejected successfully")
	}

	return nil
}

/*
Delete removes a project unconditionally.

Description: Destructive and irreversible — the confirmed flag must carry the
user's explicit acknowledgement, otherwise the request is refused before any
remote call. On success the item disappears from the cached queue too.

Parameters:
  - context: context.Context
  - projectID: string
  - confirmed: Whether the user acknowledged the confirmation prompt

Returns:
  - error: ConfirmationRequired, NotFound, or persistence errors
*/
func (service *Service) Delete(context context.Context, projectID string, confirmed bool) error {
	if !confirmed {
		return apperr.ConfirmationRequired("Deleting a project must be confirmed")
	}

	if err := service.repository.Delete(context, projectID); err != nil {
		service.notifier.Error(context, "Failed to delete project")
		return err
	}

	service.removeFromQueue(projectID)
	service.notifier.Success(context, "Project deleted successfully")
	return nil
}

// # Public Feed

// ListApproved returns all approved projects, newest first.
func (service *Service) ListApproved(context context.Context) ([]Project, error) {
	return service.repository.ListApproved(context)
}

// ListFeatured returns up to limit promoted projects for the home feed.
func (service *Service) ListFeatured(context context.Context, limit int) ([]Project, error) {
	return service.repository.ListFeatured(context, limit)
}

// # Internals

// removeFromQueue drops a confirmed-reviewed project from the cached queue.
func (service *Service) removeFromQueue(projectID string) {
	service.mu.Lock()
	defer service.mu.Unlock()

	kept := service.pending[:0]
	for _, item := range service.pending {
		if item.ID != projectID {
			kept = append(kept, item)
		}
	}
	service.pending = kept
}

// queueSnapshotLocked copies the cached queue. Callers must hold the mutex.
func (service *Service) queueSnapshotLocked() []Project {
	snapshot := make([]Project, len(service.pending))
	copy(snapshot, service.pending)
	return snapshot
}
