// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftboard/craftboard/internal/platform/apperr"
	"github.com/craftboard/craftboard/internal/platform/dberr"
	"github.com/craftboard/craftboard/internal/project"
	"github.com/craftboard/craftboard/internal/users/account"
)

// # Test Doubles

type fakeRepository struct {
	inserted  []project.Project
	pending   []project.Project
	updateErr error
	deleteErr error

	updates []statusUpdate
	deletes []string
}

type statusUpdate struct {
	id         string
	status     project.Status
	featured   bool
	approvedAt *time.Time
}

func (r *fakeRepository) Insert(ctx context.Context, p *project.Project) error {
	r.inserted = append(r.inserted, *p)
	return nil
}

func (r *fakeRepository) ListApproved(ctx context.Context) ([]project.Project, error) {
	return nil, nil
}

func (r *fakeRepository) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	return nil, nil
}

func (r *fakeRepository) ListPending(ctx context.Context) ([]project.Project, error) {
	return r.pending, nil
}

func (r *fakeRepository) UpdateStatus(ctx context.Context, id string, status project.Status, featured bool, approvedAt *time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, statusUpdate{id, status, featured, approvedAt})
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletes = append(r.deletes, id)
	return nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(ctx context.Context, message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(ctx context.Context, message string) {
	n.errors = append(n.errors, message)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func validSubmission() project.Submission {
	return project.Submission{
		Title:       "Terrain Generator",
		Description: "Procedural landscape generation with erosion simulation.",
		ImageURL:    "https://cdn.example.com/terrain.png",
		ProjectURL:  "https://github.com/alice/terrain",
		Categories:  []string{"graphics", "tools"},
	}
}

func author() account.Author {
	return account.Author{ID: "user-1", Name: "Alice", AvatarURL: "https://cdn.example.com/a.png"}
}

func pendingFixture() []project.Project {
	return []project.Project{
		{ID: "p1", Title: "Terrain Generator", Status: project.StatusPending},
		{ID: "p2", Title: "Chess Engine", Status: project.StatusPending},
	}
}

// # Submission

/*
TestService_Submit verifies that a valid submission is persisted pending and
non-featured regardless of input.
*/
func TestService_Submit(t *testing.T) {
	repository := &fakeRepository{}
	service := project.NewService(repository, &recordingNotifier{}, testLogger())

	created, err := service.Submit(context.Background(), author(), validSubmission())

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, project.StatusPending, created.Status)
	assert.False(t, created.Featured)
	assert.Nil(t, created.ApprovedAt)
	assert.Equal(t, "user-1", created.Author.ID)

	require.Len(t, repository.inserted, 1)
	assert.Equal(t, *created, repository.inserted[0])
}

/*
TestService_Submit_Unauthenticated verifies that an anonymous submission is
refused before validation or persistence.
*/
func TestService_Submit_Unauthenticated(t *testing.T) {
	repository := &fakeRepository{}
	service := project.NewService(repository, &recordingNotifier{}, testLogger())

	_, err := service.Submit(context.Background(), account.Author{}, validSubmission())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHENTICATED", ae.Code)
	assert.Empty(t, repository.inserted)
}

/*
TestService_Submit_Validation verifies field validation on submissions.
*/
func TestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*project.Submission)
	}{
		{"missing_title", func(s *project.Submission) { s.Title = "" }},
		{"missing_description", func(s *project.Submission) { s.Description = "" }},
		{"bad_project_url", func(s *project.Submission) { s.ProjectURL = "ftp://nope" }},
		{"bad_image_url", func(s *project.Submission) { s.ImageURL = "not-a-url" }},
		{"no_categories", func(s *project.Submission) { s.Categories = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &fakeRepository{}
			service := project.NewService(repository, &recordingNotifier{}, testLogger())

			submission := validSubmission()
			tt.mutate(&submission)

			_, err := service.Submit(context.Background(), author(), submission)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, repository.inserted)
		})
	}
}

// # Review

/*
TestService_Review_Approve verifies that approval stamps the timestamp and
featured flag and removes the entry from the cached queue only after the
store confirms.
*/
func TestService_Review_Approve(t *testing.T) {
	repository := &fakeRepository{pending: pendingFixture()}
	notifier := &recordingNotifier{}
	service := project.NewService(repository, notifier, testLogger())

	_, err := service.ListPending(context.Background())
	require.NoError(t, err)

	require.NoError(t, service.Review(context.Background(), "p1", project.Approve(true)))

	require.Len(t, repository.updates, 1)
	update := repository.updates[0]
	assert.Equal(t, "p1", update.id)
	assert.Equal(t, project.StatusApproved, update.status)
	assert.True(t, update.featured)
	require.NotNil(t, update.approvedAt)

	queue := service.PendingQueue()
	require.Len(t, queue, 1)
	assert.Equal(t, "p2", queue[0].ID)

	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Project approved successfully", notifier.successes[0])
}

/*
TestService_Review_Reject verifies that rejection never features and never
stamps an approval timestamp.
*/
func TestService_Review_Reject(t *testing.T) {
	repository := &fakeRepository{pending: pendingFixture()}
	service := project.NewService(repository, &recordingNotifier{}, testLogger())

	_, err := service.ListPending(context.Background())
	require.NoError(t, err)

	require.NoError(t, service.Review(context.Background(), "p2", project.Reject()))

	require.Len(t, repository.updates, 1)
	update := repository.updates[0]
	assert.Equal(t, project.StatusRejected, update.status)
	assert.False(t, update.featured)
	assert.Nil(t, update.approvedAt)
}

/*
TestService_Review_StoreFailure verifies that a failed remote update leaves
the cached queue untouched and emits a failure notification.
*/
func TestService_Review_StoreFailure(t *testing.T) {
	repository := &fakeRepository{
		pending:   pendingFixture(),
		updateErr: errors.New("connection reset"),
	}
	notifier := &recordingNotifier{}
	service := project.NewService(repository, notifier, testLogger())

	_, err := service.ListPending(context.Background())
	require.NoError(t, err)

	err = service.Review(context.Background(), "p1", project.Approve(false))

	require.Error(t, err)
	assert.Len(t, service.PendingQueue(), 2)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Failed to update project status", notifier.errors[0])
}

/*
TestService_Review_AlreadyReviewed verifies that reviewing a project twice
surfaces the store's NotFound and keeps the queue unchanged.
*/
func TestService_Review_AlreadyReviewed(t *testing.T) {
	repository := &fakeRepository{
		pending:   pendingFixture(),
		updateErr: dberr.ErrNotFound,
	}
	service := project.NewService(repository, &recordingNotifier{}, testLogger())

	_, err := service.ListPending(context.Background())
	require.NoError(t, err)

	err = service.Review(context.Background(), "p1", project.Approve(false))

	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrNotFound))
	assert.Len(t, service.PendingQueue(), 2)
}

// # Deletion

/*
TestService_Delete verifies the confirmation gate on destructive deletion.
*/
func TestService_Delete(t *testing.T) {
	repository := &fakeRepository{pending: pendingFixture()}
	service := project.NewService(repository, &recordingNotifier{}, testLogger())

	_, err := service.ListPending(context.Background())
	require.NoError(t, err)

	// 1. Unconfirmed deletion is refused before any remote call.
	err = service.Delete(context.Background(), "p1", false)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFIRMATION_REQUIRED", ae.Code)
	assert.Empty(t, repository.deletes)
	assert.Len(t, service.PendingQueue(), 2)

	// 2. Confirmed deletion removes remotely and from the cached queue.
	require.NoError(t, service.Delete(context.Background(), "p1", true))
	assert.Equal(t, []string{"p1"}, repository.deletes)
	assert.Len(t, service.PendingQueue(), 1)
}

/*
TestService_ModerationFlow runs the full pending → approve-featured cycle.
*/
func TestService_ModerationFlow(t *testing.T) {
	repository := &fakeRepository{}
	notifier := &recordingNotifier{}
	service := project.NewService(repository, notifier, testLogger())

	// 1. A member submits; the project lands pending.
	created, err := service.Submit(context.Background(), author(), validSubmission())
	require.NoError(t, err)

	// 2. The review queue picks it up.
	repository.pending = []project.Project{*created}
	queue, err := service.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)

	// 3. An administrator approves with promotion.
	require.NoError(t, service.Review(context.Background(), created.ID, project.Approve(true)))

	assert.Empty(t, service.PendingQueue())
	require.Len(t, repository.updates, 1)
	assert.True(t, repository.updates[0].featured)
	assert.Equal(t, project.StatusApproved, repository.updates[0].status)
}
