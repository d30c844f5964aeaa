// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package blog_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftboard/craftboard/internal/blog"
	"github.com/craftboard/craftboard/internal/platform/apperr"
	"github.com/craftboard/craftboard/internal/platform/dberr"
	"github.com/craftboard/craftboard/internal/users/account"
)

// # Test Doubles

type fakeRepository struct {
	posts map[string]*blog.Post // keyed by slug

	inserted []blog.Post
	updated  []blog.Post
	deleted  []string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[string]*blog.Post)}
}

func (r *fakeRepository) Insert(ctx context.Context, post *blog.Post) error {
	if _, exists := r.posts[post.Slug]; exists {
		return apperr.Conflict("Resource already exists")
	}
	clone := *post
	r.posts[post.Slug] = &clone
	r.inserted = append(r.inserted, clone)
	return nil
}

func (r *fakeRepository) ListPublished(ctx context.Context) ([]blog.Post, error) {
	result := make([]blog.Post, 0)
	for _, post := range r.posts {
		if post.Status == blog.StatusPublished {
			result = append(result, *post)
		}
	}
	return result, nil
}

func (r *fakeRepository) ListAll(ctx context.Context) ([]blog.Post, error) {
	result := make([]blog.Post, 0)
	for _, post := range r.posts {
		result = append(result, *post)
	}
	return result, nil
}

func (r *fakeRepository) FindBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	post, ok := r.posts[slug]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (r *fakeRepository) Update(ctx context.Context, post *blog.Post) error {
	for slug, existing := range r.posts {
		if existing.ID == post.ID {
			clone := *post
			r.posts[slug] = &clone
			r.updated = append(r.updated, clone)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	for slug, existing := range r.posts {
		if existing.ID == id {
			delete(r.posts, slug)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return dberr.ErrNotFound
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

func editor() account.Author {
	return account.Author{ID: "admin-1", Name: "Morgan", AvatarURL: ""}
}

func validDraft() blog.Draft {
	return blog.Draft{
		Title:   "Craftboard Community Update",
		Excerpt: "What shipped this month.",
		Body:    "A longer write-up of everything the community released.",
		Publish: true,
	}
}

// # Creation

/*
TestService_Create verifies slug derivation and publication state on new posts.
*/
func TestService_Create(t *testing.T) {
	repository := newFakeRepository()
	service := blog.NewService(repository, &recordingNotifier{}, testLogger())

	created, err := service.Create(context.Background(), editor(), validDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "craftboard-community-update", created.Slug)
	assert.Equal(t, blog.StatusPublished, created.Status)
	assert.Equal(t, "admin-1", created.Author.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	require.Len(t, repository.inserted, 1)
}

/*
TestService_Create_Draft verifies that Publish=false yields a hidden draft.
*/
func TestService_Create_Draft(t *testing.T) {
	repository := newFakeRepository()
	service := blog.NewService(repository, &recordingNotifier{}, testLogger())

	draft := validDraft()
	draft.Publish = false

	created, err := service.Create(context.Background(), editor(), draft)

	require.NoError(t, err)
	assert.Equal(t, blog.StatusDraft, created.Status)

	// Drafts are invisible to the public surface.
	_, err = service.GetPublished(context.Background(), created.Slug)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_Create_Validation verifies that incomplete drafts are refused
before persistence.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*blog.Draft)
	}{
		{"missing_title", func(d *blog.Draft) { d.Title = "" }},
		{"missing_excerpt", func(d *blog.Draft) { d.Excerpt = "" }},
		{"missing_body", func(d *blog.Draft) { d.Body = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := newFakeRepository()
			service := blog.NewService(repository, &recordingNotifier{}, testLogger())

			draft := validDraft()
			tt.mutate(&draft)

			_, err := service.Create(context.Background(), editor(), draft)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, repository.inserted)
		})
	}
}

// # Retrieval

/*
TestService_GetPublished verifies slug addressing of published posts.
*/
func TestService_GetPublished(t *testing.T) {
	repository := newFakeRepository()
	service := blog.NewService(repository, &recordingNotifier{}, testLogger())

	created, err := service.Create(context.Background(), editor(), validDraft())
	require.NoError(t, err)

	found, err := service.GetPublished(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = service.GetPublished(context.Background(), "no-such-post")
	require.Error(t, err)
}

// # Editing

/*
TestService_Update verifies that edits keep the slug stable and can publish a
draft one-way.
*/
func TestService_Update(t *testing.T) {
	repository := newFakeRepository()
	notifier := &recordingNotifier{}
	service := blog.NewService(repository, notifier, testLogger())

	draft := validDraft()
	draft.Publish = false
	created, err := service.Create(context.Background(), editor(), draft)
	require.NoError(t, err)

	edited := blog.Draft{
		Title:   "A Completely Different Title",
		Excerpt: created.Excerpt,
		Body:    "Revised body.",
		Publish: true,
	}

	updated, err := service.Update(context.Background(), created.Slug, edited)

	require.NoError(t, err)
	assert.Equal(t, "A Completely Different Title", updated.Title)
	assert.Equal(t, created.Slug, updated.Slug, "published URLs must stay stable across edits")
	assert.Equal(t, blog.StatusPublished, updated.Status)
	require.Len(t, repository.updated, 1)
}

// # Deletion

/*
TestService_Delete verifies the confirmation gate on destructive deletion.
*/
func TestService_Delete(t *testing.T) {
	repository := newFakeRepository()
	service := blog.NewService(repository, &recordingNotifier{}, testLogger())

	created, err := service.Create(context.Background(), editor(), validDraft())
	require.NoError(t, err)

	// 1. Unconfirmed deletion is refused before any remote call.
	err = service.Delete(context.Background(), created.ID, false)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFIRMATION_REQUIRED", ae.Code)
	assert.Empty(t, repository.deleted)

	// 2. Confirmed deletion removes the post.
	require.NoError(t, service.Delete(context.Background(), created.ID, true))
	assert.Equal(t, []string{created.ID}, repository.deleted)
}
