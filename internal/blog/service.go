// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftboard/craftboard/internal/platform/apperr"
	"github.com/craftboard/craftboard/internal/platform/notify"
	"github.com/craftboard/craftboard/internal/platform/validate"
	"github.com/craftboard/craftboard/internal/users/account"
	"github.com/craftboard/craftboard/pkg/slug"
	"github.com/craftboard/craftboard/pkg/uuid"
)

// Service implements blog use cases.
type Service struct {
	repository Repository
	notifier   notify.Notifier
	logger     *slog.Logger

	// now is injectable for deterministic timestamps in tests.
	now func() time.Time
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

// ListPublished returns all published posts, newest first.
func (service *Service) ListPublished(context context.Context) ([]Post, error) {
	return service.repository.ListPublished(context)
}

// ListAll returns every post including drafts, newest first.
func (service *Service) ListAll(context context.Context) ([]Post, error) {
	return service.repository.ListAll(context)
}

/*
GetPublished loads one post by its public slug.

Description: Drafts are invisible to the public surface — a draft slug yields
the same NotFound as a slug that never existed.

Parameters:
  - context: context.Context
  - postSlug: string

Returns:
  - *Post: The published post
  - error: NotFound or persistence errors
*/
func (service *Service) GetPublished(context context.Context, postSlug string) (*Post, error) {
	post, err := service.repository.FindBySlug(context, postSlug)
	if err != nil {
		return nil, fmt.Errorf("blog_service_get_published_failed: %w", err)
	}

	if post.Status != StatusPublished {
		return nil, apperr.NotFound("Blog post not found")
	}

	return post, nil
}

// GetBySlug loads one post by slug regardless of status, for editors.
func (service *Service) GetBySlug(context context.Context, postSlug string) (*Post, error) {
	return service.repository.FindBySlug(context, postSlug)
}

/*
Create validates a draft and persists a new post.

Description: The slug is derived from the title exactly once, here. A title
collision surfaces as a Conflict from the unique slug index.

Parameters:
  - context: context.Context
  - author: The writing administrator's identity
  - draft: Draft fields

Returns:
  - *Post: The created post (draft or published per draft.Publish)
  - error: Validation, Conflict, or persistence errors
*/
func (service *Service) Create(context context.Context, author account.Author, draft Draft) (*Post, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	status := StatusDraft
	if draft.Publish {
		status = StatusPublished
	}

	now := service.now()
	created := &Post{
		ID:        uuid.New(),
		Title:     draft.Title,
		Excerpt:   draft.Excerpt,
		Body:      draft.Body,
		Slug:      slug.From(draft.Title),
		Author:    author,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repository.Insert(context, created); err != nil {
		service.notifier.Error(context, "Failed to create blog post")
		return nil, err
	}

	service.notifier.Success(context, "Blog post created successfully")
	return created, nil
}

/*
Update rewrites an existing post's content.

Description: The slug is deliberately left untouched so published URLs stay
stable across edits. draft.Publish moves a draft to published; publishing is
one-way here, unpublishing is not offered.

Parameters:
  - context: context.Context
  - postSlug: Slug of the post to edit
  - draft: Replacement fields

Returns:
  - *Post: The updated post
  - error: Validation, NotFound, or persistence errors
*/
func (service *Service) Update(context context.Context, postSlug string, draft Draft) (*Post, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	post, err := service.repository.FindBySlug(context, postSlug)
	if err != nil {
		return nil, fmt.Errorf("blog_service_update_failed: %w", err)
	}

	post.Title = draft.Title
	post.Excerpt = draft.Excerpt
	post.Body = draft.Body
	if draft.Publish {
		post.Status = StatusPublished
	}
	post.UpdatedAt = service.now()

	if err := service.repository.Update(context, post); err != nil {
		service.notifier.Error(context, "Failed to update blog post")
		return nil, err
	}

	service.notifier.Success(context, "Blog post updated successfully")
	return post, nil
}

/*
Delete removes a post permanently.

Description: Destructive and irreversible — the confirmed flag must carry the
user's explicit acknowledgement, otherwise the request is refused before any
remote call.

Parameters:
  - context: context.Context
  - postID: string
  - confirmed: Whether the user acknowledged the confirmation prompt

Returns:
  - error: ConfirmationRequired, NotFound, or persistence errors
*/
func (service *Service) Delete(context context.Context, postID string, confirmed bool) error {
	if !confirmed {
		return apperr.ConfirmationRequired("Deleting a blog post must be confirmed")
	}

	if err := service.repository.Delete(context, postID); err != nil {
		service.notifier.Error(context, "Failed to delete blog post")
		return err
	}

	service.notifier.Success(context, "Blog post deleted successfully")
	return nil
}

// validateDraft checks the author-provided fields shared by create and update.
func validateDraft(draft Draft) error {
	validator := &validate.Validator{}
	return validator.
		Required("title", draft.Title).
		MaxLen("title", draft.Title, 160).
		Required("excerpt", draft.Excerpt).
		MaxLen("excerpt", draft.Excerpt, 400).
		Required("body", draft.Body).
		Err()
}
