// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package blog

import (
	"context"
)

// Repository is the typed gateway to the remote store for blog posts.
type Repository interface {
	// Insert persists a new post.
	Insert(context context.Context, post *Post) error

	// ListPublished returns all published posts, newest first.
	ListPublished(context context.Context) ([]Post, error)

	// ListAll returns every post regardless of status, newest first.
	ListAll(context context.Context) ([]Post, error)

	// FindBySlug returns one post addressed by its public slug.
	FindBySlug(context context.Context, slug string) (*Post, error)

	// Update rewrites the mutable fields of an existing post.
	Update(context context.Context, post *Post) error

	// Delete removes a post. Returns dberr.ErrNotFound when absent.
	Delete(context context.Context, id string) error
}
