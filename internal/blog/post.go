// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

/*
Package blog implements the editorial blog.

Posts are written by administrators, addressed publicly by slug, and carry a
draft/published state. Slugs are derived from the title at creation time and
stay stable afterwards so published URLs never break.
*/
package blog

import (
	"time"

	"github.com/craftboard/craftboard/internal/users/account"
)

// Status is the publication state of a post.
type Status string

const (
	// StatusDraft is visible only to administrators.
	StatusDraft Status = "draft"

	// StatusPublished is publicly listed and readable.
	StatusPublished Status = "published"
)

// Post represents a blog article.
type Post struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt"`
	Body      string         `json:"body"`
	Slug      string         `json:"slug"`
	Author    account.Author `json:"author"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Draft holds the author-provided fields of a new or edited post.
type Draft struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Body    string `json:"body"`
	Publish bool   `json:"publish"`
}
