// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

/*
Package project implements the community project showcase.

Members submit projects (links with metadata), administrators review them, and
approved projects surface on the public feed. The lifecycle is deliberately
small:

	pending ──► approved (optionally featured)
	pending ──► rejected

Both outcomes are terminal; nothing reopens a reviewed project. The featured
flag exists only on approved projects and is settable only at approval time.

# Architecture

  - Entities: Project, Submission, Decision.
  - Repository: The typed gateway to the relational store.
  - Service: The moderation engine and its in-memory pending queue.
  - Listing: The pure filter/search/sort pipeline over approved projects.
*/
package project

import (
	"time"

	"github.com/craftboard/craftboard/internal/users/account"
)

// # Lifecycle States

// Status is the moderation state of a project.
type Status string

const (
	// StatusPending awaits administrator review.
	StatusPending Status = "pending"

	// StatusApproved is terminal; the project is publicly visible.
	StatusApproved Status = "approved"

	// StatusRejected is terminal; the project is never shown.
	StatusRejected Status = "rejected"
)

// # Domain Entities

// Project represents a community submission.
//
// Invariants maintained by the moderation engine:
//   - Featured implies Status == StatusApproved.
//   - ApprovedAt is non-nil iff Status == StatusApproved.
type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	ProjectURL  string         `json:"project_url"`
	Categories  []string       `json:"categories"`
	Author      account.Author `json:"author"`
	Status      Status         `json:"status"`
	Featured    bool           `json:"featured"`
	Likes       int            `json:"likes"`
	Comments    int            `json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty"`
}

// Submission holds the member-provided fields of a new project.
type Submission struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	ProjectURL  string   `json:"project_url"`
	Categories  []string `json:"categories"`
}

// # Review Decisions

// Decision is the outcome of an administrator review.
//
// The constructors are the only way to build one, which makes the combination
// "rejected and featured" unrepresentable.
type Decision struct {
	status   Status
	featured bool
}

// Approve builds an approval decision, optionally promoting the project.
func Approve(featured bool) Decision {
	return Decision{status: StatusApproved, featured: featured}
}

// Reject builds a rejection decision. Rejected projects are never featured.
func Reject() Decision {
	return Decision{status: StatusRejected}
}

// Status returns the terminal state this decision assigns.
func (d Decision) Status() Status { return d.status }

// Featured reports whether the decision promotes the project.
func (d Decision) Featured() bool { return d.featured }

// Approved reports whether this is an approval.
func (d Decision) Approved() bool { return d.status == StatusApproved }
