// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project

import (
	"sort"
	"strings"

	"github.com/craftboard/craftboard/pkg/slice"
)

// # Sort Options

// SortOption selects the ordering of the public feed.
type SortOption string

const (
	// SortLatest orders by creation time, newest first.
	SortLatest SortOption = "latest"

	// SortPopular orders by like count, highest first.
	SortPopular SortOption = "popular"
)

// ParseSortOption maps a raw query value to a [SortOption], defaulting to latest.
func ParseSortOption(raw string) SortOption {
	if SortOption(raw) == SortPopular {
		return SortPopular
	}
	return SortLatest
}

// # Listing Pipeline

// ListingInput bundles the three feed controls.
type ListingInput struct {
	// Categories keeps projects whose category set intersects the selection.
	// An empty selection keeps everything.
	Categories []string

	// Query keeps projects whose title or description contains it,
	// case-insensitively. An empty query keeps everything.
	Query string

	// SortBy selects the final ordering.
	SortBy SortOption
}

// ApplyListing runs the filter → search → sort pipeline over a collection of
// approved projects.
//
// # Purity
//
// The input slice is never mutated; the result is a fresh slice. Running the
// pipeline twice on identical inputs yields identical outputs. Ties keep
// their input order (stable sort).
func ApplyListing(projects []Project, input ListingInput) []Project {

	// 1. Category filter: OR across the selected categories.
	filtered := slice.Filter(projects, func(p Project) bool {
		if len(input.Categories) == 0 {
			return true
		}
		return slice.Intersects(p.Categories, input.Categories)
	})

	// 2. Text filter: case-insensitive substring on title or description.
	if query := strings.ToLower(strings.TrimSpace(input.Query)); query != "" {
		filtered = slice.Filter(filtered, func(p Project) bool {
			return strings.Contains(strings.ToLower(p.Title), query) ||
				strings.Contains(strings.ToLower(p.Description), query)
		})
	}

	// Copy before sorting so the caller's slice is never reordered.
	result := make([]Project, len(filtered))
	copy(result, filtered)

	// 3. Sort.
	switch input.SortBy {
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Likes > result[j].Likes
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}
