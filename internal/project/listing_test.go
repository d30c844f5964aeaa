// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftboard/craftboard/internal/project"
)

func feedFixture() []project.Project {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return []project.Project{
		{ID: "p1", Title: "Terrain Generator", Description: "Procedural landscapes", Categories: []string{"graphics", "tools"}, Likes: 5, CreatedAt: base},
		{ID: "p2", Title: "Chess Engine", Description: "UCI-compatible engine", Categories: []string{"games"}, Likes: 1, CreatedAt: base.Add(time.Hour)},
		{ID: "p3", Title: "Pixel Editor", Description: "Sprite and tile editor", Categories: []string{"graphics"}, Likes: 3, CreatedAt: base.Add(2 * time.Hour)},
	}
}

/*
TestApplyListing_CategoryFilter verifies OR-semantics category filtering and
that an empty selection keeps everything.
*/
func TestApplyListing_CategoryFilter(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		wantIDs    []string
	}{
		{"empty_selection_keeps_all", nil, []string{"p3", "p2", "p1"}},
		{"single_category", []string{"games"}, []string{"p2"}},
		{"intersecting_selection", []string{"games", "tools"}, []string{"p2", "p1"}},
		{"unknown_category", []string{"audio"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := project.ApplyListing(feedFixture(), project.ListingInput{
				Categories: tt.categories,
			})

			ids := make([]string, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

/*
TestApplyListing_TextSearch verifies case-insensitive substring matching over
title and description.
*/
func TestApplyListing_TextSearch(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"matches_title", "chess", []string{"p2"}},
		{"matches_description", "sprite", []string{"p3"}},
		{"case_insensitive", "TERRAIN", []string{"p1"}},
		{"whitespace_only_keeps_all", "   ", []string{"p3", "p2", "p1"}},
		{"no_match", "quantum", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := project.ApplyListing(feedFixture(), project.ListingInput{
				Query: tt.query,
			})

			ids := make([]string, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

/*
TestApplyListing_Sorting verifies the popular and latest orderings.
*/
func TestApplyListing_Sorting(t *testing.T) {
	// Popular: by likes descending (5, 3, 1).
	popular := project.ApplyListing(feedFixture(), project.ListingInput{SortBy: project.SortPopular})
	require.Len(t, popular, 3)
	assert.Equal(t, []string{"p1", "p3", "p2"}, []string{popular[0].ID, popular[1].ID, popular[2].ID})

	// Latest: by creation time descending.
	latest := project.ApplyListing(feedFixture(), project.ListingInput{SortBy: project.SortLatest})
	assert.Equal(t, []string{"p3", "p2", "p1"}, []string{latest[0].ID, latest[1].ID, latest[2].ID})

	// Unknown sort values fall back to latest.
	fallback := project.ApplyListing(feedFixture(), project.ListingInput{SortBy: project.ParseSortOption("weird")})
	assert.Equal(t, "p3", fallback[0].ID)
}

/*
TestApplyListing_Purity verifies that the pipeline never mutates its input
and produces identical output for identical input.
*/
func TestApplyListing_Purity(t *testing.T) {
	input := feedFixture()
	listing := project.ListingInput{Categories: []string{"graphics"}, SortBy: project.SortPopular}

	first := project.ApplyListing(input, listing)
	second := project.ApplyListing(input, listing)

	assert.Equal(t, first, second)

	// The input ordering is untouched even though the output is re-sorted.
	assert.Equal(t, "p1", input[0].ID)
	assert.Equal(t, "p2", input[1].ID)
	assert.Equal(t, "p3", input[2].ID)
}
