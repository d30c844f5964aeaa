// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftboard/craftboard/pkg/slug"
)

/*
TestFrom verifies the Unicode-to-ASCII slug pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Craftboard Community Update", "craftboard-community-update"},
		{"accents_removed", "Café Résumé", "cafe-resume"},
		{"punctuation_collapsed", "What's new?! (March)", "what-s-new-march"},
		{"leading_trailing_trimmed", "  --Hello--  ", "hello"},
		{"digits_kept", "Top 10 Projects of 2026", "top-10-projects-of-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
