// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftboard/craftboard/pkg/slice"
)

/*
TestMap verifies element-wise transformation.
*/
func TestMap(t *testing.T) {
	doubled := slice.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	assert.Nil(t, slice.Map(nil, func(n int) int { return n }))
}

/*
TestFilter verifies predicate-based selection.
*/
func TestFilter(t *testing.T) {
	even := slice.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	none := slice.Filter([]int{1, 3}, func(n int) bool { return n%2 == 0 })
	assert.Empty(t, none)
}

/*
TestIntersects verifies common-element detection.
*/
func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want bool
	}{
		{"shared_element", []string{"graphics", "tools"}, []string{"tools"}, true},
		{"disjoint", []string{"graphics"}, []string{"games"}, false},
		{"empty_left", nil, []string{"games"}, false},
		{"empty_right", []string{"games"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slice.Intersects(tt.a, tt.b))
		})
	}
}
