// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

// Package query provides helpers for parsing multi-value URL query parameters.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Flag reports whether a query value is an affirmative boolean
// ("true", "1", "yes", case-insensitive).
func Flag(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
