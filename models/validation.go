// File: /models/validation.go
package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors collects field violations for a single attempt so the
// caller sees every problem at once instead of just the first.
type ValidationErrors map[string][]string

func (ve ValidationErrors) Add(field, message string) {
	ve[field] = append(ve[field], message)
}

// Any reports whether at least one violation was recorded.
func (ve ValidationErrors) Any() bool {
	return len(ve) > 0
}

// On returns the messages recorded for a field, nil when the field is clean.
func (ve ValidationErrors) On(field string) []string {
	return ve[field]
}

func (ve ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, msg := range ve[field] {
			parts = append(parts, fmt.Sprintf("%s %s", field, msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
