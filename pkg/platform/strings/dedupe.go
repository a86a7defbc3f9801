// Package strings provides string manipulation utilities.
package strings

import (
	"sort"
	"strings"
)

// DistinctNonBlank removes duplicates and whitespace-only entries from a
// slice. Values are compared exactly (no trimming); order is preserved.
//
// Example:
//
//	DistinctNonBlank([]string{"Energy", " ", "Energy", "energy"})
//	// Returns: []string{"Energy", "energy"}
func DistinctNonBlank(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}

// SortedDistinct is DistinctNonBlank followed by an ascending byte-wise sort.
func SortedDistinct(values []string) []string {
	result := DistinctNonBlank(values)
	sort.Strings(result)
	return result
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
