package textutil

import (
	"sort"
	"strings"
)

// DistinctSorted trims every value, drops empty or whitespace-only entries,
// deduplicates the remainder (case-sensitive after trim), and returns the
// result sorted ascending. The input slice is never modified.
func DistinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	sort.Strings(out)
	return out
}
