package helpers

import "strings"

// SplitComma splits a comma-joined column value into its segments, dropping
// empty segments. Splitting then re-joining is the sole representation for
// semesters, other-lecturer and author lists; no trimming beyond empty-segment
// removal is applied.
func SplitComma(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinComma joins segments into a comma-joined column value, dropping empty
// segments first so a round trip through SplitComma is stable.
func JoinComma(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	return strings.Join(filtered, ",")
}
