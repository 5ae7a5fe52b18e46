// Package skills implements the client-side skill ledger: categorized,
// deduplicated skill records reconciled between manual entry, resume
// extraction, and the backend's persisted state.
package skills

import "strings"

// Normalize canonicalizes a skill display name for identity comparison.
// It trims surrounding whitespace and case-folds, so "  Python " and
// "python" share one identity. This is the sole equality test used for
// duplicate detection in the ledger.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
