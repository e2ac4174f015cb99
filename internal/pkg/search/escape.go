// Package search provides helpers for building safe SQL search patterns.
package search

import "strings"

// EscapeILIKE escapes ILIKE wildcard characters in the keyword and wraps it
// in %...% for substring matching. Without escaping, a user-supplied "%" or
// "_" would change the match semantics.
func EscapeILIKE(keyword string) string {
	escaped := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	).Replace(keyword)
	return "%" + escaped + "%"
}
