package models

import "strings"

// NormalizeKey maps a free-form muscle-group or equipment string to the
// form used for comparison: trimmed and case-folded. Display strings keep
// their original casing; this one rule is applied everywhere two such
// strings are matched, so "Upper Body", "upper body" and " UPPER BODY "
// all hit the same catalog bucket.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeKeys applies NormalizeKey to each element and returns the
// result as a set.
func NormalizeKeys(raws []string) map[string]bool {
	set := make(map[string]bool, len(raws))
	for _, r := range raws {
		set[NormalizeKey(r)] = true
	}
	return set
}
