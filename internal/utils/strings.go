package utils

import (
	"strings"
)

// TrimOrEmpty strips surrounding whitespace so a blank field reads as empty.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// SplitCommaList splits a comma separated string, trimming entries and
// dropping empty ones. Order is preserved.
func SplitCommaList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinCommaList is the inverse of SplitCommaList.
func JoinCommaList(items []string) string {
	return strings.Join(SplitCommaList(strings.Join(items, ",")), ",")
}
