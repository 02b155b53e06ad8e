package diagram

import "strings"

// Indent prefixes every line of s with prefix.
func Indent(s, prefix string) string {
	if s == "" {
		return prefix
	}
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
