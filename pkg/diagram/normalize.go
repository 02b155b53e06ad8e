package diagram

import "strings"

// NormalizeID converts display text into a rendering-safe identifier.
//
// Letters, digits, '_', '.' and '-' are kept, every other character (one per
// rune) becomes '_', and ASCII letters are lowercased. The function is pure and
// idempotent.
func NormalizeID(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
