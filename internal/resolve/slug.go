package resolve

import "strings"

// Slug derives the URL slug for a display name: lowercase, with every run of
// non-alphanumeric characters (whitespace, punctuation) collapsed to a single
// hyphen, so "Asta 1.2 Petrol" becomes "asta-1-2-petrol". The same function
// interprets incoming path segments and generates outgoing links, so slugs
// round-trip. It is idempotent: a slug contains nothing left to replace.
//
// The derivation is lossy for punctuated names; resolution never reverses a
// slug, it re-derives and compares.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
