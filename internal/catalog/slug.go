// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents returns a new transformer on every call; transform chains
// carry state and must not be shared between goroutines.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify lowercases s, strips accents, and collapses every run of
// characters outside [a-z0-9] into a single hyphen. Leading and trailing
// hyphens are dropped, so the result may be empty.
//
//	Slugify("Vino Élite")        // "vino-elite"
//	Slugify("  Rosé -- 2024! ")  // "rose-2024"
func Slugify(s string) string {
	folded, _, err := transform.String(stripAccents(), strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// NormalizeSlugParam prepares a route parameter for a slug lookup: it trims
// and lowercases the value, percent-encodes it the way browsers encode a URI
// component, and lowercases the escapes. Blank input yields "".
func NormalizeSlugParam(param string) string {
	normalized := strings.ToLower(strings.TrimSpace(param))
	if normalized == "" {
		return ""
	}
	return strings.ToLower(encodeURIComponent(normalized))
}

// encodeURIComponent escapes every byte except ASCII letters, digits, and
// -_.!~*'().
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
