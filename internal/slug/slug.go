// Package slug canonicalizes free-form path-like strings into the
// restricted URL-safe form used for routes and output directories.
package slug

import (
	"strings"
)

// Segments that would collide with generated infrastructure in the
// output tree and therefore may not appear as the first segment of a
// user-supplied slug.
var reservedSegments = map[string]struct{}{
	"static":   {},
	"category": {},
}

// Normalize canonicalizes raw into a slug containing only lowercase
// alphanumerics, '-', and '/' as segment separator. Normalization is
// total: any input maps to some slug, possibly the empty string.
// Callers decide what an empty slug means.
func Normalize(raw string) string {
	raw = strings.Trim(strings.TrimSpace(raw), "/")
	if raw == "" {
		return ""
	}

	parts := strings.Split(raw, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if seg := normalizeSegment(part); seg != "" {
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, "/")
}

// ReservedSegment reports whether the slug's leading segment is reserved
// for generated output, returning the offending segment.
func ReservedSegment(slug string) (string, bool) {
	head, _, _ := strings.Cut(slug, "/")
	if _, ok := reservedSegments[head]; ok {
		return head, true
	}
	return "", false
}

func normalizeSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		// Whitespace runs and disallowed characters both map to '-';
		// the dash-collapse pass below merges the runs.
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	return strings.Trim(collapseDashes(b.String()), "-")
}

func collapseDashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			if prevDash {
				continue
			}
			prevDash = true
		} else {
			prevDash = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
