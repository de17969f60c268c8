package shared

import (
	"crypto/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PublicIDLength is the length of generated public identifiers
const PublicIDLength = 10

const publicIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var publicIDPattern = regexp.MustCompile(`^[a-z0-9]{1,32}$`)

// Slugify converts a free-text title into a URL-safe slug.
// Diacritics are folded to their ASCII base (including the Vietnamese đ/Đ,
// which does not decompose under NFD), everything outside [a-z0-9- ] is
// dropped, whitespace runs become a single hyphen, repeated hyphens
// collapse, and leading/trailing hyphens are trimmed.
// The result matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, "đ", "d")
	s = norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	s = strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// SlugWithID builds the public URL slug for an entity: the slugified title
// with the entity's public id appended after a hyphen. The id is passed
// through verbatim and must be hyphen-free or SlugID cannot recover it.
// A title that sanitizes to nothing yields just the id.
func SlugWithID(title, id string) string {
	prefix := Slugify(title)
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// SlugID extracts the entity id embedded in a slug: the substring after
// the last hyphen, or the whole input when no hyphen exists.
func SlugID(slug string) string {
	if idx := strings.LastIndex(slug, "-"); idx >= 0 {
		return slug[idx+1:]
	}
	return slug
}

// NewPublicID generates a hyphen-free base36 identifier suitable for
// embedding in slugs.
func NewPublicID() string {
	buf := make([]byte, PublicIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic("shared: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = publicIDAlphabet[int(b)%len(publicIDAlphabet)]
	}
	return string(buf)
}

// ValidatePublicID rejects identifiers that could not round-trip through
// SlugWithID/SlugID (in particular anything containing a hyphen).
func ValidatePublicID(id string) error {
	if !publicIDPattern.MatchString(id) {
		return NewDomainError("INVALID_PUBLIC_ID", "Public id must be lowercase alphanumeric with no hyphens")
	}
	return nil
}
