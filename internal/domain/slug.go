package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Slug validation errors
var (
	ErrSlugTooShort           = errors.New("slug must be at least 3 characters")
	ErrSlugTooLong            = errors.New("slug must be at most 63 characters")
	ErrSlugInvalidChars       = errors.New("slug must contain only lowercase letters, numbers, and hyphens")
	ErrSlugInvalidStart       = errors.New("slug must start with a lowercase letter")
	ErrSlugInvalidEnd         = errors.New("slug must end with a lowercase letter or number")
	ErrSlugConsecutiveHyphens = errors.New("slug cannot contain consecutive hyphens")
)

// slugRegex validates a properly formatted slug:
// - Starts with lowercase letter
// - Ends with lowercase letter or digit
// - Contains only lowercase letters, digits, and hyphens
var slugRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

// ValidateSlug validates a page path slug:
// - 3-63 characters
// - Lowercase alphanumeric + hyphens only
// - Must start with a lowercase letter
// - Must end with a lowercase letter or digit
// - No consecutive hyphens
func ValidateSlug(slug string) error {
	if len(slug) < 3 {
		return ErrSlugTooShort
	}
	if len(slug) > 63 {
		return ErrSlugTooLong
	}

	if strings.Contains(slug, "--") {
		return ErrSlugConsecutiveHyphens
	}

	if !slugRegex.MatchString(slug) {
		firstChar := rune(slug[0])
		if !unicode.IsLower(firstChar) || !unicode.IsLetter(firstChar) {
			return ErrSlugInvalidStart
		}

		lastChar := rune(slug[len(slug)-1])
		if !unicode.IsLower(lastChar) && !unicode.IsDigit(lastChar) {
			return ErrSlugInvalidEnd
		}

		return ErrSlugInvalidChars
	}

	return nil
}

// GenerateSlug turns a page identifier or title into a URL path segment.
// "AthleteSignup" and "Athlete Signup" both become "athlete-signup".
// Rules:
// - Splits CamelCase words
// - Replaces spaces and underscores with hyphens
// - Removes invalid characters
// - Collapses consecutive hyphens
// - Ensures it starts with a letter
// - Truncates to 63 characters
func GenerateSlug(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	slug := b.String()

	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")

	var result strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}
	slug = result.String()

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	slug = strings.Trim(slug, "-")

	// Remove leading digits and hyphens
	for len(slug) > 0 && !(slug[0] >= 'a' && slug[0] <= 'z') {
		slug = slug[1:]
	}

	if len(slug) > 63 {
		slug = slug[:63]
	}

	return strings.TrimRight(slug, "-")
}
