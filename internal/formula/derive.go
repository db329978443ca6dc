package formula

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ErrPatternMismatch is returned when a URL does not contain a required
// substring pattern. Callers match it with errors.Is.
var ErrPatternMismatch = errors.New("pattern mismatch")

var (
	repoPattern    = regexp.MustCompile(`(github\.com/[^/]+/[^/]+)/`)
	versionPattern = regexp.MustCompile(`/tags/([^/]+)\.tar\.gz$`)
)

// ToPascalCase converts a kebab-case string to PascalCase. Empty segments
// from consecutive hyphens are skipped.
func ToPascalCase(kebab string) string {
	var sb strings.Builder

	for _, word := range strings.Split(kebab, "-") {
		if word == "" {
			continue
		}

		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}

	return sb.String()
}

// ExtractRepo returns the github.com/<owner>/<repo> portion of a GitHub URL.
func ExtractRepo(url string) (string, error) {
	matches := repoPattern.FindStringSubmatch(url)
	if matches == nil {
		return "", fmt.Errorf("no github.com/<owner>/<repo> segment in url %q: %w", url, ErrPatternMismatch)
	}

	return matches[1], nil
}

// ExtractVersion returns the <version> from a URL ending in /tags/<version>.tar.gz.
func ExtractVersion(url string) (string, error) {
	matches := versionPattern.FindStringSubmatch(url)
	if matches == nil {
		return "", fmt.Errorf("url %q does not end with /tags/<version>.tar.gz: %w", url, ErrPatternMismatch)
	}

	return matches[1], nil
}
