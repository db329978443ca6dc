// Package formula holds the formula configuration and the pure string
// derivations used to fill a formula template.
package formula

import (
	"context"
	"fmt"
)

// Config describes a single formula to generate. Values are read from the
// brewgen configuration file once at startup and never mutated.
type Config struct {
	AppName     string // kebab-case identifier, also the output file name
	Description string
	Homepage    string
	URL         string // GitHub tags-archive URL, e.g. .../archive/refs/tags/v1.tar.gz
	GoVersion   string
}

// Hasher computes the SHA-256 of a remote file. Implemented by fetch.Client;
// tests inject fakes.
type Hasher interface {
	ChecksumURL(ctx context.Context, url string) (string, error)
}

// Token names recognized in formula templates. The replacement mapping always
// contains exactly these keys.
const (
	TokenClassName   = "CLASS_NAME"
	TokenDescription = "DESCRIPTION"
	TokenHomepage    = "HOMEPAGE"
	TokenURL         = "URL"
	TokenSHA256      = "SHA256"
	TokenRepo        = "REPO"
	TokenGoVersion   = "GO_VERSION"
	TokenAppName     = "APP_NAME"
	TokenVersion     = "VERSION"
)

// Replacements builds the full token replacement mapping for the formula.
// The archive is downloaded and hashed through the given hasher; repo and
// version are derived from the configured URL.
func (c Config) Replacements(ctx context.Context, hasher Hasher) (map[string]string, error) {
	repo, err := ExtractRepo(c.URL)
	if err != nil {
		return nil, err
	}

	version, err := ExtractVersion(c.URL)
	if err != nil {
		return nil, err
	}

	sha, err := hasher.ChecksumURL(ctx, c.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to checksum %s: %w", c.URL, err)
	}

	return map[string]string{
		TokenClassName:   ToPascalCase(c.AppName),
		TokenDescription: c.Description,
		TokenHomepage:    c.Homepage,
		TokenURL:         c.URL,
		TokenSHA256:      sha,
		TokenRepo:        repo,
		TokenGoVersion:   c.GoVersion,
		TokenAppName:     c.AppName,
		TokenVersion:     version,
	}, nil
}
