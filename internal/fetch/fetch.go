// Package fetch downloads remote files and computes their content hashes.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
)

// Client downloads files over HTTP(S).
type Client struct {
	HTTPClient *http.Client
}

// New creates a Client with default settings. No timeout is set on the
// client; cancellation happens through the request context.
func New() *Client {
	return &Client{
		HTTPClient: &http.Client{},
	}
}

// ChecksumURL downloads the file at url to a temporary location and returns
// the lowercase hex SHA-256 of its contents. The temporary file is removed on
// every exit path.
func (c *Client) ChecksumURL(ctx context.Context, url string) (string, error) {
	tmp, err := os.CreateTemp("", "brewgen-*.download")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	size, err := c.download(ctx, url, tmp)
	if err != nil {
		return "", err
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind download of %s: %w", url, err)
	}

	h := sha256.New()
	if _, err := io.Copy(h, tmp); err != nil {
		return "", fmt.Errorf("failed to hash download of %s: %w", url, err)
	}

	sum := hex.EncodeToString(h.Sum(nil))

	log.Debug().
		Str("url", url).
		Int64("bytes", size).
		Str("sha256", sum).
		Msg("downloaded and hashed")

	return sum, nil
}

func (c *Client) download(ctx context.Context, url string, dst io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("failed to download %s: status %d", url, resp.StatusCode)
	}

	size, err := io.Copy(dst, resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", url, err)
	}

	return size, nil
}
