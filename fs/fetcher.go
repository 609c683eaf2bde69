package fs

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/jdex"
)

// Ensure Fetcher implements jdex.Fetcher at compile time.
var _ jdex.Fetcher = (*Fetcher)(nil)

// Fetcher reads pages of a Javadoc tree stored on the local filesystem.
// It accepts file:// URLs as well as plain paths.
type Fetcher struct{}

// NewFetcher creates a new filesystem Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the content of the file behind url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := strings.TrimPrefix(url, jdex.FileLocatorPrefix)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", jdex.Errorf(jdex.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
