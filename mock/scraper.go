package mock

import (
	"context"

	"github.com/fwojciec/jdex"
)

var _ jdex.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of jdex.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, locator string) (*jdex.Javadoc, error)
}

func (s *Scraper) Scrape(ctx context.Context, locator string) (*jdex.Javadoc, error) {
	return s.ScrapeFn(ctx, locator)
}
