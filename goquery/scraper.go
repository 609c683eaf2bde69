// Package goquery implements jdex.Scraper for standard Javadoc HTML using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/jdex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of type pages fetched at once.
const DefaultConcurrency = 4

// Ensure Scraper implements jdex.Scraper at compile time.
var _ jdex.Scraper = (*Scraper)(nil)

// Scraper reads a Javadoc tree by fetching its all-classes page and then
// every type page it lists.
type Scraper struct {
	// Remote fetches http(s) locators.
	Remote jdex.Fetcher

	// Local fetches file:// locators.
	Local jdex.Fetcher

	// Concurrency bounds concurrent page fetches.
	Concurrency int
}

// NewScraper returns a Scraper using the given fetchers.
func NewScraper(remote, local jdex.Fetcher, concurrency int) *Scraper {
	return &Scraper{Remote: remote, Local: local, Concurrency: concurrency}
}

// Scrape fetches and parses the Javadoc rooted at locator. Any failed page
// fails the whole scrape.
func (s *Scraper) Scrape(ctx context.Context, locator string) (*jdex.Javadoc, error) {
	fetcher := s.Remote
	if strings.HasPrefix(locator, jdex.FileLocatorPrefix) {
		fetcher = s.Local
	}
	if fetcher == nil {
		return nil, jdex.Errorf(jdex.EINVALID, "no fetcher for locator %q", locator)
	}

	index := indexURL(locator)
	html, err := fetcher.Fetch(ctx, index)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", index, err)
	}

	links, err := ExtractClassLinks(html, index)
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	objects := make([]*jdex.Object, len(links))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			page, err := fetcher.Fetch(gctx, link.URL)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", link.URL, err)
			}
			obj, err := ParseClassPage(page, link)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", link.URL, err)
			}
			objects[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &jdex.Javadoc{Objects: objects}, nil
}
