package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jdex"
)

// Ensure LoggingScraper implements jdex.Scraper.
var _ jdex.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   jdex.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next jdex.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, locator string) (doc *jdex.Javadoc, err error) {
	defer func(begin time.Time) {
		var objects int
		if doc != nil {
			objects = len(doc.Objects)
		}
		s.logger.Info("scrape",
			"locator", locator,
			"objects", objects,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, locator)
}
