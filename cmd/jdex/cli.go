package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/cache"
	"github.com/fwojciec/jdex/search"
)

// Syncer brings the cache up to date and returns every loaded index.
type Syncer interface {
	Sync(ctx context.Context, sources []*jdex.Source) ([]cache.SourceIndex, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Sources  []*jdex.Source
	Resolver *cache.Resolver
	Syncer   Syncer
	Runs     jdex.RunService
	Catalog  *search.Catalog
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" env:"JDEX_CONFIG" help:"Path to the configuration file (default: jdex.yaml)"`
	DB     string `env:"JDEX_DB" help:"Path to the run ledger database (default: <root>/jdex.db)"`
	Debug  bool   `help:"Enable debug logging"`

	Sync   SyncCmd   `cmd:"" help:"Scrape every stale or missing source"`
	Status StatusCmd `cmd:"" help:"Show cache state and last run of every source"`
	Search SearchCmd `cmd:"" help:"Search a source's index"`
	Show   ShowCmd   `cmd:"" help:"Print the documentation of the best match"`
	Browse BrowseCmd `cmd:"" help:"Search a source interactively"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Source string `arg:"" help:"Source ID (name or group@name)"`
	Query  string `arg:"" optional:"" help:"Query; empty lists recent and first entries"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Source string `arg:"" help:"Source ID (name or group@name)"`
	Query  string `arg:"" help:"Query"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Source string `arg:"" help:"Source ID (name or group@name)"`
}
