package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/cache"
	"github.com/fwojciec/jdex/config"
	"github.com/fwojciec/jdex/format"
	"github.com/fwojciec/jdex/fs"
	"github.com/fwojciec/jdex/fuzzy"
	"github.com/fwojciec/jdex/goquery"
	"github.com/fwojciec/jdex/htmltomarkdown"
	jdexhttp "github.com/fwojciec/jdex/http"
	"github.com/fwojciec/jdex/scrape"
	"github.com/fwojciec/jdex/search"
	jdexslog "github.com/fwojciec/jdex/slog"
	"github.com/fwojciec/jdex/sqlite"
	"github.com/fwojciec/jdex/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the scrape run ledger.
	DB *sqlite.DB

	// Logs forwards scrape job messages to the logger.
	Logs *scrape.LogForwarder
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Logs != nil {
		m.Logs.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jdex"),
		kong.Description("Search locally cached Javadoc indexes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jdex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfgPath := cli.Config
	if cfgPath == "" {
		cfgPath = config.DefaultFileName
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set JDEX_CONFIG or pass --config to use a different configuration file")
		return fmt.Errorf("failed to load config: %s", jdex.ErrorMessage(err))
	}

	level := slog.LevelInfo
	if cfg.Debug || cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	debug.SetMemoryLimit(cfg.MemoryLimitBytes())

	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", cfg.Root, err)
	}

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = filepath.Join(cfg.Root, DefaultDBName)
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set JDEX_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	runs := jdexslog.NewLoggingRunService(sqlite.NewRunService(m.DB), logger)

	remote := jdexslog.NewLoggingFetcher(jdexhttp.NewFetcher(
		jdexhttp.WithRateLimit(cfg.Advanced.RequestsPerSecond),
		jdexhttp.WithLogger(logger),
	), logger)
	defer remote.Close()
	local := jdexslog.NewLoggingFetcher(fs.NewFetcher(), logger)

	scraper := jdexslog.NewLoggingScraper(
		goquery.NewScraper(remote, local, cfg.Advanced.ScrapeConcurrency),
		logger,
	)
	converter := htmltomarkdown.NewConverter(
		htmltomarkdown.WithCodeblockPlaceholder(cfg.Messages.CodeblockOmitted),
	)
	prefixes := cfg.KindPrefixes()
	formatter := format.NewFormatter(converter, prefixes, cfg.FormatLimits())

	m.Logs = scrape.NewLogForwarder(logger, scrape.DefaultLogBuffer)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Sources:  cfg.Flatten(),
		Resolver: cache.NewResolver(cfg.Root, logger),
		Runs:     runs,
		Catalog: search.NewCatalog(cfg.Root, uuid.NewCodec(), fuzzy.NewMatcher(), search.Options{
			Prefixes: prefixes,
			Logger:   logger,
		}),
	}
	deps.Syncer = &scrape.Syncer{
		Resolver: deps.Resolver,
		Pool: &scrape.Pool{
			Root:              cfg.Root,
			Scraper:           scraper,
			Formatter:         formatter,
			MaxWorkers:        cfg.Advanced.MaxWorkers,
			FileWritePoolSize: cfg.Advanced.FileWritePoolSize,
			JobTimeout:        cfg.Advanced.JobTimeout,
			Logs:              m.Logs,
		},
		Runs:   runs,
		Logger: logger,
	}

	return kongCtx.Run(deps)
}

// DefaultDBName is the ledger file created in the data directory.
const DefaultDBName = "jdex.db"
