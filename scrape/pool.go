package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/fs"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxWorkers is the number of jobs a Pool runs at once.
const DefaultMaxWorkers = 2

// Outcome is the result of one queued job.
type Outcome struct {
	Source     *jdex.Source
	Result     *JobResult
	StartedAt  time.Time
	FinishedAt time.Time
	Err        error
}

// ProgressFunc is called once per finished job, in arrival order. done
// counts finished jobs including this one.
type ProgressFunc func(o Outcome, done, total int)

// Pool runs scrape jobs with at most MaxWorkers in flight.
type Pool struct {
	Root              string
	Scraper           jdex.Scraper
	Formatter         jdex.Formatter
	MaxWorkers        int
	FileWritePoolSize int
	JobTimeout        time.Duration
	Logs              *LogForwarder
	Now               func() time.Time

	once sync.Once
	sem  chan struct{}
}

// Workers returns the effective worker count.
func (p *Pool) Workers() int {
	if p.MaxWorkers <= 0 {
		return DefaultMaxWorkers
	}
	return p.MaxWorkers
}

func (p *Pool) slots() chan struct{} {
	p.once.Do(func() {
		p.sem = make(chan struct{}, p.Workers())
	})
	return p.sem
}

// Queue runs a job for src once a worker slot is free. A panic inside the
// job is reported as that job's failure.
func (p *Pool) Queue(ctx context.Context, src *jdex.Source) (out Outcome) {
	out.Source = src
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	sem := p.slots()
	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		out.Err = ctx.Err()
		return out
	}
	defer func() { <-sem }()

	out.StartedAt = p.now()
	defer func() {
		if r := recover(); r != nil {
			out.Result = nil
			out.Err = jdex.Errorf(jdex.EINTERNAL, "scrape job for %q panicked: %v", src.ID(), r)
		}
		out.FinishedAt = p.now()
	}()

	job := &Job{
		Source:            src,
		Paths:             fs.NewPaths(p.Root, src.ID()),
		Scraper:           p.Scraper,
		Formatter:         p.Formatter,
		FileWritePoolSize: p.FileWritePoolSize,
		Timeout:           p.JobTimeout,
		Logs:              p.Logs,
		Now:               p.Now,
	}
	out.Result, out.Err = job.Run(ctx)
	return out
}

// RunAll queues a job per source and collects the outcomes. The first
// failure cancels every job still queued or running and is returned.
// Outcomes are returned in arrival order.
func (p *Pool) RunAll(ctx context.Context, sources []*jdex.Source, progress ProgressFunc) ([]Outcome, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	outCh := make(chan Outcome, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	go func() {
		for _, src := range sources {
			g.Go(func() error {
				out := p.Queue(gctx, src)
				outCh <- out
				return out.Err
			})
		}
		_ = g.Wait()
		close(outCh)
	}()

	outcomes := make([]Outcome, 0, len(sources))
	var firstErr error
	for out := range outCh {
		outcomes = append(outcomes, out)
		if out.Err != nil && firstErr == nil {
			firstErr = out.Err
		}
		if progress != nil {
			progress(out, len(outcomes), len(sources))
		}
	}

	return outcomes, firstErr
}

func (p *Pool) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
