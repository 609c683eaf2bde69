package scrape

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultLogBuffer is the number of progress records a LogForwarder holds
// before senders block.
const DefaultLogBuffer = 64

type logRecord struct {
	level slog.Level
	msg   string
	args  []any
}

// LogForwarder carries progress messages from scrape workers to a single
// collector goroutine that writes them to a logger at the level they were
// sent with. Records are delivered eventually, in the order the collector
// receives them.
type LogForwarder struct {
	logger *slog.Logger
	ch     chan logRecord
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewLogForwarder starts a collector writing to logger.
func NewLogForwarder(logger *slog.Logger, buffer int) *LogForwarder {
	if buffer <= 0 {
		buffer = DefaultLogBuffer
	}
	f := &LogForwarder{
		logger: logger,
		ch:     make(chan logRecord, buffer),
		done:   make(chan struct{}),
	}
	go f.collect()
	return f
}

func (f *LogForwarder) collect() {
	defer close(f.done)
	for rec := range f.ch {
		f.logger.Log(context.Background(), rec.level, rec.msg, rec.args...)
	}
}

// Send queues a message at level with slog-style key/value args. Messages
// sent after Close are dropped.
func (f *LogForwarder) Send(level slog.Level, msg string, args ...any) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return
	}
	f.ch <- logRecord{level: level, msg: msg, args: args}
}

// Close stops accepting messages and waits until every queued message has
// been logged. Safe to call more than once.
func (f *LogForwarder) Close() {
	f.mu.Lock()
	if !f.closed {
		f.closed = true
		close(f.ch)
	}
	f.mu.Unlock()
	<-f.done
}
