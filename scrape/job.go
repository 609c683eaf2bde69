// Package scrape turns configured Javadoc sources into on-disk indexes and
// entity bodies. A Job scrapes one source, a Pool runs jobs with bounded
// parallelism and a Syncer brings the whole cache up to date.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/fs"
	"golang.org/x/sync/errgroup"
)

// DefaultFileWritePoolSize is the number of entity bodies written
// concurrently by one job.
const DefaultFileWritePoolSize = 3

// objectOrder is the order objects are saved in. Together with the member
// order below it fixes the index order of data.json.
var objectOrder = []jdex.EntityKind{
	jdex.KindClass,
	jdex.KindInterface,
	jdex.KindEnum,
	jdex.KindAnnotation,
}

// memberOrder lists, per object kind, the member kinds saved for it.
var memberOrder = map[jdex.EntityKind][]jdex.EntityKind{
	jdex.KindClass:      {jdex.KindField, jdex.KindMethod},
	jdex.KindInterface:  {jdex.KindField, jdex.KindMethod},
	jdex.KindEnum:       {jdex.KindEnumConstant, jdex.KindMethod, jdex.KindField},
	jdex.KindAnnotation: {jdex.KindAnnotationElement},
}

// JobResult describes the index a successful job produced.
type JobResult struct {
	Index   *jdex.PersistedIndex
	Objects int
	Members int
}

// Job scrapes a single source and persists its index and entity bodies.
type Job struct {
	Source    *jdex.Source
	Paths     fs.Paths
	Scraper   jdex.Scraper
	Formatter jdex.Formatter

	// FileWritePoolSize bounds concurrent body writes.
	FileWritePoolSize int

	// Timeout bounds the whole job. Zero means no deadline.
	Timeout time.Duration

	// Logs receives progress messages. Optional.
	Logs *LogForwarder

	// Now stamps the index. Defaults to time.Now.
	Now func() time.Time

	// WriteBody stores one entity body. Defaults to fs.WriteBody.
	WriteBody func(path, body string) error
}

// Run executes the job. The source folder is cleared first so a failed
// job always leaves the source without an index.
func (j *Job) Run(ctx context.Context) (*JobResult, error) {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	j.log("web scraping", "source", j.Source.Title)

	if err := fs.RemoveSource(j.Paths); err != nil {
		return nil, fmt.Errorf("clearing source folder: %w", err)
	}

	doc, err := j.Scraper.Scrape(ctx, j.Source.Locator)
	if err != nil {
		return nil, fmt.Errorf("scraping %q: %w", j.Source.Title, err)
	}
	if doc == nil || len(doc.Objects) == 0 {
		return nil, jdex.Errorf(jdex.EINVALID, "scraper returned no entities for %q", j.Source.Title)
	}

	j.log("finished web scraping, saving entities", "source", j.Source.Title, "objects", len(doc.Objects))

	poolSize := j.FileWritePoolSize
	if poolSize <= 0 {
		poolSize = DefaultFileWritePoolSize
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(poolSize)

	s := &saver{job: j, idx: jdex.NewPersistedIndex(time.Time{}), queue: g, ctx: gctx}
	for _, kind := range objectOrder {
		for _, obj := range doc.ObjectsOfKind(kind) {
			if err := s.saveObject(obj); err != nil {
				_ = g.Wait()
				return nil, err
			}
		}
	}

	s.idx.GeneratedAt = j.now().UnixMilli()
	if err := fs.WriteIndex(j.Paths.IndexFile(), s.idx); err != nil {
		_ = g.Wait()
		return nil, fmt.Errorf("writing index: %w", err)
	}

	if err := g.Wait(); err != nil {
		if rmErr := fs.RemoveIndex(j.Paths.IndexFile()); rmErr != nil {
			j.warn("failed to remove index after write failure", "path", j.Paths.IndexFile(), "err", rmErr)
		}
		return nil, fmt.Errorf("writing entity files: %w", err)
	}

	j.log("saved index",
		"source", j.Source.Title,
		"objects", s.idx.Objects.Len(),
		"members", s.idx.Members.Len(),
	)

	return &JobResult{
		Index:   s.idx,
		Objects: s.idx.Objects.Len(),
		Members: s.idx.Members.Len(),
	}, nil
}

func (j *Job) log(msg string, args ...any) {
	if j.Logs != nil {
		j.Logs.Send(slog.LevelInfo, msg, args...)
	}
}

func (j *Job) warn(msg string, args ...any) {
	if j.Logs != nil {
		j.Logs.Send(slog.LevelWarn, msg, args...)
	}
}

func (j *Job) writeBody(path, body string) error {
	if j.WriteBody == nil {
		return fs.WriteBody(path, body)
	}
	return j.WriteBody(path, body)
}

func (j *Job) now() time.Time {
	if j.Now == nil {
		return time.Now()
	}
	return j.Now()
}

// saver accumulates index entries and queues body writes for one job.
type saver struct {
	job   *Job
	idx   *jdex.PersistedIndex
	queue *errgroup.Group
	ctx   context.Context
}

func (s *saver) saveObject(obj *jdex.Object) error {
	if obj.Kind == jdex.KindAnnotation && !strings.HasPrefix(obj.Name, "@") {
		renamed := *obj
		renamed.Name = "@" + obj.Name
		obj = &renamed
	}

	name := strings.ToLower(obj.Name)
	id := AllocateID(name, &s.idx.Objects)

	formatted, err := s.job.Formatter.FormatObject(s.job.Source, obj)
	if err != nil {
		return fmt.Errorf("saving %s %s: %w", obj.Kind, obj.Name, err)
	}
	s.write(s.job.Paths.ObjectFile(id), formatted.Body)
	s.idx.Objects.Set(id, jdex.IndexEntry{Preview: formatted.Preview, Name: name, Kind: obj.Kind})

	for _, kind := range memberOrder[obj.Kind] {
		for _, m := range obj.MembersOfKind(kind) {
			if err := s.saveMember(obj, m); err != nil {
				return fmt.Errorf("saving %s %s: %w", obj.Kind, obj.Name, err)
			}
		}
	}
	return nil
}

func (s *saver) saveMember(parent *jdex.Object, m *jdex.Member) error {
	name := strings.ToLower(parent.Name + m.Name)
	id := AllocateID(name, &s.idx.Members)

	formatted, err := s.job.Formatter.FormatMember(s.job.Source, parent, m)
	if err != nil {
		return fmt.Errorf("member %s: %w", m.Name, err)
	}
	s.write(s.job.Paths.MemberFile(id), formatted.Body)
	s.idx.Members.Set(id, jdex.IndexEntry{Preview: formatted.Preview, Name: name, Kind: m.Kind})
	return nil
}

// write queues a body write. It blocks while the queue is full. A panic
// during the write fails the job instead of the process.
func (s *saver) write(path, body string) {
	s.queue.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = jdex.Errorf(jdex.EINTERNAL, "writing %s panicked: %v", path, r)
			}
		}()
		if err := s.ctx.Err(); err != nil {
			return err
		}
		return s.job.writeBody(path, body)
	})
}
