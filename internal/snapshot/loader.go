// Package snapshot loads record snapshots as explicit asynchronous tasks and
// holds the most recent one.
//
// Each Start takes a sequence number. A finished task's result replaces the
// held snapshot only when its sequence is newer than the last committed one,
// so a slow response can never overwrite a fresher snapshot.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkordes/wanderlust/internal/domain"
)

// FetchFunc retrieves a full snapshot from storage.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Result is the outcome of one task: either Records or an Err wrapping
// domain.ErrFetchFailed.
type Result[T any] struct {
	Seq     uint64
	Records []T
	Err     error
}

// Task is a running fetch. Wait blocks until it finishes.
type Task[T any] struct {
	seq  uint64
	done chan struct{}
	res  Result[T]
}

// Seq returns the sequence number the task was started with.
func (t *Task[T]) Seq() uint64 { return t.seq }

// Done is closed when the fetch has finished.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait returns the task's result, or a fetch failure if ctx ends first.
func (t *Task[T]) Wait(ctx context.Context) Result[T] {
	select {
	case <-t.done:
		return t.res
	case <-ctx.Done():
		return Result[T]{Seq: t.seq, Err: fmt.Errorf("%w: %w", domain.ErrFetchFailed, ctx.Err())}
	}
}

// Loader holds the latest committed snapshot of T.
// It is safe for concurrent use.
type Loader[T any] struct {
	name string
	log  *slog.Logger

	issued atomic.Uint64

	mu        sync.RWMutex
	committed uint64
	valid     bool
	records   []T
	loadedAt  time.Time
}

// New constructs an empty Loader. name identifies the snapshot in logs.
func New[T any](name string, log *slog.Logger) *Loader[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Loader[T]{name: name, log: log}
}

// Start runs fetch in its own goroutine under the next sequence number.
func (l *Loader[T]) Start(ctx context.Context, fetch FetchFunc[T]) *Task[T] {
	t := &Task[T]{seq: l.issued.Add(1), done: make(chan struct{})}
	go func() {
		defer close(t.done)
		records, err := fetch(ctx)
		if err != nil {
			t.res = Result[T]{Seq: t.seq, Err: fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)}
			return
		}
		if records == nil {
			records = []T{}
		}
		t.res = Result[T]{Seq: t.seq, Records: records}
	}()
	return t
}

// Commit stores r as the current snapshot if it succeeded and is newer than
// the last committed result. It reports whether r was stored.
func (l *Loader[T]) Commit(r Result[T]) bool {
	if r.Err != nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if r.Seq <= l.committed {
		l.log.Debug("discarding stale snapshot", "snapshot", l.name, "seq", r.Seq, "committed", l.committed)
		return false
	}
	l.committed = r.Seq
	l.valid = true
	l.records = r.Records
	l.loadedAt = time.Now()
	return true
}

// Load starts a fetch, waits for it, and commits it. When a newer snapshot
// was committed in the meantime, that newer snapshot is returned instead.
func (l *Loader[T]) Load(ctx context.Context, fetch FetchFunc[T]) ([]T, error) {
	res := l.Start(ctx, fetch).Wait(ctx)
	if res.Err != nil {
		l.log.Warn("snapshot fetch failed", "snapshot", l.name, "seq", res.Seq, "error", res.Err)
		return nil, fmt.Errorf("snapshot.Loader.Load(%s): %w", l.name, res.Err)
	}
	if l.Commit(res) {
		return res.Records, nil
	}
	if records, _, ok := l.Snapshot(); ok {
		return records, nil
	}
	return res.Records, nil
}

// Snapshot returns the held records, when they were loaded, and whether any
// snapshot has been committed yet.
func (l *Loader[T]) Snapshot() ([]T, time.Time, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.records, l.loadedAt, l.valid
}

// Invalidate drops the held snapshot. In-flight tasks started before the call
// can still commit.
func (l *Loader[T]) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.valid = false
	l.records = nil
	l.loadedAt = time.Time{}
}
