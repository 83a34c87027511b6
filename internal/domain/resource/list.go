// Package resource implements the list controller shared by every estate
// page: an ordered in-memory list with add and remove.
package resource

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/notify"
)

type List[T Record[T]] struct {
	mu     sync.RWMutex
	items  []T
	closed bool

	kind     Kind[T]
	ids      IDGenerator
	notifier notify.Notifier
	now      func() time.Time

	life context.Context
	stop context.CancelFunc
	log  *slog.Logger
}

func NewList[T Record[T]](kind Kind[T], ids IDGenerator, notifier notify.Notifier, log *slog.Logger) *List[T] {
	life, stop := context.WithCancel(context.Background())

	return &List[T]{
		items:    slices.Clone(kind.Seed),
		kind:     kind,
		ids:      ids,
		notifier: notifier,
		now:      time.Now,
		life:     life,
		stop:     stop,
		log:      log.With("component", "resource_list", "kind", kind.Name),
	}
}

// Add validates draft, stamps it with a fresh id and inserts it at the
// kind's position. Existing records are never modified.
func (l *List[T]) Add(ctx context.Context, draft T) (T, error) {
	var zero T

	if missing := draft.Missing(); len(missing) > 0 {
		l.log.Debug("draft rejected", "missing", missing)
		l.notifier.Notify(l.kind.invalid(missing))
		return zero, &ValidationError{Kind: l.kind.Name, Missing: missing}
	}

	if err := l.wait(ctx); err != nil {
		return zero, err
	}

	rec := draft.Stamp(l.ids.NewID(), l.now())

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return zero, ErrClosed
	}
	next := make([]T, 0, len(l.items)+1)
	if l.kind.Position == Prepend {
		next = append(next, rec)
		next = append(next, l.items...)
	} else {
		next = append(next, l.items...)
		next = append(next, rec)
	}
	l.items = next
	l.mu.Unlock()

	l.log.Info("record added", "id", rec.RecordID())
	l.notifier.Notify(l.kind.added(rec))

	return rec, nil
}

// Remove deletes the record with id. An unknown id is a silent no-op.
func (l *List[T]) Remove(id string) (T, bool) {
	l.mu.Lock()
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		var zero T
		return zero, false
	}
	rec := l.items[i]
	l.items = slices.Delete(slices.Clone(l.items), i, i+1)
	l.mu.Unlock()

	l.log.Info("record removed", "id", id)
	l.notifier.Notify(l.kind.removed(rec, rec.Label()))

	return rec, true
}

func (l *List[T]) Get(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of the list in display order.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

func (l *List[T]) Filter(keep func(T) bool) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, 0, len(l.items))
	for _, it := range l.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *List[T]) Config() Kind[T] {
	return l.kind
}

// Rows renders records through the kind's display columns.
func (l *List[T]) Rows(records []T) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(l.kind.Columns))
		for i, c := range l.kind.Columns {
			row[i] = c.Value(rec)
		}
		rows = append(rows, row)
	}
	return rows
}

// Headers returns the display column headers.
func (l *List[T]) Headers() []string {
	out := make([]string, len(l.kind.Columns))
	for i, c := range l.kind.Columns {
		out[i] = c.Header
	}
	return out
}

func (l *List[T]) index(id string) int {
	return slices.IndexFunc(l.items, func(it T) bool {
		return it.RecordID() == id
	})
}

// Close ends the list lifetime. Adds still waiting on the kind's latency
// return ErrClosed without inserting or notifying.
func (l *List[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	l.stop()
}

func (l *List[T]) wait(ctx context.Context) error {
	if l.kind.Latency <= 0 {
		select {
		case <-l.life.Done():
			return ErrClosed
		default:
			return ctx.Err()
		}
	}

	t := time.NewTimer(l.kind.Latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.life.Done():
		return ErrClosed
	}
}
