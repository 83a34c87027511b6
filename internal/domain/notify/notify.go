// Package notify carries transient user-facing notifications raised by the
// session controller and the resource lists.
package notify

import (
	"sync"
	"time"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	RaisedAt    time.Time `json:"raised_at"`
}

// Notifier is the sink every domain operation reports to.
type Notifier interface {
	Notify(n Notification)
}

// Info builds a default notification.
func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

// Failure builds a destructive notification.
func Failure(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

// Recorder buffers notifications until a presentation layer drains them.
type Recorder struct {
	mu      sync.Mutex
	pending []Notification
	now     func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.RaisedAt.IsZero() {
		n.RaisedAt = r.now()
	}
	r.pending = append(r.pending, n)
}

// Drain returns the buffered notifications in order and empties the buffer.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.pending
	r.pending = nil
	return out
}

// Len reports how many notifications are waiting.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Discard drops everything. Useful as a no-op sink.
type Discard struct{}

func (Discard) Notify(Notification) {}
