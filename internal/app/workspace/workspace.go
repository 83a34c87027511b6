// Package workspace wires one user's session controller, estate lists and
// presentation sinks together. A process serves exactly one workspace.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"digitalwill/internal/config"
	"digitalwill/internal/domain/credential"
	"digitalwill/internal/domain/estate"
	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
	"digitalwill/internal/domain/route"
	"digitalwill/internal/domain/session"
	"digitalwill/internal/infrastructure/storage"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type Options struct {
	AuthDelay   time.Duration
	UploadDelay time.Duration
	IDScheme    string
}

func OptionsFrom(cfg *config.Config) Options {
	return Options{
		AuthDelay:   cfg.Session.AuthDelay,
		UploadDelay: cfg.Resources.UploadDelay,
		IDScheme:    cfg.Resources.IDScheme,
	}
}

type Workspace struct {
	session *session.Service
	lists   *estate.Lists
	notes   *notify.Recorder
	nav     *route.Recorder
	store   storage.Storage
	log     *slog.Logger
}

// New builds a workspace on top of store. The workspace owns store and
// closes it in Close.
func New(store storage.Storage, opts Options, log *slog.Logger) (*Workspace, error) {
	ids, err := resource.NewIDGenerator(opts.IDScheme)
	if err != nil {
		return nil, err
	}

	notes := notify.NewRecorder()
	nav := route.NewRecorder()
	creds := credential.NewMemoryRepository(credential.Seed, log)

	return &Workspace{
		session: session.NewService(creds, store, notes, nav, log, session.WithDelay(opts.AuthDelay)),
		lists:   estate.NewLists(ids, notes, log, estate.Options{UploadLatency: opts.UploadDelay}),
		notes:   notes,
		nav:     nav,
		store:   store,
		log:     log.With("component", "workspace"),
	}, nil
}

// Open opens the configured snapshot store, builds the workspace and
// restores any persisted session.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Workspace, error) {
	store, err := storage.Open(ctx, cfg.Storage.URI, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	ws, err := New(store, OptionsFrom(cfg), log)
	if err != nil {
		store.Close()
		return nil, err
	}

	if err := ws.Init(ctx); err != nil {
		ws.Close()
		return nil, err
	}
	return ws, nil
}

func (w *Workspace) Init(ctx context.Context) error {
	if err := w.session.Init(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	w.log.Debug("workspace ready", "state", w.session.State().String())
	return nil
}

// Close aborts in-flight logins, registrations and uploads and releases the
// store.
func (w *Workspace) Close() error {
	w.lists.Close()
	return errors.Join(w.session.Close(), w.store.Close())
}

func (w *Workspace) Session() session.Servicer {
	return w.session
}

func (w *Workspace) Lists() *estate.Lists {
	return w.lists
}

func (w *Workspace) Notifications() *notify.Recorder {
	return w.notes
}

// Visit applies the session gate: a gated destination falls back to the
// landing page while nobody is signed in.
func (w *Workspace) Visit(d route.Destination) route.Destination {
	if route.Allowed(w.session.IsAuthenticated(), d) {
		return d
	}
	return route.Root
}

type Dashboard struct {
	User  session.Session `json:"user"`
	Stats estate.Stats    `json:"stats"`
}

func (w *Workspace) Dashboard() (Dashboard, error) {
	user, ok := w.session.Current()
	if !ok {
		return Dashboard{}, ErrNotAuthenticated
	}
	return Dashboard{User: user, Stats: w.lists.Stats()}, nil
}

// Feedback is what the presentation layer shows after an operation.
type Feedback struct {
	Notifications []notify.Notification `json:"notifications"`
	Navigate      string                `json:"navigate,omitempty"`
}

// Drain collects pending notifications and the pending navigation intent.
func (w *Workspace) Drain() Feedback {
	fb := Feedback{Notifications: w.notes.Drain()}
	if fb.Notifications == nil {
		fb.Notifications = []notify.Notification{}
	}
	if d, ok := w.nav.Take(); ok {
		fb.Navigate = d.String()
	}
	return fb
}
