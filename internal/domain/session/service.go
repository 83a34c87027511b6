package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/credential"
	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/route"
)

// DefaultDelay is the simulated network latency of login and register.
const DefaultDelay = time.Second

type Servicer interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	Logout(ctx context.Context) error
	Current() (Session, bool)
	IsAuthenticated() bool
	State() State
	Close() error
}

// Service owns the single active session of a workspace.
type Service struct {
	mu      sync.RWMutex
	current *Session
	pending int
	closed  bool

	// commitMu orders the in-memory swap and the snapshot write of login
	// and logout, so the store always ends up matching current.
	commitMu sync.Mutex

	creds     credential.Repository
	validator credential.Validator
	snapshots Repository
	notifier  notify.Notifier
	navigator route.Navigator
	delay     time.Duration

	life context.Context
	stop context.CancelFunc
	log  *slog.Logger
}

type Option func(*Service)

// WithDelay overrides DefaultDelay. Zero disables the wait.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		s.delay = d
	}
}

func NewService(
	creds credential.Repository,
	snapshots Repository,
	notifier notify.Notifier,
	navigator route.Navigator,
	log *slog.Logger,
	opts ...Option,
) *Service {
	life, stop := context.WithCancel(context.Background())

	s := &Service{
		creds:     creds,
		validator: credential.NewRequiredValidator(),
		snapshots: snapshots,
		notifier:  notifier,
		navigator: navigator,
		delay:     DefaultDelay,
		life:      life,
		stop:      stop,
		log:       log.With("component", "session_service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Init restores the persisted snapshot, if any. A snapshot that does not
// parse is removed and the service stays unauthenticated.
func (s *Service) Init(ctx context.Context) error {
	data, ok, err := s.snapshots.Get(ctx, SnapshotKey)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		s.log.Debug("no stored session")
		return nil
	}

	restored, err := decodeSnapshot(data)
	if err != nil {
		s.log.Warn("failed to parse stored session, discarding", "error", err)
		if derr := s.snapshots.Delete(ctx, SnapshotKey); derr != nil {
			return fmt.Errorf("discard snapshot: %w", derr)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.current = &restored

	s.log.Info("session restored", "user_id", restored.ID)

	return nil
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if err := s.begin(); err != nil {
		return Session{}, err
	}
	defer s.end()

	if err := s.wait(ctx); err != nil {
		s.log.Debug("login abandoned", "error", err)
		return Session{}, fmt.Errorf("login: %w", err)
	}

	rec, err := s.creds.Match(ctx, email, password)
	if err != nil {
		if !errors.Is(err, credential.ErrNotFound) {
			return Session{}, fmt.Errorf("match credentials: %w", err)
		}
		s.log.Info("login failed", "email", email)
		s.notifier.Notify(notify.Failure("Login failed", "Invalid email or password. Please try again."))
		return Session{}, ErrInvalidCredentials
	}

	sess := fromRecord(rec)
	s.commitMu.Lock()
	if err := s.set(&sess); err != nil {
		s.commitMu.Unlock()
		return Session{}, err
	}
	perr := s.persist(ctx, sess)
	s.commitMu.Unlock()

	if perr != nil {
		s.log.Error("failed to persist session", "user_id", sess.ID, "error", perr)
	}

	s.log.Info("login successful", "user_id", sess.ID)
	s.notifier.Notify(notify.Info("Login successful", fmt.Sprintf("Welcome back, %s!", sess.Name)))
	s.navigator.Navigate(route.Dashboard)

	return sess, nil
}

// Register appends a new account. It never signs the account in.
func (s *Service) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := s.validator.ValidateRegister(name, email, password); err != nil {
		s.notifier.Notify(notify.Failure("Registration failed", "Please fill in your name, email and password."))
		return "", err
	}

	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	if err := s.wait(ctx); err != nil {
		s.log.Debug("register abandoned", "error", err)
		return "", fmt.Errorf("register: %w", err)
	}

	_, err := s.creds.FindByEmail(ctx, email)
	switch {
	case err == nil:
		s.log.Info("registration rejected, email taken", "email", email)
		s.notifier.Notify(notify.Failure("Registration failed", "An account with this email already exists."))
		return "", ErrDuplicateRegistration
	case !errors.Is(err, credential.ErrNotFound):
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if err := s.alive(); err != nil {
		return "", err
	}

	rec, err := s.creds.Create(ctx, name, email, password)
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}

	s.log.Info("account registered", "user_id", rec.ID)
	s.notifier.Notify(notify.Info("Registration successful", "Your account has been created successfully."))

	return rec.ID, nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.commitMu.Lock()
	if err := s.set(nil); err != nil {
		s.commitMu.Unlock()
		return err
	}
	derr := s.snapshots.Delete(ctx, SnapshotKey)
	s.commitMu.Unlock()

	var err error
	if derr != nil {
		err = fmt.Errorf("remove snapshot: %w", derr)
		s.log.Error("failed to remove stored session", "error", derr)
	}

	s.notifier.Notify(notify.Info("Logged out", "You have been successfully logged out."))
	s.navigator.Navigate(route.Root)

	return err
}

func (s *Service) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.pending > 0:
		return Loading
	case s.current != nil:
		return Authenticated
	default:
		return Unauthenticated
	}
}

// Close ends the service lifetime. Waits in flight return ErrClosed and never
// touch state afterwards. The persisted snapshot is left in place.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.stop()

	return nil
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.pending++
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
}

func (s *Service) alive() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *Service) set(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.current = sess
	return nil
}

func (s *Service) persist(ctx context.Context, sess Session) error {
	data, err := encodeSnapshot(sess)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.snapshots.Set(ctx, SnapshotKey, data)
}

// wait simulates network latency. It gives up as soon as the caller or the
// service itself goes away.
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.life.Done():
			return ErrClosed
		default:
			return nil
		}
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return s.alive()
	case <-ctx.Done():
		return ctx.Err()
	case <-s.life.Done():
		return ErrClosed
	}
}
