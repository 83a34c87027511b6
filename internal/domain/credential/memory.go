package credential

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/exp/slog"
)

// MemoryRepository keeps accounts for the lifetime of the process only.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []Record
	log     *slog.Logger
}

// NewMemoryRepository returns a store holding a copy of seed.
func NewMemoryRepository(seed []Record, log *slog.Logger) *MemoryRepository {
	records := make([]Record, len(seed))
	copy(records, seed)

	return &MemoryRepository{
		records: records,
		log:     log.With("component", "credential_store"),
	}
}

func (r *MemoryRepository) Match(_ context.Context, email, password string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.Email == email && rec.Password == password {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.Email == email {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

// Create does not re-check the email; callers check with FindByEmail first.
// Ids are len+1, which only stays unique because nothing is ever deleted.
func (r *MemoryRepository) Create(_ context.Context, name, email, password string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := Record{
		ID:       strconv.Itoa(len(r.records) + 1),
		Name:     name,
		Email:    email,
		Password: password,
	}
	r.records = append(r.records, rec)

	r.log.Debug("account appended", "id", rec.ID, "email", email)

	return rec, nil
}

func (r *MemoryRepository) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
