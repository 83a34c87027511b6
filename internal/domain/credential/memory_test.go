package credential

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestMemoryRepository_Match(t *testing.T) {
	repo := NewMemoryRepository(Seed, slog.Default())
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"seeded account", "user@example.com", "password", nil},
		{"wrong password", "user@example.com", "Password", ErrNotFound},
		{"unknown email", "nobody@example.com", "password", ErrNotFound},
		{"empty input", "", "", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := repo.Match(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "John Doe", rec.Name)
			assert.Equal(t, "1", rec.ID)
		})
	}
}

func TestMemoryRepository_CreateIsSequential(t *testing.T) {
	repo := NewMemoryRepository(Seed, slog.Default())
	ctx := context.Background()

	rec, err := repo.Create(ctx, "Jane Roe", "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "2", rec.ID)

	rec, err = repo.Create(ctx, "Max Mustermann", "max@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "3", rec.ID)

	n, err := repo.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	found, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", found.Name)
}

func TestMemoryRepository_SeedIsCopied(t *testing.T) {
	seed := []Record{{ID: "1", Name: "A", Email: "a@example.com", Password: "x"}}
	repo := NewMemoryRepository(seed, slog.Default())

	seed[0].Email = "changed@example.com"

	_, err := repo.FindByEmail(context.Background(), "a@example.com")
	assert.NoError(t, err)
}

func TestRequiredValidator(t *testing.T) {
	v := NewRequiredValidator()

	assert.NoError(t, v.ValidateRegister("Jane", "jane@example.com", "pw"))

	err := v.ValidateRegister(" ", "", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "name, email")
}
