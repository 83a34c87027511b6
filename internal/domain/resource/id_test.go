package resource

import (
	mrand "math/rand/v2"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDGenerator(t *testing.T) {
	tests := []struct {
		scheme string
		check  func(t *testing.T, id string)
	}{
		{"", func(t *testing.T, id string) {
			assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]{7}$`), id)
		}},
		{SchemeShort, func(t *testing.T, id string) {
			assert.Len(t, id, ShortIDLength)
		}},
		{SchemeUUID, func(t *testing.T, id string) {
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		}},
		{SchemeULID, func(t *testing.T, id string) {
			_, err := ulid.ParseStrict(id)
			assert.NoError(t, err)
		}},
	}

	for _, tt := range tests {
		t.Run("scheme "+tt.scheme, func(t *testing.T) {
			g, err := NewIDGenerator(tt.scheme)
			require.NoError(t, err)
			tt.check(t, g.NewID())
		})
	}

	_, err := NewIDGenerator("sequential")
	assert.ErrorIs(t, err, ErrUnknownIDScheme)
}

func TestShortID_Deterministic(t *testing.T) {
	a := NewShortID(mrand.NewPCG(7, 7))
	b := NewShortID(mrand.NewPCG(7, 7))

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.NewID(), b.NewID())
	}
}

func TestULID_Sortable(t *testing.T) {
	g := NewULID()
	prev := g.NewID()
	for i := 0; i < 100; i++ {
		next := g.NewID()
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestCollisionProbability(t *testing.T) {
	assert.Zero(t, CollisionProbability(1, ShortIDSpace))
	assert.InDelta(t, 1.28e-11, CollisionProbability(2, ShortIDSpace), 1e-12)
	assert.Greater(t, CollisionProbability(100000, ShortIDSpace), 0.05)
}
