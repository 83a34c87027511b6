package resource

import (
	"crypto/rand"
	"math"
	mrand "math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	SchemeShort = "short"
	SchemeUUID  = "uuid"
	SchemeULID  = "ulid"

	ShortIDLength = 7
	shortAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// ShortIDSpace is the number of distinct short ids.
var ShortIDSpace = math.Pow(float64(len(shortAlphabet)), ShortIDLength)

type IDGenerator interface {
	NewID() string
}

// NewIDGenerator returns the generator for a configured scheme.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch strings.ToLower(scheme) {
	case "", SchemeShort:
		return NewShortID(nil), nil
	case SchemeUUID:
		return UUID{}, nil
	case SchemeULID:
		return NewULID(), nil
	default:
		return nil, ErrUnknownIDScheme
	}
}

// ShortID draws random base36 strings. Nothing checks for collisions; see
// CollisionProbability.
type ShortID struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}

// NewShortID uses src when given, the global source otherwise.
func NewShortID(src mrand.Source) *ShortID {
	g := &ShortID{}
	if src != nil {
		g.rnd = mrand.New(src)
	}
	return g
}

func (g *ShortID) NewID() string {
	var b strings.Builder
	b.Grow(ShortIDLength)

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < ShortIDLength; i++ {
		var n int
		if g.rnd != nil {
			n = g.rnd.IntN(len(shortAlphabet))
		} else {
			n = mrand.IntN(len(shortAlphabet))
		}
		b.WriteByte(shortAlphabet[n])
	}
	return b.String()
}

// CollisionProbability is the birthday bound for n ids drawn from space.
func CollisionProbability(n int, space float64) float64 {
	if n < 2 {
		return 0
	}
	pairs := float64(n) * float64(n-1) / 2
	return 1 - math.Exp(-pairs/space)
}

type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// ULID yields lexically sortable ids, monotonic within a millisecond.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewULID() *ULID {
	return &ULID{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ULID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
