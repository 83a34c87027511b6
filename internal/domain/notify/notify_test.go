package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_DrainKeepsOrder(t *testing.T) {
	r := NewRecorder()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	r.Notify(Info("first", "a"))
	r.Notify(Failure("second", "b"))
	r.Notify(Notification{Title: "third"})

	require.Equal(t, 3, r.Len())

	got := r.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, VariantDestructive, got[1].Variant)
	assert.Equal(t, VariantDefault, got[2].Variant)
	assert.Equal(t, fixed, got[0].RaisedAt)

	assert.Empty(t, r.Drain())
	assert.Zero(t, r.Len())
}

func TestRecorder_ConcurrentNotify(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Notify(Info("x", "y"))
		}()
	}
	wg.Wait()

	assert.Len(t, r.Drain(), 50)
}
