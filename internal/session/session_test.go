package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	a := New(zap.NewNop())
	b := New(zap.NewNop())
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.NotNil(t, a.Logger())
}

func TestCounters(t *testing.T) {
	s := New(zap.NewNop())
	require.Zero(t, s.Counter("poll_attempts"))

	s.Count("poll_attempts")
	s.Count("poll_attempts")
	s.Count("poll_timeouts")
	require.Equal(t, 2, s.Counter("poll_attempts"))
	require.Equal(t, 1, s.Counter("poll_timeouts"))

	// snapshot is a copy
	snap := s.Counters()
	snap["poll_attempts"] = 99
	require.Equal(t, 2, s.Counter("poll_attempts"))
}

func TestCountersConcurrent(t *testing.T) {
	s := New(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Count("poll_attempts")
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1000, s.Counter("poll_attempts"))
}
