package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	var (
		ok   = func() error { return nil }
		fail = func() error { return errors.New("broker down") }
	)
	now := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	cb := New(Config{Window: 4, FailureRatio: 0.5, Timeout: time.Minute, Recovery: 2}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.Error(t, cb.Call(fail))
	require.Equal(t, Closed, cb.State())
	require.Error(t, cb.Call(fail))
	require.Equal(t, Open, cb.State())

	require.ErrorIs(t, cb.Call(ok), ErrOpen)

	now = now.Add(2 * time.Minute)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())

	require.Error(t, cb.Call(fail))
	require.Equal(t, Open, cb.State())

	now = now.Add(2 * time.Minute)
	require.NoError(t, cb.Call(ok))
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(Config{Window: 1, FailureRatio: 1, Timeout: time.Hour, Recovery: 1})
	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
