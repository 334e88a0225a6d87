package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsUpToMax(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(3, time.Hour)
	limiter.Clock = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		d := limiter.Check("1.2.3.4")
		require.True(t, d.Allowed, "request %d should be allowed", i+1)
		require.Equal(t, 2-i, d.Remaining)
	}

	d := limiter.Check("1.2.3.4")
	require.False(t, d.Allowed)
	require.Equal(t, 0, d.Remaining)
	require.Equal(t, time.Hour, d.ResetIn)
}

func TestLimiterRejectionDoesNotMutate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(1, time.Hour)
	limiter.Clock = func() time.Time { return now }

	require.True(t, limiter.Check("k").Allowed)

	// Rejections must not extend the window or bump the counter.
	now = now.Add(10 * time.Minute)
	d := limiter.Check("k")
	require.False(t, d.Allowed)
	require.Equal(t, 50*time.Minute, d.ResetIn)

	now = now.Add(5 * time.Minute)
	d = limiter.Check("k")
	require.False(t, d.Allowed)
	require.Equal(t, 45*time.Minute, d.ResetIn)
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(3, time.Hour)
	limiter.Clock = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Check("k").Allowed)
	}
	require.False(t, limiter.Check("k").Allowed)

	now = now.Add(time.Hour + time.Second)
	d := limiter.Check("k")
	require.True(t, d.Allowed)
	require.Equal(t, 2, d.Remaining)
	require.Equal(t, time.Hour, d.ResetIn)
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(1, time.Hour)
	limiter.Clock = func() time.Time { return now }

	require.True(t, limiter.Check("a").Allowed)
	require.False(t, limiter.Check("a").Allowed)
	require.True(t, limiter.Check("b").Allowed)
}

func TestLimiterSweepsExpiredRecords(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(3, time.Hour)
	limiter.SweepThreshold = 10
	limiter.Clock = func() time.Time { return now }

	for i := 0; i < 11; i++ {
		limiter.Check(fmt.Sprintf("stale-%d", i))
	}
	require.Equal(t, 11, limiter.Len())

	// Past the windows of all stale keys; one fresh key survives.
	now = now.Add(2 * time.Hour)
	limiter.Check("fresh")
	require.Equal(t, 1, limiter.Len())
}

func TestLimiterSweepKeepsUnexpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(3, time.Hour)
	limiter.SweepThreshold = 5
	limiter.Clock = func() time.Time { return now }

	for i := 0; i < 4; i++ {
		limiter.Check(fmt.Sprintf("stale-%d", i))
	}
	now = now.Add(30 * time.Minute)
	for i := 0; i < 2; i++ {
		limiter.Check(fmt.Sprintf("live-%d", i))
	}

	// Stale keys expire, live ones have 30 minutes left.
	now = now.Add(45 * time.Minute)
	limiter.Check("trigger")
	require.Equal(t, 3, limiter.Len())

	// The surviving live key still has its count.
	d := limiter.Check("live-0")
	require.True(t, d.Allowed)
	require.Equal(t, 1, d.Remaining)
}

func TestLimiterDefaults(t *testing.T) {
	limiter := New(0, 0)
	require.Equal(t, DefaultMax, limiter.Max)
	require.Equal(t, DefaultWindow, limiter.Window)

	d := limiter.Check("k")
	require.True(t, d.Allowed)
	require.Equal(t, DefaultMax-1, d.Remaining)
}
