package strava

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFromHeaders(t *testing.T) {
	r := NewRateLimiter()

	h := http.Header{}
	h.Set("X-RateLimit-Limit", "200,2000")
	h.Set("X-RateLimit-Usage", "34,512")
	r.UpdateFromHeaders(h)

	short, daily := r.Status()
	assert.Equal(t, 166, short)
	assert.Equal(t, 1488, daily)
}

func TestUpdateFromHeadersIgnoresGarbage(t *testing.T) {
	r := NewRateLimiter()

	h := http.Header{}
	h.Set("X-RateLimit-Usage", "not,numbers")
	r.UpdateFromHeaders(h)

	short, daily := r.Status()
	assert.Equal(t, 100, short)
	assert.Equal(t, 1000, daily)
}

func TestParsePair(t *testing.T) {
	short, daily, ok := parsePair("100,1000")
	require.True(t, ok)
	assert.Equal(t, 100, short)
	assert.Equal(t, 1000, daily)

	short, daily, ok = parsePair(" 34 , 512 ")
	require.True(t, ok)
	assert.Equal(t, 34, short)
	assert.Equal(t, 512, daily)

	_, _, ok = parsePair("100")
	assert.False(t, ok)
}

func TestWaitEnforcesMinInterval(t *testing.T) {
	r := NewRateLimiter()
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx))
	start := time.Now()
	require.NoError(t, r.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), r.minInterval)
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	r := NewRateLimiter()
	r.shortUsage = r.shortLimit // force a long sleep

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitCountsUsage(t *testing.T) {
	r := NewRateLimiter()
	r.minInterval = 0

	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))

	short, daily := r.Status()
	assert.Equal(t, 98, short)
	assert.Equal(t, 998, daily)
}
