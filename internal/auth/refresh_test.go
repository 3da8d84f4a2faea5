package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenSourceReturnsValidTokenWithoutRefresh(t *testing.T) {
	token := &oauth2.Token{
		AccessToken: "current",
		Expiry:      time.Now().Add(time.Hour),
	}

	refreshed := false
	ts := NewTokenSource(NewOAuthConfig(Config{}), token, func(*oauth2.Token) error {
		refreshed = true
		return nil
	})

	got, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "current", got.AccessToken)
	assert.False(t, refreshed)
}

func TestIsExpired(t *testing.T) {
	fresh := &oauth2.Token{Expiry: time.Now().Add(time.Hour)}
	assert.False(t, NewTokenSource(nil, fresh, nil).IsExpired())

	stale := &oauth2.Token{Expiry: time.Now().Add(-time.Minute)}
	assert.True(t, NewTokenSource(nil, stale, nil).IsExpired())

	// Inside the refresh buffer counts as expired.
	closeCall := &oauth2.Token{Expiry: time.Now().Add(30 * time.Second)}
	assert.True(t, NewTokenSource(nil, closeCall, nil).IsExpired())
}

func TestExtractAthleteID(t *testing.T) {
	token := (&oauth2.Token{AccessToken: "a"}).WithExtra(map[string]interface{}{
		"athlete": map[string]interface{}{"id": float64(42)},
	})

	assert.Equal(t, int64(42), ExtractAthleteID(token))
}

func TestExtractAthleteIDMissing(t *testing.T) {
	assert.Zero(t, ExtractAthleteID(&oauth2.Token{AccessToken: "a"}))
}
