package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m, err := NewTokenManager("secret", map[string]time.Duration{"employer": 168 * time.Hour})
	require.NoError(t, err)

	token, exp, err := m.Issue(42, "hr@acme.com", "9123456780", "employer")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "hr@acme.com", claims.Email)
	assert.Equal(t, "9123456780", claims.Phone)
	assert.Equal(t, "employer", claims.Role)

	assert.Equal(t, time.Hour, m.TTL("candidate"))
}

func TestParseRejects(t *testing.T) {
	m, err := NewTokenManager("secret", nil)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := m.Issue(1, "a@b.co", "9000000000", "candidate")
		require.NoError(t, err)
		m.now = time.Now

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewTokenManager("other", nil)
		require.NoError(t, err)
		token, _, err := other.Issue(1, "a@b.co", "9000000000", "candidate")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("missing id", func(t *testing.T) {
		token, _, err := m.Issue(0, "a@b.co", "9000000000", "candidate")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrMissingIdentity)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.Error(t, err)
	})

	_, err = NewTokenManager("", nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	ok, err := CheckPassword(hash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "secret2")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CheckPassword("not-a-hash", "secret1")
	require.NoError(t, err)
	assert.False(t, ok)
}
