package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TokenRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("tok-abc"))

	token, err = s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save("first"))
	require.NoError(t, s.Save("second"))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save("tok"))

	require.NoError(t, s.Clear())

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is a no-op, not an error.
	require.NoError(t, s.Clear())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStore_ExpiresAt(t *testing.T) {
	s := NewStore(t.TempDir())
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	require.NoError(t, s.Save(signedToken(t, exp)))

	got, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestStore_ExpiresAtWithoutToken(t *testing.T) {
	s := NewStore(t.TempDir())

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
}

func TestStore_ExpiresAtMalformedToken(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save("not-a-jwt"))

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
}

func TestStore_ExpiresSoon(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(signedToken(t, time.Now().Add(time.Minute))))
	assert.True(t, s.ExpiresSoon(5*time.Minute))

	require.NoError(t, s.Save(signedToken(t, time.Now().Add(24*time.Hour))))
	assert.False(t, s.ExpiresSoon(5*time.Minute))
}
