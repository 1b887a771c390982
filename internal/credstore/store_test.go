package credstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, store.Token(), "fresh store starts logged out")

	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetTheme("dark"))

	// Reopen and verify persistence.
	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reopened.Token())
	assert.Equal(t, "dark", reopened.Theme())
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))

	info, err := os.Stat(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "credentials must be owner-only")
}

func TestStore_ClearKeepsTheme(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetTheme("plain"))

	require.NoError(t, store.Clear())

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, reopened.Token())
	assert.Equal(t, "plain", reopened.Theme(), "logout must not discard preferences")
}

func TestStore_OpenMissingFile(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)
	assert.Empty(t, store.Token())
}

// unsignedToken builds a JWT with the given expiry. The signature is
// irrelevant: expiry introspection never verifies it.
func unsignedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, err := TokenExpiry(unsignedToken(t, exp))
	require.NoError(t, err)
	assert.True(t, got.Equal(exp), "expected %v, got %v", exp, got)

	_, err = TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestStore_Expired(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	now := time.Now()

	// No token: nothing to expire.
	assert.False(t, store.Expired(now))

	require.NoError(t, store.SetToken(unsignedToken(t, now.Add(time.Hour))))
	assert.False(t, store.Expired(now))

	require.NoError(t, store.SetToken(unsignedToken(t, now.Add(-time.Hour))))
	assert.True(t, store.Expired(now))

	// An opaque token without claims is treated as live; the backend
	// decides its fate.
	require.NoError(t, store.SetToken("opaque-api-key"))
	assert.False(t, store.Expired(now))
}
