package tokenstore

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReplica(t *testing.T) *FileReplica {
	t.Helper()
	replica, err := NewFileReplica(filepath.Join(t.TempDir(), "state", "auth-token.cookie"))
	require.NoError(t, err)
	return replica
}

func TestFileReplica_WriteProducesCookieLine(t *testing.T) {
	replica := newTestReplica(t)
	ctx := context.Background()

	require.NoError(t, replica.Write(ctx, "tok-1", 7*24*time.Hour))

	data, err := os.ReadFile(replica.path)
	require.NoError(t, err)
	line := string(data)

	cookie, err := http.ParseSetCookie(line)
	require.NoError(t, err)
	assert.Equal(t, ReplicaCookieName, cookie.Name)
	assert.Equal(t, "tok-1", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestFileReplica_ReadRoundTrip(t *testing.T) {
	replica := newTestReplica(t)
	ctx := context.Background()

	require.NoError(t, replica.Write(ctx, "tok-1", time.Hour))
	got, err := replica.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestFileReplica_Read_AbsentIsEmpty(t *testing.T) {
	replica := newTestReplica(t)

	got, err := replica.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileReplica_Read_ExpiredIsEmpty(t *testing.T) {
	replica := newTestReplica(t)
	ctx := context.Background()
	require.NoError(t, replica.Write(ctx, "tok-1", time.Hour))

	// Advance the clock past the cookie's lifetime.
	replica.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	got, err := replica.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileReplica_Read_ForeignCookieIgnored(t *testing.T) {
	replica := newTestReplica(t)
	require.NoError(t, os.WriteFile(replica.path, []byte("session=abc; Path=/"), 0o600))

	got, err := replica.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileReplica_Clear_WritesExpiredCookie(t *testing.T) {
	replica := newTestReplica(t)
	ctx := context.Background()
	require.NoError(t, replica.Write(ctx, "tok-1", time.Hour))

	require.NoError(t, replica.Clear(ctx))

	got, err := replica.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// The cleared file still holds a well-formed cookie line, the way a
	// Set-Cookie deletion looks on the wire.
	data, err := os.ReadFile(replica.path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), ReplicaCookieName+"="))
	assert.Contains(t, string(data), "Max-Age=0")
}

func TestFileReplica_Write_RejectsEmptyToken(t *testing.T) {
	replica := newTestReplica(t)

	err := replica.Write(context.Background(), "", time.Hour)
	require.Error(t, err)
}
