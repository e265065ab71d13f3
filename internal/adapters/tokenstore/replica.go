package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/corpevents/eventdesk/internal/ports"
)

// ReplicaCookieName is the cookie the edge routing layer keys off.
const ReplicaCookieName = "auth-token"

// FileReplica mirrors the credential into a serialized Set-Cookie line.
// It is a read replica only; validity judgments stay with the session
// controller's who-am-I check.
type FileReplica struct {
	path string
	now  func() time.Time
}

// NewFileReplica creates a file-backed replica slot.
func NewFileReplica(path string) (*FileReplica, error) {
	if path == "" {
		return nil, errors.New("replica path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create replica directory: %w", err)
	}
	return &FileReplica{path: path, now: time.Now}, nil
}

// Write mirrors the credential with the given lifetime: path=/, Max-Age in
// seconds, SameSite=Lax, matching what the edge layer expects.
func (r *FileReplica) Write(_ context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("refusing to mirror an empty credential")
	}
	if ttl <= 0 {
		return errors.New("replica lifetime must be positive")
	}

	cookie := &http.Cookie{
		Name:     ReplicaCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  r.now().Add(ttl).UTC(),
		SameSite: http.SameSiteLaxMode,
	}
	if err := os.WriteFile(r.path, []byte(cookie.String()), 0o600); err != nil {
		return fmt.Errorf("write replica: %w", err)
	}
	return nil
}

// Read returns the mirrored value, or "" when absent, expired, or cleared.
func (r *FileReplica) Read(_ context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read replica: %w", err)
	}

	cookie, err := http.ParseSetCookie(strings.TrimSpace(string(data)))
	if err != nil || cookie.Name != ReplicaCookieName {
		return "", nil
	}
	if cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && !r.now().Before(cookie.Expires)) {
		return "", nil
	}
	return cookie.Value, nil
}

// Clear overwrites the replica with an already-expired cookie, the same way
// a browser clears one.
func (r *FileReplica) Clear(_ context.Context) error {
	cookie := &http.Cookie{
		Name:     ReplicaCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	}
	if err := os.WriteFile(r.path, []byte(cookie.String()), 0o600); err != nil {
		return fmt.Errorf("clear replica: %w", err)
	}
	return nil
}

// Ensure compile-time conformance to ports.
var _ ports.ReplicaSlot = (*FileReplica)(nil)
