package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts.BaseURL = srv.URL
	if opts.Logger == nil {
		opts.Logger = testLogger()
	}
	client, err := NewClient(opts)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{})
	require.Error(t, err)
}

func TestClient_BearerHeaderInjected(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "user-1", "email": "dev@example.com"})
	}), Options{
		Token: func(ctx context.Context) string { return "tok-1" },
	})

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClient_NoBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.EventPage{})
	}), Options{
		Token: func(ctx context.Context) string { return "" },
	})

	_, err := client.ListEvents(context.Background(), model.EventFilters{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ListEvents_OmitsEmptyFilters(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(model.EventPage{Page: 1})
	}), Options{})

	_, err := client.ListEvents(context.Background(), model.EventFilters{
		Q:      "summit",
		Status: model.EventStatusPublished,
	})
	require.NoError(t, err)

	// Empty-string enum params would provoke a validation rejection
	// server-side, so zero-valued filters must be absent, not empty.
	assert.Equal(t, map[string][]string{
		"q":      {"summit"},
		"status": {"published"},
	}, gotQuery)
}

func TestClient_RegisterForEvent_SendsIdempotencyToken(t *testing.T) {
	var gotPath, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(model.Registration{ID: "reg-1", EventID: "ev-1"})
	}), Options{})

	reg, err := client.RegisterForEvent(context.Background(), "ev-1", "req-abc")
	require.NoError(t, err)
	assert.Equal(t, "/events/ev-1/register", gotPath)
	assert.Equal(t, "req-abc", gotRequestID)
	assert.Equal(t, "ev-1", reg.EventID)
}

func TestClient_RegisterForEvent_RequiresToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}), Options{})

	_, err := client.RegisterForEvent(context.Background(), "ev-1", "")
	require.Error(t, err)
}

func TestClient_Unauthorized_FiresHookOnce(t *testing.T) {
	var fired int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}), Options{
		Token:          func(ctx context.Context) string { return "expired" },
		OnUnauthorized: func() { fired++ },
	})

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 1, fired)
}

func TestClient_ServerDetailPassthrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Already registered for this event"})
	}), Options{})

	_, err := client.RegisterForEvent(context.Background(), "ev-1", "req-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))
	assert.Equal(t, "Already registered for this event", apperrors.UserMessage(err))
}

func TestClient_TransportErrorMapped(t *testing.T) {
	client, err := NewClient(Options{BaseURL: "http://127.0.0.1:1", Logger: testLogger()})
	require.NoError(t, err)

	_, err = client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTransport, apperrors.GetCode(err))
}

func TestClient_ExchangeCredentials_PasswordGrant(t *testing.T) {
	var gotUser, gotPass string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotUser = r.PostForm.Get("username")
		gotPass = r.PostForm.Get("password")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-xyz",
			"token_type":   "bearer",
		})
	}), Options{})

	token, err := client.ExchangeCredentials(context.Background(), "dev@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
	assert.Equal(t, "dev@example.com", gotUser)
	assert.Equal(t, "secret", gotPass)
}

func TestClient_ExchangeCredentials_Rejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}), Options{})

	_, err := client.ExchangeCredentials(context.Background(), "dev@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Incorrect email or password", apperrors.UserMessage(err))
}

func TestClient_RegisterAccount_BypassesBearer(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "user-2", "email": "new@example.com"})
	}), Options{
		Token: func(ctx context.Context) string { return "tok-1" },
	})

	user, err := client.RegisterAccount(context.Background(), model.AccountProfile{
		Email:    "new@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "new@example.com", user.Email)
}
