package ports

// Package ports defines interfaces (hexagonal ports) for storage and backend
// access. Implementations live in internal/adapters and internal/api;
// orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
)

// TokenBundle is what the durable slot persists: the bearer credential plus
// the last-fetched user, so rehydration can show identity before the
// who-am-I confirmation lands.
type TokenBundle struct {
	Token string           `json:"token"`
	User  *domainauth.User `json:"user,omitempty"`
}

// Empty reports whether the bundle carries no credential.
func (b TokenBundle) Empty() bool { return b.Token == "" }

// TokenSlot is the durable, authoritative credential store.
// Only the session controller writes it.
type TokenSlot interface {
	// Load returns the stored bundle; an empty bundle (no error) when absent.
	Load(ctx context.Context) (TokenBundle, error)
	Store(ctx context.Context, bundle TokenBundle) error
	Clear(ctx context.Context) error
}

// ReplicaSlot is the cookie-style read replica consumed by the edge routing
// layer. It is never the source of truth for any business decision.
type ReplicaSlot interface {
	// Write mirrors the credential with a bounded lifetime.
	Write(ctx context.Context, token string, ttl time.Duration) error
	// Read returns the mirrored value, or "" when absent or expired.
	Read(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// IdentityAPI is the backend's identity surface.
type IdentityAPI interface {
	// ExchangeCredentials trades email+password for a bearer token.
	ExchangeCredentials(ctx context.Context, email, password string) (string, error)
	// CurrentUser fetches the identity behind the current credential.
	CurrentUser(ctx context.Context) (domainauth.User, error)
	// RegisterAccount creates a new account; it does not authenticate it.
	RegisterAccount(ctx context.Context, profile model.AccountProfile) (domainauth.User, error)
	// Logout notifies the backend; best effort.
	Logout(ctx context.Context) error
}

// EventsAPI is the backend's event catalog and registration surface.
type EventsAPI interface {
	ListEvents(ctx context.Context, filters model.EventFilters) (model.EventPage, error)
	GetEvent(ctx context.Context, id string) (model.Event, error)
	CreateEvent(ctx context.Context, input model.EventInput) (model.Event, error)
	UpdateEvent(ctx context.Context, id string, input model.EventInput) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) (model.Event, error)

	// RegisterForEvent attaches requestID as the idempotency token; retries
	// carrying the same token collapse to one registration server-side.
	RegisterForEvent(ctx context.Context, id, requestID string) (model.Registration, error)
	UnregisterFromEvent(ctx context.Context, id string) (model.Registration, error)
	MyRegistrations(ctx context.Context) ([]model.Registration, error)
}

// UsersAPI is the backend's admin user-management surface.
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]domainauth.User, error)
	UpdateUser(ctx context.Context, id string, update model.UserUpdate) (domainauth.User, error)
	DeleteUser(ctx context.Context, id string) (domainauth.User, error)
}

// SpacesAPI lists venues for event creation.
type SpacesAPI interface {
	ListSpaces(ctx context.Context) ([]model.Space, error)
}

// SubEventsAPI creates scheduling sessions under events.
type SubEventsAPI interface {
	CreateSubEvent(ctx context.Context, input model.SubEventInput) (model.SubEvent, error)
}

// SessionReader exposes the current session to components that gate on it.
type SessionReader interface {
	Session() domainauth.Session
}
