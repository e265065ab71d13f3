package mocks

import (
	"context"
	"sync"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
	"github.com/corpevents/eventdesk/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityAPI   = (*ScriptedIdentityAPI)(nil)
	_ ports.EventsAPI     = (*ScriptedEventsAPI)(nil)
	_ ports.SessionReader = (StaticSession{})
)

// DefaultUser is the identity the scripted backend hands out unless
// overridden.
func DefaultUser() domainauth.User {
	return domainauth.User{
		ID:       "user-1",
		Email:    "dev@example.com",
		FullName: "Dev User",
		IsActive: true,
		Roles:    []domainauth.Role{{ID: 1, Name: domainauth.RoleNameCustomer}},
	}
}

// ScriptedIdentityAPI simulates the identity surface with deterministic
// defaults. Function fields override individual operations.
type ScriptedIdentityAPI struct {
	ExchangeFunc    func(ctx context.Context, email, password string) (string, error)
	CurrentUserFunc func(ctx context.Context) (domainauth.User, error)
	RegisterFunc    func(ctx context.Context, profile model.AccountProfile) (domainauth.User, error)
	LogoutFunc      func(ctx context.Context) error

	// Token is what a successful default exchange returns.
	Token string
	// User is what the default who-am-I returns.
	User *domainauth.User

	mu          sync.Mutex
	logoutCalls int
}

func (m *ScriptedIdentityAPI) ExchangeCredentials(ctx context.Context, email, password string) (string, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, email, password)
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "tok-1", nil
}

func (m *ScriptedIdentityAPI) CurrentUser(ctx context.Context) (domainauth.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	if m.User != nil {
		return *m.User, nil
	}
	return DefaultUser(), nil
}

func (m *ScriptedIdentityAPI) RegisterAccount(ctx context.Context, profile model.AccountProfile) (domainauth.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, profile)
	}
	user := DefaultUser()
	user.Email = profile.Email
	user.FullName = profile.FullName
	return user, nil
}

func (m *ScriptedIdentityAPI) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.logoutCalls++
	m.mu.Unlock()
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

// LogoutCalls returns how many times Logout was invoked.
func (m *ScriptedIdentityAPI) LogoutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutCalls
}

// ScriptedEventsAPI simulates the events surface. It records the
// idempotency tokens of register calls so tests can assert freshness.
type ScriptedEventsAPI struct {
	ListEventsFunc    func(ctx context.Context, filters model.EventFilters) (model.EventPage, error)
	GetEventFunc      func(ctx context.Context, id string) (model.Event, error)
	CreateEventFunc   func(ctx context.Context, input model.EventInput) (model.Event, error)
	UpdateEventFunc   func(ctx context.Context, id string, input model.EventInput) (model.Event, error)
	DeleteEventFunc   func(ctx context.Context, id string) (model.Event, error)
	RegisterFunc      func(ctx context.Context, id, requestID string) (model.Registration, error)
	UnregisterFunc    func(ctx context.Context, id string) (model.Registration, error)
	RegistrationsFunc func(ctx context.Context) ([]model.Registration, error)

	// Registrations is what the default MyRegistrations returns.
	Registrations []model.Registration

	mu         sync.Mutex
	requestIDs []string
	fetches    int
}

func (m *ScriptedEventsAPI) ListEvents(ctx context.Context, filters model.EventFilters) (model.EventPage, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx, filters)
	}
	return model.EventPage{}, nil
}

func (m *ScriptedEventsAPI) GetEvent(ctx context.Context, id string) (model.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, id)
	}
	return model.Event{ID: id}, nil
}

func (m *ScriptedEventsAPI) CreateEvent(ctx context.Context, input model.EventInput) (model.Event, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, input)
	}
	return model.Event{ID: "ev-new", Title: input.Title, Status: input.Status}, nil
}

func (m *ScriptedEventsAPI) UpdateEvent(ctx context.Context, id string, input model.EventInput) (model.Event, error) {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, id, input)
	}
	return model.Event{ID: id, Title: input.Title, Status: input.Status}, nil
}

func (m *ScriptedEventsAPI) DeleteEvent(ctx context.Context, id string) (model.Event, error) {
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(ctx, id)
	}
	return model.Event{ID: id}, nil
}

func (m *ScriptedEventsAPI) RegisterForEvent(ctx context.Context, id, requestID string) (model.Registration, error) {
	m.mu.Lock()
	m.requestIDs = append(m.requestIDs, requestID)
	m.mu.Unlock()
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, id, requestID)
	}
	return model.Registration{ID: "reg-" + id, EventID: id}, nil
}

func (m *ScriptedEventsAPI) UnregisterFromEvent(ctx context.Context, id string) (model.Registration, error) {
	if m.UnregisterFunc != nil {
		return m.UnregisterFunc(ctx, id)
	}
	return model.Registration{ID: "reg-" + id, EventID: id, Status: model.RegistrationStatusCancelled}, nil
}

func (m *ScriptedEventsAPI) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	m.mu.Lock()
	m.fetches++
	m.mu.Unlock()
	if m.RegistrationsFunc != nil {
		return m.RegistrationsFunc(ctx)
	}
	return m.Registrations, nil
}

// RequestIDs returns the idempotency tokens seen by RegisterForEvent.
func (m *ScriptedEventsAPI) RequestIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requestIDs...)
}

// RegistrationFetches returns how many times MyRegistrations was invoked.
func (m *ScriptedEventsAPI) RegistrationFetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

// StaticSession is a fixed-session SessionReader for coordinator tests.
type StaticSession struct {
	Current domainauth.Session
}

func (s StaticSession) Session() domainauth.Session { return s.Current }
