package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
	"github.com/corpevents/eventdesk/internal/ports"
)

// ErrBusy is returned when a registration change is already in flight. The
// UI must surface it rather than queue the intent; queuing would mint a
// second idempotency token for the same logical action.
var ErrBusy = errors.New("a registration change is already in flight")

// ErrNotRegistered is returned when unregistering from an event the local
// set does not contain.
var ErrNotRegistered = errors.New("not registered for this event")

// ErrConfirmationDeclined is returned when the user declines the
// unregistration prompt. Nothing was dispatched.
var ErrConfirmationDeclined = errors.New("unregistration was not confirmed")

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(ctx context.Context, eventID string) bool

// RegistrationCoordinatorOptions groups dependencies for RegistrationCoordinator.
type RegistrationCoordinatorOptions struct {
	Events  ports.EventsAPI
	Session ports.SessionReader
	// Confirm gates unregistration; nil confirms unconditionally (the UI
	// layer is then responsible for prompting).
	Confirm ConfirmFunc
	Logger  *slog.Logger
}

// RegistrationCoordinator tracks which events the current user is registered
// for. The local set is a cache of the server's answer: every mutation is
// followed by a full re-fetch, never a local insert, so no optimistic guess
// survives a reconciliation cycle.
type RegistrationCoordinator struct {
	events  ports.EventsAPI
	session ports.SessionReader
	confirm ConfirmFunc
	logger  *slog.Logger

	mu         sync.Mutex
	busy       bool
	registered map[string]struct{}
}

// NewRegistrationCoordinator constructs a RegistrationCoordinator with an
// empty local set; call Refresh to populate it.
func NewRegistrationCoordinator(opts RegistrationCoordinatorOptions) *RegistrationCoordinator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistrationCoordinator{
		events:     opts.Events,
		session:    opts.Session,
		confirm:    opts.Confirm,
		logger:     logger,
		registered: make(map[string]struct{}),
	}
}

// IsRegistered reports whether the local set contains the event.
func (c *RegistrationCoordinator) IsRegistered(eventID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.registered[eventID]
	return ok
}

// Registrations returns a sorted snapshot of the registered event IDs.
func (c *RegistrationCoordinator) Registrations() []string {
	c.mu.Lock()
	ids := make([]string, 0, len(c.registered))
	for id := range c.registered {
		ids = append(ids, id)
	}
	c.mu.Unlock()
	sort.Strings(ids)
	return ids
}

// Busy reports whether a mutating call is in flight. The UI disables its
// register/unregister controls while true.
func (c *RegistrationCoordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Register registers the current user for the event. Preconditions: an
// authenticated session and a published event. Each attempt carries a fresh
// idempotency token so server-side retries collapse to one registration. On
// success the canonical set is re-fetched; on failure the local set is
// untouched and the server's message is surfaced.
func (c *RegistrationCoordinator) Register(ctx context.Context, event model.Event) error {
	sess := c.session.Session()
	if !sess.IsAuthenticated() {
		return apperrors.Unauthorized("Sign in to register for events.")
	}
	if event.Status != model.EventStatusPublished {
		return apperrors.Business("Only published events accept registrations.")
	}

	release, err := c.acquire()
	if err != nil {
		return err
	}
	defer release()

	requestID := uuid.NewString()
	c.logger.InfoContext(ctx, "registering", "event", event.ID, "request_id", requestID)
	if _, err := c.events.RegisterForEvent(ctx, event.ID, requestID); err != nil {
		return err
	}
	return c.reload(ctx)
}

// Unregister cancels the current user's registration. Preconditions: an
// existing local registration and user confirmation. Same re-fetch
// discipline as Register.
func (c *RegistrationCoordinator) Unregister(ctx context.Context, eventID string) error {
	sess := c.session.Session()
	if !sess.IsAuthenticated() {
		return apperrors.Unauthorized("Sign in to manage registrations.")
	}
	if !c.IsRegistered(eventID) {
		return ErrNotRegistered
	}
	if c.confirm != nil && !c.confirm(ctx, eventID) {
		return ErrConfirmationDeclined
	}

	release, err := c.acquire()
	if err != nil {
		return err
	}
	defer release()

	c.logger.InfoContext(ctx, "unregistering", "event", eventID)
	if _, err := c.events.UnregisterFromEvent(ctx, eventID); err != nil {
		return err
	}
	return c.reload(ctx)
}

// Refresh replaces the local set with the server's canonical answer. An
// anonymous session yields an empty set without a network call.
func (c *RegistrationCoordinator) Refresh(ctx context.Context) error {
	if !c.session.Session().IsAuthenticated() {
		c.mu.Lock()
		c.registered = make(map[string]struct{})
		c.mu.Unlock()
		return nil
	}
	return c.reload(ctx)
}

// acquire claims the busy flag or fails fast with ErrBusy. The returned
// release runs in a defer so an error can never leave the coordinator locked.
func (c *RegistrationCoordinator) acquire() (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return nil, ErrBusy
	}
	c.busy = true
	return func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}, nil
}

func (c *RegistrationCoordinator) reload(ctx context.Context) error {
	regs, err := c.events.MyRegistrations(ctx)
	if err != nil {
		return err
	}

	next := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		if reg.EventID == "" {
			continue
		}
		next[reg.EventID] = struct{}{}
	}

	c.mu.Lock()
	c.registered = next
	c.mu.Unlock()
	return nil
}
