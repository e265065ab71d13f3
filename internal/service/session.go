package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
	"github.com/corpevents/eventdesk/internal/guard"
	"github.com/corpevents/eventdesk/internal/ports"
)

// DefaultReplicaTTL bounds the replica cookie's lifetime (7 days).
const DefaultReplicaTTL = 7 * 24 * time.Hour

// SessionControllerOptions groups dependencies for SessionController.
type SessionControllerOptions struct {
	Identity ports.IdentityAPI
	Tokens   ports.TokenSlot
	Replica  ports.ReplicaSlot
	// ReplicaTTL bounds the replica's lifetime; DefaultReplicaTTL when zero.
	ReplicaTTL time.Duration
	Logger     *slog.Logger
	// Navigate is invoked when the global 401 policy demands a redirect.
	Navigate func(target string)
	// CurrentPath reports the navigation target currently displayed, so the
	// 401 policy can skip redirecting when already on the login surface.
	CurrentPath func() string
}

// SessionController owns the authentication state machine. It is the single
// writer of both credential slots; every other component observes them
// read-only. Exactly one Session exists per controller.
type SessionController struct {
	identity   ports.IdentityAPI
	tokens     ports.TokenSlot
	replica    ports.ReplicaSlot
	replicaTTL time.Duration
	logger     *slog.Logger

	navigate    func(string)
	currentPath func() string

	mu         sync.Mutex
	session    domainauth.Session
	rehydrated bool

	// check collapses overlapping who-am-I calls into one flight.
	check singleflight.Group
}

// NewSessionController constructs a SessionController. The session starts
// anonymous and is lazily rehydrated from the durable slot on first access.
func NewSessionController(opts SessionControllerOptions) *SessionController {
	ttl := opts.ReplicaTTL
	if ttl <= 0 {
		ttl = DefaultReplicaTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionController{
		identity:    opts.Identity,
		tokens:      opts.Tokens,
		replica:     opts.Replica,
		replicaTTL:  ttl,
		logger:      logger,
		navigate:    opts.Navigate,
		currentPath: opts.CurrentPath,
		session:     domainauth.Session{Status: domainauth.StatusAnonymous},
	}
}

// Session returns a snapshot of the current session, rehydrating it from the
// durable slot on first access. A rehydrated session is provisional until
// CheckAuth confirms it.
func (c *SessionController) Session() domainauth.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rehydrateLocked()
	return c.session
}

func (c *SessionController) rehydrateLocked() {
	if c.rehydrated {
		return
	}
	c.rehydrated = true

	bundle, err := c.tokens.Load(context.Background())
	if err != nil {
		c.logger.Warn("rehydrate failed", "error", err)
		return
	}
	if bundle.Empty() || bundle.User == nil {
		return
	}
	c.session = domainauth.Session{
		User:       bundle.User,
		Credential: bundle.Token,
		Status:     domainauth.StatusAuthenticated,
	}
}

// Token supplies the current bearer credential for outgoing requests. The
// durable slot is the source of truth, consulted per call.
func (c *SessionController) Token(ctx context.Context) string {
	bundle, err := c.tokens.Load(ctx)
	if err != nil {
		return ""
	}
	return bundle.Token
}

// Login exchanges credentials, mirrors the token into both slots, then
// confirms the session with CheckAuth. A failed exchange leaves both slots
// cleared; the two slots are never written partially.
func (c *SessionController) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		err := apperrors.Validation("email and password are required")
		c.failLocked(err.Message)
		return err
	}

	c.setStatus(domainauth.StatusAuthenticating)

	token, err := c.identity.ExchangeCredentials(ctx, email, password)
	if err != nil {
		c.logger.WarnContext(ctx, "credential exchange failed", "email", email, "error", err)
		c.clearSlots(ctx)
		c.failLocked(apperrors.UserMessage(err))
		return err
	}

	if err := c.mirrorCredential(ctx, ports.TokenBundle{Token: token}); err != nil {
		c.failLocked(apperrors.UserMessage(err))
		return err
	}

	c.logger.InfoContext(ctx, "credential exchange succeeded", "email", email)
	return c.CheckAuth(ctx)
}

// mirrorCredential writes the durable slot and the replica as a unit. When
// the replica write fails the durable write is rolled back so the two slots
// never disagree.
func (c *SessionController) mirrorCredential(ctx context.Context, bundle ports.TokenBundle) error {
	if err := c.tokens.Store(ctx, bundle); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "store credential")
	}
	if err := c.replica.Write(ctx, bundle.Token, c.replicaTTL); err != nil {
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			c.logger.WarnContext(ctx, "rollback of durable slot failed", "error", clearErr)
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "mirror credential")
	}
	return nil
}

// CheckAuth confirms the stored credential against the who-am-I endpoint.
// No credential forces the session anonymous and clears the replica. A
// confirmed identity refreshes the replica's expiry and is bundled into the
// durable slot. Any failure clears both slots. Overlapping calls share one
// flight; a result, success or rejection, whose credential no longer matches
// the slot is discarded.
func (c *SessionController) CheckAuth(ctx context.Context) error {
	_, err, _ := c.check.Do("check-auth", func() (any, error) {
		return nil, c.checkAuth(ctx)
	})
	return err
}

func (c *SessionController) checkAuth(ctx context.Context) error {
	bundle, err := c.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if bundle.Empty() {
		if clearErr := c.replica.Clear(ctx); clearErr != nil {
			c.logger.WarnContext(ctx, "clear replica failed", "error", clearErr)
		}
		c.resetLocked()
		return nil
	}

	user, err := c.identity.CurrentUser(ctx)
	if err != nil {
		// A rejection for a credential the slot no longer holds must not
		// tear down the session a newer login just established.
		if current, loadErr := c.tokens.Load(ctx); loadErr == nil && current.Token != bundle.Token {
			c.logger.InfoContext(ctx, "discarding superseded auth check")
			return nil
		}
		c.logger.WarnContext(ctx, "who-am-I rejected, discarding session", "error", err)
		c.clearSlots(ctx)
		c.resetLocked()
		return err
	}

	// Discard a stale result: the slot may have been rewritten by a newer
	// login while this flight was outstanding.
	current, loadErr := c.tokens.Load(ctx)
	if loadErr == nil && current.Token != bundle.Token {
		c.logger.InfoContext(ctx, "discarding superseded auth check")
		return nil
	}

	confirmed := ports.TokenBundle{Token: bundle.Token, User: &user}
	if err := c.mirrorCredential(ctx, confirmed); err != nil {
		c.resetLocked()
		return err
	}

	c.mu.Lock()
	c.rehydrated = true
	c.session = domainauth.Session{
		User:       &user,
		Credential: bundle.Token,
		Status:     domainauth.StatusAuthenticated,
	}
	c.mu.Unlock()
	c.logger.InfoContext(ctx, "session confirmed", "user", user.Email)
	return nil
}

// Logout notifies the backend best-effort, then unconditionally clears the
// user, the credential, and both slots. A server failure never blocks the
// client-observable logout.
func (c *SessionController) Logout(ctx context.Context) error {
	if err := c.identity.Logout(ctx); err != nil {
		c.logger.WarnContext(ctx, "backend logout failed", "error", err)
	}
	c.clearSlots(ctx)
	c.resetLocked()
	c.logger.InfoContext(ctx, "session ended")
	return nil
}

// RegisterAccount creates a new account via the backend. It does not
// authenticate the new account; the caller logs in separately.
func (c *SessionController) RegisterAccount(ctx context.Context, profile model.AccountProfile) (domainauth.User, error) {
	if profile.Email == "" || profile.Password == "" {
		return domainauth.User{}, apperrors.Validation("email and password are required")
	}
	user, err := c.identity.RegisterAccount(ctx, profile)
	if err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}

// HandleUnauthorized applies the global 401 policy: clear both slots, drop
// the session, and navigate to the login surface unless already there. It is
// wired as the API client's OnUnauthorized hook so no call site needs to
// re-implement it.
func (c *SessionController) HandleUnauthorized() {
	ctx := context.Background()
	c.clearSlots(ctx)
	c.resetLocked()

	if c.navigate == nil {
		return
	}
	if c.currentPath != nil && strings.HasPrefix(c.currentPath(), guard.LoginPath) {
		return
	}
	c.navigate(guard.LoginPath)
}

func (c *SessionController) clearSlots(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.WarnContext(ctx, "clear durable slot failed", "error", err)
	}
	if err := c.replica.Clear(ctx); err != nil {
		c.logger.WarnContext(ctx, "clear replica failed", "error", err)
	}
}

func (c *SessionController) setStatus(status domainauth.Status) {
	c.mu.Lock()
	c.session.Status = status
	c.session.LastError = ""
	c.mu.Unlock()
}

func (c *SessionController) failLocked(message string) {
	c.mu.Lock()
	c.rehydrated = true
	c.session = domainauth.Session{Status: domainauth.StatusFailed, LastError: message}
	c.mu.Unlock()
}

func (c *SessionController) resetLocked() {
	c.mu.Lock()
	c.rehydrated = true
	c.session = domainauth.Session{Status: domainauth.StatusAnonymous}
	c.mu.Unlock()
}

// Ensure compile-time conformance to ports.
var _ ports.SessionReader = (*SessionController)(nil)
