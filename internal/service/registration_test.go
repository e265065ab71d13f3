package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
	"github.com/corpevents/eventdesk/internal/mocks"
	"github.com/corpevents/eventdesk/internal/testutil"
)

func authedSession() mocks.StaticSession {
	user := mocks.DefaultUser()
	return mocks.StaticSession{Current: domainauth.Session{
		User:       &user,
		Credential: "tok-1",
		Status:     domainauth.StatusAuthenticated,
	}}
}

func TestRegistrationCoordinator_Register_ReconcilesFromServer(t *testing.T) {
	backend := &mocks.ScriptedEventsAPI{
		Registrations: []model.Registration{
			testutil.NewRegistration("reg-1", "ev-1"),
			testutil.NewRegistration("reg-2", "ev-2"),
		},
	}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: authedSession(),
		Logger:  testLogger(),
	})

	err := coord.Register(context.Background(), testutil.NewEvent("ev-1").Build())
	require.NoError(t, err)

	// The local set is the server's answer, not a local insert.
	assert.Equal(t, []string{"ev-1", "ev-2"}, coord.Registrations())
	assert.True(t, coord.IsRegistered("ev-2"))
	assert.Equal(t, 1, backend.RegistrationFetches())
	assert.False(t, coord.Busy())
}

func TestRegistrationCoordinator_Register_FreshTokenPerAttempt(t *testing.T) {
	backend := &mocks.ScriptedEventsAPI{}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: authedSession(),
		Logger:  testLogger(),
	})
	ctx := context.Background()

	require.NoError(t, coord.Register(ctx, testutil.NewEvent("ev-1").Build()))
	require.NoError(t, coord.Register(ctx, testutil.NewEvent("ev-1").Build()))

	ids := backend.RequestIDs()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestRegistrationCoordinator_Register_RequiresAuth(t *testing.T) {
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  &mocks.ScriptedEventsAPI{},
		Session: mocks.StaticSession{Current: domainauth.Session{Status: domainauth.StatusAnonymous}},
		Logger:  testLogger(),
	})

	err := coord.Register(context.Background(), testutil.NewEvent("ev-1").Build())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestRegistrationCoordinator_Register_RequiresPublished(t *testing.T) {
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  &mocks.ScriptedEventsAPI{},
		Session: authedSession(),
		Logger:  testLogger(),
	})

	draft := testutil.NewEvent("ev-1").WithStatus(model.EventStatusDraft).Build()
	err := coord.Register(context.Background(), draft)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBusiness, apperrors.GetCode(err))
}

func TestRegistrationCoordinator_Register_BusyRejectsOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	backend := &mocks.ScriptedEventsAPI{
		RegisterFunc: func(ctx context.Context, id, requestID string) (model.Registration, error) {
			close(started)
			<-release
			return model.Registration{EventID: id}, nil
		},
	}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: authedSession(),
		Logger:  testLogger(),
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = coord.Register(ctx, testutil.NewEvent("ev-1").Build())
	}()

	<-started
	assert.True(t, coord.Busy())
	err := coord.Register(ctx, testutil.NewEvent("ev-2").Build())
	assert.ErrorIs(t, err, ErrBusy)
	// Only the first attempt minted an idempotency token.
	assert.Len(t, backend.RequestIDs(), 1)

	close(release)
	wg.Wait()
	assert.False(t, coord.Busy())
}

func TestRegistrationCoordinator_Register_FailureKeepsLocalSet(t *testing.T) {
	backend := &mocks.ScriptedEventsAPI{
		Registrations: []model.Registration{testutil.NewRegistration("reg-1", "ev-1")},
	}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: authedSession(),
		Logger:  testLogger(),
	})
	ctx := context.Background()
	require.NoError(t, coord.Refresh(ctx))

	backend.RegisterFunc = func(ctx context.Context, id, requestID string) (model.Registration, error) {
		return model.Registration{}, apperrors.Conflict("Already registered")
	}
	err := coord.Register(ctx, testutil.NewEvent("ev-2").Build())
	require.Error(t, err)

	assert.Equal(t, []string{"ev-1"}, coord.Registrations())
	assert.False(t, coord.Busy())
}

func TestRegistrationCoordinator_Unregister_ConfirmDeclined(t *testing.T) {
	backend := &mocks.ScriptedEventsAPI{
		Registrations: []model.Registration{testutil.NewRegistration("reg-1", "ev-1")},
	}
	var unregistered bool
	backend.UnregisterFunc = func(ctx context.Context, id string) (model.Registration, error) {
		unregistered = true
		return model.Registration{}, nil
	}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: authedSession(),
		Confirm: func(ctx context.Context, eventID string) bool { return false },
		Logger:  testLogger(),
	})
	ctx := context.Background()
	require.NoError(t, coord.Refresh(ctx))

	err := coord.Unregister(ctx, "ev-1")
	assert.ErrorIs(t, err, ErrConfirmationDeclined)
	assert.False(t, unregistered)
	assert.True(t, coord.IsRegistered("ev-1"))
}

func TestRegistrationCoordinator_Unregister_NotRegistered(t *testing.T) {
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  &mocks.ScriptedEventsAPI{},
		Session: authedSession(),
		Logger:  testLogger(),
	})

	err := coord.Unregister(context.Background(), "ev-404")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistrationCoordinator_Unregister_Reconciles(t *testing.T) {
	backend := &mocks.ScriptedEventsAPI{
		Registrations: []model.Registration{
			testutil.NewRegistration("reg-1", "ev-1"),
			testutil.NewRegistration("reg-2", "ev-2"),
		},
	}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: authedSession(),
		Confirm: func(ctx context.Context, eventID string) bool { return true },
		Logger:  testLogger(),
	})
	ctx := context.Background()
	require.NoError(t, coord.Refresh(ctx))

	backend.Registrations = []model.Registration{testutil.NewRegistration("reg-2", "ev-2")}
	require.NoError(t, coord.Unregister(ctx, "ev-1"))

	assert.Equal(t, []string{"ev-2"}, coord.Registrations())
}

func TestRegistrationCoordinator_Refresh_AnonymousIsLocal(t *testing.T) {
	backend := &mocks.ScriptedEventsAPI{
		RegistrationsFunc: func(ctx context.Context) ([]model.Registration, error) {
			return nil, errors.New("must not be called")
		},
	}
	coord := NewRegistrationCoordinator(RegistrationCoordinatorOptions{
		Events:  backend,
		Session: mocks.StaticSession{Current: domainauth.Session{Status: domainauth.StatusAnonymous}},
		Logger:  testLogger(),
	})

	require.NoError(t, coord.Refresh(context.Background()))
	assert.Empty(t, coord.Registrations())
	assert.Equal(t, 0, backend.RegistrationFetches())
}
