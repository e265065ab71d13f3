package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/corpevents/eventdesk/config"
	"github.com/corpevents/eventdesk/internal/adapters/redisreplica"
	"github.com/corpevents/eventdesk/internal/adapters/tokenstore"
	"github.com/corpevents/eventdesk/internal/api"
	"github.com/corpevents/eventdesk/internal/ports"
	"github.com/corpevents/eventdesk/internal/service"
)

// AppOptions contains optional hooks for BuildApp.
type AppOptions struct {
	// Navigate is invoked when the 401 policy demands a redirect to the
	// login surface. Nil disables navigation (CLI mode).
	Navigate func(target string)
	// CurrentPath reports the currently displayed navigation target.
	CurrentPath func() string
	// Confirm gates unregistration; nil confirms unconditionally.
	Confirm service.ConfirmFunc
}

// App bundles the wired client components.
type App struct {
	Config        config.AppConfig
	Logger        *slog.Logger
	Client        *api.Client
	Sessions      *service.SessionController
	Registrations *service.RegistrationCoordinator

	redisClient *redis.Client
}

// BuildApp wires the credential slots, the backend client, and the services
// from configuration.
func BuildApp(cfg config.AppConfig, logger *slog.Logger, opts AppOptions) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tokens, err := tokenstore.NewFileSlot(cfg.Storage.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("create token slot: %w", err)
	}

	app := &App{Config: cfg, Logger: logger}

	var replica ports.ReplicaSlot
	switch cfg.Storage.ReplicaBackend {
	case config.ReplicaBackendRedis:
		app.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		replica = redisreplica.NewReplica(app.redisClient)
	default:
		fileReplica, err := tokenstore.NewFileReplica(cfg.Storage.ReplicaPath())
		if err != nil {
			return nil, fmt.Errorf("create replica slot: %w", err)
		}
		replica = fileReplica
	}

	// The controller and the client reference each other (bearer source one
	// way, 401 policy the other), so the client gets late-bound closures.
	var sessions *service.SessionController
	client, err := api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Token: func(ctx context.Context) string {
			bundle, err := tokens.Load(ctx)
			if err != nil {
				return ""
			}
			return bundle.Token
		},
		OnUnauthorized: func() {
			if sessions != nil {
				sessions.HandleUnauthorized()
			}
		},
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}

	sessions = service.NewSessionController(service.SessionControllerOptions{
		Identity:    client,
		Tokens:      tokens,
		Replica:     replica,
		ReplicaTTL:  cfg.Storage.ReplicaTTL,
		Logger:      logger,
		Navigate:    opts.Navigate,
		CurrentPath: opts.CurrentPath,
	})

	app.Client = client
	app.Sessions = sessions
	app.Registrations = service.NewRegistrationCoordinator(service.RegistrationCoordinatorOptions{
		Events:  client,
		Session: sessions,
		Confirm: opts.Confirm,
		Logger:  logger,
	})
	return app, nil
}

// Close releases held connections.
func (a *App) Close(ctx context.Context) error {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.WarnContext(ctx, "close redis client", "error", err)
			return err
		}
	}
	return nil
}
