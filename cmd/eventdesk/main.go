package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/corpevents/eventdesk/config"
	"github.com/corpevents/eventdesk/internal/bootstrap"
	"github.com/corpevents/eventdesk/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	App    *bootstrap.App
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(&cfg)

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	ctx := context.Background()
	app, err := bootstrap.BuildApp(cfg, logger, bootstrap.AppOptions{
		Confirm: promptConfirm,
	})
	if err != nil {
		logger.ErrorContext(ctx, "build app", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must propagate wiring failure to callers
	}
	defer func() {
		if cerr := app.Close(ctx); cerr != nil {
			logger.ErrorContext(ctx, "close app", "error", cerr)
		}
	}()

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		App:    app,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in and store the credential locally",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Sign out and clear the stored credential",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the identity behind the stored credential",
			run:         runWhoami,
		},
		"signup": {
			name:        "signup",
			description: "Create a new account",
			run:         runSignup,
		},
		"events": {
			name:        "events",
			description: "List the event catalog",
			run:         runEvents,
		},
		"calendar": {
			name:        "calendar",
			description: "Show the merged event and session timeline",
			run:         runCalendar,
		},
		"register": {
			name:        "register",
			description: "Register for an event",
			run:         runRegister,
		},
		"unregister": {
			name:        "unregister",
			description: "Cancel an event registration",
			run:         runUnregister,
		},
		"registrations": {
			name:        "registrations",
			description: "List the events you are registered for",
			run:         runRegistrations,
		},
		"event-create": {
			name:        "event-create",
			description: "Create an event (organizer or admin)",
			run:         runEventCreate,
		},
		"event-update": {
			name:        "event-update",
			description: "Update an event's details (organizer or admin)",
			run:         runEventUpdate,
		},
		"event-delete": {
			name:        "event-delete",
			description: "Delete an event (organizer or admin)",
			run:         runEventDelete,
		},
		"session-create": {
			name:        "session-create",
			description: "Create a session under an event (organizer or admin)",
			run:         runSessionCreate,
		},
		"spaces": {
			name:        "spaces",
			description: "List the venues available for scheduling",
			run:         runSpaces,
		},
		"users": {
			name:        "users",
			description: "List user accounts (admin)",
			run:         runUsers,
		},
		"user-update": {
			name:        "user-update",
			description: "Edit a user's roles or active flag (admin)",
			run:         runUserUpdate,
		},
		"user-delete": {
			name:        "user-delete",
			description: "Remove a user account (admin)",
			run:         runUserDelete,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: eventdesk <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}

// promptConfirm is the coordinator's confirmation hook for destructive
// registration changes.
func promptConfirm(_ context.Context, eventID string) bool {
	if err := writef(os.Stderr, "Unregister from event %s? [y/N]: ", eventID); err != nil {
		return false
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}

// promptLine reads one line from stdin after printing a prompt to stderr.
func promptLine(prompt string) (string, error) {
	if err := writef(os.Stderr, "%s", prompt); err != nil {
		return "", err
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// refreshForDisplay primes the registration set so list views can flag
// registered events. Anonymous sessions resolve locally.
func refreshForDisplay(cmdCtx *commandContext) {
	if err := cmdCtx.App.Registrations.Refresh(cmdCtx.Ctx); err != nil {
		cmdCtx.Logger.WarnContext(cmdCtx.Ctx, "refresh registrations", "error", err)
	}
}

var _ service.ConfirmFunc = promptConfirm
