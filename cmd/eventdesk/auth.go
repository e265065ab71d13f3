package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
)

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		value, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		*email = value
	}
	if *password == "" {
		value, err := promptLine("Password: ")
		if err != nil {
			return err
		}
		*password = value
	}

	if err := cmdCtx.App.Sessions.Login(cmdCtx.Ctx, *email, *password); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	sess := cmdCtx.App.Sessions.Session()
	return writef(os.Stdout, "Signed in as %s\n", sess.User.Email)
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.App.Sessions.Logout(cmdCtx.Ctx); err != nil {
		return err
	}
	return writeln(os.Stdout, "Signed out.")
}

func runWhoami(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.App.Sessions.CheckAuth(cmdCtx.Ctx); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	sess := cmdCtx.App.Sessions.Session()
	if !sess.IsAuthenticated() {
		return writeln(os.Stdout, "Not signed in.")
	}

	user := sess.User
	if err := writef(os.Stdout, "%s <%s>\n", user.FullName, user.Email); err != nil {
		return err
	}
	for _, role := range user.Roles {
		if err := writef(os.Stdout, "  role: %s\n", role.Name); err != nil {
			return err
		}
	}
	return nil
}

func runSignup(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	name := fs.String("name", "", "full name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		value, err := promptLine("Password: ")
		if err != nil {
			return err
		}
		*password = value
	}

	user, err := cmdCtx.App.Sessions.RegisterAccount(cmdCtx.Ctx, model.AccountProfile{
		Email:    *email,
		Password: *password,
		FullName: *name,
	})
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Account created for %s. Run `eventdesk login` to sign in.\n", user.Email)
}
