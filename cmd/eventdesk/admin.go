package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
)

func parseTimeRange(start, end string) (*model.TimeRange, error) {
	if start == "" {
		return nil, nil
	}
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, fmt.Errorf("parse -start: %w", err)
	}
	tr := &model.TimeRange{Start: &startAt}
	if end != "" {
		endAt, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return nil, fmt.Errorf("parse -end: %w", err)
		}
		tr.End = &endAt
	}
	return tr, nil
}

func eventInputFlags(fs *flag.FlagSet) (title, description, status, start, end, spaceID *string, capacity *int) {
	title = fs.String("title", "", "event title")
	description = fs.String("description", "", "event description")
	status = fs.String("status", "", "event status (draft, published, cancelled)")
	start = fs.String("start", "", "start time (RFC 3339)")
	end = fs.String("end", "", "end time (RFC 3339)")
	spaceID = fs.String("space", "", "venue space ID")
	capacity = fs.Int("capacity", 0, "attendee capacity")
	return
}

func buildEventInput(title, description, status, start, end, spaceID string, capacity int) (model.EventInput, error) {
	input := model.EventInput{
		Title:       title,
		Description: description,
		SpaceID:     spaceID,
	}
	if status != "" {
		parsed, ok := model.ParseEventStatus(status)
		if !ok {
			return model.EventInput{}, fmt.Errorf("unknown status %q", status)
		}
		input.Status = parsed
	}
	tr, err := parseTimeRange(start, end)
	if err != nil {
		return model.EventInput{}, err
	}
	input.TimeRange = tr
	if capacity > 0 {
		input.Capacity = &capacity
	}
	return input, nil
}

func runEventCreate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("event-create", flag.ContinueOnError)
	title, description, status, start, end, spaceID, capacity := eventInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("-title is required")
	}

	input, err := buildEventInput(*title, *description, *status, *start, *end, *spaceID, *capacity)
	if err != nil {
		return err
	}

	ev, err := cmdCtx.App.Client.CreateEvent(cmdCtx.Ctx, input)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Created event %s (%q).\n", ev.ID, ev.Title)
}

func runEventUpdate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("event-update", flag.ContinueOnError)
	eventID := fs.String("event", "", "event ID")
	title, description, status, start, end, spaceID, capacity := eventInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == "" {
		return fmt.Errorf("-event is required")
	}

	input, err := buildEventInput(*title, *description, *status, *start, *end, *spaceID, *capacity)
	if err != nil {
		return err
	}

	ev, err := cmdCtx.App.Client.UpdateEvent(cmdCtx.Ctx, *eventID, input)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Updated event %s (%q, %s).\n", ev.ID, ev.Title, ev.Status)
}

func runEventDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("event-delete", flag.ContinueOnError)
	eventID := fs.String("event", "", "event ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == "" {
		return fmt.Errorf("-event is required")
	}

	ev, err := cmdCtx.App.Client.DeleteEvent(cmdCtx.Ctx, *eventID)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Deleted event %s (%q).\n", ev.ID, ev.Title)
}

func runSessionCreate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("session-create", flag.ContinueOnError)
	eventID := fs.String("event", "", "parent event ID")
	title, description, status, start, end, spaceID, capacity := eventInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == "" || *title == "" {
		return fmt.Errorf("-event and -title are required")
	}

	eventInput, err := buildEventInput(*title, *description, *status, *start, *end, *spaceID, *capacity)
	if err != nil {
		return err
	}
	input := model.SubEventInput{
		EventID:     *eventID,
		Title:       eventInput.Title,
		Description: eventInput.Description,
		Status:      eventInput.Status,
		TimeRange:   eventInput.TimeRange,
		Capacity:    eventInput.Capacity,
		SpaceID:     eventInput.SpaceID,
	}

	sub, err := cmdCtx.App.Client.CreateSubEvent(cmdCtx.Ctx, input)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Created session %s under event %s.\n", sub.ID, sub.EventID)
}

func runSpaces(cmdCtx *commandContext, _ []string) error {
	spaces, err := cmdCtx.App.Client.ListSpaces(cmdCtx.Ctx)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tNAME\tCAPACITY"); err != nil {
		return err
	}
	for _, space := range spaces {
		capacity := "-"
		if space.Capacity != nil {
			capacity = fmt.Sprintf("%d", *space.Capacity)
		}
		if err := writef(w, "%s\t%s\t%s\n", space.ID, space.Name, capacity); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runUsers(cmdCtx *commandContext, _ []string) error {
	users, err := cmdCtx.App.Client.ListUsers(cmdCtx.Ctx)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tEMAIL\tNAME\tROLES\tACTIVE"); err != nil {
		return err
	}
	for _, user := range users {
		roles := make([]string, 0, len(user.Roles))
		for _, role := range user.Roles {
			roles = append(roles, role.Name)
		}
		if err := writef(w, "%s\t%s\t%s\t%s\t%t\n",
			user.ID, user.Email, user.FullName, strings.Join(roles, ","), user.IsActive); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runUserUpdate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("user-update", flag.ContinueOnError)
	userID := fs.String("user", "", "user ID")
	roles := fs.String("roles", "", "comma-separated role names")
	activate := fs.Bool("activate", false, "reactivate the account")
	deactivate := fs.Bool("deactivate", false, "deactivate the account")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}
	if *activate && *deactivate {
		return fmt.Errorf("-activate and -deactivate are mutually exclusive")
	}

	var update model.UserUpdate
	if *roles != "" {
		for _, name := range strings.Split(*roles, ",") {
			update.RoleNames = append(update.RoleNames, strings.TrimSpace(name))
		}
	}
	if *activate || *deactivate {
		active := *activate
		update.IsActive = &active
	}

	user, err := cmdCtx.App.Client.UpdateUser(cmdCtx.Ctx, *userID, update)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Updated user %s (active=%t).\n", user.Email, user.IsActive)
}

func runUserDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("user-delete", flag.ContinueOnError)
	userID := fs.String("user", "", "user ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}

	user, err := cmdCtx.App.Client.DeleteUser(cmdCtx.Ctx, *userID)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Deleted user %s.\n", user.Email)
}
