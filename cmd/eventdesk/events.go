package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
	"github.com/corpevents/eventdesk/internal/service"
)

func runEvents(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	q := fs.String("q", "", "search term")
	status := fs.String("status", "", "filter by status (draft, published, cancelled)")
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := model.EventFilters{
		Q:    *q,
		Page: *page,
		Size: *size,
	}
	if *status != "" {
		parsed, ok := model.ParseEventStatus(*status)
		if !ok {
			return fmt.Errorf("unknown status %q", *status)
		}
		filters.Status = parsed
	}

	result, err := cmdCtx.App.Client.ListEvents(cmdCtx.Ctx, filters)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	refreshForDisplay(cmdCtx)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tTITLE\tSTATUS\tSTART\tREGISTERED"); err != nil {
		return err
	}
	for _, ev := range result.Items {
		registered := ""
		if cmdCtx.App.Registrations.IsRegistered(ev.ID) {
			registered = "yes"
		}
		if err := writef(w, "%s\t%s\t%s\t%s\t%s\n",
			ev.ID, ev.Title, ev.Status, formatStart(ev.TimeRange.Start), registered); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return writef(os.Stdout, "\npage %d of %d (%d events)\n", result.Page, result.Pages, result.Total)
}

func runCalendar(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := cmdCtx.App.Client.ListEvents(cmdCtx.Ctx, model.EventFilters{
		Page:   *page,
		Size:   *size,
		Status: model.EventStatusPublished,
	})
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	refreshForDisplay(cmdCtx)

	items := service.CalendarItems(service.ComposeCatalog(result.Items, cmdCtx.App.Registrations.IsRegistered))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "START\tKIND\tTITLE\tDETAIL"); err != nil {
		return err
	}
	for _, item := range items {
		detail := ""
		switch {
		case item.Kind == service.CatalogItemSession:
			detail = "part of " + item.ParentTitle
		case item.Registered:
			detail = "registered"
		}
		if err := writef(w, "%s\t%s\t%s\t%s\n",
			formatStart(item.Start), item.Kind, item.Title, detail); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	eventID := fs.String("event", "", "event ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == "" {
		return fmt.Errorf("-event is required")
	}

	if err := cmdCtx.App.Sessions.CheckAuth(cmdCtx.Ctx); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	event, err := cmdCtx.App.Client.GetEvent(cmdCtx.Ctx, *eventID)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	if err := cmdCtx.App.Registrations.Register(cmdCtx.Ctx, event); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return writef(os.Stdout, "Registered for %q.\n", event.Title)
}

func runUnregister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("unregister", flag.ContinueOnError)
	eventID := fs.String("event", "", "event ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == "" {
		return fmt.Errorf("-event is required")
	}

	if err := cmdCtx.App.Sessions.CheckAuth(cmdCtx.Ctx); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	if err := cmdCtx.App.Registrations.Refresh(cmdCtx.Ctx); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	err := cmdCtx.App.Registrations.Unregister(cmdCtx.Ctx, *eventID)
	switch {
	case err == nil:
		return writef(os.Stdout, "Unregistered from event %s.\n", *eventID)
	case errors.Is(err, service.ErrConfirmationDeclined):
		return writeln(os.Stdout, "Kept the registration.")
	default:
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
}

func runRegistrations(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.App.Sessions.CheckAuth(cmdCtx.Ctx); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	if err := cmdCtx.App.Registrations.Refresh(cmdCtx.Ctx); err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	ids := cmdCtx.App.Registrations.Registrations()
	if len(ids) == 0 {
		return writeln(os.Stdout, "No registrations.")
	}
	for _, id := range ids {
		if err := writeln(os.Stdout, id); err != nil {
			return err
		}
	}
	return nil
}

func formatStart(start *time.Time) string {
	if start == nil {
		return "unscheduled"
	}
	return start.Format("2006-01-02 15:04")
}
