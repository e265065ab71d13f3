package service

import (
	"sort"
	"time"

	"github.com/corpevents/eventdesk/internal/domain/model"
)

// CatalogItemKind distinguishes top-level events from their sub-event sessions.
type CatalogItemKind string

const (
	CatalogItemEvent   CatalogItemKind = "event"
	CatalogItemSession CatalogItemKind = "session"
)

// CatalogItem is one calendar-displayable entry of the merged timeline.
type CatalogItem struct {
	Kind   CatalogItemKind
	ID     string
	Title  string
	Start  *time.Time
	End    *time.Time
	Status model.EventStatus
	// Registered is set on events only, from the coordinator's local set.
	Registered bool
	// ParentID and ParentTitle are set on sessions only.
	ParentID    string
	ParentTitle string
	// Unscheduled entries have no start time. They are excluded from the
	// calendar but retained for list views.
	Unscheduled bool
}

// ComposeCatalog merges a page of events and their embedded sessions into a
// single sequence ordered by start time, with unscheduled entries deferred
// to the end in input order. The transform is pure and side-effect free;
// it is safe to reapply on every re-render.
func ComposeCatalog(events []model.Event, isRegistered func(eventID string) bool) []CatalogItem {
	if isRegistered == nil {
		isRegistered = func(string) bool { return false }
	}

	items := make([]CatalogItem, 0, len(events))
	for _, ev := range events {
		items = append(items, CatalogItem{
			Kind:        CatalogItemEvent,
			ID:          ev.ID,
			Title:       ev.Title,
			Start:       ev.TimeRange.Start,
			End:         ev.TimeRange.End,
			Status:      ev.Status,
			Registered:  isRegistered(ev.ID),
			Unscheduled: !ev.TimeRange.Scheduled(),
		})
		for _, sub := range ev.Sessions {
			items = append(items, CatalogItem{
				Kind:        CatalogItemSession,
				ID:          sub.ID,
				Title:       sub.Title,
				Start:       sub.TimeRange.Start,
				End:         sub.TimeRange.End,
				Status:      sub.Status,
				ParentID:    ev.ID,
				ParentTitle: ev.Title,
				Unscheduled: !sub.TimeRange.Scheduled(),
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Unscheduled != b.Unscheduled {
			return !a.Unscheduled
		}
		if a.Unscheduled {
			return false
		}
		return a.Start.Before(*b.Start)
	})
	return items
}

// CalendarItems filters the composed sequence down to entries with a start
// time, preserving order.
func CalendarItems(items []CatalogItem) []CatalogItem {
	scheduled := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Unscheduled {
			continue
		}
		scheduled = append(scheduled, item)
	}
	return scheduled
}
