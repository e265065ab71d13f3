// Package testutil provides testing utilities and helpers for the eventdesk client.
package testutil

import (
	"time"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
)

// EventBuilder provides a fluent interface for building Event objects for testing.
type EventBuilder struct {
	ev model.Event
}

// NewEvent creates a new EventBuilder with sensible defaults.
func NewEvent(id string) *EventBuilder {
	start := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	return &EventBuilder{
		ev: model.Event{
			ID:        id,
			Title:     "Event " + id,
			Status:    model.EventStatusPublished,
			TimeRange: model.TimeRange{Start: &start, End: &end},
		},
	}
}

// WithTitle sets the event title.
func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.ev.Title = title
	return b
}

// WithStatus sets the event status.
func (b *EventBuilder) WithStatus(status model.EventStatus) *EventBuilder {
	b.ev.Status = status
	return b
}

// WithStart sets the start time, keeping the end two hours later.
func (b *EventBuilder) WithStart(start time.Time) *EventBuilder {
	end := start.Add(2 * time.Hour)
	b.ev.TimeRange = model.TimeRange{Start: &start, End: &end}
	return b
}

// Unscheduled clears the time range.
func (b *EventBuilder) Unscheduled() *EventBuilder {
	b.ev.TimeRange = model.TimeRange{}
	return b
}

// WithSession appends a sub-event session.
func (b *EventBuilder) WithSession(id, title string, start time.Time) *EventBuilder {
	end := start.Add(time.Hour)
	b.ev.Sessions = append(b.ev.Sessions, model.SubEvent{
		ID:        id,
		EventID:   b.ev.ID,
		Title:     title,
		Status:    b.ev.Status,
		TimeRange: model.TimeRange{Start: &start, End: &end},
	})
	return b
}

// Build returns the constructed Event.
func (b *EventBuilder) Build() model.Event {
	return b.ev
}

// UserBuilder provides a fluent interface for building User objects for testing.
type UserBuilder struct {
	user domainauth.User
}

// NewUser creates a new UserBuilder with customer defaults.
func NewUser(id string) *UserBuilder {
	return &UserBuilder{
		user: domainauth.User{
			ID:       id,
			Email:    id + "@example.com",
			FullName: "User " + id,
			IsActive: true,
			Roles:    []domainauth.Role{{ID: 1, Name: domainauth.RoleNameCustomer}},
		},
	}
}

// WithEmail sets the email address.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// AsAdmin replaces the roles with the admin role.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Roles = []domainauth.Role{{ID: 2, Name: domainauth.RoleNameAdmin}}
	return b
}

// AsOrganizer replaces the roles with the organizer role.
func (b *UserBuilder) AsOrganizer() *UserBuilder {
	b.user.Roles = []domainauth.Role{{ID: 3, Name: domainauth.RoleNameOrganizer}}
	return b
}

// Inactive marks the user deactivated.
func (b *UserBuilder) Inactive() *UserBuilder {
	b.user.IsActive = false
	return b
}

// Build returns the constructed User.
func (b *UserBuilder) Build() domainauth.User {
	return b.user
}

// NewRegistration builds a confirmed registration for the given event.
func NewRegistration(id, eventID string) model.Registration {
	return model.Registration{
		ID:        id,
		EventID:   eventID,
		Status:    model.RegistrationStatusConfirmed,
		CreatedAt: time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC),
	}
}
