//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"strings"
	"time"
)

// EventStatus is the lifecycle state of an event or sub-event session.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// Valid reports whether the event status is supported.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseEventStatus normalizes a status string and reports whether it is supported.
func ParseEventStatus(value string) (EventStatus, bool) {
	status := EventStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// TimeRange is a half-open [start, end) interval. The backend serializes it
// as a two-element array of RFC 3339 timestamps; either bound may be null.
type TimeRange struct {
	Start *time.Time
	End   *time.Time
}

// Scheduled reports whether the range carries a usable start time.
// Entries without one are excluded from calendar placement.
func (r TimeRange) Scheduled() bool { return r.Start != nil }

// MarshalJSON encodes the range as a [start, end] pair.
func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]*time.Time{r.Start, r.End})
}

// UnmarshalJSON accepts a [start, end] pair or null.
func (r *TimeRange) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = TimeRange{}
		return nil
	}
	var pair []*time.Time
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	*r = TimeRange{}
	if len(pair) > 0 {
		r.Start = pair[0]
	}
	if len(pair) > 1 {
		r.End = pair[1]
	}
	return nil
}

// Space is a physical or virtual venue an event takes place in.
type Space struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
}

// SubEvent is a scheduling session nested under an event. It shares the
// event shape minus nesting and carries a back-reference to its parent.
type SubEvent struct {
	ID          string      `json:"id"`
	EventID     string      `json:"event_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
	TimeRange   TimeRange   `json:"time_range"`
	Capacity    *int        `json:"capacity,omitempty"`
	SpaceID     string      `json:"space_id,omitempty"`
}

// Event is a top-level catalog entry.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
	TimeRange   TimeRange   `json:"time_range"`
	Capacity    *int        `json:"capacity,omitempty"`
	Space       *Space      `json:"space,omitempty"`
	OrganizerID string      `json:"organizer_id,omitempty"`
	Sessions    []SubEvent  `json:"sessions,omitempty"`
}

// EventInput is the payload for creating or updating an event.
type EventInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status,omitempty"`
	TimeRange   *TimeRange  `json:"time_range,omitempty"`
	Capacity    *int        `json:"capacity,omitempty"`
	SpaceID     string      `json:"space_id,omitempty"`
}

// SubEventInput is the payload for creating a sub-event session.
// EventID attaches the session to its parent event.
type SubEventInput struct {
	EventID     string      `json:"event_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status,omitempty"`
	TimeRange   *TimeRange  `json:"time_range,omitempty"`
	Capacity    *int        `json:"capacity,omitempty"`
	SpaceID     string      `json:"space_id"`
}
