//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// RegistrationStatus mirrors the backend's registration lifecycle. The client
// only ever observes confirmed rows; existence is the meaningful state.
type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// Registration is a membership fact linking a user to an event or sub-event.
type Registration struct {
	ID        string             `json:"id"`
	EventID   string             `json:"event_id,omitempty"`
	SessionID string             `json:"session_id,omitempty"`
	UserID    string             `json:"user_id"`
	Status    RegistrationStatus `json:"status,omitempty"`
	CreatedAt time.Time          `json:"created_at,omitzero"`
}

// AccountProfile is the payload for self-service account registration.
type AccountProfile struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FullName  string   `json:"full_name,omitempty"`
	RoleNames []string `json:"role_names,omitempty"`
}

// UserUpdate is the admin payload for editing another user's record.
type UserUpdate struct {
	RoleNames []string `json:"role_names,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}
