package auth

// Package auth contains domain-level types for the client's authentication
// session. It is pure and free of transport/adapter concerns.

// Role represents a backend-assigned authorization role.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Well-known role names issued by the backend.
const (
	RoleNameAdmin     = "admin"
	RoleNameOrganizer = "organizer"
	RoleNameCustomer  = "customer"
)

// User is the identity returned by the who-am-I endpoint.
// Immutable once fetched; refreshed only by a new fetch.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the user carries the named role.
func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may access admin surfaces.
func (u User) IsAdmin() bool { return u.HasRole(RoleNameAdmin) }

// IsOrganizer reports whether the user may create and manage events.
// Admins are implicitly organizers.
func (u User) IsOrganizer() bool { return u.HasRole(RoleNameOrganizer) || u.IsAdmin() }

// Status is the session state machine's current state.
// Transitions happen only inside the session controller.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusFailed         Status = "failed"
)

// Session is the client's belief about the current login state.
// Exactly one exists per controller. Status == StatusAuthenticated implies
// both User and Credential are present.
type Session struct {
	User       *User
	Credential string
	Status     Status
	LastError  string
}

// IsAuthenticated reports whether the session is in the authenticated state.
func (s Session) IsAuthenticated() bool { return s.Status == StatusAuthenticated }
