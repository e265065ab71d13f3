package api

import "github.com/corpevents/eventdesk/internal/ports"

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityAPI  = (*Client)(nil)
	_ ports.EventsAPI    = (*Client)(nil)
	_ ports.UsersAPI     = (*Client)(nil)
	_ ports.SpacesAPI    = (*Client)(nil)
	_ ports.SubEventsAPI = (*Client)(nil)
)
