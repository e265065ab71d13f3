//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// EventFilters controls paging and filtering for the event listing endpoint.
// Zero-valued fields are omitted from the request entirely; the backend
// rejects empty-string enum parameters.
type EventFilters struct {
	Page      int
	Size      int
	Q         string
	Status    EventStatus
	StartDate string // RFC 3339 date, inclusive lower bound
	EndDate   string // RFC 3339 date, inclusive upper bound
}

// EventPage is one page of the event listing.
type EventPage struct {
	Items []Event `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Pages int     `json:"pages"`
}
