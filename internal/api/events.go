package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/corpevents/eventdesk/internal/domain/model"
)

// ListEvents fetches one page of the catalog. Zero-valued filters are
// omitted from the query string entirely; the backend rejects empty-string
// enum parameters.
func (c *Client) ListEvents(ctx context.Context, filters model.EventFilters) (model.EventPage, error) {
	query := url.Values{}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Size > 0 {
		query.Set("size", strconv.Itoa(filters.Size))
	}
	if filters.Q != "" {
		query.Set("q", filters.Q)
	}
	if filters.Status != "" {
		query.Set("status", string(filters.Status))
	}
	if filters.StartDate != "" {
		query.Set("start_date", filters.StartDate)
	}
	if filters.EndDate != "" {
		query.Set("end_date", filters.EndDate)
	}

	var page model.EventPage
	if err := c.get(ctx, "/events/", query, &page); err != nil {
		return model.EventPage{}, err
	}
	return page, nil
}

// GetEvent fetches a single event with its nested sessions.
func (c *Client) GetEvent(ctx context.Context, id string) (model.Event, error) {
	var ev model.Event
	if err := c.get(ctx, "/events/"+url.PathEscape(id), nil, &ev); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// CreateEvent creates an event. Requires an organizer or admin credential.
func (c *Client) CreateEvent(ctx context.Context, input model.EventInput) (model.Event, error) {
	var ev model.Event
	err := c.do(ctx, requestParams{method: http.MethodPost, path: "/events/", body: input}, &ev)
	if err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// UpdateEvent replaces an event's mutable fields.
func (c *Client) UpdateEvent(ctx context.Context, id string, input model.EventInput) (model.Event, error) {
	var ev model.Event
	err := c.do(ctx, requestParams{
		method: http.MethodPut,
		path:   "/events/" + url.PathEscape(id),
		body:   input,
	}, &ev)
	if err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// DeleteEvent removes an event and returns its final state.
func (c *Client) DeleteEvent(ctx context.Context, id string) (model.Event, error) {
	var ev model.Event
	err := c.do(ctx, requestParams{method: http.MethodDelete, path: "/events/" + url.PathEscape(id)}, &ev)
	if err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// RegisterForEvent registers the current user. requestID is the per-attempt
// idempotency token carried in X-Request-ID; the server collapses duplicate
// submissions bearing the same token.
func (c *Client) RegisterForEvent(ctx context.Context, id, requestID string) (model.Registration, error) {
	if requestID == "" {
		return model.Registration{}, fmt.Errorf("request ID is required")
	}

	header := http.Header{}
	header.Set("X-Request-ID", requestID)

	var reg model.Registration
	err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/events/" + url.PathEscape(id) + "/register",
		header: header,
		body:   struct{}{},
	}, &reg)
	if err != nil {
		return model.Registration{}, err
	}
	return reg, nil
}

// UnregisterFromEvent cancels the current user's registration.
func (c *Client) UnregisterFromEvent(ctx context.Context, id string) (model.Registration, error) {
	var reg model.Registration
	err := c.do(ctx, requestParams{
		method: http.MethodDelete,
		path:   "/events/" + url.PathEscape(id) + "/unregister",
	}, &reg)
	if err != nil {
		return model.Registration{}, err
	}
	return reg, nil
}

// MyRegistrations fetches the canonical registration set for the current user.
func (c *Client) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	var regs []model.Registration
	if err := c.get(ctx, "/events/registrations/me", nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}
