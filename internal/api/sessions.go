package api

import (
	"context"
	"net/http"

	"github.com/corpevents/eventdesk/internal/domain/model"
)

// CreateSubEvent creates a scheduling session under input.EventID.
func (c *Client) CreateSubEvent(ctx context.Context, input model.SubEventInput) (model.SubEvent, error) {
	var sub model.SubEvent
	err := c.do(ctx, requestParams{method: http.MethodPost, path: "/sessions/", body: input}, &sub)
	if err != nil {
		return model.SubEvent{}, err
	}
	return sub, nil
}
