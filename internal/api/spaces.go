package api

import (
	"context"

	"github.com/corpevents/eventdesk/internal/domain/model"
)

// ListSpaces fetches the venues available for scheduling.
func (c *Client) ListSpaces(ctx context.Context) ([]model.Space, error) {
	var spaces []model.Space
	if err := c.get(ctx, "/spaces/", nil, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}
