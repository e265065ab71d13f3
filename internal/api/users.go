package api

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
)

// ListUsers fetches all users. Admin only; non-admins get a 403 the error
// mapper surfaces as a Forbidden banner.
func (c *Client) ListUsers(ctx context.Context) ([]domainauth.User, error) {
	var users []domainauth.User
	if err := c.get(ctx, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser edits another user's roles or active flag. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id string, update model.UserUpdate) (domainauth.User, error) {
	var user domainauth.User
	err := c.do(ctx, requestParams{
		method: http.MethodPut,
		path:   "/users/" + url.PathEscape(id),
		body:   update,
	}, &user)
	if err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}

// DeleteUser removes a user record. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id string) (domainauth.User, error) {
	var user domainauth.User
	err := c.do(ctx, requestParams{method: http.MethodDelete, path: "/users/" + url.PathEscape(id)}, &user)
	if err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}
