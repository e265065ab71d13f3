package api

import (
	"context"
	"errors"
	"net/http"

	domainauth "github.com/corpevents/eventdesk/internal/domain/auth"
	"github.com/corpevents/eventdesk/internal/domain/model"
	apperrors "github.com/corpevents/eventdesk/internal/errors"
	"golang.org/x/oauth2"
)

// ExchangeCredentials trades email+password for a bearer token via the
// backend's OAuth2 password grant (form-encoded username/password against
// /login/access-token). The exchange is unauthenticated by definition, so it
// bypasses the bearer transport.
func (c *Client) ExchangeCredentials(ctx context.Context, email, password string) (string, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.baseURL + "/login/access-token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.plain)
	tok, err := conf.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return "", apperrors.MapHTTPError(retrieveErr.Response.StatusCode, retrieveErr.Body)
		}
		return "", apperrors.MapTransportError(err)
	}

	if tok.AccessToken == "" {
		return "", apperrors.Internal("credential exchange returned no token")
	}
	return tok.AccessToken, nil
}

// CurrentUser fetches the identity behind the current credential.
func (c *Client) CurrentUser(ctx context.Context) (domainauth.User, error) {
	var user domainauth.User
	if err := c.get(ctx, "/users/me", nil, &user); err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}

// RegisterAccount creates a new account. It does not authenticate it.
func (c *Client) RegisterAccount(ctx context.Context, profile model.AccountProfile) (domainauth.User, error) {
	var user domainauth.User
	err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/users/register",
		body:   profile,
		plain:  true,
	}, &user)
	if err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}

// Logout notifies the backend that the session ended. Best effort: callers
// clear local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, requestParams{method: http.MethodPost, path: "/logout"}, nil)
}
