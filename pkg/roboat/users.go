package roboat

import (
	"context"
	"net/http"
)

const authenticatedUserPath = "/v1/users/authenticated"

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Authenticated returns the identity of the authenticated account
func (s *userService) Authenticated(ctx context.Context) (*Identity, error) {
	return s.client.resolveSelfIdentity(ctx)
}

// resolveSelfIdentity returns the cached identity or fetches it. Callers
// racing on an empty cache each fetch; the last one stored wins.
func (c *Client) resolveSelfIdentity(ctx context.Context) (*Identity, error) {
	if identity, ok := c.session.cachedIdentity(); ok {
		return &identity, nil
	}

	req, err := c.newRequest(http.MethodGet, c.usersURL+authenticatedUserPath, nil)
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := c.executeReadonly(ctx, "users.authenticated", req, &identity); err != nil {
		return nil, err
	}

	c.session.storeIdentity(identity)

	return &identity, nil
}
