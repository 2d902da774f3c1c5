package apiclient

import (
	"context"
	"net/http"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsCoach  bool   `json:"isCoach"`
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", input, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login authenticates and stores the returned bearer token on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return out.User, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/me", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// UpdateMe partially updates the authenticated user's profile.
func (c *Client) UpdateMe(ctx context.Context, update ProfileUpdate) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/me", update, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}
