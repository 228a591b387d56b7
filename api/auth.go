package api

import (
	"context"
	"net/url"

	"github.com/shophub-io/storefront/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.post(ctx, "/auth/login", nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register sends the profile as the body and the password as a query
// parameter, matching the backend contract.
func (c *Client) Register(ctx context.Context, input models.RegisterInput, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.post(ctx, "/auth/register", url.Values{"password": {password}}, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.post(ctx, "/auth/forgot-password", url.Values{"email": {email}}, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.post(ctx, "/auth/reset-password", url.Values{"token": {token}, "newPassword": {newPassword}}, nil, nil)
}
