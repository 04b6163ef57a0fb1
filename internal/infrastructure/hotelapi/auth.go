package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/internaltypes"
)

const authPath = "/auth"

var _ user.Authenticator = (*Client)(nil)

// id accepts both JSON numbers and strings.
type id string

func (i *id) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = id(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*i = id(n.String())
	return nil
}

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *struct {
		ID       id     `json:"id"`
		FullName string `json:"fullName"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
}

// Login posts the credentials to {base}/auth/login. A response with
// success=false is reported as internaltypes.ErrUnauthorized carrying the
// server's message.
func (c *Client) Login(ctx context.Context, email, password string) (user.Session, error) {
	const op = "login"
	payload := map[string]string{"email": email, "password": password}
	status, body, err := c.do(ctx, http.MethodPost, authPath+"/login", payload)
	if err != nil {
		return user.Session{}, requestFailed(op, status, body, err)
	}
	var res authResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return user.Session{}, requestFailed(op, status, body, fmt.Errorf("parse login response: %w", err))
	}
	if !res.Success || res.User == nil {
		msg := res.Message
		if msg == "" {
			msg = "Login failed"
		}
		return user.Session{}, fmt.Errorf("%w: %s", internaltypes.ErrUnauthorized, msg)
	}

	role, err := user.ParseRole(res.User.Role)
	if err != nil {
		role = user.RoleUser
	}
	name := res.User.FullName
	if name == "" {
		name = res.User.Name
	}
	if res.User.Email != "" {
		email = res.User.Email
	}
	return user.Session{UserID: string(res.User.ID), Name: name, Email: email, Role: role}, nil
}

// Register posts a new account to {base}/auth/register.
func (c *Client) Register(ctx context.Context, r user.Registration) error {
	const op = "register"
	status, body, err := c.do(ctx, http.MethodPost, authPath+"/register", r)
	if err != nil {
		return requestFailed(op, status, body, err)
	}
	var res authResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return requestFailed(op, status, body, fmt.Errorf("parse register response: %w", err))
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Registration failed"
		}
		return requestFailed(op, status, nil, errors.New(msg))
	}
	return nil
}
