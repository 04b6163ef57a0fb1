package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/internaltypes"
)

type AuthService struct {
	Auth user.Authenticator
}

func (a AuthService) Login(ctx context.Context, email, password string) (user.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return user.Session{}, fmt.Errorf("%w: email and password are required", internaltypes.ErrValidationBlocked)
	}
	return a.Auth.Login(ctx, email, password)
}

// Register creates an account with the role given in r. It is the admin path.
func (a AuthService) Register(ctx context.Context, r user.Registration) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Role == "" {
		r.Role = user.RoleUser
	}
	if r.DocumentType == "" {
		r.DocumentType = "ID"
	}
	if err := check(r); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("%w: Passwords do not match", internaltypes.ErrValidationBlocked)
	}
	return a.Auth.Register(ctx, r)
}

// RegisterCustomer is public and staff-side sign-up. The role is always USER.
func (a AuthService) RegisterCustomer(ctx context.Context, r user.Registration) error {
	r.Role = user.RoleUser
	return a.Register(ctx, r)
}
