package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/internaltypes"
)

type MemberService struct {
	Directory user.Directory
}

func (m MemberService) List(ctx context.Context) ([]user.Member, error) {
	return m.Directory.ListMembers(ctx)
}

// Update saves the editable fields and returns the backend's confirmation.
func (m MemberService) Update(ctx context.Context, id string, u user.MemberUpdate) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: member id is required", internaltypes.ErrValidationBlocked)
	}
	u.FullName = strings.TrimSpace(u.FullName)
	u.Email = strings.TrimSpace(u.Email)
	if role, err := user.ParseRole(string(u.Role)); err == nil {
		u.Role = role
	}
	if err := check(u); err != nil {
		return "", err
	}
	return m.Directory.UpdateMember(ctx, id, u)
}

func (m MemberService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: member id is required", internaltypes.ErrValidationBlocked)
	}
	return m.Directory.DeleteMember(ctx, id)
}
