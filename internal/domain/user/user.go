package user

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleUser  Role = "USER"
)

// ParseRole normalizes a role name. Empty means RoleUser.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case "":
		return RoleUser, nil
	case RoleAdmin, RoleStaff, RoleUser:
		return r, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// Display is the human label for the role.
func (r Role) Display() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleStaff:
		return "Staff"
	case RoleUser, "":
		return "User"
	}
	return string(r)
}

// Session is the signed-in identity handed to every component that needs it.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}

func (s Session) IsZero() bool { return s.UserID == "" }

// Initials returns up to two initials of the display name for the top bar.
func (s Session) Initials() string {
	var out []rune
	for _, f := range strings.Fields(s.Name) {
		out = append(out, []rune(strings.ToUpper(f))[0])
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "OV"
	}
	return string(out)
}

// Member is a user account as listed by the member-management backend.
type Member struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
