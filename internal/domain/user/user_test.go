package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	_, err = ParseRole("manager")
	assert.Error(t, err)
}

func TestRoleDisplay(t *testing.T) {
	assert.Equal(t, "Admin", RoleAdmin.Display())
	assert.Equal(t, "Staff", RoleStaff.Display())
	assert.Equal(t, "User", Role("").Display())
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		role Role
		page Page
		want bool
	}{
		{RoleAdmin, PageMembers, true},
		{RoleStaff, PageMembers, false},
		{RoleUser, PageMembers, false},
		{RoleAdmin, PageAdminRegister, true},
		{RoleStaff, PageAdminRegister, false},
		{RoleAdmin, PageRegisterCustomer, false},
		{RoleStaff, PageRegisterCustomer, true},
		{"", PageRegisterCustomer, true},
		{RoleUser, PageDashboard, true},
		{RoleStaff, PageBookings, true},
		{RoleUser, PageHelp, true},
		{RoleAdmin, Page("unknown"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanAccess(tt.role, tt.page), "%s on %s", tt.role, tt.page)
	}
}

func TestNavigation(t *testing.T) {
	labels := func(items []NavItem) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.Label)
		}
		return out
	}
	assert.Equal(t, []string{"Dashboard", "Bookings", "Members", "Registration", "Help & Support"}, labels(Navigation(RoleAdmin)))
	assert.Equal(t, []string{"Dashboard", "Bookings", "Register Customer", "Help & Support"}, labels(Navigation(RoleStaff)))
}

func TestSessionInitials(t *testing.T) {
	assert.Equal(t, "AP", Session{Name: "ann  perera silva"}.Initials())
	assert.Equal(t, "OV", Session{}.Initials())
	assert.True(t, Session{}.IsZero())
}
