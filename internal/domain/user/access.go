package user

// Page is a section of the staff application guarded by role.
type Page string

const (
	PageDashboard        Page = "dashboard"
	PageBookings         Page = "bookings"
	PageHelp             Page = "help"
	PageRegisterCustomer Page = "register-customer"
	PageMembers          Page = "members"
	PageAdminRegister    Page = "admin-register"
)

var pageRoles = map[Page][]Role{
	PageDashboard:        {RoleAdmin, RoleStaff, RoleUser},
	PageBookings:         {RoleAdmin, RoleStaff, RoleUser},
	PageHelp:             {RoleAdmin, RoleStaff, RoleUser},
	PageRegisterCustomer: {RoleStaff, RoleUser},
	PageMembers:          {RoleAdmin},
	PageAdminRegister:    {RoleAdmin},
}

// CanAccess reports whether role may open page. An empty role counts as RoleUser.
func CanAccess(role Role, page Page) bool {
	if role == "" {
		role = RoleUser
	}
	for _, r := range pageRoles[page] {
		if r == role {
			return true
		}
	}
	return false
}

// NavItem is one entry of the sidebar.
type NavItem struct {
	Page  Page
	Path  string
	Label string
}

var navItems = []NavItem{
	{Page: PageDashboard, Path: "/dashboard", Label: "Dashboard"},
	{Page: PageBookings, Path: "/booking", Label: "Bookings"},
	{Page: PageRegisterCustomer, Path: "/register-customer", Label: "Register Customer"},
	{Page: PageMembers, Path: "/members", Label: "Members"},
	{Page: PageAdminRegister, Path: "/admin/register", Label: "Registration"},
	{Page: PageHelp, Path: "/help", Label: "Help & Support"},
}

// Navigation returns the sidebar entries visible to role.
func Navigation(role Role) []NavItem {
	var out []NavItem
	for _, it := range navItems {
		if CanAccess(role, it.Page) {
			out = append(out, it)
		}
	}
	return out
}
