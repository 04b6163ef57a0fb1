package web

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/example/oceanview/internal/auth"
	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/internaltypes"
)

var assignableRoles = []user.Role{user.RoleUser, user.RoleStaff, user.RoleAdmin}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := tmplData{Title: "Dashboard"}
	sum, err := s.Dashboard.Summary(r.Context(), s.now())
	if err != nil {
		s.logger().Warn("dashboard summary failed", zap.Error(err))
		data.Flash = "Failed to load reservations. Please try again."
	}
	data.Summary = sum
	s.render(w, r, http.StatusOK, "templates/dashboard.html", data)
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "templates/help.html", tmplData{Title: "Help & Support"})
}

func registrationFromForm(r *http.Request) user.Registration {
	return user.Registration{
		Name:            strings.TrimSpace(r.FormValue("name")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Phone:           strings.TrimSpace(r.FormValue("phone")),
		DocumentType:    strings.ToUpper(strings.TrimSpace(r.FormValue("documentType"))),
		DocumentID:      strings.TrimSpace(r.FormValue("documentId")),
		Role:            user.Role(strings.ToUpper(strings.TrimSpace(r.FormValue("role")))),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}
}

func stickyRegistration(reg user.Registration) map[string]string {
	return map[string]string{
		"name":         reg.Name,
		"email":        reg.Email,
		"phone":        reg.Phone,
		"documentType": reg.DocumentType,
		"documentId":   reg.DocumentID,
		"role":         string(reg.Role),
	}
}

func registrationMessage(err error) string {
	switch {
	case errors.Is(err, internaltypes.ErrValidationBlocked):
		if _, msg, ok := strings.Cut(err.Error(), ": "); ok {
			return msg
		}
		return err.Error()
	case errors.Is(err, internaltypes.ErrRequestFailed):
		var he interface{ Unwrap() []error }
		if errors.As(err, &he) {
			for _, e := range he.Unwrap() {
				if e != internaltypes.ErrRequestFailed {
					return e.Error()
				}
			}
		}
		return "Registration failed"
	}
	return "Unable to connect to server. Please try again."
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "templates/register.html", tmplData{Title: "Create account", Public: true})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reg := registrationFromForm(r)
	if err := s.Accounts.RegisterCustomer(r.Context(), reg); err != nil {
		s.logger().Info("registration failed", zap.String("email", reg.Email), zap.Error(err))
		s.render(w, r, http.StatusUnprocessableEntity, "templates/register.html", tmplData{
			Title:  "Create account",
			Public: true,
			Flash:  registrationMessage(err),
			Form:   stickyRegistration(reg),
		})
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusFound)
}

func (s *Server) handleCustomerForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "templates/register.html", tmplData{Title: "Register Customer"})
}

func (s *Server) handleCustomerRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reg := registrationFromForm(r)
	data := tmplData{Title: "Register Customer"}
	if err := s.Accounts.RegisterCustomer(r.Context(), reg); err != nil {
		s.logger().Info("customer registration failed", zap.String("email", reg.Email), zap.Error(err))
		data.Flash = registrationMessage(err)
		data.Form = stickyRegistration(reg)
		s.render(w, r, http.StatusUnprocessableEntity, "templates/register.html", data)
		return
	}
	data.Notice = "Registration successful!"
	s.render(w, r, http.StatusOK, "templates/register.html", data)
}

func (s *Server) handleAdminForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "templates/register.html", tmplData{
		Title: "Registration",
		Roles: assignableRoles,
		Form:  map[string]string{"role": string(user.RoleStaff)},
	})
}

func (s *Server) handleAdminRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reg := registrationFromForm(r)
	data := tmplData{Title: "Registration", Roles: assignableRoles}
	if err := s.Accounts.Register(r.Context(), reg); err != nil {
		s.logger().Info("admin registration failed", zap.String("email", reg.Email), zap.Error(err))
		data.Flash = registrationMessage(err)
		data.Form = stickyRegistration(reg)
		s.render(w, r, http.StatusUnprocessableEntity, "templates/register.html", data)
		return
	}
	sess, _ := auth.SessionFromContext(r.Context())
	s.logger().Info("account registered",
		zap.String("email", reg.Email),
		zap.String("role", string(reg.Role)),
		zap.String("by", sess.UserID))
	data.Notice = "Registration successful!"
	data.Form = map[string]string{"role": string(user.RoleStaff)}
	s.render(w, r, http.StatusOK, "templates/register.html", data)
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	data := tmplData{Title: "Members", Roles: assignableRoles}
	switch r.URL.Query().Get("done") {
	case "updated":
		data.Notice = "Member updated successfully!"
	case "deleted":
		data.Notice = "Member deleted successfully!"
	}
	ms, err := s.Members.List(r.Context())
	if err != nil {
		s.logger().Warn("list members failed", zap.Error(err))
		data.Flash = "Failed to load members. Please try again."
	}
	data.Members = ms
	s.render(w, r, http.StatusOK, "templates/members.html", data)
}

func (s *Server) handleMemberUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")
	u := user.MemberUpdate{
		FullName: r.FormValue("fullName"),
		Email:    r.FormValue("email"),
		Role:     user.Role(r.FormValue("role")),
	}
	if _, err := s.Members.Update(r.Context(), id, u); err != nil {
		s.logger().Warn("update member failed", zap.String("member_id", id), zap.Error(err))
		s.membersError(w, r, "Failed to update member. Please try again.")
		return
	}
	http.Redirect(w, r, "/members?done=updated", http.StatusSeeOther)
}

func (s *Server) handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.Members.Delete(r.Context(), id); err != nil {
		s.logger().Warn("delete member failed", zap.String("member_id", id), zap.Error(err))
		s.membersError(w, r, "Failed to delete member. Please try again.")
		return
	}
	http.Redirect(w, r, "/members?done=deleted", http.StatusSeeOther)
}

func (s *Server) membersError(w http.ResponseWriter, r *http.Request, flash string) {
	ms, _ := s.Members.List(r.Context())
	s.render(w, r, http.StatusUnprocessableEntity, "templates/members.html", tmplData{
		Title:   "Members",
		Roles:   assignableRoles,
		Flash:   flash,
		Members: ms,
	})
}
