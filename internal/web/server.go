package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/oceanview/internal/application/usecases"
	"github.com/example/oceanview/internal/auth"
	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/internaltypes"
	"github.com/example/oceanview/internal/wizards"
)

//go:embed templates/*.html
var fs embed.FS

type Server struct {
	Auth      *auth.Store
	Accounts  usecases.AuthService
	Members   usecases.MemberService
	Dashboard usecases.DashboardService
	Wizards   *wizards.Store
	Log       *zap.Logger

	Now func() time.Time
}

type tmplData struct {
	Title   string
	Session user.Session
	Nav     []user.NavItem
	Path    string

	Flash  string
	Notice string
	Form   map[string]string

	Summary usecases.Summary
	Members []user.Member
	Roles   []user.Role
	Wizard  wizardView
	Public  bool
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("GET /{$}", s.handleLanding)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("POST /logout", s.handleLogout)

	mux.Handle("GET /dashboard", s.Auth.RequirePage(user.PageDashboard, http.HandlerFunc(s.handleDashboard)))
	mux.Handle("GET /booking", s.Auth.RequirePage(user.PageBookings, http.HandlerFunc(s.handleBooking)))
	mux.Handle("POST /booking/{action}", s.Auth.RequirePage(user.PageBookings, http.HandlerFunc(s.handleBookingAction)))
	mux.Handle("GET /help", s.Auth.RequirePage(user.PageHelp, http.HandlerFunc(s.handleHelp)))
	mux.Handle("GET /register-customer", s.Auth.RequirePage(user.PageRegisterCustomer, http.HandlerFunc(s.handleCustomerForm)))
	mux.Handle("POST /register-customer", s.Auth.RequirePage(user.PageRegisterCustomer, http.HandlerFunc(s.handleCustomerRegister)))
	mux.Handle("GET /admin/register", s.Auth.RequirePage(user.PageAdminRegister, http.HandlerFunc(s.handleAdminForm)))
	mux.Handle("POST /admin/register", s.Auth.RequirePage(user.PageAdminRegister, http.HandlerFunc(s.handleAdminRegister)))
	mux.Handle("GET /members", s.Auth.RequirePage(user.PageMembers, http.HandlerFunc(s.handleMembers)))
	mux.Handle("POST /members/{id}/update", s.Auth.RequirePage(user.PageMembers, http.HandlerFunc(s.handleMemberUpdate)))
	mux.Handle("POST /members/{id}/delete", s.Auth.RequirePage(user.PageMembers, http.HandlerFunc(s.handleMemberDelete)))

	return s.logging(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

var funcs = template.FuncMap{
	"rs":    pricing.FormatRs,
	"date":  displayDate,
	"lower": strings.ToLower,
}

func displayDate(d reservation.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Time().Format("02 Jan 2006")
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data tmplData) {
	t, err := template.New("").Funcs(funcs).ParseFS(fs,
		"templates/base.html",
		"templates/partials.html",
		name,
	)
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		data.Session = sess
		data.Nav = user.Navigation(sess.Role)
	}
	data.Path = r.URL.Path
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		s.logger().Error("render failed", zap.String("template", name), zap.Error(err))
	}
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.Auth.GetSession(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	s.render(w, r, http.StatusOK, "templates/landing.html", tmplData{Title: "Ocean View Resort", Public: true})
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	data := tmplData{Title: "Sign in", Public: true}
	if r.URL.Query().Get("registered") == "1" {
		data.Notice = "Registration successful!"
	}
	s.render(w, r, http.StatusOK, "templates/login.html", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	sess, err := s.Accounts.Login(r.Context(), email, r.FormValue("password"))
	if err != nil {
		s.logger().Info("login failed", zap.String("email", email), zap.Error(err))
		s.render(w, r, http.StatusUnauthorized, "templates/login.html", tmplData{
			Title:  "Sign in",
			Public: true,
			Flash:  loginMessage(err),
			Form:   map[string]string{"email": email},
		})
		return
	}
	if err := s.Auth.SetSession(w, r, sess); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, internaltypes.ErrValidationBlocked):
		return "Please enter your email and password."
	case errors.Is(err, internaltypes.ErrUnauthorized):
		if _, msg, ok := strings.Cut(err.Error(), ": "); ok && msg != "" {
			return msg
		}
		return "Login failed"
	}
	return "Unable to connect to server. Please try again."
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Auth.ClearSession(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func Start(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
