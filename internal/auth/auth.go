// Package auth keeps the signed-in identity in an encrypted cookie and guards
// pages by role.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/example/oceanview/internal/domain/user"
)

const cookieName = "oceanview_session"

type Store struct {
	sc  *securecookie.SecureCookie
	ttl time.Duration
}

type ctxKey string

const sessionKey ctxKey = "session"

func NewStore(hashKey, blockKey []byte, ttl time.Duration) *Store {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(ttl.Seconds()))
	return &Store{sc: sc, ttl: ttl}
}

func (s *Store) SetSession(w http.ResponseWriter, r *http.Request, sess user.Session) error {
	val := map[string]string{
		"uid":   sess.UserID,
		"name":  sess.Name,
		"email": sess.Email,
		"role":  string(sess.Role),
		"v":     "1",
	}
	encoded, err := s.sc.Encode(cookieName, val)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return nil
}

func (s *Store) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (s *Store) GetSession(r *http.Request) (user.Session, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return user.Session{}, false
	}
	val := map[string]string{}
	if err := s.sc.Decode(cookieName, c.Value, &val); err != nil {
		return user.Session{}, false
	}
	if val["uid"] == "" {
		return user.Session{}, false
	}
	role, err := user.ParseRole(val["role"])
	if err != nil {
		return user.Session{}, false
	}
	return user.Session{UserID: val["uid"], Name: val["name"], Email: val["email"], Role: role}, true
}

// RequireAuth redirects to /login when no valid session cookie is present.
func (s *Store) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.GetSession(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequirePage is RequireAuth plus a role check for page. Signed-in users
// without access are sent to /dashboard.
func (s *Store) RequirePage(page user.Page, next http.Handler) http.Handler {
	return s.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		if !user.CanAccess(sess.Role, page) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func WithSession(ctx context.Context, sess user.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func SessionFromContext(ctx context.Context) (user.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(user.Session)
	return sess, ok
}
