package hotelapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/domain/wizard"
	"github.com/example/oceanview/internal/internaltypes"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreatePostsDraft(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("content-type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]any{
			"reservationNumber": "RES-123456",
			"guestName":         got["guestName"],
			"totalBill":         15000,
			"paymentStatus":     "PENDING",
		})
	})

	d := reservation.NewDraft()
	d.GuestName = "Ann"
	d.Email = "ann@example.com"
	d.CheckInDate = reservation.NewDate(2024, time.January, 1)
	d.CheckOutDate = reservation.NewDate(2024, time.January, 4)

	res, err := c.Create(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "RES-123456", res.ReservationNumber)
	assert.Equal(t, 15000.0, res.TotalBill)

	assert.Equal(t, "Ann", got["guestName"])
	assert.Equal(t, "2024-01-04", got["checkOutDate"])
	assert.Equal(t, "single", got["roomType"])
}

func TestCreateServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	})

	_, err := c.Create(context.Background(), reservation.NewDraft())
	require.Error(t, err)
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
	assert.NotErrorIs(t, err, internaltypes.ErrNotFound)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	_, err := c.FetchByNumber(context.Background(), "RES-1")
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
	assert.Zero(t, StatusCode(err))
}

func TestUpdateSendsFullReservation(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/reservations/RES-9", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write(b)
	})

	var held reservation.Reservation
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"reservationNumber":"RES-9","totalBill":8000,"paymentStatus":"PENDING"}`), &held))

	res, err := c.Update(context.Background(), "RES-9", held.WithPaymentStatus(reservation.PaymentPaid))
	require.NoError(t, err)
	assert.Equal(t, reservation.PaymentPaid, res.PaymentStatus)
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "PAID", got["paymentStatus"])
}

func TestUpdateRejectsEmptyNumber(t *testing.T) {
	c := New("http://127.0.0.1:0")
	_, err := c.Update(context.Background(), " ", reservation.Reservation{})
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
}

func TestFetchByNumber(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reservations/RES-1":
			writeJSON(w, http.StatusOK, map[string]any{"reservationNumber": "RES-1", "paymentStatus": "PAID"})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		}
	})

	res, err := c.FetchByNumber(context.Background(), "RES-1")
	require.NoError(t, err)
	assert.True(t, res.PaymentStatus.IsPaid())

	_, err = c.FetchByNumber(context.Background(), "RES-404")
	assert.ErrorIs(t, err, internaltypes.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestFetchEscapesNumber(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/a%2Fb", r.URL.RawPath)
		writeJSON(w, http.StatusOK, map[string]any{"reservationNumber": "a/b"})
	})
	_, err := c.FetchByNumber(context.Background(), "a/b")
	require.NoError(t, err)
}

func TestMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	})
	_, err := c.Create(context.Background(), reservation.NewDraft())
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
}

func TestList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/all", r.URL.Path)
		writeJSON(w, http.StatusOK, []map[string]any{
			{"reservationNumber": "A", "totalBill": 100},
			{"reservationNumber": "B", "totalBill": 200},
		})
	})
	rs, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "B", rs[1].ReservationNumber)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"user":    map[string]any{"id": 12, "fullName": "Nimal Silva", "email": in["email"], "role": "STAFF"},
		})
	})

	s, err := c.Login(context.Background(), "nimal@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.Session{UserID: "12", Name: "Nimal Silva", Email: "nimal@example.com", Role: user.RoleStaff}, s)

	_, err = c.Login(context.Background(), "nimal@example.com", "wrong")
	assert.ErrorIs(t, err, internaltypes.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestLoginDefaultsRole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]any{"id": "u-1", "name": "Guest"}})
	})
	s, err := c.Login(context.Background(), "g@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, s.Role)
	assert.Equal(t, "Guest", s.Name)
	assert.Equal(t, "g@example.com", s.Email)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["email"] == "taken@example.com" {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Email already registered"})
			return
		}
		assert.Equal(t, "PASSPORT", in["documentType"])
		assert.Equal(t, "N1234567", in["documentId"])
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	reg := user.Registration{Name: "Ann", Email: "ann@example.com", DocumentType: "PASSPORT", DocumentID: "N1234567", Role: user.RoleUser}
	require.NoError(t, c.Register(context.Background(), reg))

	reg.Email = "taken@example.com"
	err := c.Register(context.Background(), reg)
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestMembers(t *testing.T) {
	deleted := ""
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/members":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "fullName": "Ann", "email": "ann@example.com", "role": "admin"},
				{"id": 2, "fullName": "Bob", "email": "bob@example.com"},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/api/members/2":
			var in user.MemberUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, user.RoleStaff, in.Role)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Member updated"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/members/2":
			deleted = "2"
			writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	ms, err := c.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, user.Member{ID: "1", FullName: "Ann", Email: "ann@example.com", Role: user.RoleAdmin}, ms[0])
	assert.Equal(t, user.RoleUser, ms[1].Role)

	msg, err := c.UpdateMember(ctx, "2", user.MemberUpdate{FullName: "Bob", Email: "bob@example.com", Role: user.RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, "Member updated", msg)

	require.NoError(t, c.DeleteMember(ctx, "2"))
	assert.Equal(t, "2", deleted)

	assert.ErrorIs(t, c.DeleteMember(ctx, "99"), internaltypes.ErrRequestFailed)
}

// The wizard and the HTTP client together: create fails with 500, lookup 404s.
func TestWizardAgainstBackend(t *testing.T) {
	created := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/reservations/add":
			created++
			if created == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusCreated, map[string]any{"reservationNumber": "RES-5", "totalBill": 15000, "paymentStatus": "PENDING"})
		case r.Method == http.MethodPut && r.URL.Path == "/api/reservations/RES-5":
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(w, http.StatusOK, in)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	w := wizard.New(c)
	require.NoError(t, w.BeginBooking())
	require.NoError(t, w.SetFields(map[string]string{"guestName": "Ann", "email": "ann@example.com"}))
	require.NoError(t, w.ContinueToBooking())
	require.NoError(t, w.SetFields(map[string]string{"checkInDate": "2024-01-01", "checkOutDate": "2024-01-04"}))

	err := w.SubmitBooking(ctx)
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
	assert.Equal(t, wizard.StepBooking, w.Step())
	_, held := w.Reservation()
	assert.False(t, held)

	require.NoError(t, w.SubmitBooking(ctx))
	require.NoError(t, w.CompletePayment(ctx))
	res, _ := w.Reservation()
	assert.Equal(t, reservation.PaymentPaid, res.PaymentStatus)

	require.NoError(t, w.Reset())
	require.NoError(t, w.BeginSearch())
	err = w.Search(ctx, "RES-UNKNOWN")
	assert.ErrorIs(t, err, internaltypes.ErrNotFound)
	assert.Equal(t, wizard.StepSearch, w.Step())
}
