package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/user"
	"github.com/example/oceanview/internal/internaltypes"
)

type fakeAuth struct {
	registered []user.Registration
	err        error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (user.Session, error) {
	if password != "pw" {
		return user.Session{}, internaltypes.ErrUnauthorized
	}
	return user.Session{UserID: "1", Email: email, Role: user.RoleStaff}, nil
}

func (f *fakeAuth) Register(_ context.Context, r user.Registration) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, r)
	return nil
}

func validRegistration() user.Registration {
	return user.Registration{
		Name:            " Ann Perera ",
		Email:           "ann@example.com",
		DocumentType:    "PASSPORT",
		DocumentID:      "N123",
		Role:            user.RoleStaff,
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestLogin(t *testing.T) {
	a := AuthService{Auth: &fakeAuth{}}

	s, err := a.Login(context.Background(), " ann@example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", s.Email)

	_, err = a.Login(context.Background(), "ann@example.com", "nope")
	assert.ErrorIs(t, err, internaltypes.ErrUnauthorized)

	_, err = a.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, internaltypes.ErrValidationBlocked)
}

func TestRegister(t *testing.T) {
	f := &fakeAuth{}
	a := AuthService{Auth: f}

	require.NoError(t, a.Register(context.Background(), validRegistration()))
	require.Len(t, f.registered, 1)
	assert.Equal(t, "Ann Perera", f.registered[0].Name)
	assert.Equal(t, user.RoleStaff, f.registered[0].Role)

	require.NoError(t, a.RegisterCustomer(context.Background(), validRegistration()))
	assert.Equal(t, user.RoleUser, f.registered[1].Role)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*user.Registration)
		want   string
	}{
		{"mismatched passwords", func(r *user.Registration) { r.ConfirmPassword = "other" }, "Passwords do not match"},
		{"missing name", func(r *user.Registration) { r.Name = "  " }, "name is required"},
		{"bad email", func(r *user.Registration) { r.Email = "ann" }, "email must be a valid email address"},
		{"bad document", func(r *user.Registration) { r.DocumentType = "LICENSE" }, "documentType must be one of ID, PASSPORT"},
		{"bad role", func(r *user.Registration) { r.Role = "OWNER" }, "role must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAuth{}
			r := validRegistration()
			tt.mutate(&r)
			err := AuthService{Auth: f}.Register(context.Background(), r)
			assert.ErrorIs(t, err, internaltypes.ErrValidationBlocked)
			assert.ErrorContains(t, err, tt.want)
			assert.Empty(t, f.registered)
		})
	}
}

func TestRegisterBackendError(t *testing.T) {
	boom := errors.New("Email already registered")
	err := AuthService{Auth: &fakeAuth{err: boom}}.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, boom)
}

type fakeDirectory struct {
	members []user.Member
	updated map[string]user.MemberUpdate
	deleted []string
}

func (f *fakeDirectory) ListMembers(context.Context) ([]user.Member, error) { return f.members, nil }

func (f *fakeDirectory) UpdateMember(_ context.Context, id string, u user.MemberUpdate) (string, error) {
	if f.updated == nil {
		f.updated = map[string]user.MemberUpdate{}
	}
	f.updated[id] = u
	return "Member updated successfully!", nil
}

func (f *fakeDirectory) DeleteMember(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestMemberService(t *testing.T) {
	f := &fakeDirectory{members: []user.Member{{ID: "1", FullName: "Ann", Role: user.RoleAdmin}}}
	m := MemberService{Directory: f}
	ctx := context.Background()

	ms, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ms, 1)

	msg, err := m.Update(ctx, "1", user.MemberUpdate{FullName: " Ann ", Email: "ann@example.com", Role: "staff"})
	require.NoError(t, err)
	assert.Equal(t, "Member updated successfully!", msg)
	assert.Equal(t, user.MemberUpdate{FullName: "Ann", Email: "ann@example.com", Role: user.RoleStaff}, f.updated["1"])

	_, err = m.Update(ctx, "1", user.MemberUpdate{FullName: "Ann", Email: "ann@example.com", Role: "OWNER"})
	assert.ErrorIs(t, err, internaltypes.ErrValidationBlocked)

	_, err = m.Update(ctx, "", user.MemberUpdate{})
	assert.ErrorIs(t, err, internaltypes.ErrValidationBlocked)

	require.NoError(t, m.Delete(ctx, "1"))
	assert.Equal(t, []string{"1"}, f.deleted)
	assert.Error(t, m.Delete(ctx, " "))
}

type fakeLister struct {
	rs  []reservation.Reservation
	err error
}

func (f fakeLister) List(context.Context) ([]reservation.Reservation, error) { return f.rs, f.err }

func TestDashboardSummary(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	rs := []reservation.Reservation{
		{ReservationNumber: "A", CheckInDate: reservation.NewDate(2024, time.March, 1), TotalBill: 5000, NumberOfGuests: 1},
		{ReservationNumber: "B", CheckInDate: reservation.NewDate(2024, time.March, 10), TotalBill: 8000, NumberOfGuests: 2},
		{ReservationNumber: "C", TotalBill: 0},
		{ReservationNumber: "D", CheckInDate: reservation.NewDate(2024, time.March, 10), TotalBill: 12000, NumberOfGuests: 3},
		{ReservationNumber: "E", CheckInDate: reservation.NewDate(2024, time.April, 2), TotalBill: 15000, NumberOfGuests: 4},
	}

	s, err := DashboardService{Reservations: fakeLister{rs: rs}}.Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalBookings)
	assert.Equal(t, 40000.0, s.Revenue)
	assert.Equal(t, 2, s.TodayCheckIns)
	assert.Equal(t, 5, s.ActiveGuests)

	var order []string
	for _, r := range s.Reservations {
		order = append(order, r.ReservationNumber)
	}
	assert.Equal(t, []string{"E", "B", "D", "A", "C"}, order)
	assert.Equal(t, "A", rs[0].ReservationNumber, "input left untouched")
}

func TestDashboardSummaryError(t *testing.T) {
	_, err := DashboardService{Reservations: fakeLister{err: internaltypes.ErrRequestFailed}}.Summary(context.Background(), time.Now())
	assert.ErrorIs(t, err, internaltypes.ErrRequestFailed)
}
