package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/example/oceanview/internal/domain/reservation"
)

type DashboardService struct {
	Reservations reservation.Lister
}

// Summary is the overview shown on the staff dashboard.
type Summary struct {
	Reservations  []reservation.Reservation // newest check-in first
	TotalBookings int
	Revenue       float64
	TodayCheckIns int
	ActiveGuests  int
	GeneratedAt   time.Time
}

func (d DashboardService) Summary(ctx context.Context, now time.Time) (Summary, error) {
	rs, err := d.Reservations.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rs, now), nil
}

// Summarize computes the dashboard figures for rs. Check-ins count as today's
// when their date equals now's calendar date in now's location.
func Summarize(rs []reservation.Reservation, now time.Time) Summary {
	sorted := make([]reservation.Reservation, len(rs))
	copy(sorted, rs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CheckInDate.Time().After(sorted[j].CheckInDate.Time())
	})

	today := reservation.DateOf(now)
	s := Summary{Reservations: sorted, TotalBookings: len(sorted), GeneratedAt: now}
	for _, r := range sorted {
		s.Revenue += r.TotalBill
		if !r.CheckInDate.IsZero() && r.CheckInDate.Equal(today) {
			s.TodayCheckIns++
			s.ActiveGuests += r.NumberOfGuests
		}
	}
	return s
}
