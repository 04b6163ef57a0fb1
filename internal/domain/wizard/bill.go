package wizard

import (
	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/room"
)

// Bill is the printable summary of a confirmed reservation. Total is always
// the server's totalBill; Nights and Rate are informational.
type Bill struct {
	Reservation reservation.Reservation
	RoomLabel   string
	Rate        float64
	Nights      int
	Total       float64
	Paid        bool
}

func NewBill(c room.Catalog, r reservation.Reservation) Bill {
	b := Bill{
		Reservation: r,
		RoomLabel:   c.Label(r.RoomType),
		Nights:      pricing.NightsBetween(r.CheckInDate, r.CheckOutDate),
		Total:       r.TotalBill,
		Paid:        r.PaymentStatus.IsPaid(),
	}
	if e, ok := c.Lookup(r.RoomType); ok {
		b.Rate = e.Rate
	}
	return b
}
