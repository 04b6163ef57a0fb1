// Package pricing derives the stay length and price preview of a draft.
// The server's totalBill replaces the preview once a reservation exists.
package pricing

import (
	"math"

	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/room"
)

// NightsBetween returns the whole days between the dates, rounded up.
// It returns 0 when either date is absent and 1 when the range is empty or
// inverted, so a same-day or backwards stay is still priced as one night.
func NightsBetween(checkIn, checkOut reservation.Date) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	days := checkOut.Time().Sub(checkIn.Time()).Hours() / 24
	n := int(math.Ceil(days))
	if n <= 0 {
		return 1
	}
	return n
}

// TotalPrice is the nightly rate times nights, or 0 for an unknown room type.
func TotalPrice(c room.Catalog, roomType string, nights int) float64 {
	e, ok := c.Lookup(roomType)
	if !ok {
		return 0
	}
	return e.Rate * float64(nights)
}

// Quote is the price preview for a draft.
type Quote struct {
	Nights int
	Rate   float64
	Total  float64
}

func QuoteDraft(c room.Catalog, d reservation.Draft) Quote {
	q := Quote{Nights: NightsBetween(d.CheckInDate, d.CheckOutDate)}
	if e, ok := c.Lookup(d.RoomType); ok {
		q.Rate = e.Rate
	}
	q.Total = TotalPrice(c, d.RoomType, q.Nights)
	return q
}
