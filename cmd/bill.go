package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/wizard"
)

func printBill(w io.Writer, b wizard.Bill) error {
	r := b.Reservation
	status := string(r.PaymentStatus)
	if status == "" {
		status = "PENDING"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OCEAN VIEW RESORT\t")
	fmt.Fprintf(tw, "Reservation\t%s\n", r.ReservationNumber)
	fmt.Fprintf(tw, "Guest\t%s\n", r.GuestName)
	fmt.Fprintf(tw, "Email\t%s\n", r.Email)
	fmt.Fprintf(tw, "Room\t%s\n", b.RoomLabel)
	fmt.Fprintf(tw, "Check-in\t%s\n", dateOrDash(r.CheckInDate))
	fmt.Fprintf(tw, "Check-out\t%s\n", dateOrDash(r.CheckOutDate))
	fmt.Fprintf(tw, "Nights\t%d\n", b.Nights)
	fmt.Fprintf(tw, "Rate\t%s\n", pricing.FormatRs(b.Rate))
	fmt.Fprintf(tw, "Payment\t%s (%s)\n", status, r.PaymentMethod.Label())
	fmt.Fprintf(tw, "Total\t%s\n", pricing.FormatRs(b.Total))
	return tw.Flush()
}

func dateOrDash(d reservation.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}
