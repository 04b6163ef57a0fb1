package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/oceanview/internal/application/usecases"
	"github.com/example/oceanview/internal/domain/pricing"
)

func newDashboardCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show booking totals and the latest reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			s, err := usecases.DashboardService{Reservations: env.client}.Summary(ctx, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total bookings:    %d\n", s.TotalBookings)
			fmt.Fprintf(out, "Revenue:           %s\n", pricing.FormatRs(s.Revenue))
			fmt.Fprintf(out, "Today's check-ins: %d\n", s.TodayCheckIns)
			fmt.Fprintf(out, "Active guests:     %d\n\n", s.ActiveGuests)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tGUEST\tROOM\tCHECK-IN\tCHECK-OUT\tTOTAL\tSTATUS")
			for i, r := range s.Reservations {
				if limit > 0 && i == limit {
					break
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ReservationNumber, r.GuestName, r.RoomType,
					dateOrDash(r.CheckInDate), dateOrDash(r.CheckOutDate),
					pricing.FormatRs(r.TotalBill), r.PaymentStatus)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "reservations to list (0 for all)")
	return cmd
}
