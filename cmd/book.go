package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/wizard"
)

func newBookCmd() *cobra.Command {
	var (
		fields  = map[string]*string{}
		guests  int
		pay     bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Create a reservation and optionally take payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			w := wizard.New(env.client, wizard.WithLogger(env.log))
			if err := w.BeginBooking(); err != nil {
				return err
			}
			values := map[string]string{"numberOfGuests": fmt.Sprint(guests)}
			for name, v := range fields {
				if *v != "" {
					values[name] = *v
				}
			}
			if err := w.SetFields(values); err != nil {
				return err
			}
			if err := w.ContinueToBooking(); err != nil {
				return err
			}
			if err := w.SubmitBooking(ctx); err != nil {
				return err
			}
			res, _ := w.Reservation()
			out := cmd.OutOrStdout()
			if !pay {
				fmt.Fprintf(out, "created %s, total %s, payment %s\n",
					res.ReservationNumber, pricing.FormatRs(res.TotalBill), res.PaymentStatus)
				return nil
			}
			if err := w.CompletePayment(ctx); err != nil {
				return fmt.Errorf("reservation %s created but not paid: %w", res.ReservationNumber, err)
			}
			b, _ := w.Bill()
			return printBill(out, b)
		},
	}

	flag := func(name, field, usage string) {
		v := new(string)
		fields[field] = v
		cmd.Flags().StringVar(v, name, "", usage)
	}
	flag("name", "guestName", "guest name (required)")
	flag("email", "email", "guest email (required)")
	flag("phone", "contactNumber", "contact number")
	flag("address", "address", "postal address")
	flag("id-number", "idNumber", "NIC or passport number")
	flag("room", "roomType", "room type key (default single)")
	flag("check-in", "checkInDate", "check-in date (YYYY-MM-DD, required)")
	flag("check-out", "checkOutDate", "check-out date (YYYY-MM-DD, required)")
	flag("requests", "specialRequests", "special requests")
	flag("payment", "paymentMethod", "cash or card (default cash)")
	cmd.Flags().IntVar(&guests, "guests", 1, "number of guests")
	cmd.Flags().BoolVar(&pay, "pay", false, "mark the reservation paid and print the bill")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall time limit for the backend calls")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "lookup RESERVATION_NUMBER",
		Short: "Find a reservation and print its bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			w := wizard.New(env.client, wizard.WithLogger(env.log))
			if err := w.BeginSearch(); err != nil {
				return err
			}
			if err := w.Search(ctx, args[0]); err != nil {
				return err
			}
			b, _ := w.Bill()
			return printBill(cmd.OutOrStdout(), b)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "time limit for the lookup")
	return cmd
}
