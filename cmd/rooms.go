package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/room"
)

func newRoomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List room types and nightly rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tROOM\tRATE\tFEATURES")
			for _, e := range room.Default().All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Key, e.Label, pricing.FormatRs(e.Rate), strings.Join(e.Features, ", "))
			}
			return tw.Flush()
		},
	}
}

func newQuoteCmd() *cobra.Command {
	var roomType, checkIn, checkOut string
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Preview the price of a stay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := room.Default()
			e, ok := catalog.Lookup(roomType)
			if !ok {
				return fmt.Errorf("unknown room type %q", roomType)
			}
			in, err := reservation.ParseDate(checkIn)
			if err != nil {
				return fmt.Errorf("--check-in: %w", err)
			}
			out, err := reservation.ParseDate(checkOut)
			if err != nil {
				return fmt.Errorf("--check-out: %w", err)
			}
			nights := pricing.NightsBetween(in, out)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nights x %s = %s\n",
				e.Label, nights, pricing.FormatRs(e.Rate), pricing.FormatRs(pricing.TotalPrice(catalog, roomType, nights)))
			return nil
		},
	}
	cmd.Flags().StringVar(&roomType, "room", "single", "room type key")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")
	return cmd
}
