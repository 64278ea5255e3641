package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/resource"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Manage rental bookings",
}

var bookingsListFlags listFlags

var bookingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListBookings, bookingsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tRENTER\tHOST\tCAR\tSTART\tEND\tSTATUS\tAMOUNT")
		for _, b := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				b.ID, output.Truncate(b.RenterName, 20), output.Truncate(b.HostName, 20),
				output.Truncate(b.CarName, 24), b.StartDate, b.EndDate,
				b.Status, fmtAmount(b.TotalAmount))
		}
		return w.Flush()
	},
}

var bookingsUpdateSet []string

var bookingsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a booking, e.g. --set status=cancelled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		updates, err := parseSetArgs(bookingsUpdateSet)
		if err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListBookings, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("booking not found: %s", args[0])
		}
		partial, err := client.UpdateBooking(cmd.Context(), rec.ID, updates)
		if err != nil {
			return err
		}
		merged, err := reconcile(ctrl, rec, partial, updates)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(merged)
		}
		fmt.Printf("Updated booking %s (%s, %s)\n", merged.ID, merged.CarName, merged.Status)
		return nil
	},
}

var bookingsExportFlags exportFlags

var bookingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered booking list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListBookings, bookingsExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(bookingsExportFlags, "bookings", view, bookingColumns())
	},
}

func bookingColumns() []export.Column[resource.Booking] {
	return []export.Column[resource.Booking]{
		{Header: "ID", Value: func(b resource.Booking) string { return b.ID }},
		{Header: "Renter", Value: func(b resource.Booking) string { return b.RenterName }},
		{Header: "Host", Value: func(b resource.Booking) string { return b.HostName }},
		{Header: "Car", Value: func(b resource.Booking) string { return b.CarName }},
		{Header: "Start Date", Value: func(b resource.Booking) string { return b.StartDate }},
		{Header: "End Date", Value: func(b resource.Booking) string { return b.EndDate }},
		{Header: "Booked On", Value: func(b resource.Booking) string { return b.BookingDate }},
		{Header: "Status", Value: func(b resource.Booking) string { return b.Status }},
		{Header: "Location", Value: func(b resource.Booking) string { return b.Location }},
		{Header: "Total", Value: func(b resource.Booking) string { return fmtAmount(b.TotalAmount) }},
	}
}

func init() {
	bookingsListFlags.register(bookingsListCmd)
	bookingsUpdateCmd.Flags().StringArrayVar(&bookingsUpdateSet, "set", nil, "Field to update as key=value (repeatable)")
	bookingsExportFlags.register(bookingsExportCmd)

	bookingsCmd.AddCommand(bookingsListCmd, bookingsUpdateCmd, bookingsExportCmd)
	rootCmd.AddCommand(bookingsCmd)
}
