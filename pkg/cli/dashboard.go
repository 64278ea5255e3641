package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the platform's aggregate counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(stats)
		}
		w := output.Table()
		fmt.Fprintf(w, "Total users:\t%d\n", stats.TotalUsers)
		fmt.Fprintf(w, "Hosts:\t%d\n", stats.TotalHosts)
		fmt.Fprintf(w, "Renters:\t%d\n", stats.TotalRenters)
		fmt.Fprintf(w, "Cars:\t%d (%d active)\n", stats.TotalCars, stats.ActiveCars)
		fmt.Fprintf(w, "Bookings:\t%d (%d active trips)\n", stats.TotalBookings, stats.ActiveTrips)
		fmt.Fprintf(w, "Total revenue:\t%s\n", fmtAmount(stats.TotalRevenue))
		fmt.Fprintf(w, "Monthly revenue:\t%s\n", fmtAmount(stats.MonthlyRevenue))
		fmt.Fprintf(w, "Pending verifications:\t%d\n", stats.PendingVerifications)
		fmt.Fprintf(w, "Reported issues:\t%d\n", stats.ReportedIssues)
		fmt.Fprintf(w, "New signups:\t%d\n", stats.NewSignups)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
