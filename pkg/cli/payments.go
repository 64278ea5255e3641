package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/resource"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Inspect payments and platform commissions",
}

var paymentsListFlags listFlags

var paymentsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListPayments, paymentsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tBOOKING\tTYPE\tAMOUNT\tSTATUS\tMETHOD\tRENTER\tDATE")
		for _, p := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.BookingID, p.Type, fmtAmount(p.Amount),
				p.Status, p.Method, output.Truncate(p.RenterName, 20), p.Date)
		}
		return w.Flush()
	},
}

var commissionsListFlags listFlags

var paymentsCommissionsCmd = &cobra.Command{
	Use:   "commissions",
	Short: "List the platform's commission per booking",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListCommissions, commissionsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tBOOKING\tRATE\tAMOUNT\tHOST EARNING\tSTATUS\tDATE")
		for _, c := range view {
			fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%s\t%s\t%s\t%s\n",
				c.ID, c.BookingID, c.Rate*100, fmtAmount(c.Amount),
				fmtAmount(c.HostEarning), c.Status, c.Date)
		}
		return w.Flush()
	},
}

var paymentsExportFlags exportFlags

var paymentsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered payment list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListPayments, paymentsExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(paymentsExportFlags, "payments", view, paymentColumns())
	},
}

func paymentColumns() []export.Column[resource.Payment] {
	return []export.Column[resource.Payment]{
		{Header: "ID", Value: func(p resource.Payment) string { return p.ID }},
		{Header: "Booking", Value: func(p resource.Payment) string { return p.BookingID }},
		{Header: "Type", Value: func(p resource.Payment) string { return p.Type }},
		{Header: "Amount", Value: func(p resource.Payment) string { return fmtAmount(p.Amount) }},
		{Header: "Status", Value: func(p resource.Payment) string { return p.Status }},
		{Header: "Method", Value: func(p resource.Payment) string { return p.Method }},
		{Header: "Date", Value: func(p resource.Payment) string { return p.Date }},
		{Header: "Renter", Value: func(p resource.Payment) string { return p.RenterName }},
		{Header: "Host", Value: func(p resource.Payment) string { return p.HostName }},
		{Header: "Platform Fee", Value: func(p resource.Payment) string { return fmtAmount(p.PlatformFee) }},
		{Header: "Host Earning", Value: func(p resource.Payment) string { return fmtAmount(p.HostEarning) }},
	}
}

func init() {
	paymentsListFlags.register(paymentsListCmd)
	commissionsListFlags.register(paymentsCommissionsCmd)
	paymentsExportFlags.register(paymentsExportCmd)

	paymentsCmd.AddCommand(paymentsListCmd, paymentsCommissionsCmd, paymentsExportCmd)
	rootCmd.AddCommand(paymentsCmd)
}
