package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/listview"
	"github.com/fliits/fliitsctl/pkg/resource"
)

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "Manage vehicle listings and their verification workflow",
}

var carsListFlags listFlags

var carsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List cars",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListCars, carsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tCAR\tPLATE\tHOST\tSTATUS\tVERIFICATION\tRATE\tTRIPS\tAVAILABLE")
		for _, c := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%t\n",
				c.ID, output.Truncate(c.DisplayName(), 28), c.LicensePlate,
				output.Truncate(c.HostName, 20), c.Status, c.VerificationStatus,
				fmtAmount(c.DailyRate), c.TotalTrips, c.Available)
		}
		return w.Flush()
	},
}

var carsUpdateSet []string

var carsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a car listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		updates, err := parseSetArgs(carsUpdateSet)
		if err != nil {
			return err
		}
		merged, err := setCarFields(cmd.Context(), args[0], updates)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(merged)
		}
		fmt.Printf("Updated car %s (%s)\n", merged.ID, merged.DisplayName())
		return nil
	},
}

var carsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending car listing",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return moderateCar(cmd, args[0], "verified") },
}

var carsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending car listing",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return moderateCar(cmd, args[0], "rejected") },
}

var carsVerifyPendingCmd = &cobra.Command{
	Use:   "verify-pending",
	Short: "Verify every car listing still pending review",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListCars, listFlags{})
		if err != nil {
			return err
		}
		var ids []string
		for _, c := range ctrl.Records() {
			if c.PendingVerification() {
				ids = append(ids, c.ID)
			}
		}
		if len(ids) == 0 {
			fmt.Println("No cars pending verification")
			return nil
		}

		outcome := listview.BulkApply(cmd.Context(), ids, bulkItemTimeout, func(ctx context.Context, id string) error {
			_, err := client.UpdateCar(ctx, id, map[string]any{"verification_status": "verified"})
			return err
		})
		for _, id := range outcome.Succeeded {
			if rec, ok := ctrl.Select(id); ok {
				rec.VerificationStatus = "verified"
				ctrl.Replace(id, rec)
			}
		}
		for _, f := range outcome.Failures {
			output.Warn("car %s: %v", f.ID, f.Err)
		}
		fmt.Printf("Verified %d cars, %d failed\n", len(outcome.Succeeded), outcome.FailureCount())
		if outcome.FailureCount() > 0 {
			return fmt.Errorf("%d of %d verifications failed", outcome.FailureCount(), len(ids))
		}
		return nil
	},
}

var carsExportFlags exportFlags

var carsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered car list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListCars, carsExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(carsExportFlags, "cars", view, carColumns())
	},
}

func moderateCar(cmd *cobra.Command, id, decision string) error {
	if err := requireWrite(); err != nil {
		return err
	}
	merged, err := setCarFields(cmd.Context(), id, map[string]any{"verification_status": decision})
	if err != nil {
		return err
	}
	fmt.Printf("Car %s (%s) is now %s\n", merged.ID, merged.DisplayName(), merged.VerificationStatus)
	return nil
}

func setCarFields(ctx context.Context, id string, updates map[string]any) (resource.Car, error) {
	client := newClient()
	ctrl, _, err := loadView(ctx, client.ListCars, listFlags{})
	if err != nil {
		return resource.Car{}, err
	}
	rec, ok := ctrl.Select(id)
	if !ok {
		return resource.Car{}, fmt.Errorf("car not found: %s", id)
	}
	partial, err := client.UpdateCar(ctx, rec.ID, updates)
	if err != nil {
		return resource.Car{}, err
	}
	return reconcile(ctrl, rec, partial, updates)
}

func carColumns() []export.Column[resource.Car] {
	return []export.Column[resource.Car]{
		{Header: "ID", Value: func(c resource.Car) string { return c.ID }},
		{Header: "Car", Value: func(c resource.Car) string { return c.DisplayName() }},
		{Header: "License Plate", Value: func(c resource.Car) string { return c.LicensePlate }},
		{Header: "Host", Value: func(c resource.Car) string { return c.HostName }},
		{Header: "Status", Value: func(c resource.Car) string { return c.Status }},
		{Header: "Verification", Value: func(c resource.Car) string { return c.VerificationStatus }},
		{Header: "Location", Value: func(c resource.Car) string { return c.Location }},
		{Header: "Daily Rate", Value: func(c resource.Car) string { return fmtAmount(c.DailyRate) }},
		{Header: "Trips", Value: func(c resource.Car) string { return fmtInt(c.TotalTrips) }},
		{Header: "Earnings", Value: func(c resource.Car) string { return fmtAmount(c.TotalEarnings) }},
	}
}

func init() {
	carsListFlags.register(carsListCmd)
	carsUpdateCmd.Flags().StringArrayVar(&carsUpdateSet, "set", nil, "Field to update as key=value (repeatable)")
	carsExportFlags.register(carsExportCmd)

	carsCmd.AddCommand(carsListCmd, carsUpdateCmd, carsApproveCmd, carsRejectCmd, carsVerifyPendingCmd, carsExportCmd)
	rootCmd.AddCommand(carsCmd)
}
