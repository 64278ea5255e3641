package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/listview"
	"github.com/fliits/fliitsctl/pkg/resource"
)

// bulkItemTimeout bounds each request of a bulk approval so one slow
// backend call cannot stall the whole batch.
const bulkItemTimeout = 15 * time.Second

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Manage car owners and their approval workflow",
}

var hostsListFlags listFlags

var hostsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List hosts",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListHosts, hostsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tAPPROVAL\tCARS\tTRIPS\tEARNINGS\tRATING")
		for _, h := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%.1f\n",
				h.ID, output.Truncate(h.Name, 24), h.Email, h.Status,
				h.ApprovalStatus, h.TotalCars, h.TotalTrips, fmtAmount(h.TotalEarnings), h.Rating)
		}
		return w.Flush()
	},
}

var hostsUpdateSet []string

var hostsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		updates, err := parseSetArgs(hostsUpdateSet)
		if err != nil {
			return err
		}
		merged, err := setHostFields(cmd.Context(), args[0], updates)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(merged)
		}
		fmt.Printf("Updated host %s (%s)\n", merged.ID, merged.Name)
		return nil
	},
}

var hostsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending host",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return moderateHost(cmd, args[0], "approved") },
}

var hostsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending host",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return moderateHost(cmd, args[0], "rejected") },
}

var hostsVerifyPendingCmd = &cobra.Command{
	Use:   "verify-pending",
	Short: "Approve every host whose approval is still pending",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListHosts, listFlags{})
		if err != nil {
			return err
		}
		var ids []string
		for _, h := range ctrl.Records() {
			if h.PendingApproval() {
				ids = append(ids, h.ID)
			}
		}
		if len(ids) == 0 {
			fmt.Println("No hosts pending approval")
			return nil
		}

		outcome := listview.BulkApply(cmd.Context(), ids, bulkItemTimeout, func(ctx context.Context, id string) error {
			_, err := client.UpdateHost(ctx, id, map[string]any{"approval_status": "approved"})
			return err
		})
		for _, id := range outcome.Succeeded {
			if rec, ok := ctrl.Select(id); ok {
				rec.ApprovalStatus = "approved"
				ctrl.Replace(id, rec)
			}
		}
		for _, f := range outcome.Failures {
			output.Warn("host %s: %v", f.ID, f.Err)
		}
		fmt.Printf("Approved %d hosts, %d failed\n", len(outcome.Succeeded), outcome.FailureCount())
		if outcome.FailureCount() > 0 {
			return fmt.Errorf("%d of %d approvals failed", outcome.FailureCount(), len(ids))
		}
		return nil
	},
}

var hostsExportFlags exportFlags

var hostsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered host list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListHosts, hostsExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(hostsExportFlags, "hosts", view, hostColumns())
	},
}

func moderateHost(cmd *cobra.Command, id, decision string) error {
	if err := requireWrite(); err != nil {
		return err
	}
	merged, err := setHostFields(cmd.Context(), id, map[string]any{"approval_status": decision})
	if err != nil {
		return err
	}
	fmt.Printf("Host %s (%s) is now %s\n", merged.ID, merged.Name, merged.ApprovalStatus)
	return nil
}

func setHostFields(ctx context.Context, id string, updates map[string]any) (resource.Host, error) {
	client := newClient()
	ctrl, _, err := loadView(ctx, client.ListHosts, listFlags{})
	if err != nil {
		return resource.Host{}, err
	}
	rec, ok := ctrl.Select(id)
	if !ok {
		return resource.Host{}, fmt.Errorf("host not found: %s", id)
	}
	partial, err := client.UpdateHost(ctx, rec.ID, updates)
	if err != nil {
		return resource.Host{}, err
	}
	return reconcile(ctrl, rec, partial, updates)
}

func hostColumns() []export.Column[resource.Host] {
	return []export.Column[resource.Host]{
		{Header: "ID", Value: func(h resource.Host) string { return h.ID }},
		{Header: "Name", Value: func(h resource.Host) string { return h.Name }},
		{Header: "Email", Value: func(h resource.Host) string { return h.Email }},
		{Header: "Phone", Value: func(h resource.Host) string { return h.Phone }},
		{Header: "Status", Value: func(h resource.Host) string { return h.Status }},
		{Header: "Approval", Value: func(h resource.Host) string { return h.ApprovalStatus }},
		{Header: "Join Date", Value: func(h resource.Host) string { return h.JoinDate }},
		{Header: "Cars", Value: func(h resource.Host) string { return fmtInt(h.TotalCars) }},
		{Header: "Trips", Value: func(h resource.Host) string { return fmtInt(h.TotalTrips) }},
		{Header: "Earnings", Value: func(h resource.Host) string { return fmtAmount(h.TotalEarnings) }},
	}
}

func init() {
	hostsListFlags.register(hostsListCmd)
	hostsUpdateCmd.Flags().StringArrayVar(&hostsUpdateSet, "set", nil, "Field to update as key=value (repeatable)")
	hostsExportFlags.register(hostsExportCmd)

	hostsCmd.AddCommand(hostsListCmd, hostsUpdateCmd, hostsApproveCmd, hostsRejectCmd, hostsVerifyPendingCmd, hostsExportCmd)
	rootCmd.AddCommand(hostsCmd)
}
