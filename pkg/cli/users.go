package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/resource"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
}

var usersListFlags listFlags

var usersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListUsers, usersListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tTYPE\tSTATUS\tTRIPS\tSPENT\tJOINED")
		for _, u := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				u.ID, output.Truncate(u.Name, 24), u.Email, u.UserType,
				u.Status, u.TotalTrips, fmtAmount(u.TotalSpent), u.JoinDate)
		}
		return w.Flush()
	},
}

var usersUpdateSet []string

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		updates, err := parseSetArgs(usersUpdateSet)
		if err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListUsers, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("user not found: %s", args[0])
		}
		partial, err := client.UpdateUser(cmd.Context(), rec.ID, updates)
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
		fmt.Printf("Updated user %s (%s)\n", merged.ID, merged.Name)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a user",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListUsers, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("user not found: %s", args[0])
		}
		if err := client.DeleteUser(cmd.Context(), rec.ID); err != nil {
			return err
		}
		ctrl.Remove(rec.ID)
		fmt.Printf("Deleted user %s (%s)\n", rec.ID, rec.Name)
		return nil
	},
}

var usersExportFlags exportFlags

var usersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered user list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListUsers, usersExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(usersExportFlags, "users", view, userColumns())
	},
}

func userColumns() []export.Column[resource.User] {
	return []export.Column[resource.User]{
		{Header: "ID", Value: func(u resource.User) string { return u.ID }},
		{Header: "Name", Value: func(u resource.User) string { return u.Name }},
		{Header: "Email", Value: func(u resource.User) string { return u.Email }},
		{Header: "Phone", Value: func(u resource.User) string { return u.Phone }},
		{Header: "Type", Value: func(u resource.User) string { return u.UserType }},
		{Header: "Status", Value: func(u resource.User) string { return u.Status }},
		{Header: "Join Date", Value: func(u resource.User) string { return u.JoinDate }},
		{Header: "Total Trips", Value: func(u resource.User) string { return fmtInt(u.TotalTrips) }},
		{Header: "Total Spent", Value: func(u resource.User) string { return fmtAmount(u.TotalSpent) }},
	}
}

func init() {
	usersListFlags.register(usersListCmd)
	usersUpdateCmd.Flags().StringArrayVar(&usersUpdateSet, "set", nil, "Field to update as key=value (repeatable)")
	usersExportFlags.register(usersExportCmd)

	usersCmd.AddCommand(usersListCmd, usersUpdateCmd, usersDeleteCmd, usersExportCmd)
	rootCmd.AddCommand(usersCmd)
}
