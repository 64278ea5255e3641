package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/cliconfig"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/resource"
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage console operator accounts",
}

var employeesListFlags listFlags

var employeesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListEmployees, employeesListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE\tCREATED")
		for _, e := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
				e.ID, output.Truncate(e.Name, 24), e.Email, e.Role, e.Active, e.CreatedAt)
		}
		return w.Flush()
	},
}

var employeeAdd struct {
	name     string
	email    string
	password string
	role     string
}

var employeesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an operator account",
	Long: `Create an operator account. The backend registers every new account
with the default role, so non-default roles are applied with a follow-up
update once the account exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		if employeeAdd.email == "" || employeeAdd.password == "" {
			if err := employeeForm(); err != nil {
				return err
			}
		}
		if employeeAdd.email == "" || employeeAdd.password == "" {
			return fmt.Errorf("an employee needs an email and a password")
		}
		role := strings.ToLower(employeeAdd.role)
		if !cliconfig.CanRead(role) {
			return fmt.Errorf("invalid role %q (expected admin, manager, or support)", employeeAdd.role)
		}

		client := newClient()
		created, err := client.RegisterEmployee(cmd.Context(), employeeAdd.email, employeeAdd.password, employeeAdd.name, role)
		if err != nil {
			return err
		}
		if created.Role != "" && !strings.EqualFold(created.Role, role) && created.ID != "" {
			if _, err := client.UpdateEmployee(cmd.Context(), created.ID, map[string]any{"role": role}); err != nil {
				output.Warn("account created but role assignment failed: %v", err)
			} else {
				created.Role = role
			}
		}
		if jsonOutput {
			return output.JSON(created)
		}
		fmt.Printf("Created employee %s (%s, %s)\n", created.ID, created.Email, created.Role)
		return nil
	},
}

func employeeForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&employeeAdd.name),
			huh.NewInput().
				Title("Email").
				Value(&employeeAdd.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&employeeAdd.password),
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Support", "support"),
					huh.NewOption("Manager", "manager"),
					huh.NewOption("Admin", "admin"),
				).
				Value(&employeeAdd.role),
		),
	).Run()
}

var employeesUpdateSet []string

var employeesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an employee, e.g. --set role=manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		updates, err := parseSetArgs(employeesUpdateSet)
		if err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListEmployees, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("employee not found: %s", args[0])
		}
		partial, err := client.UpdateEmployee(cmd.Context(), rec.ID, updates)
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
		fmt.Printf("Updated employee %s (%s, %s)\n", merged.ID, merged.Email, merged.Role)
		return nil
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an operator account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListEmployees, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("employee not found: %s", args[0])
		}
		if err := client.DeleteEmployee(cmd.Context(), rec.ID); err != nil {
			return err
		}
		ctrl.Remove(rec.ID)
		fmt.Printf("Deleted employee %s (%s)\n", rec.ID, rec.Email)
		return nil
	},
}

var employeesExportFlags exportFlags

var employeesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered employee list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListEmployees, employeesExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(employeesExportFlags, "employees", view, employeeColumns())
	},
}

func employeeColumns() []export.Column[resource.Employee] {
	return []export.Column[resource.Employee]{
		{Header: "ID", Value: func(e resource.Employee) string { return e.ID }},
		{Header: "Name", Value: func(e resource.Employee) string { return e.Name }},
		{Header: "Email", Value: func(e resource.Employee) string { return e.Email }},
		{Header: "Role", Value: func(e resource.Employee) string { return e.Role }},
		{Header: "Active", Value: func(e resource.Employee) string { return fmt.Sprintf("%t", e.Active) }},
		{Header: "Created", Value: func(e resource.Employee) string { return e.CreatedAt }},
	}
}

func init() {
	employeesListFlags.register(employeesListCmd)
	employeesAddCmd.Flags().StringVar(&employeeAdd.name, "name", "", "Full name")
	employeesAddCmd.Flags().StringVar(&employeeAdd.email, "email", "", "Login email")
	employeesAddCmd.Flags().StringVar(&employeeAdd.password, "password", "", "Initial password")
	employeesAddCmd.Flags().StringVar(&employeeAdd.role, "role", "support", "Role: admin, manager, support")
	employeesUpdateCmd.Flags().StringArrayVar(&employeesUpdateSet, "set", nil, "Field to update as key=value (repeatable)")
	employeesExportFlags.register(employeesExportCmd)

	employeesCmd.AddCommand(employeesListCmd, employeesAddCmd, employeesUpdateCmd, employeesDeleteCmd, employeesExportCmd)
	rootCmd.AddCommand(employeesCmd)
}
