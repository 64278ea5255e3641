package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/resource"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Manage user and safety reports",
}

var reportsListFlags listFlags

var reportsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListReports, reportsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tTYPE\tCATEGORY\tREPORTED BY\tAGAINST\tSTATUS\tPRIORITY\tDATE")
		for _, r := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Type, r.Category, output.Truncate(r.ReportedBy, 20),
				output.Truncate(r.ReportedAgainst, 20), r.Status, r.Priority, r.Date)
		}
		return w.Flush()
	},
}

var reportCreate struct {
	reportType  string
	category    string
	reportedBy  string
	against     string
	bookingID   string
	description string
	priority    string
}

var reportsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "File a new report",
	Long: `File a new report against a user, host, or car. Missing fields are
collected interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		if reportCreate.description == "" || reportCreate.against == "" {
			if err := reportForm(); err != nil {
				return err
			}
		}
		if reportCreate.description == "" {
			return fmt.Errorf("a report needs a description")
		}

		// The draft reference lets support staff correlate the submission
		// before the backend assigns its own id.
		draft := uuid.NewString()
		payload := map[string]any{
			"type":             reportCreate.reportType,
			"category":         reportCreate.category,
			"reported_by":      reportCreate.reportedBy,
			"reported_against": reportCreate.against,
			"description":      reportCreate.description,
			"priority":         reportCreate.priority,
			"client_reference": draft,
		}
		if reportCreate.bookingID != "" {
			payload["booking_id"] = reportCreate.bookingID
		}

		created, err := newClient().CreateReport(cmd.Context(), payload)
		if err != nil {
			return err
		}
		if created.ID == "" {
			created.ID = draft
		}
		if jsonOutput {
			return output.JSON(created)
		}
		fmt.Printf("Created report %s (%s, priority %s)\n", created.ID, created.Status, created.Priority)
		return nil
	},
}

func reportForm() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Report type").
				Options(
					huh.NewOption("User behaviour", "user"),
					huh.NewOption("Host behaviour", "host"),
					huh.NewOption("Vehicle condition", "car"),
					huh.NewOption("Payment dispute", "payment"),
				).
				Value(&reportCreate.reportType),
			huh.NewInput().
				Title("Category").
				Placeholder("e.g. damage, no-show, fraud").
				Value(&reportCreate.category),
			huh.NewInput().
				Title("Reported by").
				Value(&reportCreate.reportedBy),
			huh.NewInput().
				Title("Reported against").
				Value(&reportCreate.against),
			huh.NewInput().
				Title("Booking ID (optional)").
				Value(&reportCreate.bookingID),
			huh.NewText().
				Title("Description").
				Value(&reportCreate.description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "Low"),
					huh.NewOption("Medium", "Medium"),
					huh.NewOption("High", "High"),
				).
				Value(&reportCreate.priority),
		),
	)
	return form.Run()
}

var reportsUpdateSet []string

var reportsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a report, e.g. --set status=Resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireWrite(); err != nil {
			return err
		}
		updates, err := parseSetArgs(reportsUpdateSet)
		if err != nil {
			return err
		}
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListReports, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("report not found: %s", args[0])
		}
		partial, err := client.UpdateReport(cmd.Context(), rec.ID, updates)
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
		fmt.Printf("Updated report %s (%s)\n", merged.ID, merged.Status)
		return nil
	},
}

var reportsExportFlags exportFlags

var reportsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered report list to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListReports, reportsExportFlags.listFlags)
		if err != nil {
			return err
		}
		return writeExport(reportsExportFlags, "reports", view, reportColumns())
	},
}

func reportColumns() []export.Column[resource.Report] {
	return []export.Column[resource.Report]{
		{Header: "ID", Value: func(r resource.Report) string { return r.ID }},
		{Header: "Type", Value: func(r resource.Report) string { return r.Type }},
		{Header: "Category", Value: func(r resource.Report) string { return r.Category }},
		{Header: "Reported By", Value: func(r resource.Report) string { return r.ReportedBy }},
		{Header: "Reported Against", Value: func(r resource.Report) string { return r.ReportedAgainst }},
		{Header: "Booking", Value: func(r resource.Report) string { return r.BookingID }},
		{Header: "Description", Value: func(r resource.Report) string { return r.Description }},
		{Header: "Status", Value: func(r resource.Report) string { return r.Status }},
		{Header: "Priority", Value: func(r resource.Report) string { return r.Priority }},
		{Header: "Date", Value: func(r resource.Report) string { return r.Date }},
	}
}

func init() {
	reportsListFlags.register(reportsListCmd)
	reportsCreateCmd.Flags().StringVar(&reportCreate.reportType, "type", "user", "Report type: user, host, car, payment")
	reportsCreateCmd.Flags().StringVar(&reportCreate.category, "category", "", "Free-form category")
	reportsCreateCmd.Flags().StringVar(&reportCreate.reportedBy, "reported-by", "", "Who filed the report")
	reportsCreateCmd.Flags().StringVar(&reportCreate.against, "against", "", "Who the report is about")
	reportsCreateCmd.Flags().StringVar(&reportCreate.bookingID, "booking", "", "Related booking id")
	reportsCreateCmd.Flags().StringVar(&reportCreate.description, "description", "", "What happened")
	reportsCreateCmd.Flags().StringVar(&reportCreate.priority, "priority", "Medium", "Priority: Low, Medium, High")
	reportsUpdateCmd.Flags().StringArrayVar(&reportsUpdateSet, "set", nil, "Field to update as key=value (repeatable)")
	reportsExportFlags.register(reportsExportCmd)

	reportsCmd.AddCommand(reportsListCmd, reportsCreateCmd, reportsUpdateCmd, reportsExportCmd)
	rootCmd.AddCommand(reportsCmd)
}
