package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "Manage the admin notification inbox",
}

var notificationsListFlags listFlags

var notificationsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notifications (--status unread for the unread ones)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context(), newClient().ListNotifications, notificationsListFlags)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(view)
		}
		w := output.Table()
		fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tCREATED\tMESSAGE")
		for _, n := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				n.ID, n.Type, n.StatusValue(), n.CreatedAt, output.Truncate(n.Message, 60))
		}
		return w.Flush()
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().MarkNotificationsRead(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All notifications marked as read")
		return nil
	},
}

var notificationsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a notification",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		ctrl, _, err := loadView(cmd.Context(), client.ListNotifications, listFlags{})
		if err != nil {
			return err
		}
		rec, ok := ctrl.Select(args[0])
		if !ok {
			return fmt.Errorf("notification not found: %s", args[0])
		}
		if err := client.DeleteNotification(cmd.Context(), rec.ID); err != nil {
			return err
		}
		ctrl.Remove(rec.ID)
		fmt.Printf("Deleted notification %s\n", rec.ID)
		return nil
	},
}

func init() {
	notificationsListFlags.register(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsListCmd, notificationsReadAllCmd, notificationsDeleteCmd)
	rootCmd.AddCommand(notificationsCmd)
}
