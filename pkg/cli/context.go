package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/cliconfig"
)

var contextCmd = &cobra.Command{
	Use:     "context",
	Aliases: []string{"ctx"},
	Short:   "Manage named API endpoints",
	Long: `Manage named API endpoints. Each context holds an API URL and the
credentials cached for it, so you can switch between deployments
(staging, production) without re-entering anything.`,
}

var contextAddFlags struct {
	apiURL      string
	description string
	use         bool
}

var contextAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		ctx := &cliconfig.Context{
			APIURL:      contextAddFlags.apiURL,
			Description: contextAddFlags.description,
		}
		if ctx.APIURL == "" {
			ctx.APIURL = cliconfig.DefaultAPIURL
		}
		if err := cfg.AddContext(args[0], ctx); err != nil {
			return err
		}
		if contextAddFlags.use || cfg.CurrentContext == "" {
			if err := cfg.SetCurrentContext(args[0]); err != nil {
				return err
			}
		}
		if err := cliconfig.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Added context %q (%s)\n", args[0], ctx.APIURL)
		return nil
	},
}

var contextUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the current context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		if err := cfg.SetCurrentContext(args[0]); err != nil {
			return err
		}
		if err := cliconfig.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Switched to context %q\n", args[0])
		return nil
	},
}

var contextListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		if len(cfg.Contexts) == 0 {
			fmt.Println("No contexts configured. Add one with: fliitsctl context add <name> --api-url <url>")
			return nil
		}
		if jsonOutput {
			return output.JSON(cfg.Contexts)
		}
		w := output.Table()
		fmt.Fprintln(w, "CURRENT\tNAME\tAPI URL\tLOGGED IN AS\tDESCRIPTION")
		for _, name := range cfg.ContextNames() {
			ctx := cfg.Contexts[name]
			marker := ""
			if name == cfg.CurrentContext {
				marker = "*"
			}
			identity := ""
			if ctx.Email != "" {
				identity = ctx.Email
				if ctx.Role != "" {
					identity += " (" + ctx.Role + ")"
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, name, ctx.APIURL, identity, ctx.Description)
		}
		return w.Flush()
	},
}

var contextRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a context",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		if err := cfg.RemoveContext(args[0]); err != nil {
			return err
		}
		if err := cliconfig.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Removed context %q\n", args[0])
		return nil
	},
}

var contextShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current context and the resolved API URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		name := cfg.CurrentContext
		if env := cliconfig.GetContextFromEnv(); env != "" {
			name = env + " (from " + cliconfig.EnvContext + ")"
		}
		w := output.Table()
		if name == "" {
			fmt.Fprintln(w, "Context:\t(none)")
		} else {
			fmt.Fprintf(w, "Context:\t%s\n", name)
		}
		fmt.Fprintf(w, "API URL:\t%s\n", cliconfig.ResolveAPIURL(apiURL))
		if ctx := cfg.Current(); ctx != nil && ctx.Email != "" {
			fmt.Fprintf(w, "Logged in as:\t%s (%s)\n", ctx.Email, ctx.Role)
		}
		return w.Flush()
	},
}

func init() {
	contextAddCmd.Flags().StringVar(&contextAddFlags.apiURL, "api-url", "", "Admin API base URL for this context")
	contextAddCmd.Flags().StringVar(&contextAddFlags.description, "description", "", "Free-form description")
	contextAddCmd.Flags().BoolVar(&contextAddFlags.use, "use", false, "Switch to the new context immediately")

	contextCmd.AddCommand(contextAddCmd, contextUseCmd, contextListCmd, contextRemoveCmd, contextShowCmd)
	rootCmd.AddCommand(contextCmd)
}
