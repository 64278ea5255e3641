// Package cli implements the fliitsctl command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/api"
	"github.com/fliits/fliitsctl/pkg/cliconfig"
	"github.com/fliits/fliitsctl/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	apiURL     string
	jsonOutput bool
	verbose    bool

	// Version is injected during build
	Version = "dev"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fliitsctl",
	Short: "fliitsctl is the admin console for the FLIITS car-rental platform",
	Long: `fliitsctl manages users, hosts, cars, bookings, payments, reports, and
employees on a FLIITS deployment through its admin API.

Run 'fliitsctl login' first to authenticate; credentials are stored per
context in ~/.config/fliitsctl/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", formatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Admin API base URL (default: current context)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API requests to stderr")
}

// newClient builds an API client from flags, env, and the current context.
func newClient() *api.Client {
	opts := []api.Option{}
	if token := cliconfig.ResolveToken(); token != "" {
		opts = append(opts, api.WithToken(token))
	}
	if verbose {
		opts = append(opts, api.WithLogger(logging.New(logging.LevelDebug)))
	}
	return api.New(cliconfig.ResolveAPIURL(apiURL), opts...)
}

// requireWrite enforces the client-side role gate: only admins mutate.
// An unknown role (no cached profile) is allowed through; the server
// still has the final say.
func requireWrite() error {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil
	}
	ctx := cfg.Current()
	if ctx == nil || ctx.Role == "" {
		return nil
	}
	if !cliconfig.CanWrite(ctx.Role) {
		return fmt.Errorf("role %q is read-only; this action requires an admin", ctx.Role)
	}
	return nil
}

// formatError adds recovery hints to common failure shapes.
func formatError(err error) string {
	var connErr *api.ConnectionError
	if errors.As(err, &connErr) {
		return fmt.Sprintf(`%s

Suggestions:
  - Check the API URL with: fliitsctl context show
  - Verify the backend is reachable from this machine`, connErr.Error())
	}
	if api.IsUnauthorized(err) {
		return fmt.Sprintf("%s\n\nYour session may have expired. Run: fliitsctl login", err.Error())
	}
	return err.Error()
}
