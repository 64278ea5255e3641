package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/api"
	"github.com/fliits/fliitsctl/pkg/cli/internal/output"
	"github.com/fliits/fliitsctl/pkg/cliconfig"
)

var loginFlags struct {
	email    string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the admin API",
	Long: `Authenticate against the admin API and cache the bearer token in the
current context. Credentials are prompted for when not passed as flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginFlags.email == "" || loginFlags.password == "" {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Email").
						Value(&loginFlags.email),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&loginFlags.password),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		baseURL := cliconfig.ResolveAPIURL(apiURL)
		client := api.New(baseURL)
		token, err := client.Login(cmd.Context(), loginFlags.email, loginFlags.password)
		if err != nil {
			return err
		}

		role, name, email := "", "", loginFlags.email
		if claims, err := cliconfig.ParseToken(token); err == nil {
			role = claims.Role
			if claims.Email != "" {
				email = claims.Email
			}
		}
		// The profile endpoint is authoritative; the token claims are only
		// a fallback when it is unavailable.
		authed := api.New(baseURL, api.WithToken(token))
		if profile, err := authed.Me(cmd.Context()); err == nil {
			if profile.Role != "" {
				role = profile.Role
			}
			if profile.Name != "" {
				name = profile.Name
			}
			if profile.Email != "" {
				email = profile.Email
			}
		}
		if role != "" && !cliconfig.CanRead(role) {
			return fmt.Errorf("account role %q has no console access", role)
		}

		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		if cfg.Current() == nil {
			if err := cfg.AddContext("default", &cliconfig.Context{APIURL: baseURL}); err != nil {
				return err
			}
			if err := cfg.SetCurrentContext("default"); err != nil {
				return err
			}
		}
		if err := cfg.SetCredentials(token, role, name, email); err != nil {
			return err
		}
		if err := cliconfig.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s", email)
		if role != "" {
			fmt.Printf(" (%s)", role)
		}
		fmt.Println()
		if role != "" && !cliconfig.CanWrite(role) {
			output.Warn("role %q is read-only; mutation commands will be refused", role)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the cached credentials of the current context",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		if ctx := cfg.Current(); ctx == nil || ctx.Token == "" {
			fmt.Println("Not logged in")
			return nil
		}
		cfg.ClearCredentials()
		if err := cliconfig.Save(cfg); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the cached credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		ctx := cfg.Current()
		if ctx == nil || ctx.Token == "" {
			return fmt.Errorf("not logged in; run: fliitsctl login")
		}

		w := output.Table()
		fmt.Fprintf(w, "Email:\t%s\n", ctx.Email)
		if ctx.Name != "" {
			fmt.Fprintf(w, "Name:\t%s\n", ctx.Name)
		}
		fmt.Fprintf(w, "Role:\t%s\n", ctx.Role)
		fmt.Fprintf(w, "API URL:\t%s\n", cliconfig.ResolveAPIURL(apiURL))
		if claims, err := cliconfig.ParseToken(ctx.Token); err == nil && !claims.ExpiresAt.IsZero() {
			fmt.Fprintf(w, "Token expires:\t%s", claims.ExpiresAt.Format(time.RFC3339))
			if time.Now().After(claims.ExpiresAt) {
				fmt.Fprint(w, " (expired)")
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "Login email")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "Password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
