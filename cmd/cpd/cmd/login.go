package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in to the CPD Events platform",
		Long: `Authenticates against the platform and stores the session token in
the local credentials file. All other commands use the stored token
until it expires or 'cpd logout' is run.`,
		RunE: runLogin,
	}

	loginEmail string
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (prompted if omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	email := loginEmail
	if email == "" {
		email, err = p.ask("Email", "")
		if err != nil {
			return err
		}
	}
	password, err := p.askSecret("Password")
	if err != nil {
		return err
	}

	tokens, err := app.client.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}
	if err := app.store.SetToken(tokens.Access); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	user, err := app.client.Me(cmd.Context())
	if err != nil {
		// Token is stored; profile fetch failing is not fatal.
		fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.FullName(), user.Email)
	return nil
}
