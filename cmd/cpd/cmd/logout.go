package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session token",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if app.store.Token() == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	// Best effort: the backend session may already be gone.
	if err := app.client.Logout(cmd.Context()); err != nil && !errors.Is(err, api.ErrSessionExpired) {
		app.logger.Warn().Err(err).Msg("server-side logout failed")
	}

	if err := app.store.Clear(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}
