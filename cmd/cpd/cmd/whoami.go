package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/credstore"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	token := app.store.Token()
	if token == "" {
		fmt.Fprintln(out, "Not logged in. Run 'cpd login'.")
		return nil
	}

	user, err := app.client.Me(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Name:       %s\n", user.FullName())
	fmt.Fprintf(out, "Email:      %s\n", user.Email)
	if user.Profession != "" {
		fmt.Fprintf(out, "Profession: %s\n", user.Profession)
	}
	fmt.Fprintf(out, "Member since: %s\n", formatDate(user.DateJoined))

	if exp, err := credstore.TokenExpiry(token); err == nil {
		fmt.Fprintf(out, "Session expires: %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}
