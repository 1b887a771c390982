package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|plain]",
	Short: "Show or set the display theme preference",
	Long: `Without an argument, prints the stored theme. "plain" disables
colored output; "light" and "dark" mirror the web app preference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		theme := app.store.Theme()
		if theme == "" {
			theme = "dark"
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme)
		return nil
	}

	theme := args[0]
	switch theme {
	case "light", "dark", "plain":
	default:
		return fmt.Errorf("unknown theme %q (use light, dark, or plain)", theme)
	}
	if err := app.store.SetTheme(theme); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", theme)
	return nil
}
