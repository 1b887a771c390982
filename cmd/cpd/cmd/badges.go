package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List and claim badges",
}

var badgesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your badges",
	RunE:  runBadgesList,
}

var badgesShowCmd = &cobra.Command{
	Use:   "show <badge-uuid>",
	Short: "Show one badge",
	Args:  cobra.ExactArgs(1),
	RunE:  runBadgesShow,
}

var badgesClaimCmd = &cobra.Command{
	Use:   "claim <badge-uuid>",
	Short: "Claim an earned badge",
	Args:  cobra.ExactArgs(1),
	RunE:  runBadgesClaim,
}

func init() {
	badgesCmd.AddCommand(badgesListCmd)
	badgesCmd.AddCommand(badgesShowCmd)
	badgesCmd.AddCommand(badgesClaimCmd)
}

func runBadgesList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	page, err := app.client.ListBadges(cmd.Context())
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No badges.")
		return nil
	}

	rows := make([][]string, 0, len(page.Results))
	for _, badge := range page.Results {
		state := "unclaimed"
		if badge.Claimed {
			state = "claimed"
		}
		awarded := "-"
		if badge.AwardedAt != nil {
			awarded = formatDate(*badge.AwardedAt)
		}
		rows = append(rows, []string{
			badge.ID.String(),
			truncate(sanitize.Text(badge.Name), 36),
			state,
			awarded,
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "BADGE", "STATE", "AWARDED"}, rows)
	return nil
}

func runBadgesShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid badge UUID %q", args[0])
	}

	badge, err := app.client.Badge(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sanitize.Text(badge.Name))
	if badge.Description != "" {
		fmt.Fprintf(out, "%s\n", sanitize.Description(badge.Description))
	}
	if badge.Criteria != "" {
		fmt.Fprintf(out, "Criteria: %s\n", sanitize.Text(badge.Criteria))
	}
	if badge.AwardedAt != nil {
		fmt.Fprintf(out, "Awarded:  %s\n", formatDate(*badge.AwardedAt))
	}
	if badge.Claimed {
		fmt.Fprintln(out, "Status:   claimed")
	} else {
		fmt.Fprintln(out, "Status:   unclaimed")
	}
	return nil
}

func runBadgesClaim(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid badge UUID %q", args[0])
	}

	badge, err := app.client.ClaimBadge(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Claimed %s\n", sanitize.Text(badge.Name))
	return nil
}
