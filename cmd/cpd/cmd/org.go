package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/forms"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations and teams",
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations you belong to",
	RunE:  runOrgList,
}

var orgShowCmd = &cobra.Command{
	Use:   "show <org-uuid>",
	Short: "Show one organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgShow,
}

var (
	orgCreateName        string
	orgCreateWebsite     string
	orgCreateDescription string

	orgCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an organization with you as admin",
		RunE:  runOrgCreate,
	}
)

var orgSwitchCmd = &cobra.Command{
	Use:   "switch <org-uuid>",
	Short: "Set your default organization",
	Long: `Sets the default organization on your account. The preference lives
server-side, so it follows you across devices.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrgSwitch,
}

func init() {
	orgCreateCmd.Flags().StringVar(&orgCreateName, "name", "", "organization name (required)")
	orgCreateCmd.Flags().StringVar(&orgCreateWebsite, "website", "", "organization website URL")
	orgCreateCmd.Flags().StringVar(&orgCreateDescription, "description", "", "short description")

	orgCmd.AddCommand(orgListCmd)
	orgCmd.AddCommand(orgShowCmd)
	orgCmd.AddCommand(orgCreateCmd)
	orgCmd.AddCommand(orgSwitchCmd)
	orgCmd.AddCommand(teamCmd)
}

func parseOrgID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid organization UUID %q", arg)
	}
	return id, nil
}

func runOrgList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	page, err := app.client.MyOrganizations(cmd.Context())
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "You do not belong to any organization. Run 'cpd onboard' to set one up.")
		return nil
	}

	rows := make([][]string, 0, len(page.Results))
	for _, org := range page.Results {
		role := org.Role
		if role == "" {
			role = "-"
		}
		rows = append(rows, []string{
			org.ID.String(),
			truncate(sanitize.Text(org.Name), 36),
			role,
			fmt.Sprint(org.MemberCount),
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "NAME", "YOUR ROLE", "MEMBERS"}, rows)
	return nil
}

func runOrgShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseOrgID(args[0])
	if err != nil {
		return err
	}

	org, err := app.client.Organization(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sanitize.Text(org.Name))
	fmt.Fprintf(out, "UUID:    %s\n", org.ID)
	if org.Website != "" {
		fmt.Fprintf(out, "Website: %s\n", org.Website)
	}
	fmt.Fprintf(out, "Members: %d\n", org.MemberCount)
	if org.Role != "" {
		fmt.Fprintf(out, "Role:    %s\n", org.Role)
	}
	fmt.Fprintf(out, "Since:   %s\n", formatDate(org.CreatedAt))
	if org.Description != "" {
		fmt.Fprintf(out, "\n%s\n", sanitize.Description(org.Description))
	}
	return nil
}

func runOrgSwitch(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseOrgID(args[0])
	if err != nil {
		return err
	}

	// Confirm membership before writing the preference.
	org, err := app.client.Organization(cmd.Context(), id)
	if err != nil {
		return err
	}

	if _, err := app.client.UpdateProfile(cmd.Context(), platform.ProfileUpdate{DefaultOrg: &id}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Default organization is now %s.\n", sanitize.Text(org.Name))
	return nil
}

func runOrgCreate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	create := platform.OrganizationCreate{
		Name:        orgCreateName,
		Website:     orgCreateWebsite,
		Description: orgCreateDescription,
	}
	if err := forms.Validate(create); err != nil {
		return err
	}

	org, err := app.client.CreateOrganization(cmd.Context(), create)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created organization %s (%s). You are its admin.\n",
		sanitize.Text(org.Name), org.ID)
	return nil
}
