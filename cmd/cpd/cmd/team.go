package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/forms"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage an organization's members, roles, and invites",
}

var teamListCmd = &cobra.Command{
	Use:   "list <org-uuid>",
	Short: "List members alongside seat usage",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamList,
}

var (
	teamInviteEmail string
	teamInviteRole  string

	teamInviteCmd = &cobra.Command{
		Use:   "invite <org-uuid>",
		Short: "Invite someone into the organization",
		Args:  cobra.ExactArgs(1),
		RunE:  runTeamInvite,
	}
)

var teamRoleCmd = &cobra.Command{
	Use:   "role <org-uuid> <member-uuid> <role>",
	Short: "Change a member's role",
	Args:  cobra.ExactArgs(3),
	RunE:  runTeamRole,
}

var teamRemoveCmd = &cobra.Command{
	Use:   "remove <org-uuid> <member-uuid>",
	Short: "Remove a member",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeamRemove,
}

var teamInvitesCmd = &cobra.Command{
	Use:   "invites <org-uuid>",
	Short: "List pending invites",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamInvites,
}

var teamRevokeCmd = &cobra.Command{
	Use:   "revoke <org-uuid> <invite-uuid>",
	Short: "Revoke a pending invite",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeamRevoke,
}

func init() {
	teamInviteCmd.Flags().StringVar(&teamInviteEmail, "email", "", "invitee email (required)")
	teamInviteCmd.Flags().StringVar(&teamInviteRole, "role", platform.RoleInstructor,
		"role: admin, organizer, course_manager, or instructor")

	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamInviteCmd)
	teamCmd.AddCommand(teamRoleCmd)
	teamCmd.AddCommand(teamRemoveCmd)
	teamCmd.AddCommand(teamInvitesCmd)
	teamCmd.AddCommand(teamRevokeCmd)
}

func runTeamList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	orgID, err := parseOrgID(args[0])
	if err != nil {
		return err
	}

	var (
		members    api.Page[platform.Member]
		membersErr error
		sub        *platform.Subscription
		subErr     error
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		members, membersErr = app.client.Members(ctx, orgID)
		return nil
	})
	g.Go(func() error {
		sub, subErr = app.client.Subscription(ctx)
		return nil
	})
	_ = g.Wait()

	if membersErr != nil {
		return membersErr
	}

	out := cmd.OutOrStdout()
	rows := make([][]string, 0, len(members.Results))
	for _, m := range members.Results {
		seat := "-"
		if platform.BillableSeat(m.Role) {
			seat = "billable"
		}
		rows = append(rows, []string{
			m.ID.String(),
			m.User.FullName(),
			m.User.Email,
			m.Role,
			seat,
			formatDate(m.JoinedAt),
		})
	}
	table(out, []string{"UUID", "NAME", "EMAIL", "ROLE", "SEAT", "JOINED"}, rows)

	switch {
	case subErr != nil:
		fmt.Fprintf(out, "\nSeat usage unavailable: %s\n", api.ErrorMessage(subErr))
	case sub != nil:
		fmt.Fprintf(out, "\nSeats: %d of %d in use (%d available) on the %s plan\n",
			sub.SeatsInUse, sub.Seats, sub.SeatsAvailable(), sub.Plan.Name)
	}
	return nil
}

func runTeamInvite(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	orgID, err := parseOrgID(args[0])
	if err != nil {
		return err
	}
	if !platform.ValidRole(teamInviteRole) {
		return fmt.Errorf("invalid role %q: use admin, organizer, course_manager, or instructor", teamInviteRole)
	}

	invite := platform.MemberInvite{Email: teamInviteEmail, Role: teamInviteRole}
	if err := forms.Validate(invite); err != nil {
		return err
	}

	// Pre-check seat availability so the admin hears about a full plan
	// before the invite email goes out. The backend enforces the limit
	// either way.
	if platform.BillableSeat(teamInviteRole) {
		if sub, err := app.client.Subscription(cmd.Context()); err == nil && sub.SeatsAvailable() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(),
				"Warning: no billable seats available; this invite may be rejected. Run 'cpd billing status'.")
		}
	}

	created, err := app.client.InviteMember(cmd.Context(), orgID, invite)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invited %s as %s (invite %s)\n", created.Email, created.Role, created.ID)
	return nil
}

func runTeamRole(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	orgID, err := parseOrgID(args[0])
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid member UUID %q", args[1])
	}
	role := args[2]
	if !platform.ValidRole(role) {
		return fmt.Errorf("invalid role %q: use admin, organizer, course_manager, or instructor", role)
	}

	member, err := app.client.UpdateMemberRole(cmd.Context(), orgID, memberID, role)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", member.User.FullName(), member.Role)
	return nil
}

func runTeamRemove(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	orgID, err := parseOrgID(args[0])
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid member UUID %q", args[1])
	}

	if err := app.client.RemoveMember(cmd.Context(), orgID, memberID); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Member removed.")
	return nil
}

func runTeamInvites(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	orgID, err := parseOrgID(args[0])
	if err != nil {
		return err
	}

	page, err := app.client.PendingInvites(cmd.Context(), orgID)
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No pending invites.")
		return nil
	}

	rows := make([][]string, 0, len(page.Results))
	for _, invite := range page.Results {
		expires := "-"
		if invite.ExpiresAt != nil {
			expires = formatDate(*invite.ExpiresAt)
		}
		rows = append(rows, []string{
			invite.ID.String(),
			invite.Email,
			invite.Role,
			formatDate(invite.CreatedAt),
			expires,
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "EMAIL", "ROLE", "SENT", "EXPIRES"}, rows)
	return nil
}

func runTeamRevoke(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	orgID, err := parseOrgID(args[0])
	if err != nil {
		return err
	}
	inviteID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid invite UUID %q", args[1])
	}

	if err := app.client.RevokeInvite(cmd.Context(), orgID, inviteID); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Invite revoked.")
	return nil
}
