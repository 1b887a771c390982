package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/forms"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var (
	onboardResume bool

	onboardCmd = &cobra.Command{
		Use:   "onboard",
		Short: "Guided setup: organization, plan, and first team invites",
		Long: `Walks through setting up an organization step by step: create the
organization, pick a plan, optionally apply a promo code, open Stripe
checkout, and invite your first team members.

Each step commits to the backend as it completes. If the wizard is
interrupted, run 'cpd onboard --resume' to pick up where it left off;
completed steps are detected from the backend and skipped.`,
		RunE: runOnboard,
	}
)

func init() {
	onboardCmd.Flags().BoolVar(&onboardResume, "resume", false, "skip steps already completed on the backend")
}

// onboardState carries what the wizard has learned or created so far.
type onboardState struct {
	user *platform.User
	org  *platform.Organization
	sub  *platform.Subscription
}

func runOnboard(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	ask := newPrompter(cmd.InOrStdin(), out)

	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	state := &onboardState{user: user}
	fmt.Fprintf(out, "Welcome, %s. Let's set up your organization.\n\n", user.FullName())

	steps := []struct {
		name string
		run  func(context.Context, *app, *onboardState, *prompter, io.Writer) (bool, error)
	}{
		{"organization", stepOrganization},
		{"plan", stepPlan},
		{"team", stepTeam},
	}

	for i, step := range steps {
		ran, err := step.run(ctx, a, state, ask, out)
		if err != nil {
			// Completed steps are already on the backend; nothing is
			// rolled back. --resume continues from here.
			return fmt.Errorf("step %d/%d (%s): %w (run 'cpd onboard --resume' to continue)",
				i+1, len(steps), step.name, err)
		}
		if !ran {
			fmt.Fprintf(out, "Step %d/%d (%s): already done, skipping.\n", i+1, len(steps), step.name)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Setup complete. Run 'cpd dashboard' to see your workspace.")
	return nil
}

// stepOrganization creates the organization, or skips when resuming and
// one already exists with the caller as admin.
func stepOrganization(ctx context.Context, app *app, state *onboardState, ask *prompter, out io.Writer) (bool, error) {
	if onboardResume {
		page, err := app.client.MyOrganizations(ctx)
		if err != nil {
			return false, err
		}
		for i := range page.Results {
			if page.Results[i].Role == platform.RoleAdmin {
				state.org = &page.Results[i]
				return false, nil
			}
		}
	}

	fmt.Fprintln(out, "Step 1/3: create your organization")
	name, err := ask.ask("Organization name", "")
	if err != nil {
		return false, err
	}
	website, err := ask.ask("Website (optional)", "")
	if err != nil {
		return false, err
	}

	create := platform.OrganizationCreate{Name: name, Website: website}
	if err := forms.Validate(create); err != nil {
		return false, err
	}
	org, err := app.client.CreateOrganization(ctx, create)
	if err != nil {
		return false, err
	}
	state.org = org
	fmt.Fprintf(out, "Created %s (%s).\n", sanitize.Text(org.Name), org.ID)
	return true, nil
}

// stepPlan picks a plan, optionally validates a promo code, and prints
// the Stripe checkout URL. Skipped when resuming onto an active
// subscription.
func stepPlan(ctx context.Context, app *app, state *onboardState, ask *prompter, out io.Writer) (bool, error) {
	if onboardResume {
		sub, err := app.client.Subscription(ctx)
		if err == nil && sub.Active() {
			state.sub = sub
			return false, nil
		}
		if err != nil && !api.IsNotFound(err) {
			return false, err
		}
	}

	fmt.Fprintln(out, "Step 2/3: choose a plan")
	plans, err := app.client.Plans(ctx)
	if err != nil {
		return false, err
	}
	if len(plans) == 0 {
		return false, fmt.Errorf("no plans available")
	}
	for _, plan := range plans {
		fmt.Fprintf(out, "  %-12s %s  %s/%s, up to %d seats\n",
			plan.ID, plan.Name, formatMoney(plan.PriceCents, plan.Currency), plan.Interval, plan.SeatLimit)
	}

	planID, err := ask.ask("Plan ID", plans[0].ID)
	if err != nil {
		return false, err
	}

	promoCode, err := ask.ask("Promo code (optional)", "")
	if err != nil {
		return false, err
	}
	if promoCode != "" {
		promo, err := app.client.ValidatePromoCode(ctx, promoCode, planID)
		if err != nil {
			return false, err
		}
		if !promo.Valid {
			fmt.Fprintf(out, "Promo code not valid (%s); continuing without it.\n", promo.Reason)
			promoCode = ""
		} else {
			fmt.Fprintf(out, "Promo %s: %s\n", promo.Code, describeDiscount(promo))
		}
	}

	session, err := app.client.CreateCheckoutSession(ctx, platform.CheckoutRequest{
		Plan:      planID,
		PromoCode: promoCode,
	})
	if err != nil {
		return false, err
	}
	fmt.Fprintln(out, "Open this URL to complete payment:")
	fmt.Fprintln(out, session.URL)
	fmt.Fprintln(out, "Checkout happens in the browser; this wizard does not wait for it.")
	return true, nil
}

// stepTeam loops inviting members until the admin stops.
func stepTeam(ctx context.Context, app *app, state *onboardState, ask *prompter, out io.Writer) (bool, error) {
	if state.org == nil {
		page, err := app.client.MyOrganizations(ctx)
		if err != nil {
			return false, err
		}
		for i := range page.Results {
			if page.Results[i].Role == platform.RoleAdmin {
				state.org = &page.Results[i]
				break
			}
		}
		if state.org == nil {
			return false, fmt.Errorf("no organization to invite into")
		}
	}

	fmt.Fprintln(out, "Step 3/3: invite your team (leave email empty to finish)")
	invited := 0
	for {
		email, err := ask.ask("Email", "")
		if err != nil {
			return false, err
		}
		if email == "" {
			break
		}
		role, err := ask.ask("Role (admin, organizer, course_manager, instructor)", platform.RoleInstructor)
		if err != nil {
			return false, err
		}

		invite := platform.MemberInvite{Email: email, Role: role}
		if err := forms.Validate(invite); err != nil {
			fmt.Fprintf(out, "  %s\n", err)
			continue
		}
		if _, err := app.client.InviteMember(ctx, state.org.ID, invite); err != nil {
			fmt.Fprintf(out, "  Could not invite %s: %s\n", email, api.ErrorMessage(err))
			continue
		}
		invited++
		fmt.Fprintf(out, "  Invited %s as %s.\n", email, role)
	}
	fmt.Fprintf(out, "Invited %d member(s).\n", invited)
	return true, nil
}
