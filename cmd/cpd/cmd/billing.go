package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Subscription, plans, and Stripe checkout",
}

var billingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current subscription and seat usage",
	RunE:  runBillingStatus,
}

var billingPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List available plans",
	RunE:  runBillingPlans,
}

var (
	billingCheckoutPlan  string
	billingCheckoutSeats int
	billingCheckoutPromo string

	billingCheckoutCmd = &cobra.Command{
		Use:   "checkout",
		Short: "Start a Stripe checkout for a plan",
		Long: `Creates a Stripe-hosted checkout session and prints its URL. Open the
URL in a browser to pay; no card details pass through this tool.`,
		RunE: runBillingCheckout,
	}
)

var billingPortalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Open the Stripe billing portal",
	RunE:  runBillingPortal,
}

var billingCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the subscription at period end",
	RunE:  runBillingCancel,
}

var billingResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Undo a pending cancellation",
	RunE:  runBillingResume,
}

func init() {
	billingCheckoutCmd.Flags().StringVar(&billingCheckoutPlan, "plan", "", "plan ID (required, see 'cpd billing plans')")
	billingCheckoutCmd.Flags().IntVar(&billingCheckoutSeats, "seats", 0, "billable seats to purchase")
	billingCheckoutCmd.Flags().StringVar(&billingCheckoutPromo, "promo", "", "promo code to apply")

	billingCmd.AddCommand(billingStatusCmd)
	billingCmd.AddCommand(billingPlansCmd)
	billingCmd.AddCommand(billingCheckoutCmd)
	billingCmd.AddCommand(billingPortalCmd)
	billingCmd.AddCommand(billingCancelCmd)
	billingCmd.AddCommand(billingResumeCmd)
}

func runBillingStatus(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	var (
		sub      *platform.Subscription
		subErr   error
		seats    *platform.SeatUsage
		seatsErr error
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		sub, subErr = app.client.Subscription(ctx)
		return nil
	})
	g.Go(func() error {
		seats, seatsErr = app.client.SeatUsage(ctx)
		return nil
	})
	_ = g.Wait()

	out := cmd.OutOrStdout()
	if subErr != nil {
		if api.IsNotFound(subErr) {
			fmt.Fprintln(out, "No subscription. Run 'cpd billing checkout --plan <id>' to start one.")
			return nil
		}
		return subErr
	}

	fmt.Fprintf(out, "Plan:    %s (%s/%s)\n", sub.Plan.Name,
		formatMoney(sub.Plan.PriceCents, sub.Plan.Currency), sub.Plan.Interval)
	fmt.Fprintf(out, "Status:  %s\n", sub.Status)
	if sub.TrialEndsAt != nil {
		fmt.Fprintf(out, "Trial:   ends %s\n", formatDate(*sub.TrialEndsAt))
	}
	if sub.CancelAtPeriodEnd {
		fmt.Fprintf(out, "Ends:    %s (cancellation pending; 'cpd billing resume' to keep it)\n",
			formatDate(sub.CurrentPeriodEnd))
	} else {
		fmt.Fprintf(out, "Renews:  %s\n", formatDate(sub.CurrentPeriodEnd))
	}

	if seatsErr != nil {
		fmt.Fprintf(out, "Seats:   unavailable: %s\n", api.ErrorMessage(seatsErr))
	} else {
		fmt.Fprintf(out, "Seats:   %d of %d in use (%d available)\n", seats.Used, seats.Total, seats.Available)
	}
	return nil
}

func runBillingPlans(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	plans, err := app.client.Plans(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, []string{
			plan.ID,
			plan.Name,
			formatMoney(plan.PriceCents, plan.Currency),
			plan.Interval,
			fmt.Sprint(plan.SeatLimit),
			truncate(strings.Join(plan.Features, ", "), 48),
		})
	}
	table(cmd.OutOrStdout(), []string{"ID", "NAME", "PRICE", "INTERVAL", "SEATS", "FEATURES"}, rows)
	return nil
}

func runBillingCheckout(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if billingCheckoutPlan == "" {
		return fmt.Errorf("--plan is required; see 'cpd billing plans'")
	}

	out := cmd.OutOrStdout()
	if billingCheckoutPromo != "" {
		promo, err := app.client.ValidatePromoCode(cmd.Context(), billingCheckoutPromo, billingCheckoutPlan)
		if err != nil {
			return err
		}
		if !promo.Valid {
			reason := promo.Reason
			if reason == "" {
				reason = "code is not valid for this plan"
			}
			return fmt.Errorf("promo code %q: %s", billingCheckoutPromo, reason)
		}
		fmt.Fprintf(out, "Promo %s applied: %s\n", promo.Code, describeDiscount(promo))
	}

	session, err := app.client.CreateCheckoutSession(cmd.Context(), platform.CheckoutRequest{
		Plan:      billingCheckoutPlan,
		Seats:     billingCheckoutSeats,
		PromoCode: billingCheckoutPromo,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Open this URL to complete payment:")
	fmt.Fprintln(out, session.URL)
	return nil
}

func runBillingPortal(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	session, err := app.client.CreatePortalSession(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Open this URL to manage billing:")
	fmt.Fprintln(cmd.OutOrStdout(), session.URL)
	return nil
}

func runBillingCancel(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sub, err := app.client.CancelSubscription(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subscription will end on %s. Access continues until then.\n",
		formatDate(sub.CurrentPeriodEnd))
	return nil
}

func runBillingResume(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sub, err := app.client.ResumeSubscription(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cancellation undone. Next renewal: %s\n", formatDate(sub.CurrentPeriodEnd))
	return nil
}

func describeDiscount(promo *platform.PromoCode) string {
	switch {
	case promo.PercentOff > 0:
		return fmt.Sprintf("%.0f%% off", promo.PercentOff)
	case promo.AmountOffCents > 0:
		return fmt.Sprintf("%s off", formatMoney(promo.AmountOffCents, ""))
	default:
		return "discount applied"
	}
}
