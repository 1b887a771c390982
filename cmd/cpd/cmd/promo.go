package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var promoCmd = &cobra.Command{
	Use:   "promo",
	Short: "Validate and apply promo codes",
}

var (
	promoValidatePlan string

	promoValidateCmd = &cobra.Command{
		Use:   "validate <code>",
		Short: "Check a promo code without applying it",
		Args:  cobra.ExactArgs(1),
		RunE:  runPromoValidate,
	}
)

var promoApplyCmd = &cobra.Command{
	Use:   "apply <code>",
	Short: "Apply a promo code to your subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromoApply,
}

func init() {
	promoValidateCmd.Flags().StringVar(&promoValidatePlan, "plan", "", "plan ID to check eligibility against")

	promoCmd.AddCommand(promoValidateCmd)
	promoCmd.AddCommand(promoApplyCmd)
}

func runPromoValidate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	promo, err := app.client.ValidatePromoCode(cmd.Context(), args[0], promoValidatePlan)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !promo.Valid {
		reason := promo.Reason
		if reason == "" {
			reason = "code is not valid"
		}
		fmt.Fprintf(out, "INVALID: %s\n", reason)
		return nil
	}

	fmt.Fprintf(out, "VALID: %s gives %s\n", promo.Code, describeDiscount(promo))
	if promo.ExpiresAt != nil {
		fmt.Fprintf(out, "Expires: %s\n", formatDate(*promo.ExpiresAt))
	}
	return nil
}

func runPromoApply(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	promo, err := app.client.ApplyPromoCode(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %s: %s\n", promo.Code, describeDiscount(promo))
	return nil
}
