package api

import (
	"context"
	"fmt"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

type promoCodeRequest struct {
	Code string `json:"code"`
	Plan string `json:"plan,omitempty"`
}

// ValidatePromoCode checks a promo code against a plan without applying
// it. Validation rules (expiry, usage caps, plan eligibility) live
// server-side; the response says only whether the code is usable.
func (c *Client) ValidatePromoCode(ctx context.Context, code, plan string) (*platform.PromoCode, error) {
	if code == "" {
		return nil, fmt.Errorf("promo code cannot be empty")
	}

	var result platform.PromoCode
	body := promoCodeRequest{Code: code, Plan: plan}
	if err := c.post(ctx, "/promo-codes/validate/", body, &result); err != nil {
		return nil, fmt.Errorf("validate promo code: %w", err)
	}
	return &result, nil
}

// ApplyPromoCode applies a promo code to the caller's subscription.
func (c *Client) ApplyPromoCode(ctx context.Context, code string) (*platform.PromoCode, error) {
	if code == "" {
		return nil, fmt.Errorf("promo code cannot be empty")
	}

	var result platform.PromoCode
	body := promoCodeRequest{Code: code}
	if err := c.post(ctx, "/promo-codes/apply/", body, &result); err != nil {
		return nil, fmt.Errorf("apply promo code: %w", err)
	}
	return &result, nil
}
