package api

import (
	"context"
	"fmt"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// Subscription fetches the caller's organization subscription. A 404
// means no subscription exists yet (free tier).
func (c *Client) Subscription(ctx context.Context) (*platform.Subscription, error) {
	var sub platform.Subscription
	if err := c.get(ctx, "/subscription/", nil, &sub); err != nil {
		return nil, fmt.Errorf("fetch subscription: %w", err)
	}
	return &sub, nil
}

// Plans lists the available subscription plans.
func (c *Client) Plans(ctx context.Context) ([]platform.Plan, error) {
	page, err := getPage[platform.Plan](ctx, c, "/billing/plans/", nil)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return page.Results, nil
}

// SeatUsage fetches billable seat usage for the caller's organization.
func (c *Client) SeatUsage(ctx context.Context) (*platform.SeatUsage, error) {
	var usage platform.SeatUsage
	if err := c.get(ctx, "/billing/seats/", nil, &usage); err != nil {
		return nil, fmt.Errorf("fetch seat usage: %w", err)
	}
	return &usage, nil
}

// CreateCheckoutSession asks the backend for a Stripe-hosted checkout
// URL. The caller opens the URL in a browser; no payment data passes
// through this client.
func (c *Client) CreateCheckoutSession(ctx context.Context, req platform.CheckoutRequest) (*platform.CheckoutSession, error) {
	var session platform.CheckoutSession
	if err := c.post(ctx, "/billing/checkout/", req, &session); err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if session.URL == "" {
		return nil, fmt.Errorf("create checkout session: backend returned no URL")
	}
	return &session, nil
}

// CreatePortalSession asks the backend for a Stripe-hosted billing
// portal URL for managing payment methods and invoices.
func (c *Client) CreatePortalSession(ctx context.Context) (*platform.PortalSession, error) {
	var session platform.PortalSession
	if err := c.post(ctx, "/billing/portal/", nil, &session); err != nil {
		return nil, fmt.Errorf("create portal session: %w", err)
	}
	if session.URL == "" {
		return nil, fmt.Errorf("create portal session: backend returned no URL")
	}
	return &session, nil
}

// CancelSubscription schedules cancellation at the end of the current
// billing period.
func (c *Client) CancelSubscription(ctx context.Context) (*platform.Subscription, error) {
	var sub platform.Subscription
	if err := c.post(ctx, "/subscription/cancel/", nil, &sub); err != nil {
		return nil, fmt.Errorf("cancel subscription: %w", err)
	}
	return &sub, nil
}

// ResumeSubscription undoes a pending cancellation.
func (c *Client) ResumeSubscription(ctx context.Context) (*platform.Subscription, error) {
	var sub platform.Subscription
	if err := c.post(ctx, "/subscription/resume/", nil, &sub); err != nil {
		return nil, fmt.Errorf("resume subscription: %w", err)
	}
	return &sub, nil
}
