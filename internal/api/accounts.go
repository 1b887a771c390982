package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// Login exchanges credentials for a token pair. The call skips the
// bearer header and the 401 interceptor: a 401 here means bad
// credentials, not an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (*platform.TokenPair, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	body := platform.LoginRequest{Email: email, Password: password}
	var tokens platform.TokenPair
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login/",
		body:   body,
		out:    &tokens,
		noAuth: true,
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &tokens, nil
}

// Logout invalidates the current session server-side. The stored token
// is the caller's to clear.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/auth/logout/", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*platform.User, error) {
	var user platform.User
	if err := c.get(ctx, "/accounts/me/", nil, &user); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, update platform.ProfileUpdate) (*platform.User, error) {
	var user platform.User
	if err := c.patch(ctx, "/accounts/me/", update, &user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, change platform.PasswordChange) error {
	if err := c.post(ctx, "/accounts/change-password/", change, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// CPDRecordOptions filter /cpd/records/.
type CPDRecordOptions struct {
	Source   string // event, course, or external
	Category string
	Page     int
}

// CPDRecords lists the caller's earned CPD credits.
func (c *Client) CPDRecords(ctx context.Context, opts CPDRecordOptions) (Page[platform.CPDRecord], error) {
	query := url.Values{}
	if opts.Source != "" {
		query.Set("source", opts.Source)
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Page > 0 {
		query.Set("page", fmt.Sprint(opts.Page))
	}

	page, err := getPage[platform.CPDRecord](ctx, c, "/cpd/records/", query)
	if err != nil {
		return Page[platform.CPDRecord]{}, fmt.Errorf("list cpd records: %w", err)
	}
	return page, nil
}

// CPDSummary fetches progress against the caller's current reporting period.
func (c *Client) CPDSummary(ctx context.Context) (*platform.CPDSummary, error) {
	var summary platform.CPDSummary
	if err := c.get(ctx, "/cpd/summary/", nil, &summary); err != nil {
		return nil, fmt.Errorf("fetch cpd summary: %w", err)
	}
	return &summary, nil
}
