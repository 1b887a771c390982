package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// ListCertificates lists the caller's certificates.
func (c *Client) ListCertificates(ctx context.Context) (Page[platform.Certificate], error) {
	page, err := getPage[platform.Certificate](ctx, c, "/certificates/", nil)
	if err != nil {
		return Page[platform.Certificate]{}, fmt.Errorf("list certificates: %w", err)
	}
	return page, nil
}

// Certificate fetches a single certificate by UUID.
func (c *Client) Certificate(ctx context.Context, id uuid.UUID) (*platform.Certificate, error) {
	var cert platform.Certificate
	if err := c.get(ctx, fmt.Sprintf("/certificates/%s/", id), nil, &cert); err != nil {
		return nil, fmt.Errorf("fetch certificate: %w", err)
	}
	return &cert, nil
}

// DownloadCertificate fetches the rendered certificate PDF.
func (c *Client) DownloadCertificate(ctx context.Context, id uuid.UUID) ([]byte, error) {
	pdf, err := c.getRaw(ctx, fmt.Sprintf("/certificates/%s/download/", id), "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("download certificate: %w", err)
	}
	return pdf, nil
}

// VerifyCertificate checks a certificate code. Verification is public;
// no bearer token is sent.
func (c *Client) VerifyCertificate(ctx context.Context, code string) (*platform.CertificateVerification, error) {
	if code == "" {
		return nil, fmt.Errorf("certificate code cannot be empty")
	}

	var verification platform.CertificateVerification
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/certificates/verify/%s/", url.PathEscape(code)),
		out:    &verification,
		noAuth: true,
	})
	if err != nil {
		return nil, fmt.Errorf("verify certificate: %w", err)
	}
	return &verification, nil
}

// ListBadges lists badges available to or earned by the caller.
func (c *Client) ListBadges(ctx context.Context) (Page[platform.Badge], error) {
	page, err := getPage[platform.Badge](ctx, c, "/badges/", nil)
	if err != nil {
		return Page[platform.Badge]{}, fmt.Errorf("list badges: %w", err)
	}
	return page, nil
}

// Badge fetches a single badge by UUID.
func (c *Client) Badge(ctx context.Context, id uuid.UUID) (*platform.Badge, error) {
	var badge platform.Badge
	if err := c.get(ctx, fmt.Sprintf("/badges/%s/", id), nil, &badge); err != nil {
		return nil, fmt.Errorf("fetch badge: %w", err)
	}
	return &badge, nil
}

// ClaimBadge claims an earned badge.
func (c *Client) ClaimBadge(ctx context.Context, id uuid.UUID) (*platform.Badge, error) {
	var badge platform.Badge
	if err := c.post(ctx, fmt.Sprintf("/badges/%s/claim/", id), nil, &badge); err != nil {
		return nil, fmt.Errorf("claim badge: %w", err)
	}
	return &badge, nil
}
