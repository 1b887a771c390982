package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// MyOrganizations lists organizations the caller belongs to.
func (c *Client) MyOrganizations(ctx context.Context) (Page[platform.Organization], error) {
	page, err := getPage[platform.Organization](ctx, c, "/organizations/", nil)
	if err != nil {
		return Page[platform.Organization]{}, fmt.Errorf("list organizations: %w", err)
	}
	return page, nil
}

// Organization fetches a single organization by UUID.
func (c *Client) Organization(ctx context.Context, id uuid.UUID) (*platform.Organization, error) {
	var org platform.Organization
	if err := c.get(ctx, fmt.Sprintf("/organizations/%s/", id), nil, &org); err != nil {
		return nil, fmt.Errorf("fetch organization: %w", err)
	}
	return &org, nil
}

// CreateOrganization creates an organization with the caller as admin.
func (c *Client) CreateOrganization(ctx context.Context, create platform.OrganizationCreate) (*platform.Organization, error) {
	var org platform.Organization
	if err := c.post(ctx, "/organizations/", create, &org); err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return &org, nil
}

// UpdateOrganization applies a partial update.
func (c *Client) UpdateOrganization(ctx context.Context, id uuid.UUID, update platform.OrganizationUpdate) (*platform.Organization, error) {
	var org platform.Organization
	if err := c.patch(ctx, fmt.Sprintf("/organizations/%s/", id), update, &org); err != nil {
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return &org, nil
}

// Members lists an organization's members.
func (c *Client) Members(ctx context.Context, orgID uuid.UUID) (Page[platform.Member], error) {
	page, err := getPage[platform.Member](ctx, c, fmt.Sprintf("/organizations/%s/members/", orgID), nil)
	if err != nil {
		return Page[platform.Member]{}, fmt.Errorf("list members: %w", err)
	}
	return page, nil
}

// InviteMember invites an email address into the organization. Seat
// availability for billable roles is enforced server-side; the CLI
// only pre-checks to give faster feedback.
func (c *Client) InviteMember(ctx context.Context, orgID uuid.UUID, invite platform.MemberInvite) (*platform.Invite, error) {
	var created platform.Invite
	if err := c.post(ctx, fmt.Sprintf("/organizations/%s/members/", orgID), invite, &created); err != nil {
		return nil, fmt.Errorf("invite member: %w", err)
	}
	return &created, nil
}

// UpdateMemberRole changes a member's role.
func (c *Client) UpdateMemberRole(ctx context.Context, orgID, memberID uuid.UUID, role string) (*platform.Member, error) {
	var member platform.Member
	change := platform.RoleChange{Role: role}
	if err := c.patch(ctx, fmt.Sprintf("/organizations/%s/members/%s/", orgID, memberID), change, &member); err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}
	return &member, nil
}

// RemoveMember removes a member from the organization.
func (c *Client) RemoveMember(ctx context.Context, orgID, memberID uuid.UUID) error {
	if err := c.delete(ctx, fmt.Sprintf("/organizations/%s/members/%s/", orgID, memberID)); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// PendingInvites lists invites that have not been accepted yet.
func (c *Client) PendingInvites(ctx context.Context, orgID uuid.UUID) (Page[platform.Invite], error) {
	page, err := getPage[platform.Invite](ctx, c, fmt.Sprintf("/organizations/%s/invites/", orgID), nil)
	if err != nil {
		return Page[platform.Invite]{}, fmt.Errorf("list invites: %w", err)
	}
	return page, nil
}

// RevokeInvite cancels a pending invite.
func (c *Client) RevokeInvite(ctx context.Context, orgID, inviteID uuid.UUID) error {
	if err := c.delete(ctx, fmt.Sprintf("/organizations/%s/invites/%s/", orgID, inviteID)); err != nil {
		return fmt.Errorf("revoke invite: %w", err)
	}
	return nil
}
