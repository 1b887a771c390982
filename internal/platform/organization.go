package platform

import (
	"time"

	"github.com/google/uuid"
)

// Organization member roles. Admin, organizer, and course_manager roles
// occupy billable seats; instructors do not.
const (
	RoleAdmin         = "admin"
	RoleOrganizer     = "organizer"
	RoleCourseManager = "course_manager"
	RoleInstructor    = "instructor"
)

// BillableSeat reports whether a role counts against the subscription's
// seat allowance.
func BillableSeat(role string) bool {
	switch role {
	case RoleAdmin, RoleOrganizer, RoleCourseManager:
		return true
	}
	return false
}

// ValidRole reports whether role is one of the four member roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOrganizer, RoleCourseManager, RoleInstructor:
		return true
	}
	return false
}

// OrganizationRef is the compact form embedded in events and courses.
type OrganizationRef struct {
	ID   uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

// Organization mirrors /organizations/{uuid}/.
type Organization struct {
	ID          uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug,omitempty"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	MemberCount int       `json:"member_count"`
	Role        string    `json:"role,omitempty"` // caller's role, if a member
	CreatedAt   time.Time `json:"created_at"`
}

// OrganizationCreate is the payload for POST /organizations/.
type OrganizationCreate struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// OrganizationUpdate carries partial changes for PATCH /organizations/{uuid}/.
type OrganizationUpdate struct {
	Name        *string `json:"name,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Member mirrors an item from /organizations/{uuid}/members/.
type Member struct {
	ID       uuid.UUID `json:"uuid"`
	User     User      `json:"user"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberInvite is the payload for POST /organizations/{uuid}/members/.
type MemberInvite struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin organizer course_manager instructor"`
}

// RoleChange is the payload for PATCH /organizations/{uuid}/members/{uuid}/.
type RoleChange struct {
	Role string `json:"role" validate:"required,oneof=admin organizer course_manager instructor"`
}

// Invite mirrors an item from /organizations/{uuid}/invites/.
type Invite struct {
	ID        uuid.UUID  `json:"uuid"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	InvitedBy string     `json:"invited_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
