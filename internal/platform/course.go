package platform

import (
	"time"

	"github.com/google/uuid"
)

// Course publication states.
const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

// Course mirrors a single item from /courses/.
type Course struct {
	ID            uuid.UUID        `json:"uuid"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Status        string           `json:"status"`
	CPDPoints     float64          `json:"cpd_points"`
	ModuleCount   int              `json:"module_count"`
	DurationHours float64          `json:"duration_hours,omitempty"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	Organization  *OrganizationRef `json:"organization,omitempty"`
	EnrolledCount int              `json:"enrolled_count"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CourseCreate is the payload for POST /courses/.
type CourseCreate struct {
	Title         string     `json:"title" validate:"required,min=3,max=200"`
	Description   string     `json:"description,omitempty"`
	CPDPoints     float64    `json:"cpd_points" validate:"gte=0"`
	DurationHours float64    `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Organization  string     `json:"organization,omitempty"`
}

// CourseUpdate carries partial course changes for PATCH /courses/{uuid}/.
type CourseUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	CPDPoints   *float64 `json:"cpd_points,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// Enrollment progress states.
const (
	EnrollmentStatusEnrolled   = "enrolled"
	EnrollmentStatusInProgress = "in_progress"
	EnrollmentStatusCompleted  = "completed"
)

// Enrollment mirrors an item from /enrollments/.
type Enrollment struct {
	ID          uuid.UUID  `json:"uuid"`
	Course      Course     `json:"course"`
	Status      string     `json:"status"`
	Progress    float64    `json:"progress"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
