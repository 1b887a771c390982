package platform

import (
	"time"

	"github.com/google/uuid"
)

// Event lifecycle states as exposed by the backend.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Event delivery formats.
const (
	EventTypeInPerson = "in_person"
	EventTypeVirtual  = "virtual"
	EventTypeHybrid   = "hybrid"
)

// Event mirrors a single item from /events/.
type Event struct {
	ID              uuid.UUID        `json:"uuid"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	EventType       string           `json:"event_type"`
	Status          string           `json:"status"`
	StartTime       time.Time        `json:"start_time"`
	EndTime         time.Time        `json:"end_time"`
	Timezone        string           `json:"timezone,omitempty"`
	VenueName       string           `json:"venue_name,omitempty"`
	VenueAddress    string           `json:"venue_address,omitempty"`
	City            string           `json:"city,omitempty"`
	MeetingURL      string           `json:"meeting_url,omitempty"`
	Capacity        int              `json:"capacity"`
	RegisteredCount int              `json:"registered_count"`
	CPDPoints       float64          `json:"cpd_points"`
	Organization    *OrganizationRef `json:"organization,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Upcoming reports whether the event has not started yet.
func (e Event) Upcoming() bool {
	return e.StartTime.After(time.Now())
}

// EventCreate is the payload for POST /events/.
type EventCreate struct {
	Title        string    `json:"title" validate:"required,min=3,max=200"`
	Description  string    `json:"description,omitempty"`
	EventType    string    `json:"event_type" validate:"required,oneof=in_person virtual hybrid"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Timezone     string    `json:"timezone,omitempty"`
	VenueName    string    `json:"venue_name,omitempty"`
	VenueAddress string    `json:"venue_address,omitempty"`
	City         string    `json:"city,omitempty"`
	MeetingURL   string    `json:"meeting_url,omitempty" validate:"omitempty,url"`
	Capacity     int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	CPDPoints    float64   `json:"cpd_points,omitempty" validate:"omitempty,gte=0"`
	Organization string    `json:"organization,omitempty"`
}

// EventUpdate carries partial event changes for PATCH /events/{uuid}/.
type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	VenueName   *string    `json:"venue_name,omitempty"`
	MeetingURL  *string    `json:"meeting_url,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	CPDPoints   *float64   `json:"cpd_points,omitempty"`
}

// Registration states.
const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusWaitlisted = "waitlisted"
	RegistrationStatusCancelled  = "cancelled"
)

// Registration mirrors an item from /events/{uuid}/registrations/.
type Registration struct {
	ID           uuid.UUID  `json:"uuid"`
	Event        uuid.UUID  `json:"event"`
	Attendee     User       `json:"attendee"`
	Status       string     `json:"status"`
	Attended     bool       `json:"attended"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
}

// AttendanceMark is the payload for POST /events/{uuid}/attendance/.
type AttendanceMark struct {
	Registration uuid.UUID `json:"registration" validate:"required"`
	Attended     bool      `json:"attended"`
}
