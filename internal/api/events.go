package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// EventListOptions filter /events/.
type EventListOptions struct {
	Search       string
	Organization string // organization UUID
	Status       string
	Upcoming     bool
	Past         bool
	Page         int
}

func (o EventListOptions) values() url.Values {
	query := url.Values{}
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	if o.Organization != "" {
		query.Set("organization", o.Organization)
	}
	if o.Status != "" {
		query.Set("status", o.Status)
	}
	if o.Upcoming {
		query.Set("upcoming", "true")
	}
	if o.Past {
		query.Set("past", "true")
	}
	if o.Page > 0 {
		query.Set("page", fmt.Sprint(o.Page))
	}
	return query
}

// ListEvents fetches one page of events.
func (c *Client) ListEvents(ctx context.Context, opts EventListOptions) (Page[platform.Event], error) {
	page, err := getPage[platform.Event](ctx, c, "/events/", opts.values())
	if err != nil {
		return Page[platform.Event]{}, fmt.Errorf("list events: %w", err)
	}
	return page, nil
}

// Event fetches a single event by UUID.
func (c *Client) Event(ctx context.Context, id uuid.UUID) (*platform.Event, error) {
	var event platform.Event
	if err := c.get(ctx, fmt.Sprintf("/events/%s/", id), nil, &event); err != nil {
		return nil, fmt.Errorf("fetch event: %w", err)
	}
	return &event, nil
}

// CreateEvent creates a draft event.
func (c *Client) CreateEvent(ctx context.Context, create platform.EventCreate) (*platform.Event, error) {
	var event platform.Event
	if err := c.post(ctx, "/events/", create, &event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

// UpdateEvent applies a partial update to an event.
func (c *Client) UpdateEvent(ctx context.Context, id uuid.UUID, update platform.EventUpdate) (*platform.Event, error) {
	var event platform.Event
	if err := c.patch(ctx, fmt.Sprintf("/events/%s/", id), update, &event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &event, nil
}

// PublishEvent transitions a draft event to published.
func (c *Client) PublishEvent(ctx context.Context, id uuid.UUID) (*platform.Event, error) {
	var event platform.Event
	if err := c.post(ctx, fmt.Sprintf("/events/%s/publish/", id), nil, &event); err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}
	return &event, nil
}

// CancelEvent cancels an event. Registered attendees are notified
// server-side.
func (c *Client) CancelEvent(ctx context.Context, id uuid.UUID) (*platform.Event, error) {
	var event platform.Event
	if err := c.post(ctx, fmt.Sprintf("/events/%s/cancel/", id), nil, &event); err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}
	return &event, nil
}

// DeleteEvent removes a draft event. Published events can only be cancelled.
func (c *Client) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := c.delete(ctx, fmt.Sprintf("/events/%s/", id)); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// Register registers the caller for an event. The backend decides
// between registered and waitlisted based on capacity.
func (c *Client) Register(ctx context.Context, eventID uuid.UUID) (*platform.Registration, error) {
	var reg platform.Registration
	if err := c.post(ctx, fmt.Sprintf("/events/%s/register/", eventID), nil, &reg); err != nil {
		return nil, fmt.Errorf("register for event: %w", err)
	}
	return &reg, nil
}

// Registrations lists an event's registrations (organizer view).
func (c *Client) Registrations(ctx context.Context, eventID uuid.UUID) (Page[platform.Registration], error) {
	page, err := getPage[platform.Registration](ctx, c, fmt.Sprintf("/events/%s/registrations/", eventID), nil)
	if err != nil {
		return Page[platform.Registration]{}, fmt.Errorf("list registrations: %w", err)
	}
	return page, nil
}

// MarkAttendance records whether a registrant attended. Attendance
// reconciliation and CPD issuance happen server-side.
func (c *Client) MarkAttendance(ctx context.Context, eventID uuid.UUID, mark platform.AttendanceMark) (*platform.Registration, error) {
	var reg platform.Registration
	if err := c.post(ctx, fmt.Sprintf("/events/%s/attendance/", eventID), mark, &reg); err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}
	return &reg, nil
}
