package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// EventFeedback lists feedback submitted for an event (organizer view).
func (c *Client) EventFeedback(ctx context.Context, eventID uuid.UUID) (Page[platform.Feedback], error) {
	page, err := getPage[platform.Feedback](ctx, c, fmt.Sprintf("/events/%s/feedback/", eventID), nil)
	if err != nil {
		return Page[platform.Feedback]{}, fmt.Errorf("list feedback: %w", err)
	}
	return page, nil
}

// SubmitFeedback submits the caller's feedback for an attended event.
func (c *Client) SubmitFeedback(ctx context.Context, eventID uuid.UUID, submit platform.FeedbackSubmit) (*platform.Feedback, error) {
	var feedback platform.Feedback
	if err := c.post(ctx, fmt.Sprintf("/events/%s/feedback/", eventID), submit, &feedback); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}
	return &feedback, nil
}
