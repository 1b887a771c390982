package platform

import (
	"time"

	"github.com/google/uuid"
)

// Feedback mirrors an item from /events/{uuid}/feedback/. Ratings are
// integers from 1 to 5; the per-aspect ratings are optional and zero
// when the respondent skipped them.
type Feedback struct {
	ID             uuid.UUID `json:"uuid"`
	Event          uuid.UUID `json:"event"`
	Rating         int       `json:"rating"`
	ContentRating  int       `json:"content_rating,omitempty"`
	DeliveryRating int       `json:"delivery_rating,omitempty"`
	VenueRating    int       `json:"venue_rating,omitempty"`
	Comment        string    `json:"comment,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// FeedbackSubmit is the payload for POST /events/{uuid}/feedback/.
type FeedbackSubmit struct {
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	ContentRating  int    `json:"content_rating,omitempty" validate:"omitempty,min=1,max=5"`
	DeliveryRating int    `json:"delivery_rating,omitempty" validate:"omitempty,min=1,max=5"`
	VenueRating    int    `json:"venue_rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment        string `json:"comment,omitempty" validate:"max=2000"`
}
