package platform

import (
	"time"

	"github.com/google/uuid"
)

// Certificate mirrors an item from /certificates/.
type Certificate struct {
	ID            uuid.UUID  `json:"uuid"`
	Code          string     `json:"code"`
	Title         string     `json:"title"`
	RecipientName string     `json:"recipient_name"`
	Event         *uuid.UUID `json:"event,omitempty"`
	Course        *uuid.UUID `json:"course,omitempty"`
	CPDPoints     float64    `json:"cpd_points"`
	IssuedAt      time.Time  `json:"issued_at"`
}

// CertificateVerification is returned by /certificates/verify/{code}/.
type CertificateVerification struct {
	Valid       bool         `json:"valid"`
	Certificate *Certificate `json:"certificate,omitempty"`
	Reason      string       `json:"reason,omitempty"`
}

// Badge mirrors an item from /badges/.
type Badge struct {
	ID          uuid.UUID  `json:"uuid"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Criteria    string     `json:"criteria,omitempty"`
	Claimed     bool       `json:"claimed"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}
