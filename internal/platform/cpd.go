package platform

import (
	"time"

	"github.com/google/uuid"
)

// CPD credit sources.
const (
	CPDSourceEvent    = "event"
	CPDSourceCourse   = "course"
	CPDSourceExternal = "external"
)

// CPDRecord mirrors an item from /cpd/records/: one earned credit entry.
type CPDRecord struct {
	ID       uuid.UUID `json:"uuid"`
	Source   string    `json:"source"`
	Title    string    `json:"title"`
	Points   float64   `json:"points"`
	Category string    `json:"category,omitempty"`
	EarnedAt time.Time `json:"earned_at"`
}

// CPDSummary mirrors /cpd/summary/: progress against the caller's
// current reporting period requirement.
type CPDSummary struct {
	TotalPoints    float64            `json:"total_points"`
	PeriodPoints   float64            `json:"period_points"`
	RequiredPoints float64            `json:"required_points"`
	PeriodStart    time.Time          `json:"period_start"`
	PeriodEnd      time.Time          `json:"period_end"`
	ByCategory     map[string]float64 `json:"by_category,omitempty"`
}

// Remaining returns the points still needed this period, never negative.
func (s CPDSummary) Remaining() float64 {
	if r := s.RequiredPoints - s.PeriodPoints; r > 0 {
		return r
	}
	return 0
}
