package platform

import "time"

// Subscription states mirror Stripe's.
const (
	SubscriptionActive   = "active"
	SubscriptionTrialing = "trialing"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Subscription mirrors /subscription/.
type Subscription struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	Plan              Plan       `json:"plan"`
	Seats             int        `json:"seats"`
	SeatsInUse        int        `json:"seats_in_use"`
	CurrentPeriodEnd  time.Time  `json:"current_period_end"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
	TrialEndsAt       *time.Time `json:"trial_ends_at,omitempty"`
}

// Active reports whether the subscription currently grants access.
func (s Subscription) Active() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

// SeatsAvailable returns the number of unused billable seats.
func (s Subscription) SeatsAvailable() int {
	if n := s.Seats - s.SeatsInUse; n > 0 {
		return n
	}
	return 0
}

// Plan mirrors an item from /billing/plans/.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int      `json:"price_cents"`
	Currency   string   `json:"currency"`
	Interval   string   `json:"interval"` // month or year
	SeatLimit  int      `json:"seat_limit"`
	Features   []string `json:"features,omitempty"`
}

// SeatUsage mirrors /billing/seats/.
type SeatUsage struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

// CheckoutRequest is the payload for POST /billing/checkout/. The
// returned session URL is Stripe-hosted; no payment logic runs client-side.
type CheckoutRequest struct {
	Plan      string `json:"plan" validate:"required"`
	Seats     int    `json:"seats,omitempty" validate:"omitempty,gt=0"`
	PromoCode string `json:"promo_code,omitempty"`
}

// CheckoutSession is returned by POST /billing/checkout/.
type CheckoutSession struct {
	URL string `json:"url"`
}

// PortalSession is returned by POST /billing/portal/.
type PortalSession struct {
	URL string `json:"url"`
}

// PromoCode is returned by POST /promo-codes/validate/.
type PromoCode struct {
	Code           string     `json:"code"`
	Valid          bool       `json:"valid"`
	PercentOff     float64    `json:"percent_off,omitempty"`
	AmountOffCents int        `json:"amount_off_cents,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Reason         string     `json:"reason,omitempty"` // set when invalid
}
