// Package feedback aggregates event feedback client-side for display.
package feedback

import (
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// Summary is the aggregate view of an event's feedback: overall and
// per-aspect averages plus a histogram of the 1-5 overall ratings.
type Summary struct {
	Responses   int
	Average     float64
	ContentAvg  float64
	DeliveryAvg float64
	VenueAvg    float64
	// Histogram[i] counts ratings of value i+1.
	Histogram [5]int
	Comments  int
}

// Summarize reduces feedback entries into a Summary. Ratings outside
// 1-5 are ignored; skipped per-aspect ratings (zero) do not drag the
// aspect average down. An empty input yields the zero Summary.
func Summarize(entries []platform.Feedback) Summary {
	var s Summary
	var overallSum int
	var contentSum, contentN int
	var deliverySum, deliveryN int
	var venueSum, venueN int

	for _, entry := range entries {
		if entry.Rating < 1 || entry.Rating > 5 {
			continue
		}
		s.Responses++
		overallSum += entry.Rating
		s.Histogram[entry.Rating-1]++

		if entry.ContentRating >= 1 && entry.ContentRating <= 5 {
			contentSum += entry.ContentRating
			contentN++
		}
		if entry.DeliveryRating >= 1 && entry.DeliveryRating <= 5 {
			deliverySum += entry.DeliveryRating
			deliveryN++
		}
		if entry.VenueRating >= 1 && entry.VenueRating <= 5 {
			venueSum += entry.VenueRating
			venueN++
		}
		if entry.Comment != "" {
			s.Comments++
		}
	}

	if s.Responses > 0 {
		s.Average = float64(overallSum) / float64(s.Responses)
	}
	if contentN > 0 {
		s.ContentAvg = float64(contentSum) / float64(contentN)
	}
	if deliveryN > 0 {
		s.DeliveryAvg = float64(deliverySum) / float64(deliveryN)
	}
	if venueN > 0 {
		s.VenueAvg = float64(venueSum) / float64(venueN)
	}

	return s
}
