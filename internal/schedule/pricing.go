package schedule

import "math"

// CommissionRate is the fixed platform cut. Commission is stored alongside
// the total, not subtracted from it: the customer pays TotalAmount, the
// platform keeps Commission out of it.
const CommissionRate = 0.10

type Quote struct {
	Hours       float64 `json:"hours"`
	TotalAmount float64 `json:"total_amount"`
	Commission  float64 `json:"commission"`
}

// Price computes the quote for renting a room at hourlyRate over
// [start, end). Fractional hours are fine (1.5h at 80 is 120).
func Price(hourlyRate float64, start, end string) (Quote, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Quote{}, ErrInvalidDuration
	}
	e, err := ParseClock(end)
	if err != nil {
		return Quote{}, ErrInvalidDuration
	}
	hours := ClockHours(e - s)
	if hours <= 0 {
		return Quote{}, ErrInvalidDuration
	}

	total := round2(hourlyRate * hours)
	return Quote{
		Hours:       hours,
		TotalAmount: total,
		Commission:  round2(total * CommissionRate),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
