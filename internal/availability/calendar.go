package availability

import (
	"math"
	"time"
)

// Summary aggregates slot counts over a calendar period. TotalSlots counts
// every generated slot (free plus booked) so BookingRate is a true ratio.
type Summary struct {
	TotalSlots     int     `json:"totalSlots"`
	BookedSlots    int     `json:"bookedSlots"`
	AvailableSlots int     `json:"availableSlots"`
	BookingRate    float64 `json:"bookingRate"`
}

// Calendar is one month of resolved days with aggregate statistics.
type Calendar struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	TotalDays       int     `json:"totalDays"`
	AvailableDays   int     `json:"availableDays"`
	UnavailableDays int     `json:"unavailableDays"`
	Days            []Day   `json:"days"`
	Summary         Summary `json:"summary"`
}

// BuildCalendar resolves every day of the given month and accumulates the
// availability statistics. BookingRate is a percentage rounded to two
// decimals; zero when no slots exist.
func (s Schedule) BuildCalendar(month time.Month, year int) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	cal := Calendar{
		Month: int(month),
		Year:  year,
		Days:  []Day{},
	}

	totalSlots := 0
	bookedSlots := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		day := s.ResolveDay(d)
		cal.Days = append(cal.Days, day)
		cal.TotalDays++

		if day.Available {
			cal.AvailableDays++
			totalSlots += len(day.Slots) + len(day.BookedSlots)
			bookedSlots += len(day.BookedSlots)
		} else {
			cal.UnavailableDays++
		}
	}

	rate := 0.0
	if totalSlots > 0 {
		rate = float64(bookedSlots) / float64(totalSlots) * 100
	}
	cal.Summary = Summary{
		TotalSlots:     totalSlots,
		BookedSlots:    bookedSlots,
		AvailableSlots: totalSlots - bookedSlots,
		BookingRate:    math.Round(rate*100) / 100,
	}
	return cal
}
