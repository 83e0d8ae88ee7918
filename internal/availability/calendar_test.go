package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuildCalendarCounts(t *testing.T) {
	// June 2025 has 30 days and 5 Mondays (2, 9, 16, 23, 30).
	s := Schedule{
		ProfileID: uuid.New(),
		WorkDays: []WorkDay{
			{Day: time.Monday, Start: MustClock("09:00"), End: MustClock("11:00")},
		},
	}

	cal := s.BuildCalendar(time.June, 2025)

	if cal.TotalDays != 30 {
		t.Errorf("totalDays = %d, want 30", cal.TotalDays)
	}
	if cal.AvailableDays != 5 {
		t.Errorf("availableDays = %d, want 5", cal.AvailableDays)
	}
	if cal.UnavailableDays != 25 {
		t.Errorf("unavailableDays = %d, want 25", cal.UnavailableDays)
	}
	// 4 slots per Monday, nothing booked.
	if cal.Summary.TotalSlots != 20 || cal.Summary.BookedSlots != 0 {
		t.Errorf("summary = %+v, want 20 total / 0 booked", cal.Summary)
	}
	if cal.Summary.BookingRate != 0 {
		t.Errorf("bookingRate = %v, want 0", cal.Summary.BookingRate)
	}
	if len(cal.Days) != 30 {
		t.Fatalf("len(days) = %d", len(cal.Days))
	}
	if cal.Days[0].Date != "2025-06-01" || cal.Days[29].Date != "2025-06-30" {
		t.Errorf("day range %s .. %s", cal.Days[0].Date, cal.Days[29].Date)
	}
}

func TestBuildCalendarLeaveDayCountsUnavailable(t *testing.T) {
	s := Schedule{
		WorkDays: []WorkDay{
			{Day: time.Monday, Start: MustClock("09:00"), End: MustClock("11:00")},
		},
		Leaves: []Leave{{
			Start:  time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			Reason: "away",
		}},
	}

	cal := s.BuildCalendar(time.June, 2025)
	if cal.AvailableDays != 4 {
		t.Errorf("availableDays = %d, want 4 (one Monday lost to leave)", cal.AvailableDays)
	}
	if cal.Summary.TotalSlots != 16 {
		t.Errorf("totalSlots = %d, want 16 (leave day contributes none)", cal.Summary.TotalSlots)
	}

	for _, day := range cal.Days {
		if day.Date == "2025-06-09" {
			if day.Available || day.DayType != DayHoliday {
				t.Errorf("2025-06-09 = %+v, want unavailable holiday", day)
			}
		}
	}
}

func TestBuildCalendarBookingRate(t *testing.T) {
	// One Monday 09:00-11:00 window (4 slots), one booked slot elsewhere in
	// the month makes the rate 1/20 = 5%.
	s := Schedule{
		WorkDays: []WorkDay{
			{Day: time.Monday, Start: MustClock("09:00"), End: MustClock("11:00")},
		},
		Bookings: []Booking{{
			State:   StateConfirmed,
			StartAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		}},
	}

	cal := s.BuildCalendar(time.June, 2025)
	if cal.Summary.TotalSlots != 20 {
		t.Errorf("totalSlots = %d, want 20 (free plus booked)", cal.Summary.TotalSlots)
	}
	if cal.Summary.BookedSlots != 1 {
		t.Errorf("bookedSlots = %d, want 1", cal.Summary.BookedSlots)
	}
	if cal.Summary.AvailableSlots != 19 {
		t.Errorf("availableSlots = %d, want 19", cal.Summary.AvailableSlots)
	}
	if cal.Summary.BookingRate != 5 {
		t.Errorf("bookingRate = %v, want 5", cal.Summary.BookingRate)
	}
}

func TestBuildCalendarBookingRateRounding(t *testing.T) {
	// 3 Mondays in June 2025 booked out of... use a single workday of one
	// slot: 5 Mondays, 1 booked → 1/5 = 20%. For a non-terminating rate use
	// 2 booked of 6 slots in one day: 33.333... → 33.33.
	s := Schedule{
		WorkDays: []WorkDay{
			{Day: time.Monday, Start: MustClock("09:00"), End: MustClock("12:00")},
		},
		Exceptions: []Exception{
			// Restrict the month to a single working Monday.
			{Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), Type: ExceptionCancelled},
			{Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), Type: ExceptionCancelled},
			{Date: time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), Type: ExceptionCancelled},
			{Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Type: ExceptionCancelled},
		},
		Bookings: []Booking{
			{
				State:   StateConfirmed,
				StartAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				EndAt:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	cal := s.BuildCalendar(time.June, 2025)
	if cal.Summary.TotalSlots != 6 || cal.Summary.BookedSlots != 2 {
		t.Fatalf("summary = %+v, want 6 total / 2 booked", cal.Summary)
	}
	if cal.Summary.BookingRate != 33.33 {
		t.Errorf("bookingRate = %v, want 33.33", cal.Summary.BookingRate)
	}
}
