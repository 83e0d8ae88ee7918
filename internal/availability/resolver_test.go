package availability

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Monday 2025-06-02.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, clock string) time.Time {
	c := MustClock(clock)
	return day.Add(time.Duration(c) * time.Minute)
}

func baseSchedule() Schedule {
	return Schedule{
		ProfileID:  uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		DoctorName: "Dr. Ada",
		WorkDays: []WorkDay{
			{Day: time.Monday, Start: MustClock("09:00"), End: MustClock("12:00")},
		},
	}
}

func TestResolveDayWorkday(t *testing.T) {
	s := baseSchedule()
	day := s.ResolveDay(monday)

	if !day.Available {
		t.Fatalf("expected available, got reason %q", day.Reason)
	}
	if day.DayType != DayWorkday {
		t.Errorf("dayType = %q, want workday", day.DayType)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(day.Slots, want) {
		t.Errorf("slots = %v, want %v", day.Slots, want)
	}
	if day.WorkSchedule == nil || day.WorkSchedule.Start != "09:00" || day.WorkSchedule.End != "12:00" {
		t.Errorf("workSchedule = %+v, want 09:00-12:00", day.WorkSchedule)
	}
	if day.DayOfWeek != 1 {
		t.Errorf("dayOfWeek = %d, want 1", day.DayOfWeek)
	}
}

func TestResolveDayOff(t *testing.T) {
	s := baseSchedule()
	day := s.ResolveDay(monday.AddDate(0, 0, 1)) // Tuesday

	if day.Available {
		t.Fatal("expected unavailable on a day without a work day")
	}
	if day.DayType != DayOff {
		t.Errorf("dayType = %q, want off", day.DayType)
	}
	if day.Reason != "Doctor does not work on this day of the week" {
		t.Errorf("unexpected reason %q", day.Reason)
	}
	if len(day.Slots) != 0 || len(day.BookedSlots) != 0 {
		t.Errorf("expected empty slots, got %v / %v", day.Slots, day.BookedSlots)
	}
}

func TestResolveDayLeaveWinsOverEverything(t *testing.T) {
	s := baseSchedule()
	s.Leaves = []Leave{{
		ID:     uuid.New(),
		Start:  monday.AddDate(0, 0, -1),
		End:    monday.AddDate(0, 0, 3),
		Reason: "conference",
	}}
	// An exception on the same date must not override the leave.
	s.Exceptions = []Exception{{
		Date:  monday,
		Type:  ExceptionAdded,
		Start: MustClock("08:00"),
		End:   MustClock("10:00"),
	}}

	day := s.ResolveDay(monday)
	if day.Available {
		t.Fatal("expected unavailable during leave")
	}
	if day.DayType != DayHoliday {
		t.Errorf("dayType = %q, want holiday", day.DayType)
	}
	if day.Reason != "Doctor is on leave: conference" {
		t.Errorf("unexpected reason %q", day.Reason)
	}
}

func TestResolveDayLeaveBoundsInclusive(t *testing.T) {
	s := baseSchedule()
	s.Leaves = []Leave{{Start: monday, End: monday.AddDate(0, 0, 2), Reason: "off"}}

	for _, tc := range []struct {
		name string
		date time.Time
		want bool
	}{
		{"first day", monday, false},
		{"last day", monday.AddDate(0, 0, 2), false},
		{"day after", monday.AddDate(0, 0, 7), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			day := s.ResolveDay(tc.date)
			if tc.want && day.DayType == DayHoliday {
				t.Errorf("date %s unexpectedly covered by leave", tc.date.Format("2006-01-02"))
			}
			if !tc.want && day.DayType != DayHoliday {
				t.Errorf("date %s not covered by leave, dayType = %q", tc.date.Format("2006-01-02"), day.DayType)
			}
		})
	}
}

func TestResolveDayCancelledException(t *testing.T) {
	s := baseSchedule()
	s.Exceptions = []Exception{{Date: monday, Type: ExceptionCancelled, Reason: "personal day"}}

	day := s.ResolveDay(monday)
	if day.Available {
		t.Fatal("expected unavailable")
	}
	if day.DayType != DayException {
		t.Errorf("dayType = %q, want exception", day.DayType)
	}
	if day.Reason != "personal day" {
		t.Errorf("reason = %q, want the recorded one", day.Reason)
	}
	if len(day.Slots) != 0 {
		t.Errorf("slots = %v, want none", day.Slots)
	}
}

func TestResolveDayCancelledExceptionDefaultReason(t *testing.T) {
	s := baseSchedule()
	s.Exceptions = []Exception{{Date: monday, Type: ExceptionCancelled}}

	day := s.ResolveDay(monday)
	if day.Reason != "Doctor is not available on this date" {
		t.Errorf("reason = %q", day.Reason)
	}
}

func TestResolveDayChangedExceptionOverridesWorkDay(t *testing.T) {
	s := baseSchedule()
	s.Exceptions = []Exception{{
		Date:  monday,
		Type:  ExceptionChanged,
		Start: MustClock("14:00"),
		End:   MustClock("15:30"),
	}}

	day := s.ResolveDay(monday)
	if !day.Available {
		t.Fatalf("expected available, got %q", day.Reason)
	}
	if day.DayType != DayException {
		t.Errorf("dayType = %q, want exception", day.DayType)
	}
	want := []string{"14:00", "14:30", "15:00"}
	if !reflect.DeepEqual(day.Slots, want) {
		t.Errorf("slots = %v, want %v (weekly rule must be fully replaced)", day.Slots, want)
	}
}

func TestResolveDayBookedSubtractionByOverlap(t *testing.T) {
	s := baseSchedule()
	s.Bookings = []Booking{{
		State:   StateConfirmed,
		StartAt: at(monday, "10:00"),
		EndAt:   at(monday, "11:00"),
	}}

	day := s.ResolveDay(monday)
	wantFree := []string{"09:00", "09:30", "11:00", "11:30"}
	wantBooked := []string{"10:00", "10:30"}
	if !reflect.DeepEqual(day.Slots, wantFree) {
		t.Errorf("slots = %v, want %v", day.Slots, wantFree)
	}
	if !reflect.DeepEqual(day.BookedSlots, wantBooked) {
		t.Errorf("bookedSlots = %v, want %v", day.BookedSlots, wantBooked)
	}
}

func TestResolveDayOffsetBookingBlocksBothSlots(t *testing.T) {
	// An appointment straddling a slot boundary blocks every slot it touches.
	s := Schedule{
		WorkDays: []WorkDay{{Day: time.Monday, Start: MustClock("14:00"), End: MustClock("16:00")}},
		Bookings: []Booking{{
			State:   StateScheduled,
			StartAt: at(monday, "14:15"),
			EndAt:   at(monday, "14:45"),
		}},
	}

	day := s.ResolveDay(monday)
	wantBooked := []string{"14:00", "14:30"}
	if !reflect.DeepEqual(day.BookedSlots, wantBooked) {
		t.Errorf("bookedSlots = %v, want %v", day.BookedSlots, wantBooked)
	}
	wantFree := []string{"15:00", "15:30"}
	if !reflect.DeepEqual(day.Slots, wantFree) {
		t.Errorf("slots = %v, want %v", day.Slots, wantFree)
	}
}

func TestResolveDayIgnoresCancelledBookings(t *testing.T) {
	s := baseSchedule()
	s.Bookings = []Booking{{
		State:   StateCancelled,
		StartAt: at(monday, "09:00"),
		EndAt:   at(monday, "09:30"),
	}}

	day := s.ResolveDay(monday)
	if len(day.BookedSlots) != 0 {
		t.Errorf("cancelled bookings must not occupy slots, got %v", day.BookedSlots)
	}
}

func TestResolveDayFullyBooked(t *testing.T) {
	s := Schedule{
		WorkDays: []WorkDay{{Day: time.Monday, Start: MustClock("09:00"), End: MustClock("10:00")}},
		Bookings: []Booking{{
			State:   StateConfirmed,
			StartAt: at(monday, "09:00"),
			EndAt:   at(monday, "10:00"),
		}},
	}

	day := s.ResolveDay(monday)
	if day.Available {
		t.Fatal("expected unavailable when every slot is booked")
	}
	if day.Reason != "No available time slots" {
		t.Errorf("reason = %q", day.Reason)
	}
	if day.DayType != DayWorkday {
		t.Errorf("dayType = %q, want workday", day.DayType)
	}
}

func TestResolveDayIdempotent(t *testing.T) {
	s := baseSchedule()
	s.Bookings = []Booking{{
		State:   StateConfirmed,
		StartAt: at(monday, "09:30"),
		EndAt:   at(monday, "10:00"),
	}}

	first := s.ResolveDay(monday)
	second := s.ResolveDay(monday)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolver is not idempotent:\n%+v\n%+v", first, second)
	}
}
