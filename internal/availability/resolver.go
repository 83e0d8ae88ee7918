package availability

import "time"

// Default reasons surfaced when a more specific one is not recorded.
const (
	reasonNotAvailable = "Doctor is not available on this date"
	reasonDayOff       = "Doctor does not work on this day of the week"
	reasonNoSlots      = "No available time slots"
	reasonOnLeave      = "Doctor is on leave: "
)

// ResolveDay computes the effective availability for a single calendar date.
// Priority order, first match wins: leave, exception, work day, off.
func (s Schedule) ResolveDay(date time.Time) Day {
	d := DateOf(date)
	out := Day{
		Date:        d.Format("2006-01-02"),
		DayOfWeek:   int(d.Weekday()),
		Slots:       []string{},
		BookedSlots: []string{},
	}

	for _, leave := range s.Leaves {
		if leave.Covers(d) {
			out.Reason = reasonOnLeave + leave.Reason
			out.DayType = DayHoliday
			return out
		}
	}

	var window *Window
	var start, end Clock
	var reason string

	if exc, ok := s.exceptionFor(d); ok {
		out.DayType = DayException
		if exc.Type == ExceptionCancelled {
			out.Reason = exc.Reason
			if out.Reason == "" {
				out.Reason = reasonNotAvailable
			}
			return out
		}
		// ADDED or CHANGED replaces the weekly rule entirely for this date.
		start, end = exc.Start, exc.End
		reason = exc.Reason
		window = &Window{Start: start.String(), End: end.String()}
	} else {
		wd, ok := s.workDayFor(d.Weekday())
		if !ok {
			out.Reason = reasonDayOff
			out.DayType = DayOff
			return out
		}
		out.DayType = DayWorkday
		start, end = wd.Start, wd.End
		window = &Window{Start: start.String(), End: end.String()}
	}

	slots := GenerateSlots(start, end)
	free, booked := splitBooked(slots, s.bookingsOn(d))

	out.Slots = free
	out.BookedSlots = booked
	out.WorkSchedule = window
	out.Available = len(free) > 0
	out.Reason = reason
	if !out.Available && out.Reason == "" {
		out.Reason = reasonNoSlots
	}
	return out
}

func (s Schedule) exceptionFor(date time.Time) (Exception, bool) {
	for _, exc := range s.Exceptions {
		if DateOf(exc.Date).Equal(date) {
			return exc, true
		}
	}
	return Exception{}, false
}

func (s Schedule) workDayFor(day time.Weekday) (WorkDay, bool) {
	for _, wd := range s.WorkDays {
		if wd.Day == day {
			return wd, true
		}
	}
	return WorkDay{}, false
}

func (s Schedule) bookingsOn(date time.Time) []Booking {
	var out []Booking
	for _, b := range s.Bookings {
		if b.State == StateCancelled {
			continue
		}
		if DateOf(b.StartAt).Equal(date) {
			out = append(out, b)
		}
	}
	return out
}
