// Package availability computes a doctor's effective schedule from four
// sources: recurring weekly work days, one-off schedule exceptions, leave
// ranges and existing bookings. Everything here is pure — callers load the
// rows and hand them over; no queries, no clocks except where passed in.
//
// All times are naive local clock values. Dates are compared at calendar-day
// granularity (UTC midnight).
package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SlotMinutes is the fixed booking granularity.
const SlotMinutes = 30

// ---------------------------------------------------------------------------
// Clock — a time of day
// ---------------------------------------------------------------------------

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// ParseClock parses an "HH:mm" string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:mm", s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// MustClock is ParseClock for literals in tests and seeds.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf extracts the time-of-day from a timestamp.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// String renders the clock as "HH:mm".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// icsTime renders the clock as an iCalendar "HHmmss" local time.
func (c Clock) icsTime() string {
	return fmt.Sprintf("%02d%02d00", int(c)/60, int(c)%60)
}

// DateOf truncates a timestamp to its calendar day at UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Inputs
// ---------------------------------------------------------------------------

type ExceptionType string

const (
	ExceptionCancelled ExceptionType = "CANCELLED"
	ExceptionAdded     ExceptionType = "ADDED"
	ExceptionChanged   ExceptionType = "CHANGED"
)

type BookingState string

const (
	StateScheduled BookingState = "SCHEDULED"
	StatePending   BookingState = "PENDING"
	StateConfirmed BookingState = "CONFIRMED"
	StateCancelled BookingState = "CANCELLED"
)

// Blocking reports whether a booking in this state occupies its slot for
// conflict purposes.
func (s BookingState) Blocking() bool {
	return s == StateScheduled || s == StateConfirmed
}

// WorkDay is a recurring weekly availability window, one per weekday.
type WorkDay struct {
	ID    uuid.UUID    `json:"id"`
	Day   time.Weekday `json:"day"`
	Start Clock        `json:"startTime"`
	End   Clock        `json:"endTime"`
}

// Contains reports whether [start, end] falls inside the window.
func (w WorkDay) Contains(start, end Clock) bool {
	return start >= w.Start && end <= w.End
}

// Exception is a per-date override. CANCELLED carries no times;
// ADDED/CHANGED carry both.
type Exception struct {
	ID     uuid.UUID     `json:"id"`
	Date   time.Time     `json:"date"`
	Type   ExceptionType `json:"type"`
	Start  Clock         `json:"start"`
	End    Clock         `json:"end"`
	Reason string        `json:"reason,omitempty"`
}

// Leave is a date-range unavailability period, bounds inclusive at day
// granularity.
type Leave struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"startDate"`
	End    time.Time `json:"endDate"`
	Reason string    `json:"reason"`
}

// Covers reports whether the given calendar day falls within the leave.
func (l Leave) Covers(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(l.Start)) && !d.After(DateOf(l.End))
}

// Booking is the slice of an appointment the resolver cares about.
type Booking struct {
	ID          uuid.UUID    `json:"id"`
	State       BookingState `json:"state"`
	Type        string       `json:"type"`
	StartAt     time.Time    `json:"startAt"`
	EndAt       time.Time    `json:"endAt"`
	PatientName string       `json:"patientName,omitempty"`
}

// Schedule bundles everything known about one doctor's availability.
// Bookings are expected to exclude cancelled appointments; the resolver
// filters defensively anyway.
type Schedule struct {
	ProfileID  uuid.UUID
	DoctorName string
	WorkDays   []WorkDay
	Exceptions []Exception
	Leaves     []Leave
	Bookings   []Booking
}

// ---------------------------------------------------------------------------
// Outputs
// ---------------------------------------------------------------------------

type DayType string

const (
	DayHoliday   DayType = "holiday"
	DayException DayType = "exception"
	DayOff       DayType = "off"
	DayWorkday   DayType = "workday"
)

// Window echoes the resolved availability window for a day.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Day is the resolver's verdict for a single calendar date.
type Day struct {
	Date         string   `json:"date"`
	DayOfWeek    int      `json:"dayOfWeek"`
	Available    bool     `json:"available"`
	Reason       string   `json:"reason,omitempty"`
	Slots        []string `json:"slots"`
	BookedSlots  []string `json:"bookedSlots"`
	WorkSchedule *Window  `json:"workSchedule,omitempty"`
	DayType      DayType  `json:"dayType"`
}
