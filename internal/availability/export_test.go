package availability

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func exportSchedule() Schedule {
	return Schedule{
		ProfileID:  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		DoctorName: "Dr. Ada",
		WorkDays: []WorkDay{
			{ID: uuid.New(), Day: time.Monday, Start: MustClock("09:00"), End: MustClock("12:00")},
		},
		Exceptions: []Exception{
			{ID: uuid.New(), Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), Type: ExceptionCancelled, Reason: "closed"},
		},
		Leaves: []Leave{
			{
				ID:     uuid.MustParse("33333333-3333-3333-3333-333333333333"),
				Start:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				End:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
				Reason: "vacation",
			},
		},
		Bookings: []Booking{
			{
				ID:          uuid.MustParse("44444444-4444-4444-4444-444444444444"),
				State:       StateConfirmed,
				Type:        "GENERAL",
				StartAt:     time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				EndAt:       time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
				PatientName: "Grace",
			},
			{
				ID:      uuid.New(),
				State:   StateCancelled,
				StartAt: time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
				EndAt:   time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC),
			},
		},
	}
}

func TestRenderICS(t *testing.T) {
	s := exportSchedule()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 8, 15, 30, 0, time.UTC)

	exp, err := s.Render(FormatICS, start, end, now)
	if err != nil {
		t.Fatal(err)
	}
	if exp.ContentType != "text/calendar; charset=utf-8" {
		t.Errorf("contentType = %q", exp.ContentType)
	}
	if exp.Filename != "doctor-schedule-2025-06-01-to-2025-06-30.ics" {
		t.Errorf("filename = %q", exp.Filename)
	}

	ics := string(exp.Data)
	lines := strings.Split(ics, "\r\n")
	if lines[0] != "BEGIN:VCALENDAR" || lines[len(lines)-1] != "END:VCALENDAR" {
		t.Fatalf("document not framed: first %q last %q", lines[0], lines[len(lines)-1])
	}

	for _, want := range []string{
		"PRODID:-//DerMee//Doctor Schedule//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		// Work day: weekly recurrence bounded by the window end.
		"UID:doctor-schedule-22222222-2222-2222-2222-222222222222-workday-MONDAY",
		"DTSTART:20250601T090000",
		"DTEND:20250601T120000",
		"RRULE:FREQ=WEEKLY;BYDAY=MO;UNTIL=20250630T235959",
		"SUMMARY:Dr. Ada - Work Day (MONDAY)",
		// Leave: all-day style, DTEND is the day after the last leave day.
		"UID:doctor-schedule-22222222-2222-2222-2222-222222222222-leave-33333333-3333-3333-3333-333333333333",
		"DTSTART:20250610",
		"DTEND:20250613",
		"SUMMARY:Dr. Ada - Leave: vacation",
		// Appointment.
		"UID:doctor-schedule-22222222-2222-2222-2222-222222222222-appointment-44444444-4444-4444-4444-444444444444",
		"DTSTART:20250602T100000",
		"DTEND:20250602T103000",
		"SUMMARY:Appointment with Grace",
		"DTSTAMP:20250601T081530",
		"STATUS:CONFIRMED",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("missing line %q", want)
		}
	}

	if strings.Contains(ics, "exception") {
		t.Error("schedule exceptions must not appear in the ICS export")
	}
	if count := strings.Count(ics, "BEGIN:VEVENT"); count != 3 {
		t.Errorf("VEVENT count = %d, want 3 (cancelled appointment excluded)", count)
	}
}

func TestRenderICSStableUIDs(t *testing.T) {
	s := exportSchedule()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	a, _ := s.Render(FormatICS, start, end, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	b, _ := s.Render(FormatICS, start, end, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))

	uidsOf := func(data []byte) []string {
		var uids []string
		for _, line := range strings.Split(string(data), "\r\n") {
			if strings.HasPrefix(line, "UID:") {
				uids = append(uids, line)
			}
		}
		return uids
	}

	ua, ub := uidsOf(a.Data), uidsOf(b.Data)
	if len(ua) != len(ub) {
		t.Fatalf("uid counts differ: %d vs %d", len(ua), len(ub))
	}
	for i := range ua {
		if ua[i] != ub[i] {
			t.Errorf("uid changed between renders: %q vs %q", ua[i], ub[i])
		}
	}
}

func TestRenderICSWindowFiltersEvents(t *testing.T) {
	s := exportSchedule()
	// Window before all data: recurring work-day events are still emitted,
	// but no leave or appointment events.
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	exp, _ := s.Render(FormatICS, start, end, start)
	ics := string(exp.Data)
	if strings.Contains(ics, "-leave-") || strings.Contains(ics, "-appointment-") {
		t.Error("events outside the window must be filtered")
	}
	if !strings.Contains(ics, "-workday-MONDAY") {
		t.Error("work day recurrences should always be present")
	}
}

func TestRenderJSON(t *testing.T) {
	s := exportSchedule()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	exp, err := s.Render(FormatJSON, start, end, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if exp.ContentType != "application/json" {
		t.Errorf("contentType = %q", exp.ContentType)
	}
	if exp.Filename != "doctor-schedule-2025-06-01-to-2025-06-30.json" {
		t.Errorf("filename = %q", exp.Filename)
	}

	var doc struct {
		Doctor struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"doctor"`
		Period struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"period"`
		WorkDays []struct {
			Day       string `json:"day"`
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		} `json:"workDays"`
		Exceptions []struct {
			Type   string `json:"type"`
			Date   string `json:"date"`
			Reason string `json:"reason"`
		} `json:"exceptions"`
		Leaves       []map[string]any `json:"leaves"`
		Appointments []struct {
			State   string `json:"state"`
			Patient string `json:"patient"`
		} `json:"appointments"`
	}
	if err := json.Unmarshal(exp.Data, &doc); err != nil {
		t.Fatalf("invalid JSON export: %v", err)
	}

	if doc.Doctor.Name != "Dr. Ada" {
		t.Errorf("doctor.name = %q", doc.Doctor.Name)
	}
	if len(doc.WorkDays) != 1 || doc.WorkDays[0].Day != "MONDAY" ||
		doc.WorkDays[0].StartTime != "09:00" || doc.WorkDays[0].EndTime != "12:00" {
		t.Errorf("workDays = %+v", doc.WorkDays)
	}
	if len(doc.Exceptions) != 1 || doc.Exceptions[0].Type != "CANCELLED" || doc.Exceptions[0].Date != "2025-06-09" {
		t.Errorf("exceptions = %+v", doc.Exceptions)
	}
	if len(doc.Leaves) != 1 {
		t.Errorf("leaves = %+v", doc.Leaves)
	}
	if len(doc.Appointments) != 1 || doc.Appointments[0].Patient != "Grace" {
		t.Errorf("appointments = %+v (cancelled must be excluded)", doc.Appointments)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	s := exportSchedule()
	if _, err := s.Render(Format("xml"), time.Now(), time.Now(), time.Now()); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
