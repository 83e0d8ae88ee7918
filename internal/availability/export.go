package availability

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Format string

const (
	FormatICS  Format = "ics"
	FormatJSON Format = "json"
)

// Export is a rendered schedule ready to be served as a file download.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Render serializes the schedule for the [start, end] window in the requested
// format. now is the render timestamp stamped into ICS DTSTAMP lines.
func (s Schedule) Render(format Format, start, end, now time.Time) (Export, error) {
	switch format {
	case FormatJSON:
		return s.renderJSON(start, end)
	case FormatICS:
		return s.renderICS(start, end, now), nil
	default:
		return Export{}, fmt.Errorf("unsupported export format %q", format)
	}
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

type exportDoctor struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

type exportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type exportWorkDay struct {
	ID        uuid.UUID `json:"id"`
	Day       string    `json:"day"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

type exportException struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Type   string    `json:"type"`
	Start  string    `json:"start,omitempty"`
	End    string    `json:"end,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

type exportLeave struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`
}

type exportAppointment struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	State   string    `json:"state"`
	StartAt string    `json:"startAt"`
	EndAt   string    `json:"endAt"`
	Patient string    `json:"patient,omitempty"`
}

type exportDoc struct {
	Doctor       exportDoctor        `json:"doctor"`
	Period       exportPeriod        `json:"period"`
	WorkDays     []exportWorkDay     `json:"workDays"`
	Exceptions   []exportException   `json:"exceptions"`
	Leaves       []exportLeave       `json:"leaves"`
	Appointments []exportAppointment `json:"appointments"`
}

func (s Schedule) renderJSON(start, end time.Time) (Export, error) {
	doc := exportDoc{
		Doctor: exportDoctor{Name: s.doctorName(), ID: s.ProfileID},
		Period: exportPeriod{
			Start: start.UTC().Format(time.RFC3339),
			End:   end.UTC().Format(time.RFC3339),
		},
		WorkDays:     []exportWorkDay{},
		Exceptions:   []exportException{},
		Leaves:       []exportLeave{},
		Appointments: []exportAppointment{},
	}

	for _, wd := range s.WorkDays {
		doc.WorkDays = append(doc.WorkDays, exportWorkDay{
			ID:        wd.ID,
			Day:       dayName(wd.Day),
			StartTime: wd.Start.String(),
			EndTime:   wd.End.String(),
		})
	}
	for _, exc := range s.Exceptions {
		if !inWindow(exc.Date, start, end) {
			continue
		}
		e := exportException{
			ID:     exc.ID,
			Date:   DateOf(exc.Date).Format("2006-01-02"),
			Type:   string(exc.Type),
			Reason: exc.Reason,
		}
		if exc.Type != ExceptionCancelled {
			e.Start = exc.Start.String()
			e.End = exc.End.String()
		}
		doc.Exceptions = append(doc.Exceptions, e)
	}
	for _, leave := range s.Leaves {
		if !inWindow(leave.Start, start, end) {
			continue
		}
		doc.Leaves = append(doc.Leaves, exportLeave{
			ID:        leave.ID,
			StartDate: DateOf(leave.Start).Format("2006-01-02"),
			EndDate:   DateOf(leave.End).Format("2006-01-02"),
			Reason:    leave.Reason,
		})
	}
	for _, b := range s.Bookings {
		if b.State == StateCancelled || !inWindow(b.StartAt, start, end) {
			continue
		}
		doc.Appointments = append(doc.Appointments, exportAppointment{
			ID:      b.ID,
			Type:    b.Type,
			State:   string(b.State),
			StartAt: b.StartAt.UTC().Format(time.RFC3339),
			EndAt:   b.EndAt.UTC().Format(time.RFC3339),
			Patient: b.PatientName,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Export{}, fmt.Errorf("marshal schedule export: %w", err)
	}
	return Export{
		Data:        data,
		ContentType: "application/json",
		Filename:    exportFilename(start, end, "json"),
	}, nil
}

// ---------------------------------------------------------------------------
// ICS
// ---------------------------------------------------------------------------

// renderICS emits an iCalendar document: one weekly recurring VEVENT per work
// day, one all-day VEVENT per leave starting in the window, one VEVENT per
// non-cancelled appointment starting in the window. Schedule exceptions are
// not emitted as events; they only appear in the JSON export. UIDs are stable
// across renders so downstream calendars update in place.
func (s Schedule) renderICS(start, end, now time.Time) Export {
	icsID := fmt.Sprintf("doctor-schedule-%s", s.ProfileID)
	stamp := now.Format("20060102") + "T" + now.Format("150405")
	name := s.doctorName()

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//DerMee//Doctor Schedule//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for _, wd := range s.WorkDays {
		day := dayName(wd.Day)
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s-workday-%s", icsID, day),
			fmt.Sprintf("DTSTART:%sT%s", start.Format("20060102"), wd.Start.icsTime()),
			fmt.Sprintf("DTEND:%sT%s", start.Format("20060102"), wd.End.icsTime()),
			fmt.Sprintf("RRULE:FREQ=WEEKLY;BYDAY=%s;UNTIL=%sT235959", day[:2], end.Format("20060102")),
			fmt.Sprintf("SUMMARY:%s - Work Day (%s)", name, day),
			fmt.Sprintf("DESCRIPTION:Regular work schedule for %s", day),
			"DTSTAMP:"+stamp,
			"END:VEVENT",
		)
	}

	for _, leave := range s.Leaves {
		if !inWindow(leave.Start, start, end) {
			continue
		}
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s-leave-%s", icsID, leave.ID),
			"DTSTART:"+leave.Start.Format("20060102"),
			"DTEND:"+leave.End.AddDate(0, 0, 1).Format("20060102"),
			fmt.Sprintf("SUMMARY:%s - Leave: %s", name, leave.Reason),
			fmt.Sprintf("DESCRIPTION:Doctor is on leave: %s", leave.Reason),
			"DTSTAMP:"+stamp,
			"STATUS:CONFIRMED",
			"END:VEVENT",
		)
	}

	for _, b := range s.Bookings {
		if b.State == StateCancelled || !inWindow(b.StartAt, start, end) {
			continue
		}
		patient := b.PatientName
		if patient == "" {
			patient = "Patient"
		}
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s-appointment-%s", icsID, b.ID),
			fmt.Sprintf("DTSTART:%sT%s", b.StartAt.Format("20060102"), b.StartAt.Format("150405")),
			fmt.Sprintf("DTEND:%sT%s", b.EndAt.Format("20060102"), b.EndAt.Format("150405")),
			fmt.Sprintf("SUMMARY:Appointment with %s", patient),
			fmt.Sprintf("DESCRIPTION:Appointment: %s", b.Type),
			"DTSTAMP:"+stamp,
			"STATUS:CONFIRMED",
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")

	return Export{
		Data:        []byte(strings.Join(lines, "\r\n")),
		ContentType: "text/calendar; charset=utf-8",
		Filename:    exportFilename(start, end, "ics"),
	}
}

func (s Schedule) doctorName() string {
	if s.DoctorName == "" {
		return "Doctor"
	}
	return s.DoctorName
}

// dayName renders a weekday the way it is stored and exported: "SUNDAY".
func dayName(d time.Weekday) string {
	return strings.ToUpper(d.String())
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func exportFilename(start, end time.Time, ext string) string {
	return fmt.Sprintf("doctor-schedule-%s-to-%s.%s",
		start.Format("2006-01-02"), end.Format("2006-01-02"), ext)
}
