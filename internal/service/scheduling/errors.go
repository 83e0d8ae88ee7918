package scheduling

import "errors"

var (
	ErrDoctorNotFound    = errors.New("doctor profile not found")
	ErrWorkDayExists     = errors.New("work day already set for this weekday")
	ErrWorkDayNotFound   = errors.New("work day not found for this weekday")
	ErrInvalidWeekday    = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrExceptionHasTimes = errors.New("cancelled exceptions cannot include time ranges")
	ErrExceptionNoTimes  = errors.New("start and end time are required for added/changed exceptions")
	ErrExceptionExists   = errors.New("a schedule exception already exists for this date")
	ErrExceptionNotFound = errors.New("schedule exception not found")
	ErrLeaveNotFound     = errors.New("leave record not found")
	ErrLeaveOverlap      = errors.New("a leave period already exists that overlaps with the requested dates")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
	ErrNotOwner          = errors.New("record belongs to another doctor")
	ErrBadExportFormat   = errors.New("export format must be ics or json")
)
