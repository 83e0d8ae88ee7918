package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrPatientOnly       = errors.New("only a patient can create appointments")
	ErrDoctorOnly        = errors.New("only doctors can access this")
	ErrNotOwner          = errors.New("appointment belongs to another doctor")
	ErrNotParticipant    = errors.New("not a participant in this appointment")
	ErrPastDate          = errors.New("cannot book past dates")
	ErrInvalidTime       = errors.New("invalid time format, expected HH:mm")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrSlotTaken         = errors.New("the requested time slot is no longer available")
	ErrNotPending        = errors.New("appointment is not pending")
	ErrRescheduleBlocked = errors.New("cannot reschedule a cancelled appointment")
)
