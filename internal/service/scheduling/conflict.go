package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/availability"
	"github.com/dermee/dermee_backend/internal/repo"
	entappt "github.com/dermee/dermee_backend/internal/repo/appointment"
	entleave "github.com/dermee/dermee_backend/internal/repo/doctorleave"
	entexc "github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	entworkday "github.com/dermee/dermee_backend/internal/repo/workday"
)

// IsTimeSlotAvailable reports whether [startAt, endAt) is bookable for the
// doctor profile. It is a package function taking the client so booking paths
// can run it against a transaction's client and keep check-then-write atomic.
//
// Checks in order, short-circuiting on the first failure:
//  1. no SCHEDULED/CONFIRMED appointment overlaps the interval (canonical
//     half-open overlap, optionally excluding one appointment id),
//  2. a work day exists for the weekday,
//  3. the interval falls within that work day's window,
//  4. no schedule exception exists for the date,
//  5. no leave covers the interval.
func IsTimeSlotAvailable(ctx context.Context, db *repo.Client, doctorProfileID uuid.UUID, startAt, endAt time.Time, excludeID *uuid.UUID) (bool, error) {
	q := db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorProfileID),
			entappt.StateIn(entappt.StateSCHEDULED, entappt.StateCONFIRMED),
			entappt.StartAtLT(endAt),
			entappt.EndAtGT(startAt),
		)
	if excludeID != nil {
		q = q.Where(entappt.IDNEQ(*excludeID))
	}
	conflict, err := q.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check appointment conflict: %w", err)
	}
	if conflict {
		return false, nil
	}

	within, err := WithinStandardHours(ctx, db, doctorProfileID, startAt, endAt)
	if err != nil {
		return false, err
	}
	if !within {
		return false, nil
	}

	blocked, err := db.ScheduleException.Query().
		Where(
			entexc.DoctorID(doctorProfileID),
			entexc.Date(availability.DateOf(startAt)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check schedule exception: %w", err)
	}
	if blocked {
		return false, nil
	}

	onLeave, err := db.DoctorLeave.Query().
		Where(
			entleave.DoctorID(doctorProfileID),
			entleave.StartDateLTE(startAt),
			entleave.EndDateGTE(endAt),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check leave: %w", err)
	}
	return !onLeave, nil
}

// WithinStandardHours reports whether the interval fits inside the doctor's
// recurring window for that weekday. Used both by the conflict check and by
// reschedule to decide when an ADDED exception must be synthesized.
func WithinStandardHours(ctx context.Context, db *repo.Client, doctorProfileID uuid.UUID, startAt, endAt time.Time) (bool, error) {
	wd, err := db.WorkDay.Query().
		Where(
			entworkday.DoctorID(doctorProfileID),
			entworkday.Day(int8(startAt.Weekday())),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get work day: %w", err)
	}

	start, err := availability.ParseClock(wd.StartTime)
	if err != nil {
		return false, fmt.Errorf("work day %s: %w", wd.ID, err)
	}
	end, err := availability.ParseClock(wd.EndTime)
	if err != nil {
		return false, fmt.Errorf("work day %s: %w", wd.ID, err)
	}

	window := availability.WorkDay{Start: start, End: end}
	return window.Contains(availability.ClockOf(startAt), availability.ClockOf(endAt)), nil
}
