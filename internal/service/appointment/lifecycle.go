package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/availability"
	"github.com/dermee/dermee_backend/internal/repo"
	entappt "github.com/dermee/dermee_backend/internal/repo/appointment"
	entdoc "github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	entleave "github.com/dermee/dermee_backend/internal/repo/doctorleave"
	entexc "github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	"github.com/dermee/dermee_backend/internal/service/scheduling"
)

// ownedAppointment loads an appointment and verifies it belongs to the
// doctor user.
func (s *appointmentService) ownedAppointment(ctx context.Context, doctorUserID, appointmentID uuid.UUID) (*repo.Appointment, error) {
	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(doctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("resolve doctor profile: %w", err)
	}

	appt, err := s.db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt.DoctorID != doctor.ID {
		return nil, ErrNotOwner
	}
	return appt, nil
}

// Approve moves a PENDING appointment to CONFIRMED. The slot may have been
// taken between request creation and approval, so availability is re-checked
// in the same transaction as the state change.
func (s *appointmentService) Approve(ctx context.Context, doctorUserID, appointmentID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.ownedAppointment(ctx, doctorUserID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.State != entappt.StatePENDING {
		return nil, ErrNotPending
	}

	tx, err := s.serializableTx(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	available, err := scheduling.IsTimeSlotAvailable(ctx, tx.Client(), appt.DoctorID, appt.StartAt, appt.EndAt, &appt.ID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSlotTaken
	}

	updated, err := tx.Client().Appointment.UpdateOne(appt).
		SetState(entappt.StateCONFIRMED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approval: %w", err)
	}
	committed = true

	s.publish("confirmed", updated.ID)
	return updated, nil
}

// Reject moves a PENDING appointment to CANCELLED. The reason is carried on
// the lifecycle event for the notification worker; it is not persisted.
func (s *appointmentService) Reject(ctx context.Context, doctorUserID, appointmentID uuid.UUID, reason string) (*repo.Appointment, error) {
	appt, err := s.ownedAppointment(ctx, doctorUserID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.State != entappt.StatePENDING {
		return nil, ErrNotPending
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetState(entappt.StateCANCELLED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject appointment: %w", err)
	}
	if reason != "" {
		slog.Info("appointment rejected", "appointment_id", appt.ID, "reason", reason)
	}

	s.publish("cancelled", updated.ID)
	return updated, nil
}

// Reschedule moves any non-cancelled appointment to a new interval. A
// PENDING appointment stays PENDING; anything else is promoted to CONFIRMED.
// When the new interval falls outside the weekly rule, an ADDED schedule
// exception is synthesized after the fact to carve out the slot; that
// synthesis is best-effort and never fails the reschedule.
func (s *appointmentService) Reschedule(ctx context.Context, doctorUserID, appointmentID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	appt, err := s.ownedAppointment(ctx, doctorUserID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.State == entappt.StateCANCELLED {
		return nil, ErrRescheduleBlocked
	}

	startClock, err := availability.ParseClock(req.NewStart)
	if err != nil {
		return nil, ErrInvalidTime
	}
	endClock, err := availability.ParseClock(req.NewEnd)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if endClock <= startClock {
		return nil, ErrInvalidTimeRange
	}

	day := availability.DateOf(req.NewDate)
	newStartAt := day.Add(time.Duration(startClock) * time.Minute)
	newEndAt := day.Add(time.Duration(endClock) * time.Minute)
	if newStartAt.Before(time.Now()) {
		return nil, ErrPastDate
	}

	newState := entappt.StateCONFIRMED
	if appt.State == entappt.StatePENDING {
		newState = entappt.StatePENDING
	}

	tx, err := s.serializableTx(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	available, withinHours, err := rescheduleTarget(ctx, tx.Client(), appt, newStartAt, newEndAt)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSlotTaken
	}

	updated, err := tx.Client().Appointment.UpdateOne(appt).
		SetStartAt(newStartAt).
		SetEndAt(newEndAt).
		SetState(newState).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", err)
	}
	committed = true

	if !withinHours {
		s.carveOutSlot(ctx, appt.DoctorID, newStartAt, newEndAt, req.Reason)
	}

	s.publish("rescheduled", updated.ID)
	return updated, nil
}

// rescheduleTarget checks the new interval for a reschedule. Unlike the
// booking check it tolerates intervals outside the weekly rule (an ADDED
// exception is synthesized afterwards), but still rejects overlapping
// appointments, blocking exceptions and leave. Returns whether the target is
// available and whether it sits inside standard hours.
func rescheduleTarget(ctx context.Context, db *repo.Client, appt *repo.Appointment, startAt, endAt time.Time) (available, withinHours bool, err error) {
	conflict, err := db.Appointment.Query().
		Where(
			entappt.DoctorID(appt.DoctorID),
			entappt.IDNEQ(appt.ID),
			entappt.StateIn(entappt.StateSCHEDULED, entappt.StateCONFIRMED),
			entappt.StartAtLT(endAt),
			entappt.EndAtGT(startAt),
		).
		Exist(ctx)
	if err != nil {
		return false, false, fmt.Errorf("check appointment conflict: %w", err)
	}
	if conflict {
		return false, false, nil
	}

	// An existing exception on the target date decides the day: CANCELLED
	// blocks it, ADDED/CHANGED must contain the interval.
	exc, err := db.ScheduleException.Query().
		Where(
			entexc.DoctorID(appt.DoctorID),
			entexc.Date(availability.DateOf(startAt)),
		).
		Only(ctx)
	switch {
	case err == nil:
		if exc.Type == entexc.TypeCANCELLED || exc.Start == nil || exc.End == nil {
			return false, false, nil
		}
		excStart, perr := availability.ParseClock(*exc.Start)
		if perr != nil {
			return false, false, fmt.Errorf("exception %s: %w", exc.ID, perr)
		}
		excEnd, perr := availability.ParseClock(*exc.End)
		if perr != nil {
			return false, false, fmt.Errorf("exception %s: %w", exc.ID, perr)
		}
		window := availability.WorkDay{Start: excStart, End: excEnd}
		if !window.Contains(availability.ClockOf(startAt), availability.ClockOf(endAt)) {
			return false, false, nil
		}
		onLeave, lerr := leaveCovers(ctx, db, appt.DoctorID, startAt, endAt)
		if lerr != nil {
			return false, false, lerr
		}
		// The exception already carves out the slot; no synthesis needed.
		return !onLeave, true, nil
	case repo.IsNotFound(err):
		// No exception; fall through to the weekly rule.
	default:
		return false, false, fmt.Errorf("get schedule exception: %w", err)
	}

	onLeave, err := leaveCovers(ctx, db, appt.DoctorID, startAt, endAt)
	if err != nil {
		return false, false, err
	}
	if onLeave {
		return false, false, nil
	}

	withinHours, err = scheduling.WithinStandardHours(ctx, db, appt.DoctorID, startAt, endAt)
	if err != nil {
		return false, false, err
	}
	return true, withinHours, nil
}

func leaveCovers(ctx context.Context, db *repo.Client, doctorID uuid.UUID, startAt, endAt time.Time) (bool, error) {
	onLeave, err := db.DoctorLeave.Query().
		Where(
			entleave.DoctorID(doctorID),
			entleave.StartDateLTE(startAt),
			entleave.EndDateGTE(endAt),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check leave: %w", err)
	}
	return onLeave, nil
}

// carveOutSlot records an ADDED exception for an out-of-hours reschedule.
// Failures are logged and swallowed.
func (s *appointmentService) carveOutSlot(ctx context.Context, doctorID uuid.UUID, startAt, endAt time.Time, reason string) {
	if reason == "" {
		reason = "Appointment rescheduled outside standard hours"
	}
	_, err := s.db.ScheduleException.Create().
		SetDoctorID(doctorID).
		SetDate(availability.DateOf(startAt)).
		SetType(entexc.TypeADDED).
		SetStart(availability.ClockOf(startAt).String()).
		SetEnd(availability.ClockOf(endAt).String()).
		SetReason(reason).
		Save(ctx)
	if err != nil {
		slog.Warn("create schedule exception for reschedule failed",
			"doctor_id", doctorID, "start_at", startAt, "error", err)
	}
}

// Cancel deletes the appointment. Either participant may cancel.
func (s *appointmentService) Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error {
	appt, err := s.db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get appointment: %w", err)
	}

	doctor, err := s.db.DoctorProfile.Get(ctx, appt.DoctorID)
	if err != nil {
		return fmt.Errorf("load doctor profile: %w", err)
	}
	patient, err := s.db.PatientProfile.Get(ctx, appt.PatientID)
	if err != nil {
		return fmt.Errorf("load patient profile: %w", err)
	}
	if doctor.UserID != userID && patient.UserID != userID {
		return ErrNotParticipant
	}

	if err := s.db.Appointment.DeleteOne(appt).Exec(ctx); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
