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
	entpat "github.com/dermee/dermee_backend/internal/repo/patientprofile"
	entexc "github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	entuser "github.com/dermee/dermee_backend/internal/repo/user"
	entworkday "github.com/dermee/dermee_backend/internal/repo/workday"
)

// loadSchedule reads every availability source for one doctor profile into a
// pure availability.Schedule. withNames additionally resolves patient names
// for the bookings, which only the export renderer displays.
func (s *schedulingService) loadSchedule(ctx context.Context, prof *repo.DoctorProfile, withNames bool) (availability.Schedule, error) {
	sched := availability.Schedule{ProfileID: prof.ID}

	owner, err := s.db.User.Get(ctx, prof.UserID)
	if err == nil {
		sched.DoctorName = owner.Name
	} else if !repo.IsNotFound(err) {
		return sched, fmt.Errorf("load doctor user: %w", err)
	}

	workDays, err := s.db.WorkDay.Query().
		Where(entworkday.DoctorID(prof.ID)).
		All(ctx)
	if err != nil {
		return sched, fmt.Errorf("load work days: %w", err)
	}
	for _, wd := range workDays {
		start, err := availability.ParseClock(wd.StartTime)
		if err != nil {
			return sched, fmt.Errorf("work day %s: %w", wd.ID, err)
		}
		end, err := availability.ParseClock(wd.EndTime)
		if err != nil {
			return sched, fmt.Errorf("work day %s: %w", wd.ID, err)
		}
		sched.WorkDays = append(sched.WorkDays, availability.WorkDay{
			ID:    wd.ID,
			Day:   time.Weekday(wd.Day),
			Start: start,
			End:   end,
		})
	}

	excs, err := s.db.ScheduleException.Query().
		Where(entexc.DoctorID(prof.ID)).
		All(ctx)
	if err != nil {
		return sched, fmt.Errorf("load exceptions: %w", err)
	}
	for _, exc := range excs {
		a := availability.Exception{
			ID:   exc.ID,
			Date: exc.Date,
			Type: availability.ExceptionType(exc.Type),
		}
		if exc.Start != nil {
			if a.Start, err = availability.ParseClock(*exc.Start); err != nil {
				return sched, fmt.Errorf("exception %s: %w", exc.ID, err)
			}
		}
		if exc.End != nil {
			if a.End, err = availability.ParseClock(*exc.End); err != nil {
				return sched, fmt.Errorf("exception %s: %w", exc.ID, err)
			}
		}
		if exc.Reason != nil {
			a.Reason = *exc.Reason
		}
		sched.Exceptions = append(sched.Exceptions, a)
	}

	leaves, err := s.db.DoctorLeave.Query().
		Where(entleave.DoctorID(prof.ID)).
		All(ctx)
	if err != nil {
		return sched, fmt.Errorf("load leaves: %w", err)
	}
	for _, l := range leaves {
		sched.Leaves = append(sched.Leaves, availability.Leave{
			ID:     l.ID,
			Start:  l.StartDate,
			End:    l.EndDate,
			Reason: l.Reason,
		})
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(prof.ID),
			entappt.StateNEQ(entappt.StateCANCELLED),
		).
		All(ctx)
	if err != nil {
		return sched, fmt.Errorf("load appointments: %w", err)
	}

	names := map[uuid.UUID]string{}
	if withNames && len(appts) > 0 {
		names, err = s.patientNames(ctx, appts)
		if err != nil {
			return sched, err
		}
	}
	for _, a := range appts {
		sched.Bookings = append(sched.Bookings, availability.Booking{
			ID:          a.ID,
			State:       availability.BookingState(a.State),
			Type:        a.Type,
			StartAt:     a.StartAt,
			EndAt:       a.EndAt,
			PatientName: names[a.PatientID],
		})
	}

	return sched, nil
}

// patientNames maps patient profile ids to the owning user's display name.
func (s *schedulingService) patientNames(ctx context.Context, appts []*repo.Appointment) (map[uuid.UUID]string, error) {
	profileIDs := make([]uuid.UUID, 0, len(appts))
	seen := map[uuid.UUID]bool{}
	for _, a := range appts {
		if !seen[a.PatientID] {
			seen[a.PatientID] = true
			profileIDs = append(profileIDs, a.PatientID)
		}
	}

	profiles, err := s.db.PatientProfile.Query().
		Where(entpat.IDIn(profileIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient profiles: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := s.db.User.Query().
		Where(entuser.IDIn(userIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient users: %w", err)
	}

	byUser := map[uuid.UUID]string{}
	for _, u := range users {
		byUser[u.ID] = u.Name
	}
	names := map[uuid.UUID]string{}
	for _, p := range profiles {
		names[p.ID] = byUser[p.UserID]
	}
	return names, nil
}
