package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/availability"
	"github.com/dermee/dermee_backend/internal/repo"
	entdoc "github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	entworkday "github.com/dermee/dermee_backend/internal/repo/workday"
	"github.com/dermee/dermee_backend/internal/service/paging"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type WorkDayRequest struct {
	Day   int    // 0=Sunday … 6=Saturday
	Start string // HH:mm
	End   string // HH:mm
}

type ExceptionRequest struct {
	Date   time.Time
	Type   string // CANCELLED | ADDED | CHANGED
	Start  string
	End    string
	Reason string
}

type LeaveRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type ExportRequest struct {
	Format    string // ics (default) | json
	StartDate time.Time
	EndDate   time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service manages a doctor's recurring hours, per-date exceptions and leave
// ranges, and answers availability questions derived from them. All methods
// take the doctor's user id; the profile id is resolved internally.
type Service interface {
	CreateWorkDay(ctx context.Context, doctorUserID uuid.UUID, req WorkDayRequest) (*repo.WorkDay, error)
	UpdateWorkDay(ctx context.Context, doctorUserID uuid.UUID, req WorkDayRequest) (*repo.WorkDay, error)
	DaySchedule(ctx context.Context, doctorUserID uuid.UUID, date time.Time) (availability.Day, error)

	CreateException(ctx context.Context, doctorUserID uuid.UUID, req ExceptionRequest) (*repo.ScheduleException, error)
	DeleteException(ctx context.Context, doctorUserID, exceptionID uuid.UUID) error
	ListExceptions(ctx context.Context, doctorUserID uuid.UUID, p paging.Params) ([]*repo.ScheduleException, paging.Meta, error)

	CreateLeave(ctx context.Context, doctorUserID uuid.UUID, req LeaveRequest) (*repo.DoctorLeave, error)
	DeleteLeave(ctx context.Context, doctorUserID, leaveID uuid.UUID) error
	ListLeaves(ctx context.Context, doctorUserID uuid.UUID, p paging.Params) ([]*repo.DoctorLeave, paging.Meta, error)

	Calendar(ctx context.Context, doctorUserID uuid.UUID, month, year int) (availability.Calendar, error)
	Export(ctx context.Context, doctorUserID uuid.UUID, req ExportRequest) (availability.Export, error)

	// IsTimeSlotAvailable reports whether [startAt, endAt) is bookable for
	// the doctor profile: no blocking appointment overlaps it, a work day
	// covers it, and no exception or leave blocks the date.
	IsTimeSlotAvailable(ctx context.Context, doctorProfileID uuid.UUID, startAt, endAt time.Time, excludeID *uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &schedulingService{db: db}
}

// profileForUser resolves a doctor user id to the profile row that schedule
// entities reference.
func (s *schedulingService) profileForUser(ctx context.Context, userID uuid.UUID) (*repo.DoctorProfile, error) {
	prof, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("resolve doctor profile: %w", err)
	}
	return prof, nil
}

func parseWindow(req WorkDayRequest) (start, end availability.Clock, err error) {
	if req.Day < 0 || req.Day > 6 {
		return 0, 0, ErrInvalidWeekday
	}
	start, err = availability.ParseClock(req.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	end, err = availability.ParseClock(req.End)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if end <= start {
		return 0, 0, ErrInvalidTimeRange
	}
	return start, end, nil
}

func (s *schedulingService) CreateWorkDay(ctx context.Context, doctorUserID uuid.UUID, req WorkDayRequest) (*repo.WorkDay, error) {
	start, end, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.WorkDay.Query().
		Where(
			entworkday.DoctorID(prof.ID),
			entworkday.Day(int8(req.Day)),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing work day: %w", err)
	}
	if exists {
		return nil, ErrWorkDayExists
	}

	wd, err := s.db.WorkDay.Create().
		SetDoctorID(prof.ID).
		SetDay(int8(req.Day)).
		SetStartTime(start.String()).
		SetEndTime(end.String()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create work day: %w", err)
	}
	return wd, nil
}

func (s *schedulingService) UpdateWorkDay(ctx context.Context, doctorUserID uuid.UUID, req WorkDayRequest) (*repo.WorkDay, error) {
	start, end, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	wd, err := s.db.WorkDay.Query().
		Where(
			entworkday.DoctorID(prof.ID),
			entworkday.Day(int8(req.Day)),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrWorkDayNotFound
		}
		return nil, fmt.Errorf("get work day: %w", err)
	}

	wd, err = s.db.WorkDay.UpdateOne(wd).
		SetStartTime(start.String()).
		SetEndTime(end.String()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update work day: %w", err)
	}
	return wd, nil
}

func (s *schedulingService) DaySchedule(ctx context.Context, doctorUserID uuid.UUID, date time.Time) (availability.Day, error) {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return availability.Day{}, err
	}
	sched, err := s.loadSchedule(ctx, prof, false)
	if err != nil {
		return availability.Day{}, err
	}
	return sched.ResolveDay(date), nil
}

func (s *schedulingService) Calendar(ctx context.Context, doctorUserID uuid.UUID, month, year int) (availability.Calendar, error) {
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return availability.Calendar{}, err
	}
	sched, err := s.loadSchedule(ctx, prof, false)
	if err != nil {
		return availability.Calendar{}, err
	}
	return sched.BuildCalendar(time.Month(month), year), nil
}

func (s *schedulingService) Export(ctx context.Context, doctorUserID uuid.UUID, req ExportRequest) (availability.Export, error) {
	format := availability.Format(req.Format)
	if format == "" {
		format = availability.FormatICS
	}
	if format != availability.FormatICS && format != availability.FormatJSON {
		return availability.Export{}, ErrBadExportFormat
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	end := req.EndDate
	if end.IsZero() {
		end = start.AddDate(0, 0, 30)
	}

	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return availability.Export{}, err
	}
	sched, err := s.loadSchedule(ctx, prof, true)
	if err != nil {
		return availability.Export{}, err
	}

	exp, err := sched.Render(format, start, end, time.Now())
	if err != nil {
		return availability.Export{}, fmt.Errorf("render schedule export: %w", err)
	}
	return exp, nil
}

func (s *schedulingService) IsTimeSlotAvailable(ctx context.Context, doctorProfileID uuid.UUID, startAt, endAt time.Time, excludeID *uuid.UUID) (bool, error) {
	return IsTimeSlotAvailable(ctx, s.db, doctorProfileID, startAt, endAt, excludeID)
}
