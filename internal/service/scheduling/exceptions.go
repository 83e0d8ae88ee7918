package scheduling

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/availability"
	"github.com/dermee/dermee_backend/internal/repo"
	entexc "github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	"github.com/dermee/dermee_backend/internal/service/paging"
)

func (s *schedulingService) CreateException(ctx context.Context, doctorUserID uuid.UUID, req ExceptionRequest) (*repo.ScheduleException, error) {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	excType := entexc.Type(req.Type)
	switch excType {
	case entexc.TypeCANCELLED:
		if req.Start != "" || req.End != "" {
			return nil, ErrExceptionHasTimes
		}
	case entexc.TypeADDED, entexc.TypeCHANGED:
		if req.Start == "" || req.End == "" {
			return nil, ErrExceptionNoTimes
		}
	default:
		return nil, fmt.Errorf("invalid exception type %q", req.Type)
	}

	var start, end availability.Clock
	if excType != entexc.TypeCANCELLED {
		if start, err = availability.ParseClock(req.Start); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		if end, err = availability.ParseClock(req.End); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		if end <= start {
			return nil, ErrInvalidTimeRange
		}
	}

	// One exception per (doctor, date); the date is stored at UTC midnight so
	// the unique index and day lookups line up.
	date := availability.DateOf(req.Date)
	exists, err := s.db.ScheduleException.Query().
		Where(
			entexc.DoctorID(prof.ID),
			entexc.Date(date),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing exception: %w", err)
	}
	if exists {
		return nil, ErrExceptionExists
	}

	c := s.db.ScheduleException.Create().
		SetDoctorID(prof.ID).
		SetDate(date).
		SetType(excType)
	if excType != entexc.TypeCANCELLED {
		c = c.SetStart(start.String()).SetEnd(end.String())
	}
	if req.Reason != "" {
		c = c.SetReason(req.Reason)
	}

	exc, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create schedule exception: %w", err)
	}
	return exc, nil
}

func (s *schedulingService) DeleteException(ctx context.Context, doctorUserID, exceptionID uuid.UUID) error {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return err
	}

	exc, err := s.db.ScheduleException.Get(ctx, exceptionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrExceptionNotFound
		}
		return fmt.Errorf("get schedule exception: %w", err)
	}
	if exc.DoctorID != prof.ID {
		return ErrNotOwner
	}

	if err := s.db.ScheduleException.DeleteOne(exc).Exec(ctx); err != nil {
		return fmt.Errorf("delete schedule exception: %w", err)
	}
	return nil
}

func (s *schedulingService) ListExceptions(ctx context.Context, doctorUserID uuid.UUID, p paging.Params) ([]*repo.ScheduleException, paging.Meta, error) {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return nil, paging.Meta{}, err
	}

	p = p.Normalize()
	q := s.db.ScheduleException.Query().
		Where(entexc.DoctorID(prof.ID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("count exceptions: %w", err)
	}

	excs, err := q.
		Order(entexc.ByDate(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("list exceptions: %w", err)
	}
	return excs, paging.NewMeta(p, total), nil
}
