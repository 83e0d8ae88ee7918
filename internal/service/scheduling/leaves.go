package scheduling

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/repo"
	entleave "github.com/dermee/dermee_backend/internal/repo/doctorleave"
	"github.com/dermee/dermee_backend/internal/service/paging"
)

func (s *schedulingService) CreateLeave(ctx context.Context, doctorUserID uuid.UUID, req LeaveRequest) (*repo.DoctorLeave, error) {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	// Leave ranges for a doctor never overlap: [start, end] against [start,
	// end] with inclusive bounds, tested with the canonical predicate.
	overlapping, err := s.db.DoctorLeave.Query().
		Where(
			entleave.DoctorID(prof.ID),
			entleave.StartDateLTE(req.EndDate),
			entleave.EndDateGTE(req.StartDate),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlapping leave: %w", err)
	}
	if overlapping {
		return nil, ErrLeaveOverlap
	}

	leave, err := s.db.DoctorLeave.Create().
		SetDoctorID(prof.ID).
		SetStartDate(req.StartDate).
		SetEndDate(req.EndDate).
		SetReason(req.Reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create leave: %w", err)
	}
	return leave, nil
}

func (s *schedulingService) DeleteLeave(ctx context.Context, doctorUserID, leaveID uuid.UUID) error {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return err
	}

	leave, err := s.db.DoctorLeave.Get(ctx, leaveID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrLeaveNotFound
		}
		return fmt.Errorf("get leave: %w", err)
	}
	if leave.DoctorID != prof.ID {
		return ErrNotOwner
	}

	if err := s.db.DoctorLeave.DeleteOne(leave).Exec(ctx); err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	return nil
}

func (s *schedulingService) ListLeaves(ctx context.Context, doctorUserID uuid.UUID, p paging.Params) ([]*repo.DoctorLeave, paging.Meta, error) {
	prof, err := s.profileForUser(ctx, doctorUserID)
	if err != nil {
		return nil, paging.Meta{}, err
	}

	p = p.Normalize()
	q := s.db.DoctorLeave.Query().
		Where(entleave.DoctorID(prof.ID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("count leaves: %w", err)
	}

	leaves, err := q.
		Order(entleave.ByStartDate(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("list leaves: %w", err)
	}
	return leaves, paging.NewMeta(p, total), nil
}
