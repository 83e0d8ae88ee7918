package user

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/repo"
	entaddr "github.com/dermee/dermee_backend/internal/repo/address"
	entdoc "github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	entpat "github.com/dermee/dermee_backend/internal/repo/patientprofile"
	entuser "github.com/dermee/dermee_backend/internal/repo/user"
	"github.com/dermee/dermee_backend/internal/service/paging"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Doctor struct {
	ProfileID uuid.UUID `json:"profileId"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty,omitempty"`
	Bio       string    `json:"bio,omitempty"`
}

type Profile struct {
	User      *repo.User           `json:"user"`
	Doctor    *repo.DoctorProfile  `json:"doctorProfile,omitempty"`
	Patient   *repo.PatientProfile `json:"patientProfile,omitempty"`
	Addresses []*repo.Address      `json:"addresses,omitempty"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Me(ctx context.Context, userID uuid.UUID) (*Profile, error)
	ListDoctors(ctx context.Context, p paging.Params) ([]Doctor, paging.Meta, error)
	GetDoctor(ctx context.Context, doctorUserID uuid.UUID) (*Doctor, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

// Me returns the user with whichever role profile and addresses exist.
func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &Profile{User: u}

	switch u.Role {
	case entuser.RoleDOCTOR:
		doc, err := s.db.DoctorProfile.Query().
			Where(entdoc.UserID(userID)).
			Only(ctx)
		if err != nil && !repo.IsNotFound(err) {
			return nil, fmt.Errorf("query doctor profile: %w", err)
		}
		out.Doctor = doc
	case entuser.RolePATIENT:
		pat, err := s.db.PatientProfile.Query().
			Where(entpat.UserID(userID)).
			Only(ctx)
		if err != nil && !repo.IsNotFound(err) {
			return nil, fmt.Errorf("query patient profile: %w", err)
		}
		out.Patient = pat
	}

	addrs, err := s.db.Address.Query().
		Where(entaddr.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query addresses: %w", err)
	}
	out.Addresses = addrs

	return out, nil
}

// ListDoctors returns doctors newest-first for the public directory.
func (s *userService) ListDoctors(ctx context.Context, p paging.Params) ([]Doctor, paging.Meta, error) {
	p = p.Normalize()

	q := s.db.DoctorProfile.Query()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("count doctors: %w", err)
	}

	profiles, err := q.
		Order(entdoc.ByCreatedAt(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("list doctors: %w", err)
	}

	out := make([]Doctor, 0, len(profiles))
	for _, prof := range profiles {
		d, err := s.doctorItem(ctx, prof)
		if err != nil {
			return nil, paging.Meta{}, err
		}
		out = append(out, *d)
	}
	return out, paging.NewMeta(p, total), nil
}

// GetDoctor resolves by the doctor's user id, the id every doctor-facing
// route carries.
func (s *userService) GetDoctor(ctx context.Context, doctorUserID uuid.UUID) (*Doctor, error) {
	prof, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(doctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("query doctor profile: %w", err)
	}
	return s.doctorItem(ctx, prof)
}

func (s *userService) doctorItem(ctx context.Context, prof *repo.DoctorProfile) (*Doctor, error) {
	owner, err := s.db.User.Get(ctx, prof.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("query doctor user: %w", err)
	}

	d := &Doctor{
		ProfileID: prof.ID,
		UserID:    owner.ID,
		Name:      owner.Name,
		Email:     owner.Email,
	}
	if prof.Specialty != nil {
		d.Specialty = *prof.Specialty
	}
	if prof.Bio != nil {
		d.Bio = *prof.Bio
	}
	return d, nil
}
