package appointment

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/dermee/dermee_backend/internal/availability"
	"github.com/dermee/dermee_backend/internal/repo"
	entappt "github.com/dermee/dermee_backend/internal/repo/appointment"
	entdoc "github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	entpat "github.com/dermee/dermee_backend/internal/repo/patientprofile"
	"github.com/dermee/dermee_backend/internal/repo/predicate"
	entuser "github.com/dermee/dermee_backend/internal/repo/user"
	"github.com/dermee/dermee_backend/internal/service/paging"
	"github.com/dermee/dermee_backend/internal/service/scheduling"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	DoctorUserID    uuid.UUID
	Date            time.Time
	Time            string // HH:mm
	DurationMinutes int    // default 30
	Type            string // default GENERAL
}

type ListRequest struct {
	paging.Params
	DateFrom *time.Time
	DateTo   *time.Time
}

type RescheduleRequest struct {
	NewDate  time.Time
	NewStart string // HH:mm
	NewEnd   string // HH:mm
	Reason   string
}

// DoctorItem is one appointment as shown to the doctor.
type DoctorItem struct {
	ID      uuid.UUID `json:"id"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Patient string    `json:"patient"`
	State   string    `json:"state"`
	Type    string    `json:"type"`
}

// PatientItem is one appointment as shown to the patient.
type PatientItem struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Time   string    `json:"time"`
	Doctor string    `json:"doctor"`
	State  string    `json:"state"`
	Type   string    `json:"type"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service drives the appointment lifecycle: PENDING on creation, CONFIRMED
// via doctor approval, CANCELLED via rejection, deletion via cancel by either
// party. Every booking path wraps its conflict check and write in one
// serializable transaction.
type Service interface {
	Create(ctx context.Context, patientUserID uuid.UUID, req CreateRequest) (*repo.Appointment, error)
	ListForDoctor(ctx context.Context, doctorUserID uuid.UUID, req ListRequest) ([]DoctorItem, paging.Meta, error)
	ListForPatient(ctx context.Context, patientUserID uuid.UUID, req ListRequest) ([]PatientItem, paging.Meta, error)
	ListDayForDoctor(ctx context.Context, doctorUserID uuid.UUID, date time.Time) ([]DoctorItem, error)
	Approve(ctx context.Context, doctorUserID, appointmentID uuid.UUID) (*repo.Appointment, error)
	Reject(ctx context.Context, doctorUserID, appointmentID uuid.UUID, reason string) (*repo.Appointment, error)
	Reschedule(ctx context.Context, doctorUserID, appointmentID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &appointmentService{db: db, nc: nc}
}

// serializableTx opens the transaction used by every check-then-write path.
func (s *appointmentService) serializableTx(ctx context.Context) (*repo.Tx, error) {
	tx, err := s.db.BeginTx(ctx, &entsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

// publish emits a lifecycle event; delivery is best-effort and never fails
// the parent operation.
func (s *appointmentService) publish(event string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("dermee.appointment.%s.%s", event, id)
	if err := s.nc.Publish(subject, []byte(id.String())); err != nil {
		slog.Warn("publish appointment event failed", "subject", subject, "error", err)
	}
}

func (s *appointmentService) Create(ctx context.Context, patientUserID uuid.UUID, req CreateRequest) (*repo.Appointment, error) {
	clock, err := availability.ParseClock(req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}
	startAt := availability.DateOf(req.Date).Add(time.Duration(clock) * time.Minute)
	if startAt.Before(time.Now()) {
		return nil, ErrPastDate
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 30
	}
	endAt := startAt.Add(time.Duration(duration) * time.Minute)

	patient, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(patientUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientOnly
		}
		return nil, fmt.Errorf("resolve patient profile: %w", err)
	}
	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(req.DoctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("resolve doctor profile: %w", err)
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

	available, err := scheduling.IsTimeSlotAvailable(ctx, tx.Client(), doctor.ID, startAt, endAt, nil)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSlotTaken
	}

	c := tx.Client().Appointment.Create().
		SetDoctorID(doctor.ID).
		SetPatientID(patient.ID).
		SetStartAt(startAt).
		SetEndAt(endAt).
		SetState(entappt.StatePENDING)
	if req.Type != "" {
		c = c.SetType(req.Type)
	}
	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit appointment: %w", err)
	}
	committed = true

	s.publish("created", appt.ID)
	return appt, nil
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

func dateRangePredicates(req ListRequest) []predicate.Appointment {
	// Inclusive day bounds on start_at.
	var preds []predicate.Appointment
	if req.DateFrom != nil {
		from := availability.DateOf(*req.DateFrom)
		preds = append(preds, entappt.StartAtGTE(from))
	}
	if req.DateTo != nil {
		to := availability.DateOf(*req.DateTo).AddDate(0, 0, 1)
		preds = append(preds, entappt.StartAtLT(to))
	}
	return preds
}

func (s *appointmentService) ListForDoctor(ctx context.Context, doctorUserID uuid.UUID, req ListRequest) ([]DoctorItem, paging.Meta, error) {
	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(doctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, paging.Meta{}, ErrDoctorOnly
		}
		return nil, paging.Meta{}, fmt.Errorf("resolve doctor profile: %w", err)
	}

	p := req.Params.Normalize()
	q := s.db.Appointment.Query().
		Where(entappt.DoctorID(doctor.ID)).
		Where(dateRangePredicates(req)...)

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(entappt.ByStartAt()).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("list appointments: %w", err)
	}

	items, err := s.doctorItems(ctx, appts)
	if err != nil {
		return nil, paging.Meta{}, err
	}
	return items, paging.NewMeta(p, total), nil
}

func (s *appointmentService) ListForPatient(ctx context.Context, patientUserID uuid.UUID, req ListRequest) ([]PatientItem, paging.Meta, error) {
	patient, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(patientUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, paging.Meta{}, ErrPatientOnly
		}
		return nil, paging.Meta{}, fmt.Errorf("resolve patient profile: %w", err)
	}

	p := req.Params.Normalize()
	q := s.db.Appointment.Query().
		Where(entappt.PatientID(patient.ID)).
		Where(dateRangePredicates(req)...)

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(entappt.ByStartAt()).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, paging.Meta{}, fmt.Errorf("list appointments: %w", err)
	}

	names, err := s.counterpartNames(ctx, appts, false)
	if err != nil {
		return nil, paging.Meta{}, err
	}
	items := make([]PatientItem, 0, len(appts))
	for _, a := range appts {
		items = append(items, PatientItem{
			ID:     a.ID,
			Date:   a.StartAt.Format("2006-01-02"),
			Time:   a.StartAt.Format("15:04"),
			Doctor: names[a.DoctorID],
			State:  string(a.State),
			Type:   a.Type,
		})
	}
	return items, paging.NewMeta(p, total), nil
}

func (s *appointmentService) ListDayForDoctor(ctx context.Context, doctorUserID uuid.UUID, date time.Time) ([]DoctorItem, error) {
	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(doctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorOnly
		}
		return nil, fmt.Errorf("resolve doctor profile: %w", err)
	}

	day := availability.DateOf(date)
	appts, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctor.ID),
			entappt.StartAtGTE(day),
			entappt.StartAtLT(day.AddDate(0, 0, 1)),
		).
		Order(entappt.ByStartAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list day appointments: %w", err)
	}
	return s.doctorItems(ctx, appts)
}

func (s *appointmentService) doctorItems(ctx context.Context, appts []*repo.Appointment) ([]DoctorItem, error) {
	names, err := s.counterpartNames(ctx, appts, true)
	if err != nil {
		return nil, err
	}
	items := make([]DoctorItem, 0, len(appts))
	for _, a := range appts {
		items = append(items, DoctorItem{
			ID:      a.ID,
			Date:    a.StartAt.Format("2006-01-02"),
			Time:    a.StartAt.Format("15:04"),
			Patient: names[a.PatientID],
			State:   string(a.State),
			Type:    a.Type,
		})
	}
	return items, nil
}

// counterpartNames resolves profile ids to user display names: patient
// profiles when patients is true, doctor profiles otherwise.
func (s *appointmentService) counterpartNames(ctx context.Context, appts []*repo.Appointment, patients bool) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(appts))
	seen := map[uuid.UUID]bool{}
	for _, a := range appts {
		id := a.DoctorID
		if patients {
			id = a.PatientID
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	userByProfile := map[uuid.UUID]uuid.UUID{}
	if patients {
		profiles, err := s.db.PatientProfile.Query().Where(entpat.IDIn(ids...)).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load patient profiles: %w", err)
		}
		for _, p := range profiles {
			userByProfile[p.ID] = p.UserID
		}
	} else {
		profiles, err := s.db.DoctorProfile.Query().Where(entdoc.IDIn(ids...)).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load doctor profiles: %w", err)
		}
		for _, p := range profiles {
			userByProfile[p.ID] = p.UserID
		}
	}

	userIDs := make([]uuid.UUID, 0, len(userByProfile))
	for _, uid := range userByProfile {
		userIDs = append(userIDs, uid)
	}
	users, err := s.db.User.Query().Where(entuser.IDIn(userIDs...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	nameByUser := map[uuid.UUID]string{}
	for _, u := range users {
		nameByUser[u.ID] = u.Name
	}

	names := map[uuid.UUID]string{}
	for profileID, userID := range userByProfile {
		names[profileID] = nameByUser[userID]
	}
	return names, nil
}
