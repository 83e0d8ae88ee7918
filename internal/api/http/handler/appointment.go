package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/service/appointment"
	"github.com/dermee/dermee_backend/internal/service/paging"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// POST /api/v1/appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DoctorID        string `json:"doctorId"`
		Date            string `json:"date"` // YYYY-MM-DD
		Time            string `json:"time"` // HH:mm
		DurationMinutes int    `json:"durationMinutes"`
		Type            string `json:"type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctorId")
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Create(c.Context(), claims.UserID, appointment.CreateRequest{
		DoctorUserID:    doctorID,
		Date:            date,
		Time:            body.Time,
		DurationMinutes: body.DurationMinutes,
		Type:            body.Type,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

func listRequestFromQuery(c fiber.Ctx) (appointment.ListRequest, error) {
	var q struct {
		Page     int    `query:"page"`
		Limit    int    `query:"limit"`
		DateFrom string `query:"dateFrom"`
		DateTo   string `query:"dateTo"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return appointment.ListRequest{}, errors.New("invalid query parameters")
	}

	req := appointment.ListRequest{Params: paging.Params{Page: q.Page, Limit: q.Limit}}
	if q.DateFrom != "" {
		from, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			return appointment.ListRequest{}, errors.New("invalid dateFrom, expected YYYY-MM-DD")
		}
		req.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			return appointment.ListRequest{}, errors.New("invalid dateTo, expected YYYY-MM-DD")
		}
		req.DateTo = &to
	}
	return req, nil
}

// GET /api/v1/appointments/doctor
func (h *AppointmentHandler) ListForDoctor(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := listRequestFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, meta, err := h.svc.ListForDoctor(c.Context(), claims.UserID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, fiber.Map{"items": items, "meta": meta})
}

// GET /api/v1/appointments/patient
func (h *AppointmentHandler) ListForPatient(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := listRequestFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, meta, err := h.svc.ListForPatient(c.Context(), claims.UserID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, fiber.Map{"items": items, "meta": meta})
}

// GET /api/v1/appointments/doctor/day?date=YYYY-MM-DD
func (h *AppointmentHandler) ListDayForDoctor(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	date := time.Now()
	if s := c.Query("date"); s != "" {
		var err error
		date, err = time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
	}

	items, err := h.svc.ListDayForDoctor(c.Context(), claims.UserID, date)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, items)
}

// POST /api/v1/appointments/:id/approve
func (h *AppointmentHandler) Approve(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Approve(c.Context(), claims.UserID, id)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /api/v1/appointments/:id/reject
func (h *AppointmentHandler) Reject(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Reject(c.Context(), claims.UserID, id, body.Reason)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /api/v1/appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		NewDate  string `json:"newDate"` // YYYY-MM-DD
		NewStart string `json:"newStart"`
		NewEnd   string `json:"newEnd"`
		Reason   string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	newDate, err := time.Parse("2006-01-02", body.NewDate)
	if err != nil {
		return badRequest(c, "invalid newDate, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Reschedule(c.Context(), claims.UserID, id, appointment.RescheduleRequest{
		NewDate:  newDate,
		NewStart: body.NewStart,
		NewEnd:   body.NewEnd,
		Reason:   body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Cancel(c.Context(), claims.UserID, id); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotOwner),
		errors.Is(err, appointment.ErrNotParticipant),
		errors.Is(err, appointment.ErrPatientOnly),
		errors.Is(err, appointment.ErrDoctorOnly):
		return forbidden(c)
	case errors.Is(err, appointment.ErrPastDate),
		errors.Is(err, appointment.ErrInvalidTime),
		errors.Is(err, appointment.ErrInvalidTimeRange),
		errors.Is(err, appointment.ErrNotPending),
		errors.Is(err, appointment.ErrRescheduleBlocked):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
