package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/service/paging"
	"github.com/dermee/dermee_backend/internal/service/scheduling"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Work days (doctor self-service)
// ---------------------------------------------------------------------------

// POST /api/v1/schedule/workdays
func (h *ScheduleHandler) CreateWorkDay(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Day   int    `json:"day"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	wd, err := h.svc.CreateWorkDay(c.Context(), claims.UserID, scheduling.WorkDayRequest{
		Day:   body.Day,
		Start: body.Start,
		End:   body.End,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, wd)
}

// PATCH /api/v1/schedule/workdays
func (h *ScheduleHandler) UpdateWorkDay(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Day   int    `json:"day"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	wd, err := h.svc.UpdateWorkDay(c.Context(), claims.UserID, scheduling.WorkDayRequest{
		Day:   body.Day,
		Start: body.Start,
		End:   body.End,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, wd)
}

// ---------------------------------------------------------------------------
// Exceptions
// ---------------------------------------------------------------------------

// POST /api/v1/schedule/exceptions
func (h *ScheduleHandler) CreateException(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Date   string `json:"date"` // YYYY-MM-DD
		Type   string `json:"type"`
		Start  string `json:"start"`
		End    string `json:"end"`
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	exc, err := h.svc.CreateException(c.Context(), claims.UserID, scheduling.ExceptionRequest{
		Date:   date,
		Type:   body.Type,
		Start:  body.Start,
		End:    body.End,
		Reason: body.Reason,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, exc)
}

// GET /api/v1/schedule/exceptions
func (h *ScheduleHandler) ListExceptions(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	excs, meta, err := h.svc.ListExceptions(c.Context(), claims.UserID, paging.Params{Page: q.Page, Limit: q.Limit})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, fiber.Map{"items": excs, "meta": meta})
}

// DELETE /api/v1/schedule/exceptions/:id
func (h *ScheduleHandler) DeleteException(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exception id")
	}

	if err := h.svc.DeleteException(c.Context(), claims.UserID, id); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Leaves
// ---------------------------------------------------------------------------

// POST /api/v1/schedule/leaves
func (h *ScheduleHandler) CreateLeave(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StartDate string `json:"startDate"` // YYYY-MM-DD
		EndDate   string `json:"endDate"`   // YYYY-MM-DD
		Reason    string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	start, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		return badRequest(c, "invalid startDate, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		return badRequest(c, "invalid endDate, expected YYYY-MM-DD")
	}

	leave, err := h.svc.CreateLeave(c.Context(), claims.UserID, scheduling.LeaveRequest{
		StartDate: start,
		EndDate:   end,
		Reason:    body.Reason,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, leave)
}

// GET /api/v1/schedule/leaves
func (h *ScheduleHandler) ListLeaves(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	leaves, meta, err := h.svc.ListLeaves(c.Context(), claims.UserID, paging.Params{Page: q.Page, Limit: q.Limit})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, fiber.Map{"items": leaves, "meta": meta})
}

// DELETE /api/v1/schedule/leaves/:id
func (h *ScheduleHandler) DeleteLeave(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid leave id")
	}

	if err := h.svc.DeleteLeave(c.Context(), claims.UserID, id); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Read-side views
// ---------------------------------------------------------------------------

// GET /api/v1/doctors/:id/schedule/day?date=YYYY-MM-DD
func (h *ScheduleHandler) DaySchedule(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	date := time.Now()
	if s := c.Query("date"); s != "" {
		date, err = time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
	}

	day, err := h.svc.DaySchedule(c.Context(), doctorID, date)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, day)
}

// GET /api/v1/doctors/:id/schedule/calendar?month=&year=
func (h *ScheduleHandler) Calendar(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		Month int `query:"month"`
		Year  int `query:"year"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	cal, err := h.svc.Calendar(c.Context(), doctorID, q.Month, q.Year)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, cal)
}

// GET /api/v1/doctors/:id/schedule/export?format=&startDate=&endDate=
func (h *ScheduleHandler) Export(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	req := scheduling.ExportRequest{Format: c.Query("format")}
	if s := c.Query("startDate"); s != "" {
		req.StartDate, err = time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "invalid startDate, expected YYYY-MM-DD")
		}
	}
	if s := c.Query("endDate"); s != "" {
		req.EndDate, err = time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "invalid endDate, expected YYYY-MM-DD")
		}
	}

	exp, err := h.svc.Export(c.Context(), doctorID, req)
	if err != nil {
		return mapScheduleError(c, err)
	}

	c.Set(fiber.HeaderContentType, exp.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exp.Filename))
	return c.Send(exp.Data)
}

// GET /api/v1/doctors/:id/schedule/availability?date=&start=
// Without start, returns the whole resolved day; with start, answers whether
// that slot is open.
func (h *ScheduleHandler) CheckAvailability(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		Date  string `query:"date"`
		Start string `query:"start"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	date, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	day, err := h.svc.DaySchedule(c.Context(), doctorID, date)
	if err != nil {
		return mapScheduleError(c, err)
	}

	if q.Start == "" {
		return ok(c, day)
	}

	available := false
	for _, slot := range day.Slots {
		if slot == q.Start {
			available = true
			break
		}
	}
	return ok(c, fiber.Map{"available": available, "date": q.Date, "start": q.Start})
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrWorkDayExists),
		errors.Is(err, scheduling.ErrExceptionExists),
		errors.Is(err, scheduling.ErrLeaveOverlap):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrDoctorNotFound),
		errors.Is(err, scheduling.ErrWorkDayNotFound),
		errors.Is(err, scheduling.ErrExceptionNotFound),
		errors.Is(err, scheduling.ErrLeaveNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, scheduling.ErrInvalidWeekday),
		errors.Is(err, scheduling.ErrInvalidTimeRange),
		errors.Is(err, scheduling.ErrInvalidDateRange),
		errors.Is(err, scheduling.ErrExceptionHasTimes),
		errors.Is(err, scheduling.ErrExceptionNoTimes),
		errors.Is(err, scheduling.ErrBadExportFormat):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
