package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/service/paging"
	"github.com/dermee/dermee_backend/internal/service/user"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	profile, err := h.svc.Me(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, profile)
}

// GET /api/v1/doctors
func (h *UserHandler) ListDoctors(c fiber.Ctx) error {
	var q struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	doctors, meta, err := h.svc.ListDoctors(c.Context(), paging.Params{Page: q.Page, Limit: q.Limit})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"items": doctors, "meta": meta})
}

// GET /api/v1/doctors/:id
func (h *UserHandler) GetDoctor(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	doctor, err := h.svc.GetDoctor(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, doctor)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrDoctorNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
