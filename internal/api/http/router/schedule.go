package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dermee/dermee_backend/internal/api/http/handler"
	"github.com/dermee/dermee_backend/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Doctor self-service; ownership is derived from the token, so the
	// permission check only gates the role.
	schedule := api.Group("/schedule", authRequired)

	schedule.Post("/workdays", requirePerm(authorize.ResourceWorkDay, authorize.ActionCreate), sh.CreateWorkDay)
	schedule.Patch("/workdays", requirePerm(authorize.ResourceWorkDay, authorize.ActionUpdate), sh.UpdateWorkDay)

	schedule.Get("/exceptions", requirePerm(authorize.ResourceScheduleException, authorize.ActionRead), sh.ListExceptions)
	schedule.Post("/exceptions", requirePerm(authorize.ResourceScheduleException, authorize.ActionCreate), sh.CreateException)
	schedule.Delete("/exceptions/:id", requirePerm(authorize.ResourceScheduleException, authorize.ActionDelete), sh.DeleteException)

	schedule.Get("/leaves", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionRead), sh.ListLeaves)
	schedule.Post("/leaves", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionCreate), sh.CreateLeave)
	schedule.Delete("/leaves/:id", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionDelete), sh.DeleteLeave)
}
