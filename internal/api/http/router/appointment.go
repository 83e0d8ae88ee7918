package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dermee/dermee_backend/internal/api/http/handler"
	"github.com/dermee/dermee_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)
	appts.Get("/doctor", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.ListForDoctor)
	appts.Get("/doctor/day", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.ListDayForDoctor)
	appts.Get("/patient", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.ListForPatient)

	a := appts.Group("/:id")
	a.Post("/approve", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Approve)
	a.Post("/reject", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Reject)
	a.Post("/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Reschedule)
	a.Delete("/", requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), ah.Cancel)
}
