package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dermee/dermee_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, sh *handler.ScheduleHandler, authRequired fiber.Handler) {
	users := api.Group("/users", authRequired)
	users.Get("/me", h.Me)

	// Doctor directory and schedule read-side; browsable by any signed-in user.
	doctors := api.Group("/doctors", authRequired)
	doctors.Get("/", h.ListDoctors)
	doctors.Get("/:id", h.GetDoctor)
	doctors.Get("/:id/schedule/day", sh.DaySchedule)
	doctors.Get("/:id/schedule/calendar", sh.Calendar)
	doctors.Get("/:id/schedule/export", sh.Export)
	doctors.Get("/:id/schedule/availability", sh.CheckAvailability)
}
