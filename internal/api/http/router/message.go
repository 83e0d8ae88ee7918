package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dermee/dermee_backend/internal/api/http/handler"
	"github.com/dermee/dermee_backend/pkg/authorize"
)

func (r *Router) registerMessageRoutes(
	api fiber.Router,
	mh *handler.MessageHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	chat := api.Group("/chat", authRequired)

	chat.Post("/", requirePerm(authorize.ResourceMessage, authorize.ActionCreate), mh.Send)
	chat.Get("/:userId", requirePerm(authorize.ResourceMessage, authorize.ActionRead), mh.Conversation)

	msgs := chat.Group("/messages")
	msgs.Get("/:id", requirePerm(authorize.ResourceMessage, authorize.ActionRead), mh.GetByID)
	msgs.Patch("/:id/read", requirePerm(authorize.ResourceMessage, authorize.ActionRead), mh.MarkRead)
	msgs.Delete("/:id", requirePerm(authorize.ResourceMessage, authorize.ActionDelete), mh.Delete)
}
