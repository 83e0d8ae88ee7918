package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dermee/dermee_backend/internal/service/message"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
)

// MessageHandler is the REST mirror of the websocket chat events, for clients
// that cannot hold a socket open.
type MessageHandler struct {
	svc message.Service
}

func NewMessageHandler(svc message.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// POST /api/v1/chat
func (h *MessageHandler) Send(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		RecipientID string `json:"recipientId"`
		Content     string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	recipientID, err := uuid.Parse(body.RecipientID)
	if err != nil {
		return badRequest(c, "invalid recipientId")
	}

	msg, err := h.svc.Send(c.Context(), claims.UserID, message.SendRequest{
		RecipientID: recipientID,
		Content:     body.Content,
	})
	if err != nil {
		return mapMessageError(c, err)
	}
	return created(c, msg)
}

// GET /api/v1/chat/:userId
func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	msgs, err := h.svc.Conversation(c.Context(), claims.UserID, otherID)
	if err != nil {
		return mapMessageError(c, err)
	}
	return ok(c, msgs)
}

// GET /api/v1/chat/messages/:id
func (h *MessageHandler) GetByID(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.GetByID(c.Context(), claims.UserID, id)
	if err != nil {
		return mapMessageError(c, err)
	}
	return ok(c, msg)
}

// PATCH /api/v1/chat/messages/:id/read
func (h *MessageHandler) MarkRead(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.MarkRead(c.Context(), claims.UserID, id)
	if err != nil {
		return mapMessageError(c, err)
	}
	return ok(c, msg)
}

// DELETE /api/v1/chat/messages/:id
func (h *MessageHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapMessageError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapMessageError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, message.ErrNotFound),
		errors.Is(err, message.ErrRecipientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, message.ErrEmptyContent),
		errors.Is(err, message.ErrSelfMessage):
		return badRequest(c, err.Error())
	case errors.Is(err, message.ErrNotSender),
		errors.Is(err, message.ErrNotRecipient),
		errors.Is(err, message.ErrNotParticipant):
		return forbidden(c)
	default:
		return internalError(c)
	}
}
