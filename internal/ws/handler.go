package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dermee/dermee_backend/internal/repo"
	"github.com/dermee/dermee_backend/internal/service/message"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
)

// Inbound frame. The event name selects the operation, data carries its
// arguments.
type clientFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Outbound frame.
type serverFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type createMessageData struct {
	RecipientID uuid.UUID `json:"recipientId"`
	Content     string    `json:"content"`
}

type conversationData struct {
	UserID uuid.UUID `json:"userId"`
}

type messageIDData struct {
	ID uuid.UUID `json:"id"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; tighten in production.
	},
}

// Handler upgrades HTTP connections, authenticates them and routes chat
// events to the message service.
type Handler struct {
	hub      *Hub
	paseto   *pasetotoken.Manager
	messages message.Service
}

func NewHandler(hub *Hub, paseto *pasetotoken.Manager, messages message.Service) *Handler {
	return &Handler{hub: hub, paseto: paseto, messages: messages}
}

// ServeHTTP authenticates the request, upgrades it and starts the pumps.
// The token comes from the Authorization header or, for browser clients that
// cannot set headers on WebSocket requests, the token query parameter.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws: upgrade failed", "error", err)
		return
	}

	client := &Client{
		UserID: userID,
		Send:   make(chan []byte, 256),
	}
	h.hub.Register(client)

	go h.writePump(client, conn)
	go h.readPump(client, conn)
}

func (h *Handler) authenticate(r *http.Request) (uuid.UUID, bool) {
	token := r.URL.Query().Get("token")
	if token == "" {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
	}
	if token == "" {
		return uuid.Nil, false
	}

	claims, err := h.paseto.Verify(token)
	if err != nil || claims.Type != pasetotoken.TokenTypeAccess {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (h *Handler) readPump(client *Client, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			client.reply(frame.Event, nil, "malformed frame")
			continue
		}

		h.dispatch(client, frame)
	}
}

func (h *Handler) writePump(client *Client, conn *websocket.Conn) {
	defer conn.Close()

	for payload := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (h *Handler) dispatch(client *Client, frame clientFrame) {
	ctx := context.Background()

	switch frame.Event {
	case "createMessage":
		var data createMessageData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			client.reply(frame.Event, nil, "malformed frame")
			return
		}
		msg, err := h.messages.Send(ctx, client.UserID, message.SendRequest{
			RecipientID: data.RecipientID,
			Content:     data.Content,
		})
		if err != nil {
			client.reply(frame.Event, nil, errorText(err))
			return
		}
		// Delivery to the recipient rides the message.new event so REST
		// and socket sends share one path.
		client.reply(frame.Event, msg, "")

	case "findAllMessages":
		var data conversationData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			client.reply(frame.Event, nil, "malformed frame")
			return
		}
		msgs, err := h.messages.Conversation(ctx, client.UserID, data.UserID)
		if err != nil {
			client.reply(frame.Event, nil, errorText(err))
			return
		}
		client.reply(frame.Event, msgs, "")

	case "findOneMessage":
		var data messageIDData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			client.reply(frame.Event, nil, "malformed frame")
			return
		}
		msg, err := h.messages.GetByID(ctx, client.UserID, data.ID)
		if err != nil {
			client.reply(frame.Event, nil, errorText(err))
			return
		}
		client.reply(frame.Event, msg, "")

	case "markMessageRead":
		var data messageIDData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			client.reply(frame.Event, nil, "malformed frame")
			return
		}
		msg, err := h.messages.MarkRead(ctx, client.UserID, data.ID)
		if err != nil {
			client.reply(frame.Event, nil, errorText(err))
			return
		}
		client.reply(frame.Event, msg, "")

	case "removeMessage":
		var data messageIDData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			client.reply(frame.Event, nil, "malformed frame")
			return
		}
		if err := h.messages.Delete(ctx, client.UserID, data.ID); err != nil {
			client.reply(frame.Event, nil, errorText(err))
			return
		}
		client.reply(frame.Event, messageIDData{ID: data.ID}, "")

	default:
		client.reply(frame.Event, nil, "unknown event")
	}
}

// PushMessage delivers a freshly stored message to the recipient's open
// connections, if any.
func (h *Handler) PushMessage(msg *repo.Message) {
	payload, err := json.Marshal(serverFrame{Event: "message.new", Data: msg})
	if err != nil {
		slog.Error("ws: marshal push failed", "error", err)
		return
	}
	h.hub.SendToUser(msg.RecipientID, payload)
}

func (c *Client) reply(event string, data any, errText string) {
	payload, err := json.Marshal(serverFrame{Event: event, Data: data, Error: errText})
	if err != nil {
		slog.Error("ws: marshal reply failed", "error", err)
		return
	}
	select {
	case c.Send <- payload:
	default:
	}
}

// errorText maps service errors to client-safe strings. Sentinel errors are
// shown verbatim; anything else is masked.
func errorText(err error) string {
	for _, known := range []error{
		message.ErrNotFound,
		message.ErrRecipientNotFound,
		message.ErrEmptyContent,
		message.ErrSelfMessage,
		message.ErrNotSender,
		message.ErrNotRecipient,
		message.ErrNotParticipant,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	slog.Error("ws: message operation failed", "error", err)
	return "internal error"
}
