package message

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/dermee/dermee_backend/internal/repo"
	entmsg "github.com/dermee/dermee_backend/internal/repo/message"
	entuser "github.com/dermee/dermee_backend/internal/repo/user"
)

const conversationWindow = 50

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SendRequest struct {
	RecipientID uuid.UUID
	Content     string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Send(ctx context.Context, senderID uuid.UUID, req SendRequest) (*repo.Message, error)
	Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]*repo.Message, error)
	GetByID(ctx context.Context, userID, messageID uuid.UUID) (*repo.Message, error)
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) (*repo.Message, error)
	Delete(ctx context.Context, userID, messageID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type messageService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &messageService{db: db, nc: nc}
}

func (s *messageService) Send(ctx context.Context, senderID uuid.UUID, req SendRequest) (*repo.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if req.RecipientID == senderID {
		return nil, ErrSelfMessage
	}

	exists, err := s.db.User.Query().
		Where(entuser.ID(req.RecipientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check recipient: %w", err)
	}
	if !exists {
		return nil, ErrRecipientNotFound
	}

	msg, err := s.db.Message.Create().
		SetSenderID(senderID).
		SetRecipientID(req.RecipientID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	// Wake the recipient's live connection, if any.
	if s.nc != nil {
		subject := fmt.Sprintf("dermee.message.new.%s", req.RecipientID.String())
		_ = s.nc.Publish(subject, []byte(msg.ID.String()))
	}

	return msg, nil
}

// Conversation returns the most recent window of the thread between two
// users, oldest first.
func (s *messageService) Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]*repo.Message, error) {
	msgs, err := s.db.Message.Query().
		Where(
			entmsg.DeletedAtIsNil(),
			entmsg.Or(
				entmsg.And(entmsg.SenderID(userID), entmsg.RecipientID(otherID)),
				entmsg.And(entmsg.SenderID(otherID), entmsg.RecipientID(userID)),
			),
		).
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Limit(conversationWindow).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}

	// Query is newest-first to bound the window; clients read oldest-first.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (s *messageService) GetByID(ctx context.Context, userID, messageID uuid.UUID) (*repo.Message, error) {
	msg, err := s.db.Message.Query().
		Where(
			entmsg.ID(messageID),
			entmsg.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	if msg.SenderID != userID && msg.RecipientID != userID {
		return nil, ErrNotParticipant
	}
	return msg, nil
}

func (s *messageService) MarkRead(ctx context.Context, userID, messageID uuid.UUID) (*repo.Message, error) {
	msg, err := s.GetByID(ctx, userID, messageID)
	if err != nil {
		return nil, err
	}
	if msg.RecipientID != userID {
		return nil, ErrNotRecipient
	}
	if msg.ReadAt != nil {
		return msg, nil
	}

	updated, err := s.db.Message.UpdateOne(msg).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark message read: %w", err)
	}
	return updated, nil
}

func (s *messageService) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	msg, err := s.db.Message.Query().
		Where(
			entmsg.ID(messageID),
			entmsg.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get message: %w", err)
	}

	if msg.SenderID != userID {
		return ErrNotSender
	}

	return s.db.Message.UpdateOne(msg).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}
