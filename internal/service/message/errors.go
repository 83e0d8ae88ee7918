package message

import "errors"

var (
	ErrNotFound          = errors.New("message not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrEmptyContent      = errors.New("message content is empty")
	ErrSelfMessage       = errors.New("cannot message yourself")
	ErrNotSender         = errors.New("only the sender can delete a message")
	ErrNotRecipient      = errors.New("only the recipient can mark a message read")
	ErrNotParticipant    = errors.New("not a participant in this message")
)
