package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"SocialMedia/models"
)

type MessageService struct {
	messages MessageStore
	accounts AccountStore
	log      logrus.FieldLogger
}

func NewMessageService(messages MessageStore, accounts AccountStore, log logrus.FieldLogger) *MessageService {
	return &MessageService{messages: messages, accounts: accounts, log: log.WithField("service", "message")}
}

// CreateMessage validates message_text, confirms posted_by names an existing
// account and inserts the message. The author check is a read before the
// write, not a database constraint.
func (s *MessageService) CreateMessage(ctx context.Context, candidate *models.Message) (*models.Message, error) {
	if candidate == nil {
		return nil, ErrInvalidMessage
	}
	if err := validateStruct(candidate, ErrInvalidMessage); err != nil {
		return nil, err
	}
	if s.accounts.FindByID(ctx, candidate.PostedBy) == nil {
		s.log.WithField("posted_by", candidate.PostedBy).Info("message rejected: unknown author")
		return nil, ErrAuthorNotFound
	}

	created := s.messages.Insert(ctx, candidate)
	if created == nil {
		return nil, ErrMessageCreateFailed
	}
	return created, nil
}

// GetMessage returns nil when no message has the id.
func (s *MessageService) GetMessage(ctx context.Context, id int) *models.Message {
	return s.messages.FindByID(ctx, id)
}

func (s *MessageService) ListMessages(ctx context.Context) []models.Message {
	return s.messages.FindAll(ctx)
}

func (s *MessageService) ListMessagesByAccount(ctx context.Context, accountID int) []models.Message {
	return s.messages.FindByPostedBy(ctx, accountID)
}

// UpdateMessageText replaces message_text on an existing message and returns
// the row as re-read from storage. Either the text changes and the fresh row is
// returned, or nothing is written.
func (s *MessageService) UpdateMessageText(ctx context.Context, id int, text string) (*models.Message, error) {
	if s.messages.FindByID(ctx, id) == nil {
		return nil, ErrMessageNotFound
	}
	if err := validateMessageText(text); err != nil {
		return nil, err
	}
	if s.messages.UpdateText(ctx, id, text) == 0 {
		return nil, ErrMessageUpdateFailed
	}

	updated := s.messages.FindByID(ctx, id)
	if updated == nil {
		// deleted between the update and the re-read
		return nil, ErrMessageUpdateFailed
	}
	return updated, nil
}

// DeleteMessage removes the message and returns it as it was before deletion.
// A missing id is a no-op and returns nil.
func (s *MessageService) DeleteMessage(ctx context.Context, id int) *models.Message {
	existing := s.messages.FindByID(ctx, id)
	if existing == nil {
		return nil
	}
	if s.messages.DeleteByID(ctx, id) == 0 {
		s.log.WithField("message_id", id).Warn("delete affected no rows after lookup")
	}
	return existing
}
