package storage

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"SocialMedia/models"
)

// MessageStore runs parameterized queries against the Message table, with the
// same failure policy as AccountStore.
type MessageStore struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewMessageStore(db *gorm.DB, log logrus.FieldLogger) *MessageStore {
	return &MessageStore{db: db, log: log.WithField("table", models.Message{}.TableName())}
}

func (s *MessageStore) FindAll(ctx context.Context) []models.Message {
	messages := []models.Message{}
	if err := s.db.WithContext(ctx).Order("message_id").Find(&messages).Error; err != nil {
		logFailure(s.log, "find_all", err)
		return []models.Message{}
	}
	return messages
}

func (s *MessageStore) FindByID(ctx context.Context, id int) *models.Message {
	var message models.Message
	if err := s.db.WithContext(ctx).Where("message_id = ?", id).First(&message).Error; err != nil {
		logFailure(s.log, "find_by_id", err)
		return nil
	}
	return &message
}

func (s *MessageStore) FindByPostedBy(ctx context.Context, accountID int) []models.Message {
	messages := []models.Message{}
	if err := s.db.WithContext(ctx).Where("posted_by = ?", accountID).Order("message_id").Find(&messages).Error; err != nil {
		logFailure(s.log, "find_by_posted_by", err)
		return []models.Message{}
	}
	return messages
}

// Insert stores the message and returns it with the generated message_id.
func (s *MessageStore) Insert(ctx context.Context, message *models.Message) *models.Message {
	row := models.Message{
		PostedBy:        message.PostedBy,
		MessageText:     message.MessageText,
		TimePostedEpoch: message.TimePostedEpoch,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		logFailure(s.log, "insert", err)
		return nil
	}
	return &row
}

func (s *MessageStore) UpdateText(ctx context.Context, id int, text string) int64 {
	res := s.db.WithContext(ctx).Model(&models.Message{}).Where("message_id = ?", id).Update("message_text", text)
	if res.Error != nil {
		logFailure(s.log, "update_text", res.Error)
		return 0
	}
	return res.RowsAffected
}

func (s *MessageStore) DeleteByID(ctx context.Context, id int) int64 {
	res := s.db.WithContext(ctx).Where("message_id = ?", id).Delete(&models.Message{})
	if res.Error != nil {
		logFailure(s.log, "delete_by_id", res.Error)
		return 0
	}
	return res.RowsAffected
}
