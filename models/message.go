package models

// MaxMessageLength is the longest message_text accepted, counted in runes.
const MaxMessageLength = 255

type Message struct {
	MessageID       int    `gorm:"column:message_id;primaryKey;autoIncrement" json:"message_id"`
	PostedBy        int    `gorm:"column:posted_by;index;not null" json:"posted_by"`
	MessageText     string `gorm:"column:message_text;size:255;not null" json:"message_text" validate:"min=1,max=255"`
	TimePostedEpoch int64  `gorm:"column:time_posted_epoch" json:"time_posted_epoch"`
}

func (Message) TableName() string { return "Message" }
