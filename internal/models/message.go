package models

import "time"

type Message struct {
	MessageID uint `gorm:"primaryKey" json:"message_id"`

	ThreadID uint   `gorm:"not null" json:"thread_id"`
	Thread   Thread `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	HasActiveMessage bool   `gorm:"default:true" json:"has_active_message"`
	Text             string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
