package models

import "time"

// Thread is a conversation between two users.
type Thread struct {
	ThreadID uint `gorm:"primaryKey" json:"thread_id"`

	SendingUserID uint `gorm:"not null" json:"sending_user_id"`
	SendingUser   User `gorm:"foreignKey:SendingUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ReceivingUserID uint `gorm:"not null" json:"receiving_user_id"`
	ReceivingUser   User `gorm:"foreignKey:ReceivingUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Messages []Message `gorm:"foreignKey:ThreadID" json:"messages"`

	CreatedAt time.Time `json:"created_at"`
}
