package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageUnread   MessageStatus = "unread"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
	MessageSpam     MessageStatus = "spam"
)

type MessageType string

const (
	MessageContact  MessageType = "contact"
	MessageSupport  MessageType = "support"
	MessageInquiry  MessageType = "inquiry"
	MessageFeedback MessageType = "feedback"
)

// ContactMessage is a contact-form submission handled from the admin inbox.
type ContactMessage struct {
	ID           uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string        `json:"name" gorm:"not null"`
	Email        string        `json:"email" gorm:"not null"`
	Phone        *string       `json:"phone"`
	Company      *string       `json:"company"`
	Subject      string        `json:"subject" gorm:"not null"`
	Body         string        `json:"message" gorm:"column:body;not null"`
	Type         MessageType   `json:"type" gorm:"not null;default:'contact'"`
	Status       MessageStatus `json:"status" gorm:"not null;default:'unread';index"`
	IsStarred    bool          `json:"isStarred" gorm:"not null;default:false"`
	ReplyMessage *string       `json:"replyMessage"`
	RepliedAt    *time.Time    `json:"repliedAt"`
	RepliedBy    *uuid.UUID    `json:"repliedBy" gorm:"type:uuid"`
	ReadAt       *time.Time    `json:"readAt"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type MessageFilter struct {
	Search    string
	Status    *MessageStatus
	Type      *MessageType
	IsStarred *bool
}
