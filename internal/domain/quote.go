package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteReviewed  QuoteStatus = "reviewed"
	QuoteSent      QuoteStatus = "sent"
	QuoteAccepted  QuoteStatus = "accepted"
	QuoteRejected  QuoteStatus = "rejected"
	QuoteExpired   QuoteStatus = "expired"
	QuoteConverted QuoteStatus = "converted"
)

type QuoteItem struct {
	ProductID   *uuid.UUID `json:"productId"`
	ProductName string     `json:"productName"`
	Description *string    `json:"description"`
	Quantity    int        `json:"quantity"`
	UnitPrice   *float64   `json:"unitPrice"`
	TotalPrice  *float64   `json:"totalPrice"`
}

type Quote struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	QuoteNumber     string         `json:"quoteNumber" gorm:"uniqueIndex;not null"`
	CustomerID      *uuid.UUID     `json:"customerId" gorm:"type:uuid;index"`
	CustomerName    string         `json:"customerName" gorm:"not null"`
	CustomerEmail   string         `json:"customerEmail" gorm:"not null"`
	CustomerPhone   *string        `json:"customerPhone"`
	Company         *string        `json:"company"`
	Items           datatypes.JSON `json:"items" gorm:"type:jsonb;not null"`
	Subtotal        *float64       `json:"subtotal"`
	Discount        float64        `json:"discount" gorm:"not null;default:0"`
	Total           *float64       `json:"total"`
	Currency        Currency       `json:"currency" gorm:"not null;default:'USD'"`
	Status          QuoteStatus    `json:"status" gorm:"not null;default:'pending';index"`
	ValidUntil      *time.Time     `json:"validUntil"`
	CustomerMessage *string        `json:"customerMessage"`
	InternalNotes   *string        `json:"internalNotes"`
	ResponseMessage *string        `json:"responseMessage"`
	OrderID         *uuid.UUID     `json:"orderId" gorm:"type:uuid"`
	ReviewedAt      *time.Time     `json:"reviewedAt"`
	SentAt          *time.Time     `json:"sentAt"`
	RespondedAt     *time.Time     `json:"respondedAt"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type QuoteFilter struct {
	Search     string
	Status     *QuoteStatus
	CustomerID *uuid.UUID
}
