package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// orderTransitions lists the allowed forward moves for each status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderRefunded},
	OrderCancelled:  {},
	OrderRefunded:   {},
}

// CanTransition reports whether an order may move from one status to another.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	ProductSKU  string    `json:"productSku"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	TotalPrice  float64   `json:"totalPrice"`
}

type ShippingAddress struct {
	Name       string  `json:"name"`
	Company    *string `json:"company"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Region     *string `json:"region"`
	PostalCode *string `json:"postalCode"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone"`
}

type Order struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber   string         `json:"orderNumber" gorm:"uniqueIndex;not null"`
	CustomerID    uuid.UUID      `json:"customerId" gorm:"type:uuid;index;not null"`
	CustomerName  string         `json:"customerName" gorm:"not null"`
	CustomerEmail string         `json:"customerEmail" gorm:"not null"`
	CustomerPhone *string        `json:"customerPhone"`
	Items         datatypes.JSON `json:"items" gorm:"type:jsonb;not null"`
	ItemCount     int            `json:"itemCount" gorm:"not null"`
	Subtotal      float64        `json:"subtotal" gorm:"not null"`
	ShippingCost  float64        `json:"shippingCost" gorm:"not null;default:0"`
	Tax           float64        `json:"tax" gorm:"not null;default:0"`
	Discount      float64        `json:"discount" gorm:"not null;default:0"`
	Total         float64        `json:"total" gorm:"not null"`
	Currency      Currency       `json:"currency" gorm:"not null;default:'USD'"`
	Status        OrderStatus    `json:"status" gorm:"not null;default:'pending';index"`
	PaymentStatus PaymentStatus  `json:"paymentStatus" gorm:"not null;default:'pending'"`
	PaymentMethod *string        `json:"paymentMethod"`
	ShippingAddr  datatypes.JSON `json:"shippingAddress" gorm:"column:shipping_address;type:jsonb;not null"`
	CustomerNote  *string        `json:"customerNote"`
	InternalNote  *string        `json:"internalNote"`
	PaidAt        *time.Time     `json:"paidAt"`
	ShippedAt     *time.Time     `json:"shippedAt"`
	DeliveredAt   *time.Time     `json:"deliveredAt"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type OrderFilter struct {
	Search        string
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	CustomerID    *uuid.UUID
	DateFrom      *time.Time
	DateTo        *time.Time
}
