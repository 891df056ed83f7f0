package domain_test

import (
	"testing"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bosch GSB 180-LI", "bosch-gsb-180-li"},
		{"  Power Tools  ", "power-tools"},
		{"100% Cotton Gloves", "100-cotton-gloves"},
		{"Ünïcode Náme", "n-code-n-me"},
		{"---already---dashed---", "already-dashed"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Slugify(tt.in))
		})
	}
}

func TestCalculateStockStatus(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      domain.StockStatus
	}{
		{"plenty", 50, 5, domain.StockInStock},
		{"at threshold", 5, 5, domain.StockLowStock},
		{"below threshold", 2, 5, domain.StockLowStock},
		{"just above threshold", 6, 5, domain.StockInStock},
		{"zero", 0, 5, domain.StockOutOfStock},
		{"negative treated as out", -1, 5, domain.StockOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CalculateStockStatus(tt.quantity, tt.threshold))
		})
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"past expiry", now.Add(-time.Second), true},
		{"exactly now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Session{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.Expired(now))
		})
	}
}

func TestOrderStatusCanTransition(t *testing.T) {
	tests := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
		want bool
	}{
		{domain.OrderPending, domain.OrderConfirmed, true},
		{domain.OrderPending, domain.OrderCancelled, true},
		{domain.OrderPending, domain.OrderDelivered, false},
		{domain.OrderConfirmed, domain.OrderProcessing, true},
		{domain.OrderProcessing, domain.OrderShipped, true},
		{domain.OrderShipped, domain.OrderDelivered, true},
		{domain.OrderShipped, domain.OrderCancelled, false},
		{domain.OrderDelivered, domain.OrderRefunded, true},
		{domain.OrderCancelled, domain.OrderPending, false},
		{domain.OrderRefunded, domain.OrderConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}
