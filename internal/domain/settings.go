package domain

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettings is a singleton row (ID is always 1).
type SiteSettings struct {
	ID                     int            `json:"-" gorm:"primaryKey"`
	SiteName               string         `json:"siteName" gorm:"not null"`
	SiteDescription        string         `json:"siteDescription"`
	ContactEmail           string         `json:"contactEmail" gorm:"not null"`
	ContactPhone           string         `json:"contactPhone"`
	Address                string         `json:"address"`
	Currency               Currency       `json:"currency" gorm:"not null;default:'USD'"`
	TaxRate                float64        `json:"taxRate" gorm:"not null;default:0"`
	ShippingFee            float64        `json:"shippingFee" gorm:"not null;default:0"`
	FreeShippingThreshold  *float64       `json:"freeShippingThreshold"`
	OrderNotificationEmail string         `json:"orderNotificationEmail"`
	LowStockAlertThreshold int            `json:"lowStockAlertThreshold" gorm:"not null;default:5"`
	EnableEmailNotifs      bool           `json:"enableEmailNotifications" gorm:"column:enable_email_notifications;not null;default:true"`
	SocialLinks            datatypes.JSON `json:"socialLinks" gorm:"type:jsonb;default:'{}'"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

const SiteSettingsID = 1

// DefaultSiteSettings returns the row written on first boot.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:                     SiteSettingsID,
		SiteName:               "Motico Solutions",
		SiteDescription:        "Industrial products distributor",
		ContactEmail:           "info@moticosolutions.com",
		Currency:               CurrencyUSD,
		TaxRate:                0.11,
		ShippingFee:            10,
		LowStockAlertThreshold: 5,
		EnableEmailNotifs:      true,
		SocialLinks:            datatypes.JSON([]byte(`{}`)),
	}
}

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders      int64   `json:"totalOrders"`
	PendingOrders    int64   `json:"pendingOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingQuotes    int64   `json:"pendingQuotes"`
	UnreadMessages   int64   `json:"unreadMessages"`
	TotalCustomers   int64   `json:"totalCustomers"`
	ActiveProducts   int64   `json:"activeProducts"`
	LowStockProducts int64   `json:"lowStockProducts"`
}
