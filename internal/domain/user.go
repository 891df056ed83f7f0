package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"` // stored lowercase
	PasswordHash string     `json:"-" gorm:"not null"`
	Name         string     `json:"name" gorm:"not null"`
	Role         Role       `json:"role" gorm:"not null;default:'customer'"`
	Company      *string    `json:"company"`
	Phone        *string    `json:"phone"`
	Avatar       *string    `json:"avatar"`
	IsActive     bool       `json:"isActive" gorm:"not null;default:true"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// PublicUser is the user shape exposed to clients and embedded in
// validated sessions. It never carries the password hash.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	Company  *string   `json:"company"`
	Avatar   *string   `json:"avatar"`
	IsActive bool      `json:"isActive"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		Company:  u.Company,
		Avatar:   u.Avatar,
		IsActive: u.IsActive,
	}
}

// Session is one authenticated browser context. A session is valid iff
// now < ExpiresAt and the owning user is still active; a read that
// observes either condition failing must delete the row.
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
