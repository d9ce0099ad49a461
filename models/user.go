package models

import "time"

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// User is owned by the identity surface; the booking core only stores its ID.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Role         string    `gorm:"size:16;not null;default:guest" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
