package models

import "time"

type Hotel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	City        string    `gorm:"size:100;not null;index" json:"city"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Email       string    `gorm:"size:150" json:"email"`
	Rating      float64   `gorm:"type:decimal(2,1);default:4.5" json:"rating"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
