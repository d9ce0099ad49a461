package models

import (
	"gorm.io/gorm"
)

// RoomStatus is informational only. Whether a room can be booked for a
// stay is derived from the bookings table, never from this field.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomBooked      RoomStatus = "booked"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	gorm.Model

	HotelID       uint       `json:"hotel_id" gorm:"column:hotel_id;not null;uniqueIndex:idx_rooms_hotel_number,priority:1"`
	RoomNumber    string     `json:"room_number" gorm:"column:room_number;type:varchar(50);not null;uniqueIndex:idx_rooms_hotel_number,priority:2"`
	RoomType      string     `json:"room_type" gorm:"column:room_type;type:varchar(50);not null"`
	Capacity      int        `json:"capacity" gorm:"column:capacity;not null"`
	PricePerNight float64    `json:"price_per_night" gorm:"column:price_per_night;type:decimal(10,2);not null"`
	Description   string     `json:"description" gorm:"type:text"`
	Amenities     string     `json:"amenities" gorm:"type:text"`
	Status        RoomStatus `json:"status" gorm:"column:status;type:varchar(16);default:available"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
