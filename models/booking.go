package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking rows are never deleted; cancellation is a status change.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"-"`

	BookingRef string `gorm:"column:booking_ref;size:32;uniqueIndex;not null" json:"booking_ref"`
	UserID     uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	RoomID     uint   `gorm:"column:room_id;not null;index:idx_bookings_room_dates,priority:1" json:"room_id"`
	HotelID    uint   `gorm:"column:hotel_id;index" json:"hotel_id"`

	CheckInDate  datatypes.Date `gorm:"column:check_in_date;not null;index:idx_bookings_room_dates,priority:2" json:"check_in_date"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date;not null;index:idx_bookings_room_dates,priority:3" json:"check_out_date"`

	NumberOfGuests  int           `gorm:"column:number_of_guests;not null" json:"number_of_guests"`
	TotalPrice      float64       `gorm:"column:total_price;type:decimal(10,2);not null" json:"total_price"`
	Status          BookingStatus `gorm:"column:status;type:varchar(16);not null;default:confirmed;index" json:"status"`
	SpecialRequests string        `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Nights is the number of whole days between check-in and check-out.
func (b Booking) Nights() int {
	in, out := time.Time(b.CheckInDate), time.Time(b.CheckOutDate)
	return int(out.Sub(in).Hours() / 24)
}
