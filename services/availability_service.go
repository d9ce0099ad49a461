package services

import (
	"context"
	"time"

	"smartstay/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room is free for a stay. It never writes.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// activeDuring keeps active bookings whose [check_in, check_out) intersects stay.
func activeDuring(stay Stay) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("status IN ?", models.ActiveStatuses).
			Where("check_in_date < ? AND check_out_date > ?", stay.CheckOut, stay.CheckIn)
	}
}

// activeOverlapping narrows activeDuring to one room, optionally ignoring one booking.
func activeOverlapping(roomID uint, stay Stay, excludeRef string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = activeDuring(stay)(db.Where("room_id = ?", roomID))
		if excludeRef != "" {
			db = db.Where("booking_ref <> ?", excludeRef)
		}
		return db
	}
}

// countOverlapping runs the overlap test on db, which may be a transaction.
func countOverlapping(db *gorm.DB, roomID uint, stay Stay, excludeRef string) (int64, error) {
	var n int64
	err := db.Model(&models.Booking{}).
		Scopes(activeOverlapping(roomID, stay, excludeRef)).
		Count(&n).Error
	return n, err
}

func (s *AvailabilityService) IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeRef string) (bool, error) {
	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	n, err := countOverlapping(s.DB.WithContext(ctx), roomID, stay, excludeRef)
	if err != nil {
		return false, storageErr("check availability", err)
	}
	return n == 0, nil
}
