package services

import (
	"context"
	"errors"

	"smartstay/models"

	"gorm.io/gorm"
)

// HotelService reads hotels together with their bookable rooms.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// GetByID loads a hotel and its rooms, cheapest first. Rooms under
// maintenance are left out.
func (s *HotelService) GetByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.
				Where("status <> ?", models.RoomMaintenance).
				Order("price_per_night ASC").
				Order("id ASC")
		}).
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, storageErr("get hotel", err)
	}
	return &hotel, nil
}
