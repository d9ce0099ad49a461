package services

import (
	"context"
	"errors"
	"strings"

	"smartstay/models"

	"gorm.io/gorm"
)

// RoomService reads room inventory. Rooms are managed elsewhere.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomSearchFilter struct {
	City     string
	RoomType string
	MinPrice float64
	MaxPrice float64
	Guests   int
	// Stay, when set, drops rooms with an active booking overlapping it.
	Stay *Stay
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("Hotel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, storageErr("get room", err)
	}
	return &room, nil
}

// Search lists bookable rooms matching f, cheapest first. Rooms under
// maintenance are never listed.
func (s *RoomService) Search(ctx context.Context, f RoomSearchFilter) ([]models.Room, error) {
	db := s.DB.WithContext(ctx)
	q := db.Model(&models.Room{}).
		Preload("Hotel").
		Where("rooms.status <> ?", models.RoomMaintenance)

	if city := strings.TrimSpace(f.City); city != "" {
		hotels := db.Model(&models.Hotel{}).
			Select("id").
			Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
		q = q.Where("rooms.hotel_id IN (?)", hotels)
	}
	if rt := strings.TrimSpace(f.RoomType); rt != "" {
		q = q.Where("rooms.room_type = ?", rt)
	}
	if f.MinPrice > 0 {
		q = q.Where("rooms.price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("rooms.price_per_night <= ?", f.MaxPrice)
	}
	if f.Guests > 0 {
		q = q.Where("rooms.capacity >= ?", f.Guests)
	}
	if f.Stay != nil {
		booked := activeDuring(*f.Stay)(db.Model(&models.Booking{}).Select("room_id"))
		q = q.Where("rooms.id NOT IN (?)", booked)
	}

	var rooms []models.Room
	if err := q.Order("rooms.price_per_night ASC").Order("rooms.id ASC").Find(&rooms).Error; err != nil {
		return nil, storageErr("search rooms", err)
	}
	return rooms, nil
}
