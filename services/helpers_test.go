package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smartstay/config"
	"smartstay/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

var refSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open(sqlite.Open(":memory:"), "silent")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64, capacity int) models.Room {
	t.Helper()
	hotel := models.Hotel{Name: "Hotel " + number, City: "Lisbon", Address: "Rua 1"}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{
		HotelID:       hotel.ID,
		RoomNumber:    number,
		RoomType:      "Double",
		Capacity:      capacity,
		PricePerNight: price,
		Status:        models.RoomAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

// insertBooking writes a row directly, bypassing the ledger checks.
func insertBooking(t *testing.T, db *gorm.DB, room models.Room, userID uint, in, out string, status models.BookingStatus) models.Booking {
	t.Helper()
	stay, err := ParseStay(in, out)
	require.NoError(t, err)
	b := models.Booking{
		BookingRef:     fmt.Sprintf("TEST%06d", refSeq.Add(1)),
		UserID:         userID,
		RoomID:         room.ID,
		HotelID:        room.HotelID,
		CheckInDate:    datatypes.Date(stay.CheckIn),
		CheckOutDate:   datatypes.Date(stay.CheckOut),
		NumberOfGuests: 1,
		TotalPrice:     float64(stay.Nights()) * room.PricePerNight,
		Status:         status,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func newTestBookingService(db *gorm.DB, opts ...BookingOption) *BookingService {
	base := []BookingOption{
		WithClock(func() time.Time { return testNow }),
		WithLocation(time.UTC),
	}
	return NewBookingService(db, append(base, opts...)...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []BookingEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Events() []BookingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]BookingEvent(nil), p.events...)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, BookingEvent) error {
	return errors.New("broker down")
}
