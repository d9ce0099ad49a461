package services

import (
	"errors"
	"fmt"
	"testing"

	"smartstay/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestStorageErrPassesDomainErrorsThrough(t *testing.T) {
	assert.Nil(t, storageErr("op", nil))
	assert.Same(t, ErrRoomUnavailable, storageErr("op", ErrRoomUnavailable))

	wrapped := fmt.Errorf("context: %w", ErrPastDate)
	assert.Equal(t, wrapped, storageErr("op", wrapped))

	inner := &StorageError{Op: "first", Err: errors.New("boom")}
	assert.Equal(t, error(inner), storageErr("second", inner))

	raw := errors.New("connection reset")
	err := storageErr("read", raw)
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "read", se.Op)
	assert.ErrorIs(t, err, raw)
	assert.Equal(t, "storage: read: connection reset", err.Error())
}

func TestDuplicateBookingRefIsDetected(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "301", 50, 2)
	first := insertBooking(t, db, room, 1, "2030-07-01", "2030-07-02", models.StatusConfirmed)

	dup := models.Booking{
		BookingRef:     first.BookingRef,
		UserID:         2,
		RoomID:         room.ID,
		CheckInDate:    datatypes.Date(day("2030-08-01")),
		CheckOutDate:   datatypes.Date(day("2030-08-02")),
		NumberOfGuests: 1,
		Status:         models.StatusConfirmed,
	}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))
	assert.False(t, isDuplicateKey(errors.New("no such table: rooms")))
	assert.False(t, isDuplicateKey(errors.New("duplicate column name: status")), "only driver-level unique violations count")
	assert.True(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.False(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1213, Message: "Deadlock found"}))
}
