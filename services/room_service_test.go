package services

import (
	"context"
	"testing"

	"smartstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInventory(t *testing.T, db *gorm.DB) map[string]models.Room {
	t.Helper()
	ny := models.Hotel{Name: "Grand Plaza Hotel", City: "New York", Address: "123 Main St"}
	miami := models.Hotel{Name: "Ocean View Resort", City: "Miami", Address: "456 Beach Ave"}
	require.NoError(t, db.Create(&ny).Error)
	require.NoError(t, db.Create(&miami).Error)

	rooms := map[string]models.Room{
		"ny-single": {HotelID: ny.ID, RoomNumber: "101", RoomType: "Single", Capacity: 1, PricePerNight: 99},
		"ny-suite":  {HotelID: ny.ID, RoomNumber: "201", RoomType: "Suite", Capacity: 4, PricePerNight: 299},
		"mi-double": {HotelID: miami.ID, RoomNumber: "202", RoomType: "Double", Capacity: 2, PricePerNight: 139},
		"mi-closed": {HotelID: miami.ID, RoomNumber: "301", RoomType: "Double", Capacity: 2, PricePerNight: 129, Status: models.RoomMaintenance},
	}
	for key, room := range rooms {
		if room.Status == "" {
			room.Status = models.RoomAvailable
		}
		require.NoError(t, db.Create(&room).Error)
		rooms[key] = room
	}
	return rooms
}

func roomNumbers(rooms []models.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Hotel.City+"/"+r.RoomNumber)
	}
	return out
}

func TestRoomSearchFilters(t *testing.T) {
	db := setupTestDB(t)
	seedInventory(t, db)
	svc := NewRoomService(db)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter RoomSearchFilter
		want   []string
	}{
		{"all bookable, cheapest first", RoomSearchFilter{}, []string{"New York/101", "Miami/202", "New York/201"}},
		{"city is case-insensitive substring", RoomSearchFilter{City: "york"}, []string{"New York/101", "New York/201"}},
		{"room type", RoomSearchFilter{RoomType: "Double"}, []string{"Miami/202"}},
		{"price window", RoomSearchFilter{MinPrice: 100, MaxPrice: 200}, []string{"Miami/202"}},
		{"guests", RoomSearchFilter{Guests: 3}, []string{"New York/201"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rooms, err := svc.Search(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, roomNumbers(rooms))
		})
	}
}

func TestRoomSearchExcludesBookedRooms(t *testing.T) {
	db := setupTestDB(t)
	rooms := seedInventory(t, db)
	insertBooking(t, db, rooms["mi-double"], 1, "2030-07-01", "2030-07-05", models.StatusConfirmed)
	insertBooking(t, db, rooms["ny-single"], 1, "2030-07-01", "2030-07-05", models.StatusCancelled)
	svc := NewRoomService(db)

	overlap, err := ParseStay("2030-07-04", "2030-07-06")
	require.NoError(t, err)
	got, err := svc.Search(context.Background(), RoomSearchFilter{Stay: &overlap})
	require.NoError(t, err)
	assert.Equal(t, []string{"New York/101", "New York/201"}, roomNumbers(got))

	adjacent, err := ParseStay("2030-07-05", "2030-07-06")
	require.NoError(t, err)
	got, err = svc.Search(context.Background(), RoomSearchFilter{Stay: &adjacent})
	require.NoError(t, err)
	assert.Equal(t, []string{"New York/101", "Miami/202", "New York/201"}, roomNumbers(got))
}

func TestRoomGetByID(t *testing.T) {
	db := setupTestDB(t)
	rooms := seedInventory(t, db)
	svc := NewRoomService(db)

	room, err := svc.GetByID(context.Background(), rooms["ny-suite"].ID)
	require.NoError(t, err)
	assert.Equal(t, "Suite", room.RoomType)
	assert.Equal(t, "Grand Plaza Hotel", room.Hotel.Name)

	_, err = svc.GetByID(context.Background(), 4242)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
