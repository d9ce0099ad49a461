package config

import (
	"fmt"
	"log"
	"time"

	"smartstay/models"
	"smartstay/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	Name, Email, Password, Phone, Role string
}

var sampleUsers = []seedUser{
	{"Admin User", "admin@hotel.com", "admin123", "+1-800-STAY-NOW", models.RoleAdmin},
	{"Muskan", "muskan@smartstay.com", "muskan123", "+1-555-0100", models.RoleAdmin},
	{"John Doe", "john@example.com", "password123", "+1-555-0101", models.RoleGuest},
	{"Jane Smith", "jane@example.com", "password123", "+1-555-0102", models.RoleGuest},
	{"Mike Johnson", "mike@example.com", "password123", "+1-555-0103", models.RoleGuest},
}

var sampleHotels = []models.Hotel{
	{Name: "Grand Plaza Hotel", Description: "A luxurious 5-star hotel in the heart of the city", City: "New York", Address: "123 Main St, NYC", Phone: "+1-212-555-0100", Email: "info@grandplaza.com", Rating: 4.8},
	{Name: "Ocean View Resort", Description: "Beautiful beachfront resort with stunning ocean views", City: "Miami", Address: "456 Beach Ave, Miami", Phone: "+1-305-555-0200", Email: "info@oceanview.com", Rating: 4.7},
	{Name: "Mountain Lodge", Description: "Cozy mountain retreat perfect for nature lovers", City: "Denver", Address: "789 Peak Rd, Denver", Phone: "+1-303-555-0300", Email: "info@mountainlodge.com", Rating: 4.6},
	{Name: "Urban Boutique Hotel", Description: "Modern boutique hotel in downtown LA", City: "Los Angeles", Address: "321 Hollywood Blvd, LA", Phone: "+1-213-555-0400", Email: "info@urbanboutique.com", Rating: 4.5},
	{Name: "Historic Inn", Description: "Charming historic hotel with classic elegance", City: "Boston", Address: "654 Heritage St, Boston", Phone: "+1-617-555-0500", Email: "info@historicinn.com", Rating: 4.9},
}

// sampleRooms is keyed by index into sampleHotels.
var sampleRooms = []struct {
	hotel int
	room  models.Room
}{
	{0, models.Room{RoomNumber: "101", RoomType: "Single", Capacity: 1, PricePerNight: 99, Description: "Cozy single room with city view", Amenities: "WiFi, AC, TV, Work Desk"}},
	{0, models.Room{RoomNumber: "102", RoomType: "Double", Capacity: 2, PricePerNight: 149, Description: "Comfortable double room with queen bed", Amenities: "WiFi, AC, TV, Mini-bar, Bathrobe"}},
	{0, models.Room{RoomNumber: "201", RoomType: "Suite", Capacity: 4, PricePerNight: 299, Description: "Luxurious suite with living area", Amenities: "WiFi, AC, TV, Mini-bar, Jacuzzi, City View"}},
	{1, models.Room{RoomNumber: "201", RoomType: "Single", Capacity: 1, PricePerNight: 89, Description: "Single room with balcony", Amenities: "WiFi, AC, TV, Beach Access"}},
	{1, models.Room{RoomNumber: "202", RoomType: "Double", Capacity: 2, PricePerNight: 139, Description: "Double room with ocean view", Amenities: "WiFi, AC, TV, Balcony, Beach Access"}},
	{1, models.Room{RoomNumber: "301", RoomType: "Penthouse", Capacity: 6, PricePerNight: 399, Description: "Exclusive penthouse with panoramic views", Amenities: "WiFi, AC, TV, Infinity Pool, Private Beach"}},
	{2, models.Room{RoomNumber: "101", RoomType: "Single", Capacity: 1, PricePerNight: 79, Description: "Cozy cabin style room", Amenities: "WiFi, Fireplace, TV, Mountain View"}},
	{2, models.Room{RoomNumber: "102", RoomType: "Double", Capacity: 2, PricePerNight: 129, Description: "Rustic double room with fireplace", Amenities: "WiFi, Fireplace, TV, Balcony"}},
	{3, models.Room{RoomNumber: "501", RoomType: "Suite", Capacity: 2, PricePerNight: 259, Description: "Modern suite with city skyline view", Amenities: "WiFi, AC, TV, Mini-bar, Work Area"}},
	{4, models.Room{RoomNumber: "101", RoomType: "Double", Capacity: 2, PricePerNight: 169, Description: "Historic room with period furniture", Amenities: "WiFi, AC, TV, Antique Decor"}},
	{4, models.Room{RoomNumber: "102", RoomType: "Suite", Capacity: 3, PricePerNight: 329, Description: "Grand suite with elegant décor", Amenities: "WiFi, AC, TV, Parlor, Fireplace"}},
}

// sampleBookings index into sampleUsers and sampleRooms; dates are offsets from today.
var sampleBookings = []struct {
	user, room      int
	inDays, outDays int
	guests          int
	status          models.BookingStatus
	specialRequests string
}{
	{2, 1, 5, 7, 2, models.StatusConfirmed, "Non-smoking room preferred"},
	{3, 4, 10, 12, 2, models.StatusConfirmed, ""},
	{4, 8, 15, 17, 1, models.StatusPending, "High floor requested"},
}

// SeedDatabase loads the demo hotels, rooms, users and bookings. Tables that
// already hold rows are left alone.
func SeedDatabase(db *gorm.DB, now time.Time) error {
	var hotelCount int64
	if err := db.Model(&models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return err
	}
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if hotelCount > 0 || userCount > 0 {
		log.Println("Sample data already present")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := make([]models.User, 0, len(sampleUsers))
		for _, u := range sampleUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Email, err)
			}
			users = append(users, models.User{
				Name:         u.Name,
				Email:        u.Email,
				PasswordHash: string(hash),
				Phone:        u.Phone,
				Role:         u.Role,
			})
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		hotels := append([]models.Hotel(nil), sampleHotels...)
		if err := tx.Create(&hotels).Error; err != nil {
			return fmt.Errorf("seed hotels: %w", err)
		}

		rooms := make([]models.Room, 0, len(sampleRooms))
		for _, r := range sampleRooms {
			room := r.room
			room.HotelID = hotels[r.hotel].ID
			room.Status = models.RoomAvailable
			rooms = append(rooms, room)
		}
		if err := tx.Omit(clause.Associations).Create(&rooms).Error; err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}

		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		for _, b := range sampleBookings {
			ref, err := utils.GenerateBookingRef(now)
			if err != nil {
				return err
			}
			room := rooms[b.room]
			nights := b.outDays - b.inDays
			booking := models.Booking{
				BookingRef:      ref,
				UserID:          users[b.user].ID,
				RoomID:          room.ID,
				HotelID:         room.HotelID,
				CheckInDate:     datatypes.Date(today.AddDate(0, 0, b.inDays)),
				CheckOutDate:    datatypes.Date(today.AddDate(0, 0, b.outDays)),
				NumberOfGuests:  b.guests,
				TotalPrice:      float64(nights) * room.PricePerNight,
				Status:          b.status,
				SpecialRequests: b.specialRequests,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return fmt.Errorf("seed booking: %w", err)
			}
		}

		log.Printf("Sample data seeded: %d users, %d hotels, %d rooms, %d bookings",
			len(users), len(hotels), len(rooms), len(sampleBookings))
		return nil
	})
}
