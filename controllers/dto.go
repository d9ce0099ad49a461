package controllers

import (
	"time"

	"smartstay/models"
	"smartstay/services"
)

type HotelResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Phone   string  `json:"phone,omitempty"`
	Email   string  `json:"email,omitempty"`
	Rating  float64 `json:"rating"`
}

type HotelDetailResponse struct {
	HotelResponse
	Description string         `json:"description,omitempty"`
	Rooms       []RoomResponse `json:"rooms"`
}

type RoomResponse struct {
	ID            uint           `json:"id"`
	HotelID       uint           `json:"hotel_id"`
	RoomNumber    string         `json:"room_number"`
	RoomType      string         `json:"room_type"`
	Capacity      int            `json:"capacity"`
	PricePerNight float64        `json:"price_per_night"`
	Description   string         `json:"description,omitempty"`
	Amenities     string         `json:"amenities,omitempty"`
	Status        string         `json:"status"`
	Hotel         *HotelResponse `json:"hotel,omitempty"`
}

type BookingResponse struct {
	BookingRef      string        `json:"booking_ref"`
	UserID          uint          `json:"user_id"`
	RoomID          uint          `json:"room_id"`
	HotelID         uint          `json:"hotel_id"`
	CheckInDate     string        `json:"check_in_date"`
	CheckOutDate    string        `json:"check_out_date"`
	Nights          int           `json:"nights"`
	NumberOfGuests  int           `json:"number_of_guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          string        `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Room            *RoomResponse `json:"room,omitempty"`
}

func toHotelResponse(h models.Hotel) *HotelResponse {
	if h.ID == 0 {
		return nil
	}
	return &HotelResponse{
		ID:      h.ID,
		Name:    h.Name,
		City:    h.City,
		Address: h.Address,
		Phone:   h.Phone,
		Email:   h.Email,
		Rating:  h.Rating,
	}
}

func toHotelDetailResponse(h models.Hotel) HotelDetailResponse {
	rooms := make([]RoomResponse, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, toRoomResponse(r))
	}
	return HotelDetailResponse{
		HotelResponse: *toHotelResponse(h),
		Description:   h.Description,
		Rooms:         rooms,
	}
}

func toRoomResponse(r models.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Description:   r.Description,
		Amenities:     r.Amenities,
		Status:        string(r.Status),
		Hotel:         toHotelResponse(r.Hotel),
	}
}

func toBookingResponse(b models.Booking) BookingResponse {
	resp := BookingResponse{
		BookingRef:      b.BookingRef,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		HotelID:         b.HotelID,
		CheckInDate:     time.Time(b.CheckInDate).Format(services.DateLayout),
		CheckOutDate:    time.Time(b.CheckOutDate).Format(services.DateLayout),
		Nights:          b.Nights(),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Room != nil && b.Room.ID != 0 {
		room := toRoomResponse(*b.Room)
		resp.Room = &room
	}
	return resp
}
