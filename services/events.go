package services

import (
	"context"
	"time"

	"smartstay/models"

	"github.com/google/uuid"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent carries enough of a booking for consumers to notify or
// report without reading the bookings table.
type BookingEvent struct {
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	BookingRef     string    `json:"booking_ref"`
	UserID         uint      `json:"user_id"`
	RoomID         uint      `json:"room_id"`
	HotelID        uint      `json:"hotel_id"`
	CheckInDate    string    `json:"check_in_date"`
	CheckOutDate   string    `json:"check_out_date"`
	Nights         int       `json:"nights"`
	NumberOfGuests int       `json:"number_of_guests"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *models.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		EventID:        uuid.NewString(),
		Type:           eventType,
		BookingRef:     b.BookingRef,
		UserID:         b.UserID,
		RoomID:         b.RoomID,
		HotelID:        b.HotelID,
		CheckInDate:    time.Time(b.CheckInDate).Format(DateLayout),
		CheckOutDate:   time.Time(b.CheckOutDate).Format(DateLayout),
		Nights:         b.Nights(),
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		OccurredAt:     at.UTC(),
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, BookingEvent) error { return nil }
