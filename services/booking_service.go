package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smartstay/models"
	"smartstay/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxRefAttempts = 5

type CreateBookingInput struct {
	RoomID          uint
	UserID          uint
	CheckIn         string
	CheckOut        string
	Guests          int
	SpecialRequests string
}

// BookingService is the ledger of bookings. It is the only writer of the
// bookings table and keeps active bookings for a room from overlapping.
type BookingService struct {
	DB *gorm.DB

	publisher       EventPublisher
	logger          *slog.Logger
	location        *time.Location
	maxStayNights   int
	enforceCapacity bool
	now             func() time.Time
	newRef          func(time.Time) (string, error)
}

type BookingOption func(*BookingService)

func WithPublisher(p EventPublisher) BookingOption {
	return func(s *BookingService) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithLogger(l *slog.Logger) BookingOption {
	return func(s *BookingService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLocation sets the hotel time zone used to decide what "today" is.
func WithLocation(loc *time.Location) BookingOption {
	return func(s *BookingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithMaxStayNights(n int) BookingOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxStayNights = n
		}
	}
}

func WithCapacityCheck(enabled bool) BookingOption {
	return func(s *BookingService) { s.enforceCapacity = enabled }
}

func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRefGenerator replaces the booking reference generator.
func WithRefGenerator(gen func(time.Time) (string, error)) BookingOption {
	return func(s *BookingService) {
		if gen != nil {
			s.newRef = gen
		}
	}
}

func NewBookingService(db *gorm.DB, opts ...BookingOption) *BookingService {
	s := &BookingService{
		DB:              db,
		publisher:       NoopPublisher{},
		logger:          slog.Default(),
		location:        time.Local,
		maxStayNights:   365,
		enforceCapacity: true,
		now:             time.Now,
		newRef:          utils.GenerateBookingRef,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar date in the hotel time zone.
func (s *BookingService) Today() time.Time {
	return DateOf(s.now(), s.location)
}

// Create validates the request, then checks and reserves the room in one
// transaction. A reference collision restarts the whole transaction.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	stay, err := ParseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if stay.CheckIn.Before(s.Today()) {
		return nil, ErrPastDate
	}
	if stay.Nights() > s.maxStayNights {
		return nil, ErrStayTooLong
	}

	guests := in.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}

	for attempt := 1; attempt <= maxRefAttempts; attempt++ {
		ref, err := s.newRef(s.now())
		if err != nil {
			return nil, fmt.Errorf("generate booking reference: %w", err)
		}

		booking, err := s.reserve(ctx, in, stay, guests, ref)
		if errors.Is(err, errDuplicateRef) {
			s.logger.Warn("booking reference collision, retrying", "attempt", attempt, "booking_ref", ref)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("booking confirmed",
			"booking_ref", booking.BookingRef,
			"room_id", booking.RoomID,
			"user_id", booking.UserID,
			"check_in", stay.CheckIn.Format(DateLayout),
			"check_out", stay.CheckOut.Format(DateLayout),
			"total_price", booking.TotalPrice,
		)
		s.publish(ctx, EventBookingConfirmed, booking)
		return booking, nil
	}

	return nil, &StorageError{
		Op:  "create booking",
		Err: fmt.Errorf("%w after %d attempts", errDuplicateRef, maxRefAttempts),
	}
}

func (s *BookingService) reserve(ctx context.Context, in CreateBookingInput, stay Stay, guests int, ref string) (*models.Booking, error) {
	var booking models.Booking
	var room models.Room

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the room row lock serializes creates for the same room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return storageErr("lock room", err)
		}

		if s.enforceCapacity && guests > room.Capacity {
			return ErrCapacityExceeded
		}

		conflicts, err := countOverlapping(tx, room.ID, stay, "")
		if err != nil {
			return storageErr("check availability", err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			BookingRef:      ref,
			UserID:          in.UserID,
			RoomID:          room.ID,
			HotelID:         room.HotelID,
			CheckInDate:     datatypes.Date(stay.CheckIn),
			CheckOutDate:    datatypes.Date(stay.CheckOut),
			NumberOfGuests:  guests,
			TotalPrice:      float64(stay.Nights()) * room.PricePerNight,
			Status:          models.StatusConfirmed,
			SpecialRequests: in.SpecialRequests,
		}
		if err := tx.Create(&booking).Error; err != nil {
			if isDuplicateKey(err) {
				return errDuplicateRef
			}
			return storageErr("insert booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("commit booking", err)
	}

	booking.Room = &room
	return &booking, nil
}

// Cancel moves an owned booking to cancelled. The row and its price are kept.
func (s *BookingService) Cancel(ctx context.Context, ref string, userID uint) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_ref = ? AND user_id = ?", ref, userID).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return storageErr("lock booking", err)
		}

		if booking.Status == models.StatusCancelled {
			return ErrAlreadyCancelled
		}
		if !booking.Status.CanTransitionTo(models.StatusCancelled) {
			return ErrInvalidTransition
		}

		if err := tx.Model(&booking).Update("status", models.StatusCancelled).Error; err != nil {
			return storageErr("cancel booking", err)
		}
		booking.Status = models.StatusCancelled
		return nil
	})
	if err != nil {
		return nil, storageErr("commit cancel", err)
	}

	s.logger.Info("booking cancelled", "booking_ref", booking.BookingRef, "user_id", userID)
	s.publish(ctx, EventBookingCancelled, &booking)
	return &booking, nil
}

// ListByUser returns the user's bookings, newest first.
func (s *BookingService) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Room.Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, storageErr("list bookings", err)
	}
	return bookings, nil
}

// GetByReference reads one booking; other users' bookings look missing.
func (s *BookingService) GetByReference(ctx context.Context, ref string, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Room.Hotel").
		Where("booking_ref = ? AND user_id = ?", ref, userID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, storageErr("get booking", err)
	}
	return &booking, nil
}

// publish is best effort: the booking is already committed.
func (s *BookingService) publish(ctx context.Context, eventType string, b *models.Booking) {
	event := NewBookingEvent(eventType, b, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish booking event failed",
			"event", eventType,
			"booking_ref", b.BookingRef,
			"error", err,
		)
	}
}
