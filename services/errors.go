package services

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrInvalidRange      = errors.New("check-out must be after check-in")
	ErrPastDate          = errors.New("check-in date cannot be in the past")
	ErrStayTooLong       = errors.New("stay exceeds the maximum number of nights")
	ErrInvalidGuestCount = errors.New("number of guests must be at least 1")
	ErrCapacityExceeded  = errors.New("number of guests exceeds room capacity")
	ErrRoomNotFound      = errors.New("room not found")
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrRoomUnavailable   = errors.New("room is not available for the selected dates")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
	ErrInvalidTransition = errors.New("booking status does not allow this change")
)

var domainErrors = []error{
	ErrInvalidRange,
	ErrPastDate,
	ErrStayTooLong,
	ErrInvalidGuestCount,
	ErrCapacityExceeded,
	ErrRoomNotFound,
	ErrHotelNotFound,
	ErrRoomUnavailable,
	ErrBookingNotFound,
	ErrAlreadyCancelled,
	ErrInvalidTransition,
}

// errDuplicateRef marks a booking_ref unique-index collision; Create retries on it.
var errDuplicateRef = errors.New("booking reference collision")

// StorageError is returned when the database itself fails. It never wraps a
// domain error, so callers can treat it as retryable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// storageErr passes domain and already-wrapped errors through untouched.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if isDomainError(err) || errors.Is(err, errDuplicateRef) || errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldriver.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
