package controllers

import (
	"net/http"
	"strings"

	"smartstay/middleware"
	"smartstay/services"
	"smartstay/utils"

	"github.com/gin-gonic/gin"
)

type CheckAvailabilityRequest struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type CreateBookingRequest struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests" binding:"max=1000"`
}

type BookingController struct {
	Bookings     *services.BookingService
	Availability *services.AvailabilityService
	Rooms        *services.RoomService
}

func NewBookingController(bookings *services.BookingService, availability *services.AvailabilityService, rooms *services.RoomService) *BookingController {
	return &BookingController{Bookings: bookings, Availability: availability, Rooms: rooms}
}

// CheckAvailability is a read-only pre-check; Create decides again under lock.
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	stay, err := services.ParseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondError(c, err)
		return
	}

	room, err := ctrl.Rooms.GetByID(c.Request.Context(), req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}

	available, err := ctrl.Availability.IsAvailable(c.Request.Context(), room.ID, stay.CheckIn, stay.CheckOut, "")
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"available":      available,
		"room_id":        room.ID,
		"check_in_date":  stay.CheckIn.Format(services.DateLayout),
		"check_out_date": stay.CheckOut.Format(services.DateLayout),
		"nights":         stay.Nights(),
		"total_price":    float64(stay.Nights()) * room.PricePerNight,
	})
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "login required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := ctrl.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		RoomID:          req.RoomID,
		UserID:          userID,
		CheckIn:         req.CheckInDate,
		CheckOut:        req.CheckOutDate,
		Guests:          req.NumberOfGuests,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, toBookingResponse(*booking))
}

func (ctrl *BookingController) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "login required")
		return
	}

	bookings, err := ctrl.Bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "login required")
		return
	}

	booking, err := ctrl.Bookings.GetByReference(c.Request.Context(), c.Param("ref"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(*booking))
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "login required")
		return
	}

	booking, err := ctrl.Bookings.Cancel(c.Request.Context(), c.Param("ref"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(*booking))
}
