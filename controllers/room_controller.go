package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"smartstay/services"
	"smartstay/utils"

	"github.com/gin-gonic/gin"
)

type SearchRoomsQuery struct {
	City     string  `form:"city"`
	RoomType string  `form:"room_type"`
	MinPrice float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice float64 `form:"max_price" binding:"omitempty,gte=0"`
	Guests   int     `form:"guests" binding:"omitempty,gte=1"`
	CheckIn  string  `form:"check_in"`
	CheckOut string  `form:"check_out"`
}

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRoomId", "room id must be a positive integer")
		return
	}

	room, err := ctrl.Rooms.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomResponse(*room))
}

// SearchRooms filters inventory; with both dates it also drops rooms booked
// for that stay.
func (ctrl *RoomController) SearchRooms(c *gin.Context) {
	var q SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	if q.MinPrice > 0 && q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPriceRange", "min_price must not exceed max_price")
		return
	}

	filter := services.RoomSearchFilter{
		City:     q.City,
		RoomType: q.RoomType,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Guests:   q.Guests,
	}
	checkIn, checkOut := strings.TrimSpace(q.CheckIn), strings.TrimSpace(q.CheckOut)
	if checkIn != "" || checkOut != "" {
		stay, err := services.ParseStay(checkIn, checkOut)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Stay = &stay
	}

	rooms, err := ctrl.Rooms.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}
