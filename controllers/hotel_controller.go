package controllers

import (
	"net/http"
	"strconv"

	"smartstay/services"
	"smartstay/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

// GetHotel returns a hotel with the rooms guests can book.
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidHotelId", "hotel id must be a positive integer")
		return
	}

	hotel, err := ctrl.Hotels.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toHotelDetailResponse(*hotel))
}
