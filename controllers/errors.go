package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"smartstay/services"
	"smartstay/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type errorMapping struct {
	status int
	code   string
}

var serviceErrors = map[error]errorMapping{
	services.ErrInvalidRange:      {http.StatusBadRequest, "error.invalidDateRange"},
	services.ErrPastDate:          {http.StatusBadRequest, "error.pastDate"},
	services.ErrStayTooLong:       {http.StatusBadRequest, "error.stayTooLong"},
	services.ErrInvalidGuestCount: {http.StatusBadRequest, "error.invalidGuestCount"},
	services.ErrCapacityExceeded:  {http.StatusBadRequest, "error.capacityExceeded"},
	services.ErrRoomNotFound:      {http.StatusNotFound, "error.roomNotFound"},
	services.ErrHotelNotFound:     {http.StatusNotFound, "error.hotelNotFound"},
	services.ErrBookingNotFound:   {http.StatusNotFound, "error.bookingNotFound"},
	services.ErrRoomUnavailable:   {http.StatusConflict, "error.roomUnavailable"},
	services.ErrAlreadyCancelled:  {http.StatusConflict, "error.alreadyCancelled"},
	services.ErrInvalidTransition: {http.StatusConflict, "error.invalidTransition"},
}

// respondError writes the error envelope for err. Storage failures are
// reported as retryable and their detail stays in the log.
func respondError(c *gin.Context, err error) {
	for target, m := range serviceErrors {
		if errors.Is(err, target) {
			utils.JSONError(c, m.status, m.code, err.Error())
			return
		}
	}

	var se *services.StorageError
	if errors.As(err, &se) {
		slog.Error("storage failure", "op", se.Op, "error", se.Err, "path", c.Request.URL.Path)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":      "error.storageUnavailable",
				"message":   "booking store is temporarily unavailable",
				"retryable": true,
			},
		})
		return
	}

	slog.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
	utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// respondBindError reports validator failures per field and anything else
// (bad JSON, wrong types) as a single message.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "request validation failed", details)
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "error.badRequest", fmt.Sprintf("invalid request: %v", err))
}

func init() {
	// report json/form names in validation errors instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	}
}
