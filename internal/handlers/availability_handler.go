package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/barber-slots/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	setAvailability *ucScheduling.SetAvailability
}

func NewAvailabilityHandler(setAvailability *ucScheduling.SetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{setAvailability: setAvailability}
}

type SetAvailabilityRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable *bool  `json:"is_available"`

	ShopID        *uint `json:"shop_id"`
	GenerateDaily *bool `json:"generate_daily"`
}

func (h *AvailabilityHandler) Set(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	for _, clock := range []string{req.StartTime, req.EndTime} {
		if clock == "" {
			continue
		}
		if _, err := domain.CombineClock(date, clock); err != nil {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	availabilityID, err := h.setAvailability.Execute(c.Request.Context(), ucScheduling.SetAvailabilityInput{
		BarberID:      uint(barberID),
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		IsAvailable:   isAvailable,
		ShopID:        req.ShopID,
		GenerateDaily: req.GenerateDaily,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":         "availability saved",
		"availability_id": availabilityID,
		"barber_id":       uint(barberID),
	})
}
