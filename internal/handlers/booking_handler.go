package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/barber-slots/internal/usecase/scheduling"
)

type BookingHandler struct {
	bookSlots *ucScheduling.BookSlots
}

func NewBookingHandler(bookSlots *ucScheduling.BookSlots) *BookingHandler {
	return &BookingHandler{bookSlots: bookSlots}
}

type BookSlotsRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	BarberID uint   `json:"barber_id" binding:"required"`
	ShopID   uint   `json:"shop_id" binding:"required"`
	SlotIDs  []uint `json:"slot_ids" binding:"required,min=1"`
}

func (h *BookingHandler) Book(c *gin.Context) {
	var req BookSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	booked, err := h.bookSlots.Execute(c.Request.Context(), ucScheduling.BookSlotsInput{
		UserID:   req.UserID,
		BarberID: req.BarberID,
		ShopID:   req.ShopID,
		SlotIDs:  req.SlotIDs,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":      "slots booked",
		"user_id":      req.UserID,
		"barber_id":    req.BarberID,
		"shop_id":      req.ShopID,
		"booked_slots": booked,
	})
}
