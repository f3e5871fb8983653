package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/barber-slots/internal/usecase/scheduling"
)

type SlotsHandler struct {
	listSlots *ucScheduling.ListShopSlots
}

func NewSlotsHandler(listSlots *ucScheduling.ListShopSlots) *SlotsHandler {
	return &SlotsHandler{listSlots: listSlots}
}

func (h *SlotsHandler) ListForShop(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("shop_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be numeric.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	onlyAvailable := c.Query("only_available") == "true"

	slots, err := h.listSlots.Execute(c.Request.Context(), uint(shopID), date, onlyAvailable)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}
