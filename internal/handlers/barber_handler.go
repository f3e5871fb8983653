package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/middleware"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type AddBarberRequest struct {
	Name          string `json:"name" binding:"required"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	GenerateDaily bool   `json:"generate_daily"`
}

func (h *BarberHandler) Add(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	shopID, err := strconv.ParseUint(c.Param("shop_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be numeric.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, uint(shopID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Could not load shop.")
		return
	}

	if shop.OwnerID != ownerID {
		httperr.Forbidden(c, "not_shop_owner", "You do not own this shop.")
		return
	}

	var req AddBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	barber := models.Barber{
		ShopID:        shop.ID,
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		IsAvailable:   true,
		GenerateDaily: req.GenerateDaily,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not add barber.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "barber added",
		"barber_id": barber.ID,
	})
}

func (h *BarberHandler) ListForShop(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("shop_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be numeric.")
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("shop_id = ?", uint(shopID)).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}
