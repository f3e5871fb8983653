package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/httpresp"
	"github.com/BruksfildServices01/barber-slots/internal/middleware"
	"github.com/BruksfildServices01/barber-slots/internal/models"
	"github.com/BruksfildServices01/barber-slots/internal/timezone"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

type CreateShopRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Timezone  string `json:"timezone"`
}

// Create registers the caller's shop. One shop per owner: a second call
// answers with the existing shop instead of creating a duplicate.
func (h *ShopHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != "owner" {
		httperr.Forbidden(c, "not_an_owner", "Only shop owners can create a shop.")
		return
	}

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	tz := req.Timezone
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone.")
		return
	}

	var existing models.Shop
	if err := h.db.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "shop already exists",
			"shop_id": existing.ID,
		})
		return
	}

	shop := models.Shop{
		OwnerID:   ownerID,
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsOpen:    true,
		Timezone:  tz,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop", "Could not create shop.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "shop created",
		"shop_id": shop.ID,
	})
}

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Order("id ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}

	httpresp.List(c, shops)
}

func (h *ShopHandler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseUint(c.Param("owner_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_owner_id", "Owner id must be numeric.")
		return
	}

	var shops []models.Shop
	if err := h.db.Where("owner_id = ?", uint(ownerID)).Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}

	if len(shops) == 0 {
		httperr.NotFound(c, "no_shops_for_owner", "No shops found for this owner.")
		return
	}

	httpresp.List(c, shops)
}
