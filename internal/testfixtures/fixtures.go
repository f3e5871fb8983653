package testfixtures

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-slots/internal/models"
)

func CreateShop(t *testing.T, db *gorm.DB, ownerID uint) *models.Shop {
	t.Helper()

	shop := &models.Shop{
		OwnerID:   ownerID,
		Name:      "Test Shop",
		OpenTime:  "08:00",
		CloseTime: "20:00",
		IsOpen:    true,
	}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}
	return shop
}

func CreateBarber(t *testing.T, db *gorm.DB, shopID uint, name string) *models.Barber {
	t.Helper()

	barber := &models.Barber{
		ShopID:      shopID,
		Name:        name,
		IsAvailable: true,
	}
	if err := db.Create(barber).Error; err != nil {
		t.Fatalf("create barber: %v", err)
	}
	return barber
}

func CreateCustomer(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test Customer",
		Email:        email,
		PasswordHash: "x",
		Role:         "customer",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return user
}

func CreateAvailability(
	t *testing.T,
	db *gorm.DB,
	barberID uint,
	date time.Time,
	start, end string,
) *models.Availability {
	t.Helper()

	av := &models.Availability{
		BarberID:    barberID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
	if err := db.Create(av).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}
	return av
}

func CreateSlot(
	t *testing.T,
	db *gorm.DB,
	barberID, shopID uint,
	date time.Time,
	timeOfDay string,
) *models.Slot {
	t.Helper()

	slot := &models.Slot{
		BarberID:  barberID,
		ShopID:    shopID,
		Date:      date,
		TimeOfDay: timeOfDay,
		Status:    "available",
		IsBooked:  false,
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("create slot: %v", err)
	}
	return slot
}
