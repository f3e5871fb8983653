package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/models"
	"github.com/BruksfildServices01/barber-slots/internal/testfixtures"
)

func newRepo(t *testing.T) (*SchedulingGormRepository, *gorm.DB) {
	t.Helper()

	db := testfixtures.NewDB(t)
	return NewSchedulingGormRepository(db), db
}

func TestClaimSlotWinsOnce(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	slot := testfixtures.CreateSlot(t, db, barber.ID, shop.ID, testfixtures.Day(t, "2025-06-01"), "09:00")

	won, err := repo.ClaimSlot(ctx, slot.ID)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if !won {
		t.Fatal("first claim should win")
	}

	won, err = repo.ClaimSlot(ctx, slot.ID)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if won {
		t.Fatal("second claim should lose")
	}

	var stored models.Slot
	db.First(&stored, slot.ID)
	if !stored.IsBooked || stored.Status != string(domain.SlotBooked) {
		t.Fatalf("slot not marked booked: %+v", stored)
	}
}

func TestGetShopSlotScoping(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	shopA := testfixtures.CreateShop(t, db, 1)
	shopB := testfixtures.CreateShop(t, db, 2)
	barber := testfixtures.CreateBarber(t, db, shopA.ID, "Marco")
	slot := testfixtures.CreateSlot(t, db, barber.ID, shopA.ID, testfixtures.Day(t, "2025-06-01"), "09:00")

	got, err := repo.GetShopSlot(ctx, slot.ID, shopA.ID, barber.ID)
	if err != nil {
		t.Fatalf("matching scope: %v", err)
	}
	if got.ID != slot.ID {
		t.Fatalf("got slot %d, want %d", got.ID, slot.ID)
	}

	if _, err := repo.GetShopSlot(ctx, slot.ID, shopB.ID, barber.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("wrong shop: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetShopSlot(ctx, slot.ID, shopA.ID, barber.ID+1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("wrong barber: err = %v, want ErrNotFound", err)
	}
}

func TestCreateBookingDuplicateSlot(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	customer := testfixtures.CreateCustomer(t, db, "a@example.com")
	day := testfixtures.Day(t, "2025-06-01")
	slot := testfixtures.CreateSlot(t, db, barber.ID, shop.ID, day, "09:00")

	first := &models.Booking{
		Reference: "ref-1",
		UserID:    customer.ID,
		BarberID:  barber.ID,
		ShopID:    shop.ID,
		SlotID:    slot.ID,
		Date:      day,
		TimeOfDay: "09:00",
	}
	if err := repo.CreateBooking(ctx, first); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	second := &models.Booking{
		Reference: "ref-2",
		UserID:    customer.ID,
		BarberID:  barber.ID,
		ShopID:    shop.ID,
		SlotID:    slot.ID,
		Date:      day,
		TimeOfDay: "09:00",
	}
	if err := repo.CreateBooking(ctx, second); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("duplicate booking: err = %v, want ErrDuplicate", err)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	day := testfixtures.Day(t, "2025-06-01")

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(r domain.Repository) error {
		if err := r.CreateSlot(ctx, &models.Slot{
			BarberID:  barber.ID,
			ShopID:    shop.ID,
			Date:      day,
			TimeOfDay: "09:00",
			Status:    string(domain.SlotAvailable),
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	var count int64
	db.Model(&models.Slot{}).Count(&count)
	if count != 0 {
		t.Fatalf("slot survived rollback, count = %d", count)
	}
}

func TestSlotExistsIgnoresOtherDays(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	testfixtures.CreateSlot(t, db, barber.ID, shop.ID, testfixtures.Day(t, "2025-06-01"), "09:00")

	exists, err := repo.SlotExists(ctx, barber.ID, testfixtures.Day(t, "2025-06-01"), "09:00")
	if err != nil {
		t.Fatalf("SlotExists: %v", err)
	}
	if !exists {
		t.Fatal("expected slot to exist on its own day")
	}

	exists, err = repo.SlotExists(ctx, barber.ID, testfixtures.Day(t, "2025-06-02"), "09:00")
	if err != nil {
		t.Fatalf("SlotExists: %v", err)
	}
	if exists {
		t.Fatal("slot leaked into the next day")
	}
}

func TestListOpenAvailabilitiesSkipsPastAndClosed(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")

	testfixtures.CreateAvailability(t, db, barber.ID, testfixtures.Day(t, "2025-05-31"), "09:00", "12:00")
	testfixtures.CreateAvailability(t, db, barber.ID, testfixtures.Day(t, "2025-06-01"), "09:00", "12:00")
	closed := testfixtures.CreateAvailability(t, db, barber.ID, testfixtures.Day(t, "2025-06-02"), "09:00", "12:00")
	closed.IsAvailable = false
	if err := db.Save(closed).Error; err != nil {
		t.Fatalf("close availability: %v", err)
	}

	avs, err := repo.ListOpenAvailabilities(ctx, testfixtures.Day(t, "2025-06-01"))
	if err != nil {
		t.Fatalf("ListOpenAvailabilities: %v", err)
	}
	if len(avs) != 1 {
		t.Fatalf("len(avs) = %d, want 1: %+v", len(avs), avs)
	}
	if !avs[0].Date.Equal(testfixtures.Day(t, "2025-06-01")) {
		t.Fatalf("wrong availability kept: %+v", avs[0])
	}
}
