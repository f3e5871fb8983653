package scheduling

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/testfixtures"
)

func TestListShopSlotsOrdersByBarberThenTime(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	marco := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	luca := testfixtures.CreateBarber(t, db, shop.ID, "Luca")
	day := testfixtures.Day(t, "2025-06-01")

	// Inserted out of order on purpose.
	testfixtures.CreateSlot(t, db, luca.ID, shop.ID, day, "10:00")
	testfixtures.CreateSlot(t, db, marco.ID, shop.ID, day, "11:00")
	testfixtures.CreateSlot(t, db, marco.ID, shop.ID, day, "09:00")

	uc := NewListShopSlots(repo, nil)

	slots, err := uc.Execute(ctx, shop.ID, day, false)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("len(slots) = %d, want 3", len(slots))
	}

	want := []struct {
		barberID  uint
		timeOfDay string
	}{
		{marco.ID, "09:00"},
		{marco.ID, "11:00"},
		{luca.ID, "10:00"},
	}
	for i, w := range want {
		if slots[i].BarberID != w.barberID || slots[i].TimeOfDay != w.timeOfDay {
			t.Fatalf("slots[%d] = %+v, want barber %d at %s", i, slots[i], w.barberID, w.timeOfDay)
		}
	}
	if slots[0].BarberName != "Marco" || slots[2].BarberName != "Luca" {
		t.Fatalf("barber names not joined: %+v", slots)
	}
}

func TestListShopSlotsFiltersBookedWhenAsked(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	day := testfixtures.Day(t, "2025-06-01")

	testfixtures.CreateSlot(t, db, barber.ID, shop.ID, day, "09:00")
	booked := testfixtures.CreateSlot(t, db, barber.ID, shop.ID, day, "10:00")
	booked.Status = string(domain.SlotBooked)
	booked.IsBooked = true
	if err := db.Save(booked).Error; err != nil {
		t.Fatalf("mark booked: %v", err)
	}

	uc := NewListShopSlots(repo, nil)

	all, err := uc.Execute(ctx, shop.ID, day, false)
	if err != nil {
		t.Fatalf("unfiltered: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered len = %d, want 2", len(all))
	}

	open, err := uc.Execute(ctx, shop.ID, day, true)
	if err != nil {
		t.Fatalf("only available: %v", err)
	}
	if len(open) != 1 || open[0].TimeOfDay != "09:00" {
		t.Fatalf("filtered slots = %+v, want only 09:00", open)
	}
}

func TestListShopSlotsEmptyDay(t *testing.T) {
	repo, db := newTestRepo(t)

	shop := testfixtures.CreateShop(t, db, 1)

	uc := NewListShopSlots(repo, nil)

	_, err := uc.Execute(context.Background(), shop.ID, testfixtures.Day(t, "2025-06-01"), false)
	if !httperr.IsBusiness(err, "no_slots_for_date") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListShopSlotsUnknownShop(t *testing.T) {
	repo, _ := newTestRepo(t)

	uc := NewListShopSlots(repo, nil)

	_, err := uc.Execute(context.Background(), 42, testfixtures.Day(t, "2025-06-01"), false)
	if !httperr.IsBusiness(err, "shop_not_found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListShopSlotsScopedToShop(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	shopA := testfixtures.CreateShop(t, db, 1)
	shopB := testfixtures.CreateShop(t, db, 2)
	barberA := testfixtures.CreateBarber(t, db, shopA.ID, "Marco")
	barberB := testfixtures.CreateBarber(t, db, shopB.ID, "Luca")
	day := testfixtures.Day(t, "2025-06-01")

	testfixtures.CreateSlot(t, db, barberA.ID, shopA.ID, day, "09:00")
	testfixtures.CreateSlot(t, db, barberB.ID, shopB.ID, day, "09:00")

	uc := NewListShopSlots(repo, nil)

	slots, err := uc.Execute(ctx, shopA.ID, day, false)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 1 || slots[0].BarberID != barberA.ID {
		t.Fatalf("slots = %+v, want only shop A's barber", slots)
	}
}
