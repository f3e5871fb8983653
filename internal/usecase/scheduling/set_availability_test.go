package scheduling

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/models"
	"github.com/BruksfildServices01/barber-slots/internal/testfixtures"
)

func TestSetAvailabilityCreatesThenUpdatesInPlace(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")
	day := testfixtures.Day(t, "2025-06-01")

	uc := NewSetAvailability(repo, nil)

	firstID, err := uc.Execute(ctx, SetAvailabilityInput{
		BarberID:    barber.ID,
		Date:        day,
		StartTime:   "09:00",
		EndTime:     "12:00",
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if firstID == 0 {
		t.Fatal("expected a non-zero availability id")
	}

	secondID, err := uc.Execute(ctx, SetAvailabilityInput{
		BarberID:    barber.ID,
		Date:        day,
		StartTime:   "10:00",
		EndTime:     "14:00",
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if secondID != firstID {
		t.Fatalf("second call created a new row: %d != %d", secondID, firstID)
	}

	var count int64
	db.Model(&models.Availability{}).Where("barber_id = ?", barber.ID).Count(&count)
	if count != 1 {
		t.Fatalf("availability rows = %d, want 1", count)
	}

	var av models.Availability
	db.First(&av, firstID)
	if av.StartTime != "10:00" || av.EndTime != "14:00" {
		t.Fatalf("row not updated in place: %+v", av)
	}
}

func TestSetAvailabilityBarberNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	uc := NewSetAvailability(repo, nil)

	_, err := uc.Execute(context.Background(), SetAvailabilityInput{
		BarberID:  42,
		Date:      testfixtures.Day(t, "2025-06-01"),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("unexpected error: %v", err)
	}
	if httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("kind = %s, want not_found", httperr.KindOf(err))
	}
}

func TestSetAvailabilityChecksShopOwnership(t *testing.T) {
	repo, db := newTestRepo(t)

	shopA := testfixtures.CreateShop(t, db, 1)
	shopB := testfixtures.CreateShop(t, db, 2)
	barber := testfixtures.CreateBarber(t, db, shopA.ID, "Marco")

	uc := NewSetAvailability(repo, nil)

	_, err := uc.Execute(context.Background(), SetAvailabilityInput{
		BarberID:  barber.ID,
		Date:      testfixtures.Day(t, "2025-06-01"),
		StartTime: "09:00",
		EndTime:   "12:00",
		ShopID:    &shopB.ID,
	})
	if !httperr.IsBusiness(err, "barber_not_in_shop") {
		t.Fatalf("unexpected error: %v", err)
	}
	if httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("kind = %s, want unauthorized", httperr.KindOf(err))
	}
}

func TestSetAvailabilityUpdatesRecurrenceDefaults(t *testing.T) {
	repo, db := newTestRepo(t)

	shop := testfixtures.CreateShop(t, db, 1)
	barber := testfixtures.CreateBarber(t, db, shop.ID, "Marco")

	uc := NewSetAvailability(repo, nil)

	daily := true
	_, err := uc.Execute(context.Background(), SetAvailabilityInput{
		BarberID:      barber.ID,
		Date:          testfixtures.Day(t, "2025-06-01"),
		StartTime:     "09:00",
		EndTime:       "17:00",
		IsAvailable:   true,
		GenerateDaily: &daily,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var updated models.Barber
	db.First(&updated, barber.ID)
	if !updated.GenerateDaily {
		t.Fatal("generate_daily flag not persisted")
	}
	if updated.StartTime != "09:00" || updated.EndTime != "17:00" {
		t.Fatalf("barber defaults not updated: %+v", updated)
	}
}
