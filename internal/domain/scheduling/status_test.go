package scheduling

import (
	"testing"

	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

func TestClaimIsOneWay(t *testing.T) {
	slot := &models.Slot{ID: 7, Status: string(SlotAvailable)}

	if err := Claim(slot); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if !slot.IsBooked || slot.Status != string(SlotBooked) {
		t.Fatalf("slot not marked booked: %+v", slot)
	}

	err := Claim(slot)
	if err == nil {
		t.Fatal("second claim should fail")
	}
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("unexpected error: %v", err)
	}
	if httperr.KindOf(err) != httperr.KindConflict {
		t.Fatalf("expected conflict kind, got %s", httperr.KindOf(err))
	}
}
