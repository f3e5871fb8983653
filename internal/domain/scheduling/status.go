package scheduling

import (
	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

// ===============================
// Slot / Booking Status
// ===============================

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

type BookingStatus string

const (
	BookingBooked BookingStatus = "booked"
)

// ===============================
// Validations
// ===============================

// CanClaim reports whether a slot may still be booked. A slot moves to
// booked exactly once; a booked slot never becomes available again.
func CanClaim(slot *models.Slot) error {
	if slot.IsBooked || slot.Status == string(SlotBooked) {
		return httperr.ErrConflict("slot_already_booked", "slot %d is already booked", slot.ID)
	}
	return nil
}

// Claim applies the one-way available -> booked transition in memory.
// Persisting it is the repository's job.
func Claim(slot *models.Slot) error {
	if err := CanClaim(slot); err != nil {
		return err
	}
	slot.IsBooked = true
	slot.Status = string(SlotBooked)
	return nil
}
