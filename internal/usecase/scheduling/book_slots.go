package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-slots/internal/audit"
	"github.com/BruksfildServices01/barber-slots/internal/cache"
	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotsInput struct {
	UserID   uint
	BarberID uint
	ShopID   uint
	SlotIDs  []uint
}

// ======================================================
// USE CASE
// ======================================================

// BookSlots claims every requested slot for the customer or none of
// them. Each call runs in a single store transaction; a missing or
// already-booked slot anywhere in the batch aborts the whole booking.
type BookSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotsCache
}

func NewBookSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.SlotsCache,
) *BookSlots {
	return &BookSlots{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlots) Execute(
	ctx context.Context,
	in BookSlotsInput,
) ([]domain.BookedSlot, error) {

	if len(in.SlotIDs) == 0 {
		return nil, httperr.ErrNotFound("no_slots_requested", "no slot ids in request")
	}

	var booked []domain.BookedSlot
	var dates []time.Time

	err := uc.repo.Transaction(ctx, func(r domain.Repository) error {
		booked = booked[:0]
		dates = dates[:0]

		for _, slotID := range in.SlotIDs {

			slot, err := r.GetShopSlot(ctx, slotID, in.ShopID, in.BarberID)
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrNotFound("slot_not_found", "slot %d not found", slotID)
			}
			if err != nil {
				return err
			}

			if err := domain.CanClaim(slot); err != nil {
				return err
			}

			// Compare-and-set against concurrent writers: losing the
			// race here surfaces as the same conflict the caller would
			// have seen a moment later.
			won, err := r.ClaimSlot(ctx, slot.ID)
			if err != nil {
				return err
			}
			if !won {
				return httperr.ErrConflict("slot_already_booked", "slot %d is already booked", slotID)
			}

			booking := &models.Booking{
				Reference: uuid.NewString(),
				UserID:    in.UserID,
				BarberID:  in.BarberID,
				ShopID:    in.ShopID,
				SlotID:    slot.ID,
				Date:      slot.Date,
				TimeOfDay: slot.TimeOfDay,
				Status:    string(domain.BookingBooked),
			}

			if err := r.CreateBooking(ctx, booking); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return httperr.ErrConflict("slot_already_booked", "slot %d is already booked", slotID)
				}
				return err
			}

			booked = append(booked, domain.BookedSlot{
				SlotID:    slot.ID,
				Date:      slot.Date.Format("2006-01-02"),
				TimeOfDay: slot.TimeOfDay,
				Status:    booking.Status,
			})
			dates = append(dates, slot.Date)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	for _, d := range dates {
		uc.cache.Invalidate(ctx, in.ShopID, d)
	}

	uc.audit.Dispatch(audit.Event{
		ShopID: in.ShopID,
		UserID: &in.UserID,
		Action: "slots_booked",
		Entity: "booking",
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"slot_ids":  in.SlotIDs,
		},
	})

	return booked, nil
}
