package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-slots/internal/audit"
	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/httperr"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SetAvailabilityInput struct {
	BarberID  uint
	Date      time.Time
	StartTime string
	EndTime   string

	IsAvailable bool

	// ShopID, when present, asserts the barber belongs to that shop.
	ShopID *uint

	// GenerateDaily, when present, also updates the barber's default
	// window so the generator can seed future days from it.
	GenerateDaily *bool
}

// ======================================================
// USE CASE
// ======================================================

// SetAvailability upserts the barber's work window for one date. At most
// one availability row exists per (barber, date).
type SetAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAvailability(repo domain.Repository, audit *audit.Dispatcher) *SetAvailability {
	return &SetAvailability{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SetAvailability) Execute(
	ctx context.Context,
	in SetAvailabilityInput,
) (uint, error) {

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, httperr.ErrNotFound("barber_not_found", "barber %d not found", in.BarberID)
	}
	if err != nil {
		return 0, err
	}

	if in.ShopID != nil && barber.ShopID != *in.ShopID {
		return 0, httperr.ErrUnauthorized("barber_not_in_shop", "barber %d does not belong to shop %d", in.BarberID, *in.ShopID)
	}

	date := domain.DateOnly(in.Date)

	var availabilityID uint

	err = uc.repo.Transaction(ctx, func(r domain.Repository) error {

		av, err := r.GetAvailability(ctx, in.BarberID, date)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			av = &models.Availability{
				BarberID:    in.BarberID,
				Date:        date,
				StartTime:   in.StartTime,
				EndTime:     in.EndTime,
				IsAvailable: in.IsAvailable,
			}
			if err := r.CreateAvailability(ctx, av); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return httperr.ErrConflict("availability_exists", "availability for barber %d on %s already exists", in.BarberID, date.Format("2006-01-02"))
				}
				return err
			}

		case err != nil:
			return err

		default:
			av.StartTime = in.StartTime
			av.EndTime = in.EndTime
			av.IsAvailable = in.IsAvailable
			if err := r.UpdateAvailability(ctx, av); err != nil {
				return err
			}
		}

		if in.GenerateDaily != nil {
			barber.GenerateDaily = *in.GenerateDaily
			barber.StartTime = in.StartTime
			barber.EndTime = in.EndTime
			if err := r.UpdateBarber(ctx, barber); err != nil {
				return err
			}
		}

		availabilityID = av.ID
		return nil
	})

	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   barber.ShopID,
		Action:   "availability_set",
		Entity:   "availability",
		EntityID: &availabilityID,
		Metadata: map[string]any{
			"barber_id":    in.BarberID,
			"date":         date.Format("2006-01-02"),
			"start_time":   in.StartTime,
			"end_time":     in.EndTime,
			"is_available": in.IsAvailable,
		},
	})

	return availabilityID, nil
}
