package scheduling

import (
	"context"
	"errors"
	"log"
	"time"

	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// GenerateSlots expands every open availability window into bookable
// slots. Re-running it for the same day is a no-op for slots that already
// exist; the whole run commits or rolls back as one transaction.
type GenerateSlots struct {
	repo         domain.Repository
	slotDuration time.Duration
}

func NewGenerateSlots(repo domain.Repository, slotDuration time.Duration) *GenerateSlots {
	if slotDuration <= 0 {
		slotDuration = time.Hour
	}
	return &GenerateSlots{
		repo:         repo,
		slotDuration: slotDuration,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GenerateSlots) Execute(ctx context.Context, now time.Time) (int, error) {

	created := 0

	err := uc.repo.Transaction(ctx, func(r domain.Repository) error {
		created = 0
		today := domain.DateOnly(now)

		if err := uc.seedDailyAvailability(ctx, r, today); err != nil {
			return err
		}

		availabilities, err := r.ListOpenAvailabilities(ctx, today)
		if err != nil {
			return err
		}

		for _, av := range availabilities {

			barber, err := r.GetBarberByID(ctx, av.BarberID)
			if errors.Is(err, domain.ErrNotFound) {
				log.Printf("[slot-agent] barber %d not found, skipping availability %d", av.BarberID, av.ID)
				continue
			}
			if err != nil {
				return err
			}

			window := domain.Window{
				Date:  av.Date,
				Start: av.StartTime,
				End:   av.EndTime,
			}

			starts, err := window.SlotStarts(now, uc.slotDuration)
			if err != nil {
				log.Printf("[slot-agent] barber %d has an unusable window on %s, skipping: %v",
					barber.ID, av.Date.Format("2006-01-02"), err)
				continue
			}

			for _, start := range starts {
				clock := start.Format(domain.ClockFormat)

				exists, err := r.SlotExists(ctx, barber.ID, av.Date, clock)
				if err != nil {
					return err
				}
				if exists {
					continue
				}

				slot := &models.Slot{
					BarberID:  barber.ID,
					ShopID:    barber.ShopID,
					Date:      domain.DateOnly(av.Date),
					TimeOfDay: clock,
					Status:    string(domain.SlotAvailable),
					IsBooked:  false,
				}

				if err := r.CreateSlot(ctx, slot); err != nil {
					return err
				}
				created++
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return created, nil
}

// seedDailyAvailability creates today's availability row from barber
// defaults for barbers flagged generate_daily, when none exists yet.
func (uc *GenerateSlots) seedDailyAvailability(
	ctx context.Context,
	r domain.Repository,
	today time.Time,
) error {

	barbers, err := r.ListRecurringBarbers(ctx)
	if err != nil {
		return err
	}

	for _, barber := range barbers {
		if barber.StartTime == "" || barber.EndTime == "" {
			log.Printf("[slot-agent] barber %d has no default work window, skipping daily seed", barber.ID)
			continue
		}

		_, err := r.GetAvailability(ctx, barber.ID, today)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		av := &models.Availability{
			BarberID:    barber.ID,
			Date:        today,
			StartTime:   barber.StartTime,
			EndTime:     barber.EndTime,
			IsAvailable: true,
		}
		if err := r.CreateAvailability(ctx, av); err != nil {
			return err
		}
	}

	return nil
}
