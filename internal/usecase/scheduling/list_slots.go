package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-slots/internal/cache"
	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/httperr"
)

// ListShopSlots projects the slot board for one shop and date, ordered by
// barber then time of day.
type ListShopSlots struct {
	repo  domain.Repository
	cache *cache.SlotsCache
}

func NewListShopSlots(repo domain.Repository, cache *cache.SlotsCache) *ListShopSlots {
	return &ListShopSlots{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListShopSlots) Execute(
	ctx context.Context,
	shopID uint,
	date time.Time,
	onlyAvailable bool,
) ([]domain.ShopSlot, error) {

	if _, err := uc.repo.GetShopByID(ctx, shopID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("shop_not_found", "shop %d not found", shopID)
		}
		return nil, err
	}

	day := domain.DateOnly(date)

	slots, hit := uc.cache.Get(ctx, shopID, day)
	if !hit {
		var err error
		slots, err = uc.repo.ListSlotsForDay(ctx, shopID, day, false)
		if err != nil {
			return nil, err
		}
		uc.cache.Set(ctx, shopID, day, slots)
	}

	if onlyAvailable {
		filtered := make([]domain.ShopSlot, 0, len(slots))
		for _, s := range slots {
			if s.Status == string(domain.SlotAvailable) {
				filtered = append(filtered, s)
			}
		}
		slots = filtered
	}

	if len(slots) == 0 {
		return nil, httperr.ErrNotFound(
			"no_slots_for_date",
			"no slots for shop %d on %s", shopID, day.Format("2006-01-02"),
		)
	}

	return slots, nil
}
