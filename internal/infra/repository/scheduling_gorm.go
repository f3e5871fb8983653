package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-slots/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

// dayRange brackets a normalized date so lookups never depend on how the
// driver round-trips timezone offsets.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *SchedulingGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchedulingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *SchedulingGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *SchedulingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, translate(err)
	}
	return &barber, nil
}

func (r *SchedulingGormRepository) ListRecurringBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("generate_daily = ? AND is_available = ?", true, true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *SchedulingGormRepository) UpdateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Save(barber).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAvailability(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (*models.Availability, error) {

	dayStart, dayEnd := dayRange(date)

	var av models.Availability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date >= ? AND date < ?", barberID, dayStart, dayEnd).
		First(&av).Error; err != nil {
		return nil, translate(err)
	}
	return &av, nil
}

func (r *SchedulingGormRepository) ListOpenAvailabilities(
	ctx context.Context,
	from time.Time,
) ([]models.Availability, error) {

	dayStart, _ := dayRange(from)

	var avs []models.Availability
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND is_available = ?", dayStart, true).
		Order("barber_id ASC, date ASC").
		Find(&avs).Error; err != nil {
		return nil, err
	}
	return avs, nil
}

func (r *SchedulingGormRepository) CreateAvailability(
	ctx context.Context,
	av *models.Availability,
) error {
	return translate(r.db.WithContext(ctx).Create(av).Error)
}

func (r *SchedulingGormRepository) UpdateAvailability(
	ctx context.Context,
	av *models.Availability,
) error {
	return r.db.WithContext(ctx).Save(av).Error
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *SchedulingGormRepository) SlotExists(
	ctx context.Context,
	barberID uint,
	date time.Time,
	timeOfDay string,
) (bool, error) {

	dayStart, dayEnd := dayRange(date)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where(
			"barber_id = ? AND date >= ? AND date < ? AND time_of_day = ?",
			barberID, dayStart, dayEnd, timeOfDay,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SchedulingGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.Slot,
) error {
	return translate(r.db.WithContext(ctx).Create(slot).Error)
}

func (r *SchedulingGormRepository) GetShopSlot(
	ctx context.Context,
	slotID uint,
	shopID uint,
	barberID uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ? AND barber_id = ?", slotID, shopID, barberID).
		First(&slot).Error; err != nil {
		return nil, translate(err)
	}
	return &slot, nil
}

// ClaimSlot is a compare-and-set on the unique slot key: the WHERE clause
// only matches while the slot is unbooked, so of two racing transactions
// exactly one sees a row affected.
func (r *SchedulingGormRepository) ClaimSlot(
	ctx context.Context,
	slotID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ? AND is_booked = ?", slotID, false).
		Updates(map[string]any{
			"is_booked": true,
			"status":    string(domain.SlotBooked),
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SchedulingGormRepository) ListSlotsForDay(
	ctx context.Context,
	shopID uint,
	date time.Time,
	onlyAvailable bool,
) ([]domain.ShopSlot, error) {

	dayStart, dayEnd := dayRange(date)

	q := r.db.WithContext(ctx).
		Table("slots").
		Select(
			"slots.id AS slot_id",
			"barbers.id AS barber_id",
			"barbers.name AS barber_name",
			"slots.time_of_day AS time_of_day",
			"slots.status AS status",
		).
		Joins("JOIN barbers ON barbers.id = slots.barber_id").
		Where("slots.shop_id = ? AND slots.date >= ? AND slots.date < ?", shopID, dayStart, dayEnd)

	if onlyAvailable {
		q = q.Where("slots.is_booked = ?", false)
	}

	var rows []domain.ShopSlot
	if err := q.
		Order("barbers.id ASC, slots.time_of_day ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateBooking(
	ctx context.Context,
	booking *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Create(booking).Error)
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
