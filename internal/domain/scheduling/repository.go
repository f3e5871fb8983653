package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-slots/internal/models"
)

// ErrNotFound is returned by Get* methods when no row matches. Anything
// else a repository returns is a store failure.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned by Create* methods when a unique index rejects
// the row. It is the store-level backstop for slot and availability identity.
var ErrDuplicate = errors.New("duplicate record")

type Repository interface {
	// Transaction runs fn against a repository bound to a single store
	// transaction: fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Directory --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListRecurringBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	UpdateBarber(
		ctx context.Context,
		barber *models.Barber,
	) error

	// -------- Availability --------
	GetAvailability(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) (*models.Availability, error)

	ListOpenAvailabilities(
		ctx context.Context,
		from time.Time,
	) ([]models.Availability, error)

	CreateAvailability(
		ctx context.Context,
		av *models.Availability,
	) error

	UpdateAvailability(
		ctx context.Context,
		av *models.Availability,
	) error

	// -------- Slots --------
	SlotExists(
		ctx context.Context,
		barberID uint,
		date time.Time,
		timeOfDay string,
	) (bool, error)

	CreateSlot(
		ctx context.Context,
		slot *models.Slot,
	) error

	GetShopSlot(
		ctx context.Context,
		slotID uint,
		shopID uint,
		barberID uint,
	) (*models.Slot, error)

	// ClaimSlot flips is_booked on the slot only when it is still
	// available, reporting whether this caller won. Two concurrent
	// transactions can never both observe true for the same slot.
	ClaimSlot(
		ctx context.Context,
		slotID uint,
	) (bool, error)

	ListSlotsForDay(
		ctx context.Context,
		shopID uint,
		date time.Time,
		onlyAvailable bool,
	) ([]ShopSlot, error)

	// -------- Bookings --------
	CreateBooking(
		ctx context.Context,
		booking *models.Booking,
	) error
}
