package appointment

import (
	"context"
	"time"

	"github.com/cannaconscious/booking-api/internal/models"
)

type Repository interface {
	// -------- Insert (slot-guarded) --------

	// CreateIfSlotFree persists a new appointment only when no other
	// non-canceled appointment already holds the same (date, slot) pair.
	// Returns the slot_taken business error otherwise.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Lookup --------
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// ListAll returns every appointment ordered by date ascending,
	// insertion order breaking ties.
	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListForDay returns non-canceled appointments with a date inside
	// [dayStart, dayEnd).
	ListForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Mutation --------
	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateStatus persists only the status and cancellation timestamp.
	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
