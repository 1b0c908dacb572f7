package contact

import (
	"context"

	"github.com/cannaconscious/booking-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.ContactMessage) error

	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)

	// ListAll returns every message, newest first.
	ListAll(ctx context.Context) ([]models.ContactMessage, error)

	Update(ctx context.Context, m *models.ContactMessage) error
}
