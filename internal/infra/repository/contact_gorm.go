package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/cannaconscious/booking-api/internal/domain/contact"
	"github.com/cannaconscious/booking-api/internal/httperr"
	"github.com/cannaconscious/booking-api/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(
	ctx context.Context,
	m *models.ContactMessage,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ContactGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.ContactMessage, error) {

	var m models.ContactMessage
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("contact_not_found")
		}
		return nil, err
	}

	return &m, nil
}

func (r *ContactGormRepository) ListAll(
	ctx context.Context,
) ([]models.ContactMessage, error) {

	var msgs []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	return msgs, nil
}

func (r *ContactGormRepository) Update(
	ctx context.Context,
	m *models.ContactMessage,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Compile-time check
var _ domain.Repository = (*ContactGormRepository)(nil)
