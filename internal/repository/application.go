package repository

import (
	"context"
	"errors"
	"time"

	"ideaboard/internal/models"
	"ideaboard/internal/observability"

	"gorm.io/gorm"
)

// ApplicationRepository defines persistence operations for role applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	defer observability.ObserveQuery("insert", "applications", time.Now())

	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		// Both FKs were pre-checked by the service; anything left is a race
		// and stays an opaque internal failure.
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	defer observability.ObserveQuery("select", "applications", time.Now())

	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}
