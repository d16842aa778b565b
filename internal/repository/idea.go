package repository

import (
	"context"
	"errors"
	"time"

	"ideaboard/internal/cache"
	"ideaboard/internal/models"
	"ideaboard/internal/observability"

	"gorm.io/gorm"
)

// IdeaRepository defines persistence operations for ideas.
type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id uint) (*models.Idea, error)
	List(ctx context.Context) ([]models.Idea, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository returns a new IdeaRepository implementation.
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

// Create inserts the idea. There is deliberately no owner pre-check: the
// store's foreign key is the referential authority, and its rejection is
// translated into the same not-found taxonomy the pre-checked handlers use.
func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	defer observability.ObserveQuery("insert", "ideas", time.Now())

	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.NewNotFoundError("User", idea.OwnerID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ideaRepository) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	var idea models.Idea
	key := cache.IdeaKey(id)

	err := cache.Aside(ctx, key, &idea, cache.IdeaTTL, func() error {
		defer observability.ObserveQuery("select", "ideas", time.Now())
		if err := r.db.WithContext(ctx).First(&idea, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Idea", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// List returns every idea in the store's natural order. No filtering,
// sorting or pagination.
func (r *ideaRepository) List(ctx context.Context) ([]models.Idea, error) {
	defer observability.ObserveQuery("select", "ideas", time.Now())

	var ideas []models.Idea
	if err := r.db.WithContext(ctx).Find(&ideas).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ideas, nil
}

func (r *ideaRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Idea{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
