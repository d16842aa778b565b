package repository

import (
	"context"
	"errors"
	"time"

	"ideaboard/internal/models"
	"ideaboard/internal/observability"

	"gorm.io/gorm"
)

// RoleRepository defines persistence operations for collaboration roles.
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository returns a new RoleRepository implementation.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	defer observability.ObserveQuery("insert", "roles", time.Now())

	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		// The service pre-checks the idea; the FK only fires on a race.
		if isForeignKeyViolation(err) {
			return models.NewNotFoundError("Idea", role.IdeaID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *roleRepository) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	defer observability.ObserveQuery("select", "roles", time.Now())

	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Role", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &role, nil
}

func (r *roleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Role{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
