package repository

import (
	"context"
	"errors"
	"time"

	"ideaboard/internal/cache"
	"ideaboard/internal/models"
	"ideaboard/internal/observability"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id uint, updates map[string]any) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		defer observability.ObserveQuery("select", "users", time.Now())
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	normalizeUser(&user)
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.Skills == nil {
		user.Skills = datatypes.JSONSlice[string]{}
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A user with this email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateFields applies a partial update containing only the columns the
// caller explicitly supplied. An empty update is a read: the current row
// is returned untouched. Zero matched rows means the user does not exist.
func (r *userRepository) UpdateFields(ctx context.Context, id uint, updates map[string]any) (*models.User, error) {
	if len(updates) == 0 {
		return r.getFresh(ctx, id)
	}

	defer observability.ObserveQuery("update", "users", time.Now())

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("User", id)
	}

	cache.InvalidateUser(ctx, id)
	return r.getFresh(ctx, id)
}

// getFresh reads the row from the store, bypassing the cache.
func (r *userRepository) getFresh(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	normalizeUser(&user)
	return &user, nil
}

// normalizeUser keeps skills a list, never JSON null.
func normalizeUser(user *models.User) {
	if user.Skills == nil {
		user.Skills = datatypes.JSONSlice[string]{}
	}
}
