package service

import (
	"context"
	"strings"

	"ideaboard/internal/models"
	"ideaboard/internal/repository"

	"gorm.io/datatypes"
)

// UserService handles user profile reads and partial updates.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the tri-state fields of a profile update.
// Only fields present in the request body are applied; bio may be set to
// explicit null to clear it. Email is not updatable.
type UpdateProfileInput struct {
	UserID uint
	Name   models.Optional[string]
	Bio    models.Optional[string]
	Skills models.Optional[[]string]
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID returns the user or a not-found error.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile builds a partial update from the fields explicitly
// present in the input and applies it. An update with no fields returns
// the current row unchanged (still failing with not-found for unknown ids).
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	const maxNameLen = 100
	const maxBioLen = 500

	updates := map[string]any{}

	if in.Name.Set {
		if !in.Name.Valid {
			return nil, models.NewValidationError("Name cannot be null")
		}
		if strings.TrimSpace(in.Name.Val) == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		if len(in.Name.Val) > maxNameLen {
			return nil, models.NewValidationError("Name too long (max 100 characters)")
		}
		updates["name"] = in.Name.Val
	}

	if in.Bio.Set {
		if in.Bio.Valid {
			if len(in.Bio.Val) > maxBioLen {
				return nil, models.NewValidationError("Bio too long (max 500 characters)")
			}
			updates["bio"] = in.Bio.Val
		} else {
			// explicit null clears the bio
			updates["bio"] = nil
		}
	}

	if in.Skills.Set {
		if !in.Skills.Valid {
			return nil, models.NewValidationError("Skills cannot be null")
		}
		updates["skills"] = datatypes.JSONSlice[string](in.Skills.Val)
	}

	return s.userRepo.UpdateFields(ctx, in.UserID, updates)
}
