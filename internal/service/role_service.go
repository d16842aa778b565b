package service

import (
	"context"
	"fmt"

	"ideaboard/internal/models"
	"ideaboard/internal/observability"
	"ideaboard/internal/repository"
)

// RoleService handles collaboration role creation.
type RoleService struct {
	roleRepo repository.RoleRepository
	ideaRepo repository.IdeaRepository
}

// CreateRoleInput carries the validated fields for defining a role.
type CreateRoleInput struct {
	IdeaID           uint                    `json:"idea_id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	CompensationType models.CompensationType `json:"compensation_type"`
}

// NewRoleService returns a new RoleService.
func NewRoleService(roleRepo repository.RoleRepository, ideaRepo repository.IdeaRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo, ideaRepo: ideaRepo}
}

// CreateRole validates the input, verifies the target idea exists (so the
// caller gets a precise not-found error rather than a raw constraint
// violation), then inserts the role. The check-then-insert window is
// accepted; the store's foreign key still backstops it.
func (s *RoleService) CreateRole(ctx context.Context, in CreateRoleInput) (*models.Role, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if !in.CompensationType.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf(
			"Invalid compensation_type %q (must be %s or %s)",
			in.CompensationType, models.CompensationVolunteer, models.CompensationCompensated))
	}

	exists, err := s.ideaRepo.Exists(ctx, in.IdeaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Idea", in.IdeaID)
	}

	role := &models.Role{
		IdeaID:           in.IdeaID,
		Title:            in.Title,
		Description:      in.Description,
		CompensationType: in.CompensationType,
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	observability.RolesCreated.Inc()
	return role, nil
}
