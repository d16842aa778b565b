package service

import (
	"context"

	"ideaboard/internal/models"
	"ideaboard/internal/observability"
	"ideaboard/internal/repository"
)

// ApplicationService handles applying for collaboration roles.
type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	roleRepo        repository.RoleRepository
	userRepo        repository.UserRepository
}

// CreateApplicationInput carries the validated fields for a role
// application. Status is deliberately not part of the input: every
// application starts Pending.
type CreateApplicationInput struct {
	RoleID      uint   `json:"role_id"`
	ApplicantID uint   `json:"applicant_id"`
	Motivation  string `json:"motivation"`
}

// NewApplicationService returns a new ApplicationService.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	roleRepo repository.RoleRepository,
	userRepo repository.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		roleRepo:        roleRepo,
		userRepo:        userRepo,
	}
}

// ApplyForRole validates the motivation, verifies the applicant and the
// role independently (applicant first, each failure naming the missing
// id), then inserts the application with status forced to Pending.
func (s *ApplicationService) ApplyForRole(ctx context.Context, in CreateApplicationInput) (*models.Application, error) {
	if in.Motivation == "" {
		return nil, models.NewValidationError("Motivation is required")
	}

	applicantExists, err := s.userRepo.Exists(ctx, in.ApplicantID)
	if err != nil {
		return nil, err
	}
	if !applicantExists {
		return nil, models.NewNotFoundError("User", in.ApplicantID)
	}

	roleExists, err := s.roleRepo.Exists(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if !roleExists {
		return nil, models.NewNotFoundError("Role", in.RoleID)
	}

	application := &models.Application{
		RoleID:      in.RoleID,
		ApplicantID: in.ApplicantID,
		Motivation:  in.Motivation,
		Status:      models.StatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	observability.ApplicationsSubmitted.Inc()
	return application, nil
}
