// Package service implements the application's use cases on top of the
// repository layer. Services validate input before any storage access; a
// validation failure never reaches a repository.
package service

import (
	"context"
	"fmt"

	"ideaboard/internal/models"
	"ideaboard/internal/observability"
	"ideaboard/internal/repository"
)

// IdeaService handles posting and browsing ideas.
type IdeaService struct {
	ideaRepo repository.IdeaRepository
}

// CreateIdeaInput carries the validated fields for posting an idea.
// Pointer fields are optional; an explicit false for IsForSale is
// preserved and distinct from absence.
type CreateIdeaInput struct {
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	OwnerID          uint                    `json:"owner_id"`
	DevelopmentStage models.DevelopmentStage `json:"development_stage"`
	IsForSale        *bool                   `json:"is_for_sale"`
	Price            *float64                `json:"price"`
	PriceReasoning   *string                 `json:"price_reasoning"`
}

// NewIdeaService returns a new IdeaService.
func NewIdeaService(ideaRepo repository.IdeaRepository) *IdeaService {
	return &IdeaService{ideaRepo: ideaRepo}
}

// CreateIdea validates the input and inserts a new idea. Ownership is not
// pre-checked here; the store's foreign key is the backstop and the
// repository translates its rejection into a not-found error.
func (s *IdeaService) CreateIdea(ctx context.Context, in CreateIdeaInput) (*models.Idea, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if !in.DevelopmentStage.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf(
			"Invalid development_stage %q (must be %s, %s, %s or %s)",
			in.DevelopmentStage, models.StageConcept, models.StagePrototype, models.StageMVP, models.StageLaunched))
	}
	if in.Price != nil && *in.Price <= 0 {
		return nil, models.NewValidationError("Price must be a positive number")
	}

	idea := &models.Idea{
		Title:            in.Title,
		Description:      in.Description,
		OwnerID:          in.OwnerID,
		DevelopmentStage: in.DevelopmentStage,
		IsForSale:        in.IsForSale,
		Price:            models.NewPricePtr(in.Price),
		PriceReasoning:   in.PriceReasoning,
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	observability.IdeasCreated.Inc()
	return idea, nil
}

// GetIdeaByID returns the idea or a not-found error.
func (s *IdeaService) GetIdeaByID(ctx context.Context, id uint) (*models.Idea, error) {
	return s.ideaRepo.GetByID(ctx, id)
}

// ListIdeas returns every idea in the store's natural order.
func (s *IdeaService) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	return s.ideaRepo.List(ctx)
}
