package server

import (
	"ideaboard/internal/middleware"
	"ideaboard/internal/models"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateIdea handles POST /api/ideas
func (s *Server) CreateIdea(c *fiber.Ctx) error {
	var input service.CreateIdeaInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	idea, err := s.ideaService.CreateIdea(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "idea created",
		"idea_id", idea.ID, "owner_id", idea.OwnerID)

	return c.Status(fiber.StatusCreated).JSON(idea)
}

// GetIdeas handles GET /api/ideas
func (s *Server) GetIdeas(c *fiber.Ctx) error {
	ideas, err := s.ideaService.ListIdeas(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}
	return c.Status(fiber.StatusOK).JSON(ideas)
}

// GetIdea handles GET /api/ideas/:id
func (s *Server) GetIdea(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return nil
	}

	idea, err := s.ideaService.GetIdeaByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(idea)
}
