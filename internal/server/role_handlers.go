package server

import (
	"ideaboard/internal/middleware"
	"ideaboard/internal/models"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateRole handles POST /api/roles
func (s *Server) CreateRole(c *fiber.Ctx) error {
	var input service.CreateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	role, err := s.roleService.CreateRole(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "role created",
		"role_id", role.ID, "idea_id", role.IdeaID)

	return c.Status(fiber.StatusCreated).JSON(role)
}
