package server

import (
	"ideaboard/internal/middleware"
	"ideaboard/internal/models"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ApplyForRole handles POST /api/applications
func (s *Server) ApplyForRole(c *fiber.Ctx) error {
	var input service.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, err := s.appService.ApplyForRole(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "application submitted",
		"application_id", application.ID,
		"role_id", application.RoleID,
		"applicant_id", application.ApplicantID)

	return c.Status(fiber.StatusCreated).JSON(application)
}
