package server

import (
	"encoding/json"

	"ideaboard/internal/middleware"
	"ideaboard/internal/models"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// updateProfileBody is the wire shape of a profile update. Optional
// fields distinguish absent from explicit null, so a missing key leaves
// the column untouched while "bio": null clears it.
type updateProfileBody struct {
	Name   models.Optional[string]   `json:"name"`
	Bio    models.Optional[string]   `json:"bio"`
	Skills models.Optional[[]string] `json:"skills"`
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUserProfile handles PUT /api/users/:id
func (s *Server) UpdateUserProfile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return nil
	}

	// Unmarshal directly so Optional's tri-state decoding is preserved.
	var body updateProfileBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: id,
		Name:   body.Name,
		Bio:    body.Bio,
		Skills: body.Skills,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user profile updated", "user_id", user.ID)

	return c.Status(fiber.StatusOK).JSON(user)
}
