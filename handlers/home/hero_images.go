package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/utils/response"
)

// HeroImages lists the landing page hero image URLs from the storage
// bucket. An unconfigured bucket serves an empty list, not an error.
func (h *HomeHandler) HeroImages(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.Success(c, []string{})
	}

	urls, err := h.spaces.ListHeroImages(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list hero images")
	}

	return response.Success(c, urls)
}
