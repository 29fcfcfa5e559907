package join

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

// universitySearchLimit caps autocomplete results
const universitySearchLimit = 20

// UniversityMatch is one autocomplete result for the join form
type UniversityMatch struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// SearchUniversities performs a case-insensitive substring search over
// university names for the join form's autocomplete. The response is a bare
// array, not the envelope; the autocomplete consumes it directly. A blank
// query returns an empty list rather than the full table.
func (h *JoinHandler) SearchUniversities(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.JSON([]UniversityMatch{})
	}

	var universities []model.University
	err := h.db.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name").
		Limit(universitySearchLimit).
		Find(&universities).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to search universities")
	}

	matches := make([]UniversityMatch, 0, len(universities))
	for _, u := range universities {
		matches = append(matches, UniversityMatch{
			Name:    u.Name,
			Country: u.Location,
		})
	}

	return c.JSON(matches)
}
