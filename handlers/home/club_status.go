package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/regionmap"
	"github.com/cherryclub/campus-api/utils/response"
)

// ClubStatus returns the raw per-region aggregation as a bare
// {universities, memberCounts} object; the map widget destructures it
// directly, without the response envelope. Database failures are absorbed
// by the stats service, which serves the static fallback, so this endpoint
// never returns an error status for storage problems.
func (h *HomeHandler) ClubStatus(c *fiber.Ctx) error {
	status, _ := h.stats.ClubStatus(c.Context())
	return c.JSON(status)
}

// RegionMap returns the display-ready map payload: the canonical region
// list merged with live data, plus the headline totals.
func (h *HomeHandler) RegionMap(c *fiber.Ctx) error {
	status, _ := h.stats.ClubStatus(c.Context())

	regions := regionmap.Build(status)
	stats := regionmap.Summarize(regions, status.MemberCounts)

	return response.Success(c, fiber.Map{
		"regions": regions,
		"stats":   stats,
	})
}
