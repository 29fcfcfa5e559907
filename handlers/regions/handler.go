package regions

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

// RegionsHandler serves the region and group pickers on the join form
type RegionsHandler struct {
	db *gorm.DB
}

// NewRegionsHandler creates a new regions handler
func NewRegionsHandler(db *gorm.DB) *RegionsHandler {
	return &RegionsHandler{db: db}
}

// GroupsRequest selects one region's groups
type GroupsRequest struct {
	Region string `json:"region" validate:"required"`
}

// ListRegions returns the distinct region names in display order
func (h *RegionsHandler) ListRegions(c *fiber.Ctx) error {
	var regions []string
	err := h.db.Model(&model.RegionGroup{}).
		Distinct("region").
		Order("region").
		Pluck("region", &regions).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load regions")
	}

	return response.Success(c, regions)
}

// ListGroups returns one region's groups ordered by group number
func (h *RegionsHandler) ListGroups(c *fiber.Ctx) error {
	var req GroupsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Region == "" {
		return response.BadRequest(c, "Region is required")
	}

	var groups []model.RegionGroup
	err := h.db.
		Where("region = ?", req.Region).
		Order("group_number").
		Find(&groups).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load groups")
	}

	return response.Success(c, groups)
}
