package home

import (
	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/services"
)

// HomeHandler serves the public landing page data: the region statistics,
// the map widget payload, club information, and hero images
type HomeHandler struct {
	db     *gorm.DB
	stats  *services.StatsService
	spaces *services.SpacesClient
}

// NewHomeHandler creates a new home handler. spaces may be nil when the
// storage bucket is not configured; the hero image endpoint then serves an
// empty list.
func NewHomeHandler(db *gorm.DB, stats *services.StatsService, spaces *services.SpacesClient) *HomeHandler {
	return &HomeHandler{
		db:     db,
		stats:  stats,
		spaces: spaces,
	}
}
