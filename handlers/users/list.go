package users

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/utils/response"
)

// MemberRow is one roster entry. Password hash and refresh token never
// appear here.
type MemberRow struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	University     string    `json:"university"`
	Region         string    `json:"region"`
	GroupNumber    int       `json:"group_number"`
	Major          string    `json:"major"`
	Grade          string    `json:"grade"`
	Authority      int       `json:"authority"`
	IsCampusLeader bool      `json:"is_campus_leader"`
	CreatedAt      time.Time `json:"created_at"`
}

// List returns the member roster with university and region names joined.
// Members without a region group (unset or graduated) are excluded, matching
// the aggregation's active-member filter.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	var rows []MemberRow
	err := h.db.Raw(`
		SELECT
			u.id,
			u.name,
			u.phone,
			univ.name AS university,
			rg.region,
			rg.group_number,
			u.major,
			u.grade,
			u.authority,
			u.is_campus_leader,
			u.created_at
		FROM users u
		JOIN universities univ ON univ.id = u.university_id
		JOIN region_groups rg ON rg.id = u.region_group_id
		WHERE u.deleted_at IS NULL
		ORDER BY u.id`).Scan(&rows).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load members")
	}

	return response.Success(c, rows)
}
