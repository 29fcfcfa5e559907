package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

// ClubInfoRow is one university's club summary
type ClubInfoRow struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	IsCherryClub   bool   `json:"is_cherry_club"`
	MinistryStatus string `json:"ministry_status"`
	ImageURL       string `json:"image_url"`
	MemberCount    int    `json:"member_count"`
	LeaderName     string `json:"leader_name"`
}

// UpdateClubInfoRequest updates a university's club flags
type UpdateClubInfoRequest struct {
	ID             uint    `json:"id" validate:"required"`
	IsCherryClub   *bool   `json:"is_cherry_club"`
	MinistryStatus *string `json:"ministry_status"`
}

// ClubMemberRequest selects one university's members
type ClubMemberRequest struct {
	UniversityID uint `json:"universityId" validate:"required"`
}

// ClubInfo returns per-university member counts with the campus leader's
// name. Universities with no members are omitted.
func (h *HomeHandler) ClubInfo(c *fiber.Ctx) error {
	var rows []ClubInfoRow
	err := h.db.Raw(`
		SELECT
			univ.id,
			univ.name,
			univ.is_cherry_club,
			univ.ministry_status,
			univ.image_url,
			COUNT(u.id) AS member_count,
			COALESCE(MAX(CASE WHEN u.is_campus_leader THEN u.name END), '') AS leader_name
		FROM universities univ
		JOIN users u ON u.university_id = univ.id AND u.deleted_at IS NULL
		WHERE univ.deleted_at IS NULL
		GROUP BY univ.id, univ.name, univ.is_cherry_club, univ.ministry_status, univ.image_url
		HAVING COUNT(u.id) != 0
		ORDER BY univ.name`).Scan(&rows).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load club info")
	}

	return response.Success(c, rows)
}

// UpdateClubInfo updates a university's affiliation flags
func (h *HomeHandler) UpdateClubInfo(c *fiber.Ctx) error {
	var req UpdateClubInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "University id is required")
	}
	if req.IsCherryClub == nil && req.MinistryStatus == nil {
		return response.BadRequest(c, "No updatable fields")
	}

	var university model.University
	if err := h.db.First(&university, req.ID).Error; err != nil {
		return response.NotFound(c, "University not found")
	}

	updates := map[string]interface{}{}
	if req.IsCherryClub != nil {
		updates["is_cherry_club"] = *req.IsCherryClub
	}
	if req.MinistryStatus != nil {
		updates["ministry_status"] = *req.MinistryStatus
	}

	if err := h.db.Model(&university).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update university")
	}

	return response.SuccessWithMessage(c, "University updated", nil)
}

// ClubMemberRow is one member in a university's roster
type ClubMemberRow struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Major          string `json:"major"`
	Grade          string `json:"grade"`
	IsCampusLeader bool   `json:"is_campus_leader"`
}

// ClubMembers returns the members of one university
func (h *HomeHandler) ClubMembers(c *fiber.Ctx) error {
	var req ClubMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.UniversityID == 0 {
		return response.BadRequest(c, "University id is required")
	}

	var rows []ClubMemberRow
	err := h.db.Model(&model.User{}).
		Select("id", "name", "major", "grade", "is_campus_leader").
		Where("university_id = ?", req.UniversityID).
		Order("is_campus_leader DESC, name").
		Find(&rows).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load members")
	}

	return response.Success(c, rows)
}
