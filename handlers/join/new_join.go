package join

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/cherryclub/campus-api/model"
	authutil "github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/dberr"
	"github.com/cherryclub/campus-api/utils/phone"
	"github.com/cherryclub/campus-api/utils/response"
	"github.com/cherryclub/campus-api/utils/validation"
)

// NewJoinRequest is a membership application from the join form
type NewJoinRequest struct {
	Name          string `json:"name" validate:"required,max=50"`
	Gender        string `json:"gender" validate:"omitempty,oneof=male female"`
	Phone         string `json:"phone" validate:"required"`
	Password      string `json:"password" validate:"required,min=8"`
	Birthday      string `json:"birthday" validate:"omitempty"` // YYYY-MM-DD
	UniversityID  uint   `json:"universityId" validate:"required"`
	RegionGroupID *uint  `json:"regionGroupId"`
	Major         string `json:"major" validate:"omitempty,max=100"`
	StudentNumber string `json:"studentNumber" validate:"omitempty,max=30"`
	Grade         string `json:"grade" validate:"omitempty,max=10"`
	Semester      string `json:"semester" validate:"omitempty,max=10"`
}

// CheckPhoneRequest asks whether a phone number is already registered
type CheckPhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// NewJoin accepts a membership application and creates the member record.
// The phone number is normalized before storage so later logins match
// regardless of separator formatting. A duplicate phone is rejected before
// insert; the unique constraint backstops the race between the check and
// the insert, so resubmitting the same phone never creates two records.
func (h *JoinHandler) NewJoin(c *fiber.Ctx) error {
	var req NewJoinRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	normalized := phone.Normalize(req.Phone)
	if !phone.Valid(normalized) {
		return response.BadRequest(c, "Invalid phone number")
	}

	var count int64
	if err := h.db.Model(&model.User{}).Where("phone = ?", normalized).Count(&count).Error; err != nil {
		return response.InternalServerError(c, "Failed to check phone number")
	}
	if count > 0 {
		return response.Duplicate(c, "Phone number is already registered")
	}

	var university model.University
	if err := h.db.First(&university, req.UniversityID).Error; err != nil {
		return response.BadRequest(c, "Unknown university")
	}

	if req.RegionGroupID != nil {
		var group model.RegionGroup
		if err := h.db.First(&group, *req.RegionGroupID).Error; err != nil {
			return response.BadRequest(c, "Unknown region group")
		}
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	user := model.User{
		Name:          req.Name,
		Gender:        req.Gender,
		Phone:         normalized,
		PasswordHash:  hash,
		UniversityID:  req.UniversityID,
		RegionGroupID: req.RegionGroupID,
		Major:         req.Major,
		StudentNumber: req.StudentNumber,
		Grade:         req.Grade,
		Semester:      req.Semester,
	}

	if req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return response.BadRequest(c, "Birthday must be formatted as YYYY-MM-DD")
		}
		user.Birthday = datatypes.Date(birthday)
	}

	if err := h.db.Create(&user).Error; err != nil {
		if dberr.IsDuplicate(err) {
			return response.Duplicate(c, "Phone number is already registered")
		}
		return response.InternalServerError(c, "Failed to create member")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      user.ID,
	})
}

// CheckPhone reports whether a phone number is already registered
func (h *JoinHandler) CheckPhone(c *fiber.Ctx) error {
	var req CheckPhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Phone == "" {
		return response.BadRequest(c, "Phone is required")
	}

	normalized := phone.Normalize(req.Phone)

	var count int64
	if err := h.db.Model(&model.User{}).Where("phone = ?", normalized).Count(&count).Error; err != nil {
		return response.InternalServerError(c, "Failed to check phone number")
	}

	return response.Success(c, fiber.Map{"exists": count > 0})
}
