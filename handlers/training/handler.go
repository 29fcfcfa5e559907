package training

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/middleware"
	"github.com/cherryclub/campus-api/utils/response"
)

// TrainingHandler handles members' personal training entries
type TrainingHandler struct {
	db *gorm.DB
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(db *gorm.DB) *TrainingHandler {
	return &TrainingHandler{db: db}
}

// CreateRequest is a new training entry. Detail carries the per-type fields
// (scripture ranges, prayer time, SOC answers) as an opaque JSON object.
type CreateRequest struct {
	Date     string         `json:"date" validate:"required"` // YYYY-MM-DD
	Detail   datatypes.JSON `json:"detail"`
	IsShared bool           `json:"isShared"`
}

// Create records a training entry of the type named in the query string.
// Unknown types are rejected before touching the database.
func (h *TrainingHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	trainingType := c.Query("type")
	if !model.KnownTrainingType(trainingType) {
		return response.BadRequest(c, "Unknown training type")
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Date == "" {
		return response.BadRequest(c, "Date is required")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "Date must be formatted as YYYY-MM-DD")
	}

	entry := model.TrainingLog{
		UserID:   userID,
		Type:     model.TrainingType(trainingType),
		Date:     datatypes.Date(date),
		Detail:   req.Detail,
		IsShared: req.IsShared,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		return response.InternalServerError(c, "Failed to create training entry")
	}

	return response.Created(c, entry)
}

// UpdateRequest carries replacement values for an existing entry. Absent
// fields keep their stored values.
type UpdateRequest struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Detail   *datatypes.JSON `json:"detail"`
	IsShared *bool           `json:"isShared"`
}

// Update replaces fields of one of the caller's own entries. Entries of
// other members are never updatable, whatever the caller's authority.
func (h *TrainingHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	entryID, err := c.ParamsInt("id")
	if err != nil || entryID <= 0 {
		return response.BadRequest(c, "Invalid entry id")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var entry model.TrainingLog
	if err := h.db.First(&entry, entryID).Error; err != nil {
		return response.NotFound(c, "Training entry not found")
	}
	if entry.UserID != userID {
		return response.Forbidden(c, "Not your training entry")
	}

	updates := map[string]interface{}{}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return response.BadRequest(c, "Date must be formatted as YYYY-MM-DD")
		}
		updates["date"] = datatypes.Date(date)
	}
	if req.Detail != nil {
		updates["detail"] = *req.Detail
	}
	if req.IsShared != nil {
		updates["is_shared"] = *req.IsShared
	}
	if len(updates) == 0 {
		return response.BadRequest(c, "No updatable fields")
	}

	if err := h.db.Model(&entry).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update training entry")
	}

	return response.Success(c, entry)
}

// List returns the caller's own entries of one type, newest first
func (h *TrainingHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	trainingType := c.Query("type")
	if !model.KnownTrainingType(trainingType) {
		return response.BadRequest(c, "Unknown training type")
	}

	var entries []model.TrainingLog
	err := h.db.
		Where("user_id = ? AND type = ?", userID, trainingType).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load training entries")
	}

	return response.Success(c, entries)
}

// ClubList returns shared entries from one university on one date, so a
// campus group can review each other's entries together
func (h *TrainingHandler) ClubList(c *fiber.Ctx) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	trainingType := c.Query("type")
	if !model.KnownTrainingType(trainingType) {
		return response.BadRequest(c, "Unknown training type")
	}

	universityID := c.QueryInt("university_id")
	if universityID <= 0 {
		return response.BadRequest(c, "university_id is required")
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		return response.BadRequest(c, "date is required")
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return response.BadRequest(c, "date must be formatted as YYYY-MM-DD")
	}

	var entries []model.TrainingLog
	err = h.db.
		Joins("JOIN users ON users.id = training_logs.user_id").
		Where("training_logs.type = ? AND training_logs.is_shared = ?", trainingType, true).
		Where("users.university_id = ?", universityID).
		Where("training_logs.date = ?", datatypes.Date(date)).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "university_id")
		}).
		Order("training_logs.id").
		Find(&entries).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load shared entries")
	}

	return response.Success(c, entries)
}
