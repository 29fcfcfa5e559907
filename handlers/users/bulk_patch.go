package users

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

// UserPatch is one item in a bulk update. Only the allow-listed role fields
// can be changed through this endpoint; pointers distinguish "leave as is"
// from an explicit value.
type UserPatch struct {
	ID             uint  `json:"id"`
	Authority      *int  `json:"authority"`
	IsCampusLeader *bool `json:"isCampusLeader"`
}

// PatchResult reports the outcome for one item of a bulk update
type PatchResult struct {
	ID      uint   `json:"id"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// validatePatch rejects items before any SQL runs, so a broken item never
// opens a savepoint
func validatePatch(p UserPatch) string {
	if p.ID == 0 {
		return "missing id"
	}
	if p.Authority == nil && p.IsCampusLeader == nil {
		return "no updatable fields"
	}
	if p.Authority != nil && (*p.Authority < 0 || *p.Authority > model.AuthorityAdmin) {
		return fmt.Sprintf("authority must be between 0 and %d", model.AuthorityAdmin)
	}
	return ""
}

// BulkPatch applies partial role updates to many members in one call.
// Everything runs in a single transaction with a savepoint per item, so one
// failing item is rolled back and reported without aborting the rest.
func (h *UsersHandler) BulkPatch(c *fiber.Ctx) error {
	var patches []UserPatch
	if err := c.BodyParser(&patches); err != nil {
		return response.BadRequest(c, "Request body must be an array of updates")
	}

	if len(patches) == 0 {
		return response.BadRequest(c, "At least one update is required")
	}

	results := make([]PatchResult, 0, len(patches))

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i, patch := range patches {
			if reason := validatePatch(patch); reason != "" {
				results = append(results, PatchResult{ID: patch.ID, Success: false, Reason: reason})
				continue
			}

			updates := map[string]interface{}{}
			if patch.Authority != nil {
				updates["authority"] = *patch.Authority
			}
			if patch.IsCampusLeader != nil {
				updates["is_campus_leader"] = *patch.IsCampusLeader
			}

			savepoint := fmt.Sprintf("user_patch_%d", i)
			tx.SavePoint(savepoint)

			result := tx.Model(&model.User{}).Where("id = ?", patch.ID).Updates(updates)
			if result.Error != nil {
				tx.RollbackTo(savepoint)
				results = append(results, PatchResult{ID: patch.ID, Success: false, Reason: "update failed"})
				continue
			}
			if result.RowsAffected == 0 {
				tx.RollbackTo(savepoint)
				results = append(results, PatchResult{ID: patch.ID, Success: false, Reason: "user not found"})
				continue
			}

			results = append(results, PatchResult{ID: patch.ID, Success: true})
		}
		return nil
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to apply updates")
	}

	return response.Success(c, results)
}
