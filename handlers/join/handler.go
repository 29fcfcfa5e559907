package join

import (
	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/utils/validation"
)

// JoinHandler handles membership applications and the public university
// lookup used by the join form
type JoinHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewJoinHandler creates a new join handler
func NewJoinHandler(db *gorm.DB) *JoinHandler {
	return &JoinHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}
