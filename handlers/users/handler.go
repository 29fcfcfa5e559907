package users

import (
	"gorm.io/gorm"
)

// UsersHandler handles the admin member roster endpoints
type UsersHandler struct {
	db *gorm.DB
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(db *gorm.DB) *UsersHandler {
	return &UsersHandler{db: db}
}
