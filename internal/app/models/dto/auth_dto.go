package dto

import (
	"github.com/kritsada/alumnihub/internal/app/models"
)

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the admin profile
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresIn int              `json:"expiresIn"` // Seconds
	Admin     models.AdminUser `json:"admin"`
}
