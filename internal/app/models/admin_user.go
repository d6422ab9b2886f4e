package models

import (
	"time"
)

// AdminRole is the role of an administrative user.
type AdminRole string

const (
	RoleAdmin      AdminRole = "ADMIN"
	RoleSuperAdmin AdminRole = "SUPER_ADMIN"
)

// AdminUser defines the admin user model based on the 'admin_users' table
type AdminUser struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Username    string     `json:"username" db:"username" example:"admin"`
	Password    string     `json:"-" db:"password"` // Hashed password, excluded from JSON
	DisplayName string     `json:"displayName" db:"display_name" example:"สมาคมศิษย์เก่า"`
	Role        AdminRole  `json:"role" db:"role" example:"ADMIN"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
