package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AlumniRepository       *AlumniRepository
	NotificationRepository *NotificationRepository
	AdminUserRepository    *AdminUserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AlumniRepository:       NewAlumniRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AdminUserRepository:    NewAdminUserRepository(db),
	}
}
