package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kritsada/alumnihub/internal/app/models"
	appRepos "github.com/kritsada/alumnihub/internal/app/repositories"
	"github.com/kritsada/alumnihub/internal/config"
	"github.com/kritsada/alumnihub/internal/pkg/auth"
)

// CreateDefaultData creates the first admin account when the table is empty.
// Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD, with development
// defaults.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminUserRepository(dbPool)

	count, err := adminRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting admin users")
		return err
	}
	if count > 0 {
		return nil
	}

	lgr.Info().Msg("No admin users found, creating default admin...")

	username := config.GetEnv("ADMIN_USERNAME", "admin")
	password := config.GetEnv("ADMIN_PASSWORD", "Admin123!")

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.AdminUser{
		Username:    username,
		Password:    hashedPassword,
		DisplayName: "ผู้ดูแลระบบ",
		Role:        appModels.RoleSuperAdmin,
		IsActive:    true,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Str("username", username).Msg("Default admin user created")
	return nil
}
