package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	appRepos "github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/config"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/auth"
)

// CreateDefaultData ensures a default administrator account exists so a fresh
// deployment can be managed immediately. Credentials come from the
// ADMIN_EMAIL and ADMIN_PASSWORD environment variables.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@itvs.kpi.ua")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "")

	_, err := userRepo.GetByEmail(ctx, adminEmail)
	if err == nil {
		lgr.Debug().Str("email", adminEmail).Msg("Default admin already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	if adminPassword == "" {
		lgr.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Name:     "Administrator",
		Email:    adminEmail,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
