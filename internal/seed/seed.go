package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/hexadigitall/platform/internal/app/models"
	appRepos "github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
	"github.com/hexadigitall/platform/internal/pkg/auth"
)

// CreateDefaultData seeds the course catalog and a default admin user
// when they do not exist yet. Errors are collected so a partial seed
// does not block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	defaultCourses := []*appModels.Course{
		{
			Slug:       "web-development-fundamentals",
			Title:      "Web Development Fundamentals",
			Summary:    "HTML, CSS and JavaScript from scratch, at your own pace.",
			Type:       appModels.CourseSelfPaced,
			PriceCents: 4500000,
			Currency:   "NGN",
			TotalHours: 40,
			Published:  true,
		},
		{
			Slug:       "practical-cybersecurity",
			Title:      "Practical Cybersecurity",
			Summary:    "Live instructor-led security training with weekly sessions.",
			Type:       appModels.CourseLive,
			PriceCents: 12000000,
			Currency:   "NGN",
			TotalHours: 60,
			Published:  true,
		},
		{
			Slug:       "data-analysis-with-python",
			Title:      "Data Analysis with Python",
			Summary:    "Live cohort covering pandas, visualization and reporting.",
			Type:       appModels.CourseLive,
			PriceCents: 9000000,
			Currency:   "NGN",
			TotalHours: 48,
			Published:  true,
		},
	}

	// Course creation is an upsert on slug, so re-seeding is a no-op
	for _, course := range defaultCourses {
		if _, err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("slug", course.Slug).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Default admin user. The bootstrap admin in configuration covers
	// first login, but a real directory row lets the account be managed
	// like any other user.
	_, err := userRepo.GetByUsername(ctx, "administrator")
	if errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Info().Msg("Creating default admin user...")

		hash, salt, hashErr := auth.HashPassword("ChangeMe123!", "")
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			return errors.Join(finalErr, hashErr)
		}

		admin := &appModels.User{
			Username:     "administrator",
			Email:        "admin@hexadigitall.com",
			DisplayName:  "System Administrator",
			Role:         appModels.RoleAdmin,
			Status:       appModels.StatusActive,
			PasswordHash: hash,
			PasswordSalt: salt,
		}

		adminID, createErr := userRepo.Create(ctx, admin)
		if createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, createErr)
		} else {
			lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking for admin user")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
