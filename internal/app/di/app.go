package di

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"diet_backend/internal/app/config"
	"diet_backend/internal/app/router"
	mealadapters "diet_backend/internal/feature/meals/adapters"
	mealhandler "diet_backend/internal/feature/meals/transport/handler"
	mealusecase "diet_backend/internal/feature/meals/usecase"
	useradapters "diet_backend/internal/feature/users/adapters"
	userhandler "diet_backend/internal/feature/users/transport/handler"
	userusecase "diet_backend/internal/feature/users/usecase"
	platformhandler "diet_backend/internal/platform/http/handler"
	"diet_backend/internal/platform/metrics"
	"diet_backend/internal/platform/session"
	"diet_backend/internal/shared/ratelimiter"
)

// NewApp wires repositories, usecases and handlers into a ready-to-serve router.
// rdb may be nil.
func NewApp(db *gorm.DB, rdb *redis.Client, cfg config.Config, log *slog.Logger) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Repository
	userRepo := useradapters.NewUserRepository(db)
	mealRepo := mealadapters.NewMealRepository(db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, session.NewGenerator())
	mealUC := mealusecase.NewMealUsecase(mealRepo)

	// Handler
	handlers := router.Handlers{
		Health: platformhandler.NewHealthHandler(sqlDB),
		Users:  userhandler.NewUserHandler(userUC),
		Meals:  mealhandler.NewMealHandler(mealUC),
	}

	opts := router.Options{
		Logger:          log,
		Metrics:         metrics.New(),
		RegisterLimiter: ratelimiter.NewRateLimiter(cfg.RegisterRatePerMin, cfg.RegisterBurst),
	}
	if cfg.CORSEnabled {
		opts.CORSOrigins = cfg.CORSOrigins
	}

	return router.NewRouter(handlers, NewSessionGuard(rdb, userRepo), opts), nil
}
