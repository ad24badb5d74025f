// Package router はHTTPルーティングを定義します。
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	mealhandler "diet_backend/internal/feature/meals/transport/handler"
	userhandler "diet_backend/internal/feature/users/transport/handler"
	platformhandler "diet_backend/internal/platform/http/handler"
	"diet_backend/internal/platform/logger"
	"diet_backend/internal/platform/metrics"
	"diet_backend/internal/platform/session"
	"diet_backend/internal/shared/ratelimiter"
)

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Health *platformhandler.HealthHandler
	Users  *userhandler.UserHandler
	Meals  *mealhandler.MealHandler
}

// Options はミドルウェアの設定です。nilのフィールドは無効になります。
type Options struct {
	Logger          *slog.Logger
	Metrics         *metrics.Metrics
	RegisterLimiter ratelimiter.Limiter
	// CORSOrigins が空の場合CORSは無効です。
	CORSOrigins []string
}

func NewRouter(h Handlers, auth session.Authenticator, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if opts.Logger != nil {
		r.Use(logger.RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	// 新規ユーザー登録（セッションクッキー発行）
	register := []gin.HandlerFunc{}
	if opts.RegisterLimiter != nil {
		register = append(register, ratelimiter.Middleware(opts.RegisterLimiter))
	}
	register = append(register, h.Users.Register)
	r.POST("/users", register...)

	// 認証必須のルート
	// session.Required() → リクエストに sessionId クッキーが必要になる
	authed := r.Group("/")
	authed.Use(session.Required(auth))
	{
		authed.GET("/users/me", h.Users.Me)

		authed.GET("/meals", h.Meals.List)
		authed.POST("/meals", h.Meals.Create)
		authed.GET("/meals/statistics/summary", h.Meals.Summary)
		authed.GET("/meals/:id", h.Meals.Get)
		authed.PUT("/meals/:id", h.Meals.Update)
		authed.DELETE("/meals/:id", h.Meals.Delete)
	}

	return r
}
