// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"diet_backend/internal/feature/users/domain/entity"
	"diet_backend/internal/feature/users/transport/http/dto"
	"diet_backend/internal/feature/users/usecase"
	"diet_backend/internal/platform/session"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Register は新規ユーザーを登録し、セッショントークンを発行します。
	Register(ctx context.Context, name, email, presentedToken string) (*usecase.Registration, error)
	// Me は認証済みユーザーを返します。
	Me(ctx context.Context, userID string) (*entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをCreateUserReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201とsessionIdを返却（クッキーはリクエストに無かった場合のみ設定）
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}

	presented, _ := c.Cookie(session.CookieName)

	reg, err := h.users.Register(c.Request.Context(), req.Name, req.Email, presented)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.MessageRes{Message: "email already registered"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "internal server error"})
		return
	}

	if reg.IssueCookie {
		session.SetCookie(c, reg.SessionToken)
	}
	slog.Info("user registered", "user_id", reg.UserID, "cookie_issued", reg.IssueCookie, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.CreateUserRes{
		Message:   "User created successfully",
		SessionID: reg.SessionToken,
	})
}

// Me は認証済みユーザーのプロフィールを返します。session.Requiredの後ろに配置します。
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := session.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageRes{Message: "unauthorized"})
		return
	}

	user, err := h.users.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "user not found"})
			return
		}
		slog.Error("load user failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.UserRes{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
