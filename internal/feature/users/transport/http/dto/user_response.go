package dto

import "time"

// CreateUserRes は登録成功時のレスポンスです。
type CreateUserRes struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// UserRes は認証済みユーザーのプロフィールです。
type UserRes struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageRes はメッセージのみのレスポンスです。
type MessageRes struct {
	Message string `json:"message"`
}
