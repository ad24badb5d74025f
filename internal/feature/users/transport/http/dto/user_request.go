// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateUserReq は POST /users のリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type CreateUserReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
