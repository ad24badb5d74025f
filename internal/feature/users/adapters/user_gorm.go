// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"diet_backend/internal/feature/users/domain/entity"
	"diet_backend/internal/feature/users/usecase"
	"diet_backend/internal/platform/session"
)

// pgUniqueViolation はPostgreSQLの一意制約違反のSQLSTATEです。
const pgUniqueViolation = "23505"

// userGorm はUserRepositoryインターフェースのGORM実装です。
// セッションガードが使うトークン検索(session.UserResolver)も実装します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryとsession.UserResolverを実装していることをコンパイル時に検証します。
var (
	_ usecase.UserRepository = (*userGorm)(nil)
	_ session.UserResolver   = (*userGorm)(nil)
)

// NewUserRepository は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create はユーザーをデータベースに追加します。
// 一意制約違反の場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindUserIDBySessionToken はトークンと完全一致するユーザーのIDを返します。
// 一致しない場合、session.ErrTokenNotFoundを返します。
func (r *userGorm) FindUserIDBySessionToken(ctx context.Context, token string) (string, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("session_id = ?", token).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", session.ErrTokenNotFound
		}
		return "", err
	}
	return u.ID, nil
}

// isUniqueViolation はGORMの変換済みエラーとpgxのエラーコードの両方を判定します。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
