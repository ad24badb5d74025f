package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"diet_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenGenerator はセッショントークン生成のインターフェースを定義します。
type TokenGenerator interface {
	// NewToken は構造を持たないランダムなトークンを生成します。
	NewToken() (string, error)
}

// Registration は登録結果です。
type Registration struct {
	UserID       string
	SessionToken string
	// IssueCookie はリクエストがセッションクッキーを持っていなかった場合のみtrueになります。
	IssueCookie bool
}

// userUsecase はユーザー登録のビジネスロジックを実装します。
type userUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	newID  func() string
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, tokens TokenGenerator) *userUsecase {
	return &userUsecase{
		users:  users,
		tokens: tokens,
		newID:  uuid.NewString,
	}
}

// Register は新規ユーザーを作成し、そのユーザー専用のセッショントークンを発行します。
// presentedToken はリクエストに既に付いていたクッキーの値で、空でなければクッキーは再発行しません。
// トークンは常に新規ユーザーに対して生成されるため、1つのトークンが複数ユーザーに紐づくことはありません。
func (u *userUsecase) Register(ctx context.Context, name, email, presentedToken string) (*Registration, error) {
	token, err := u.tokens.NewToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	user := &entity.User{
		ID:        u.newID(),
		Name:      name,
		Email:     email,
		SessionID: &token,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &Registration{
		UserID:       user.ID,
		SessionToken: token,
		IssueCookie:  presentedToken == "",
	}, nil
}

// Me は認証済みユーザーの情報を返します。
func (u *userUsecase) Me(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
