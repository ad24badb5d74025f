package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"diet_backend/internal/feature/meals/domain/entity"
	"diet_backend/internal/feature/meals/domain/statistics"
)

// MealRepository は食事エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// すべての操作はユーザーIDでスコープされ、他ユーザーの食事はErrMealNotFoundとして扱われます。
type MealRepository interface {
	// Create は新しい食事をストレージに永続化します。
	Create(ctx context.Context, meal *entity.Meal) error

	// FindByUser は指定ユーザーの全食事を登録順で返します。
	FindByUser(ctx context.Context, userID string) ([]entity.Meal, error)

	// FindByID はユーザーが所有する食事を1件取得します。
	FindByID(ctx context.Context, userID, id string) (*entity.Meal, error)

	// Update は食事の名前・説明・日時・ダイエットフラグを更新します。所有者は変更しません。
	Update(ctx context.Context, meal *entity.Meal) error

	// Delete はユーザーが所有する食事を物理削除します。
	Delete(ctx context.Context, userID, id string) error
}

// MealInput は作成・更新時に変更可能なフィールドです。
type MealInput struct {
	Name        string
	Description string
	DateTime    time.Time
	IsOnDiet    bool
}

// mealUsecase は食事のCRUDと統計のビジネスロジックを実装します。
type mealUsecase struct {
	meals MealRepository
	newID func() string
}

// NewMealUsecase はmealUsecaseの新しいインスタンスを生成します。
func NewMealUsecase(meals MealRepository) *mealUsecase {
	return &mealUsecase{
		meals: meals,
		newID: uuid.NewString,
	}
}

// Create はユーザーに紐づく新しい食事を記録します。
func (u *mealUsecase) Create(ctx context.Context, userID string, in MealInput) (*entity.Meal, error) {
	meal := &entity.Meal{
		ID:          u.newID(),
		Name:        in.Name,
		Description: in.Description,
		DateTime:    in.DateTime,
		IsOnDiet:    in.IsOnDiet,
		UserID:      userID,
	}
	if err := u.meals.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	return meal, nil
}

// List はユーザーの全食事を返します。
func (u *mealUsecase) List(ctx context.Context, userID string) ([]entity.Meal, error) {
	return u.meals.FindByUser(ctx, userID)
}

// Get はユーザーが所有する食事を1件返します。
func (u *mealUsecase) Get(ctx context.Context, userID, id string) (*entity.Meal, error) {
	return u.meals.FindByID(ctx, userID, id)
}

// Update はユーザーが所有する食事を更新します。
func (u *mealUsecase) Update(ctx context.Context, userID, id string, in MealInput) error {
	return u.meals.Update(ctx, &entity.Meal{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		DateTime:    in.DateTime,
		IsOnDiet:    in.IsOnDiet,
		UserID:      userID,
	})
}

// Delete はユーザーが所有する食事を削除します。
func (u *mealUsecase) Delete(ctx context.Context, userID, id string) error {
	return u.meals.Delete(ctx, userID, id)
}

// Summary はユーザーの全食事から統計値を計算します。
// 並び順はリポジトリの取得順（登録順）のままで、日時による並べ替えは行いません。
func (u *mealUsecase) Summary(ctx context.Context, userID string) (statistics.Summary, error) {
	meals, err := u.meals.FindByUser(ctx, userID)
	if err != nil {
		return statistics.Summary{}, err
	}
	return statistics.Summarize(meals), nil
}
