// Package adapters provides repository implementations for the meals feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"diet_backend/internal/feature/meals/domain/entity"
	"diet_backend/internal/feature/meals/usecase"
)

// mealGorm is a GORM implementation of the MealRepository interface.
// Ownership is part of every WHERE clause, so another user's meal looks missing.
type mealGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure mealGorm implements MealRepository.
var _ usecase.MealRepository = (*mealGorm)(nil)

// NewMealRepository creates a new instance of mealGorm.
func NewMealRepository(db *gorm.DB) *mealGorm {
	return &mealGorm{db: db}
}

// Create persists a new meal and copies the generated timestamps back.
func (r *mealGorm) Create(ctx context.Context, meal *entity.Meal) error {
	model := MealModelFromEntity(meal)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	meal.CreatedAt = model.CreatedAt
	meal.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByUser returns all meals of a user in insertion order.
func (r *mealGorm) FindByUser(ctx context.Context, userID string) ([]entity.Meal, error) {
	var models []MealModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	meals := make([]entity.Meal, 0, len(models))
	for i := range models {
		meals = append(meals, models[i].ToEntity())
	}
	return meals, nil
}

// FindByID retrieves one meal owned by userID.
func (r *mealGorm) FindByID(ctx context.Context, userID, id string) (*entity.Meal, error) {
	var model MealModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMealNotFound
		}
		return nil, err
	}
	meal := model.ToEntity()
	return &meal, nil
}

// Update changes the mutable fields of a meal owned by meal.UserID.
func (r *mealGorm) Update(ctx context.Context, meal *entity.Meal) error {
	// A map is used so that false/empty values are written too.
	result := r.db.WithContext(ctx).
		Model(&MealModel{}).
		Where("id = ? AND user_id = ?", meal.ID, meal.UserID).
		Updates(map[string]any{
			"name":        meal.Name,
			"description": meal.Description,
			"date_time":   meal.DateTime,
			"is_on_diet":  meal.IsOnDiet,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrMealNotFound
	}
	return nil
}

// Delete permanently removes a meal owned by userID.
func (r *mealGorm) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&MealModel{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrMealNotFound
	}
	return nil
}
