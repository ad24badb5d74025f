package adapters

import (
	"time"

	"diet_backend/internal/feature/meals/domain/entity"
)

// MealModel is the GORM model for the meals table.
type MealModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	DateTime    time.Time `gorm:"column:date_time;not null"`
	IsOnDiet    bool      `gorm:"not null"`
	UserID      string    `gorm:"size:36;index;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// ToEntity converts the GORM model to a domain entity.
func (m *MealModel) ToEntity() entity.Meal {
	return entity.Meal{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		DateTime:    m.DateTime,
		IsOnDiet:    m.IsOnDiet,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MealModelFromEntity converts a domain entity to a GORM model.
func MealModelFromEntity(e *entity.Meal) *MealModel {
	return &MealModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		DateTime:    e.DateTime,
		IsOnDiet:    e.IsOnDiet,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
