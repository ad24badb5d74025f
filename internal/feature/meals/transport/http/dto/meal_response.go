package dto

import "time"

// MealRes is the JSON representation of a meal.
type MealRes struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time"`
	IsOnDiet    bool      `json:"is_on_diet"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MealCreatedRes is returned after a meal has been created.
type MealCreatedRes struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SummaryRes holds the diet statistics of the current user.
type SummaryRes struct {
	TotalMeals     int `json:"totalMeals"`
	MealsOnDiet    int `json:"mealsOnDiet"`
	MealsOffDiet   int `json:"mealsOffDiet"`
	BestDietStreak int `json:"bestDietStreak"`
}

// MessageRes is a response carrying only a message.
type MessageRes struct {
	Message string `json:"message"`
}
