// Package statistics computes diet-adherence figures over a user's meal history.
package statistics

import "diet_backend/internal/feature/meals/domain/entity"

// Summary holds the aggregate figures for one user.
type Summary struct {
	TotalMeals     int
	MealsOnDiet    int
	MealsOffDiet   int
	BestDietStreak int
}

// Summarize aggregates meals in the order given. It does not sort by DateTime:
// the streak follows the order the meals were retrieved in.
func Summarize(meals []entity.Meal) Summary {
	flags := make([]bool, len(meals))
	onDiet := 0
	for i, m := range meals {
		flags[i] = m.IsOnDiet
		if m.IsOnDiet {
			onDiet++
		}
	}

	return Summary{
		TotalMeals:     len(meals),
		MealsOnDiet:    onDiet,
		MealsOffDiet:   len(meals) - onDiet,
		BestDietStreak: BestStreak(flags),
	}
}

// BestStreak returns the length of the longest run of consecutive true values.
func BestStreak(flags []bool) int {
	maxStreak, current := 0, 0
	for _, onDiet := range flags {
		if !onDiet {
			current = 0
			continue
		}
		current++
		if current > maxStreak {
			maxStreak = current
		}
	}
	return maxStreak
}
