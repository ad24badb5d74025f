// Package entity defines the domain entities for the meals feature.
package entity

import "time"

// Meal is a single eaten meal recorded by a user.
// Its ID and owner never change after creation.
type Meal struct {
	ID          string    // UUID assigned at creation
	Name        string    // Short name (e.g., "Salad")
	Description string    // Free-text description
	DateTime    time.Time // When the meal was eaten, not when it was recorded
	IsOnDiet    bool      // Whether the meal complies with the user's diet
	UserID      string    // Owning user
	CreatedAt   time.Time // Record creation time
	UpdatedAt   time.Time // Last update time
}
