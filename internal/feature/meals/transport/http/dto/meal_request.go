// Package dto defines data transfer objects for the meals feature's HTTP transport layer.
package dto

import "time"

// MealReq represents the request body for creating or updating a meal.
// IsOnDiet is a pointer so that an explicit false passes the required check.
type MealReq struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time" binding:"required"`
	IsOnDiet    *bool     `json:"is_on_diet" binding:"required"`
}
