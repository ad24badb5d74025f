// Package usecase implements the business logic for the meals feature.
package usecase

import "errors"

var (
	// ErrMealNotFound is returned when a meal does not exist or belongs to another user.
	// The two cases are deliberately indistinguishable to the caller.
	ErrMealNotFound = errors.New("meal not found")
)
