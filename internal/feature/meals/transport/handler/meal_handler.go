// Package handler provides HTTP handlers for the meals feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"diet_backend/internal/feature/meals/domain/entity"
	"diet_backend/internal/feature/meals/domain/statistics"
	"diet_backend/internal/feature/meals/transport/http/dto"
	"diet_backend/internal/feature/meals/usecase"
	"diet_backend/internal/platform/session"
)

// MealUsecase defines the meal operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MealUsecase interface {
	Create(ctx context.Context, userID string, in usecase.MealInput) (*entity.Meal, error)
	List(ctx context.Context, userID string) ([]entity.Meal, error)
	Get(ctx context.Context, userID, id string) (*entity.Meal, error)
	Update(ctx context.Context, userID, id string, in usecase.MealInput) error
	Delete(ctx context.Context, userID, id string) error
	Summary(ctx context.Context, userID string) (statistics.Summary, error)
}

// MealHandler handles HTTP requests for meals. Every route is expected to sit
// behind session.Required.
type MealHandler struct {
	uc MealUsecase
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(uc MealUsecase) *MealHandler {
	return &MealHandler{uc: uc}
}

// List handles GET /meals.
func (h *MealHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	meals, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "list meals failed", err)
		return
	}

	out := make([]dto.MealRes, 0, len(meals))
	for i := range meals {
		out = append(out, toMealRes(&meals[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /meals.
func (h *MealHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	in, ok := bindMeal(c)
	if !ok {
		return
	}

	meal, err := h.uc.Create(c.Request.Context(), userID, in)
	if err != nil {
		h.fail(c, "create meal failed", err)
		return
	}
	slog.Info("meal created", "meal_id", meal.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.MealCreatedRes{Message: "Meal created successfully", ID: meal.ID})
}

// Get handles GET /meals/:id.
func (h *MealHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := mealID(c)
	if !ok {
		return
	}

	meal, err := h.uc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.fail(c, "get meal failed", err)
		return
	}
	c.JSON(http.StatusOK, toMealRes(meal))
}

// Update handles PUT /meals/:id.
func (h *MealHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := mealID(c)
	if !ok {
		return
	}
	in, ok := bindMeal(c)
	if !ok {
		return
	}

	if err := h.uc.Update(c.Request.Context(), userID, id, in); err != nil {
		h.fail(c, "update meal failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Meal updated successfully"})
}

// Delete handles DELETE /meals/:id.
func (h *MealHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := mealID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		h.fail(c, "delete meal failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Meal deleted successfully"})
}

// Summary handles GET /meals/statistics/summary.
func (h *MealHandler) Summary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	s, err := h.uc.Summary(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "meal summary failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.SummaryRes{
		TotalMeals:     s.TotalMeals,
		MealsOnDiet:    s.MealsOnDiet,
		MealsOffDiet:   s.MealsOffDiet,
		BestDietStreak: s.BestDietStreak,
	})
}

// fail maps usecase errors to HTTP responses. Internal details are only logged.
func (h *MealHandler) fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, usecase.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Meal not found"})
		return
	}
	slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "internal server error"})
}

// currentUser reads the id stored by the session middleware.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := session.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageRes{Message: "unauthorized"})
		return "", false
	}
	return userID, true
}

// mealID validates the :id path parameter as a UUID.
func mealID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid meal id"})
		return "", false
	}
	return id, true
}

func bindMeal(c *gin.Context) (usecase.MealInput, bool) {
	var req dto.MealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("meal validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return usecase.MealInput{}, false
	}
	return usecase.MealInput{
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		IsOnDiet:    *req.IsOnDiet,
	}, true
}

func toMealRes(m *entity.Meal) dto.MealRes {
	return dto.MealRes{
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
