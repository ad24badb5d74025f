package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet_backend/internal/feature/meals/domain/entity"
	"diet_backend/internal/feature/meals/domain/statistics"
	"diet_backend/internal/feature/meals/usecase"
	"diet_backend/internal/platform/session"
)

const testMealID = "6f1c2b6e-4f3a-4c7e-9a55-0d1b2c3d4e5f"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockMealUsecase is a mock implementation of the MealUsecase interface.
type mockMealUsecase struct {
	CreateFunc  func(ctx context.Context, userID string, in usecase.MealInput) (*entity.Meal, error)
	ListFunc    func(ctx context.Context, userID string) ([]entity.Meal, error)
	GetFunc     func(ctx context.Context, userID, id string) (*entity.Meal, error)
	UpdateFunc  func(ctx context.Context, userID, id string, in usecase.MealInput) error
	DeleteFunc  func(ctx context.Context, userID, id string) error
	SummaryFunc func(ctx context.Context, userID string) (statistics.Summary, error)
}

func (m *mockMealUsecase) Create(ctx context.Context, userID string, in usecase.MealInput) (*entity.Meal, error) {
	return m.CreateFunc(ctx, userID, in)
}

func (m *mockMealUsecase) List(ctx context.Context, userID string) ([]entity.Meal, error) {
	return m.ListFunc(ctx, userID)
}

func (m *mockMealUsecase) Get(ctx context.Context, userID, id string) (*entity.Meal, error) {
	return m.GetFunc(ctx, userID, id)
}

func (m *mockMealUsecase) Update(ctx context.Context, userID, id string, in usecase.MealInput) error {
	return m.UpdateFunc(ctx, userID, id, in)
}

func (m *mockMealUsecase) Delete(ctx context.Context, userID, id string) error {
	return m.DeleteFunc(ctx, userID, id)
}

func (m *mockMealUsecase) Summary(ctx context.Context, userID string) (statistics.Summary, error) {
	return m.SummaryFunc(ctx, userID)
}

// setupRouter wires the handler behind a fake authentication step.
// An empty userID simulates a route mounted without the session middleware.
func setupRouter(uc MealUsecase, userID string) *gin.Engine {
	h := NewMealHandler(uc)
	r := gin.New()
	g := r.Group("/meals", func(c *gin.Context) {
		if userID != "" {
			c.Set(session.ContextUserID, userID)
		}
		c.Next()
	})
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/statistics/summary", h.Summary)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() gin.H {
	return gin.H{
		"name":        "Salad",
		"description": "Healthy green salad",
		"date_time":   "2024-05-01T12:00:00Z",
		"is_on_diet":  false,
	}
}

func TestMealHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		createErr      error
		expectedStatus int
		expectCall     bool
	}{
		{name: "success: meal created", body: validBody(), expectedStatus: http.StatusCreated, expectCall: true},
		{name: "failure: missing name", body: gin.H{"description": "x", "date_time": "2024-05-01T12:00:00Z", "is_on_diet": true}, expectedStatus: http.StatusBadRequest},
		{name: "failure: missing is_on_diet", body: gin.H{"name": "x", "date_time": "2024-05-01T12:00:00Z"}, expectedStatus: http.StatusBadRequest},
		{name: "failure: invalid date_time", body: gin.H{"name": "x", "date_time": "yesterday", "is_on_diet": true}, expectedStatus: http.StatusBadRequest},
		{name: "failure: usecase error", body: validBody(), createErr: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			uc := &mockMealUsecase{
				CreateFunc: func(ctx context.Context, userID string, in usecase.MealInput) (*entity.Meal, error) {
					called = true
					assert.Equal(t, "user-1", userID)
					if tt.createErr != nil {
						return nil, tt.createErr
					}
					assert.Equal(t, "Salad", in.Name)
					assert.False(t, in.IsOnDiet, "explicit false must be accepted")
					assert.True(t, in.DateTime.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
					return &entity.Meal{ID: testMealID}, nil
				},
			}

			w := doJSON(t, setupRouter(uc, "user-1"), http.MethodPost, "/meals", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectCall, called)
			if tt.expectedStatus == http.StatusCreated {
				assert.JSONEq(t, `{"message":"Meal created successfully","id":"`+testMealID+`"}`, w.Body.String())
			}
		})
	}
}

func TestMealHandler_List(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := &mockMealUsecase{
		ListFunc: func(ctx context.Context, userID string) ([]entity.Meal, error) {
			return []entity.Meal{
				{ID: "a", Name: "Salad", IsOnDiet: true, UserID: userID, DateTime: created, CreatedAt: created, UpdatedAt: created},
				{ID: "b", Name: "Burger", IsOnDiet: false, UserID: userID, DateTime: created, CreatedAt: created, UpdatedAt: created},
			}, nil
		},
	}

	w := doJSON(t, setupRouter(uc, "user-1"), http.MethodGet, "/meals", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "a", body[0]["id"])
	assert.Equal(t, true, body[0]["is_on_diet"])
	assert.Equal(t, "user-1", body[0]["user_id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body[0]["date_time"])
	assert.Equal(t, "b", body[1]["id"])
}

func TestMealHandler_List_Empty(t *testing.T) {
	uc := &mockMealUsecase{
		ListFunc: func(ctx context.Context, userID string) ([]entity.Meal, error) {
			return nil, nil
		},
	}

	w := doJSON(t, setupRouter(uc, "user-1"), http.MethodGet, "/meals", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMealHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		getErr         error
		expectedStatus int
	}{
		{name: "success: found", path: "/meals/" + testMealID, expectedStatus: http.StatusOK},
		{name: "failure: not found", path: "/meals/" + testMealID, getErr: usecase.ErrMealNotFound, expectedStatus: http.StatusNotFound},
		{name: "failure: id is not a uuid", path: "/meals/not-a-uuid", expectedStatus: http.StatusBadRequest},
		{name: "failure: internal error", path: "/meals/" + testMealID, getErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockMealUsecase{
				GetFunc: func(ctx context.Context, userID, id string) (*entity.Meal, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return &entity.Meal{ID: id, Name: "Salad", UserID: userID}, nil
				},
			}

			w := doJSON(t, setupRouter(uc, "user-1"), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"message":"Meal not found"}`, w.Body.String())
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "boom", "internal errors must not leak")
			}
		})
	}
}

func TestMealHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		updateErr      error
		expectedStatus int
	}{
		{name: "success: updated", body: validBody(), expectedStatus: http.StatusOK},
		{name: "failure: other user's meal", body: validBody(), updateErr: usecase.ErrMealNotFound, expectedStatus: http.StatusNotFound},
		{name: "failure: invalid body", body: gin.H{"name": ""}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockMealUsecase{
				UpdateFunc: func(ctx context.Context, userID, id string, in usecase.MealInput) error {
					assert.Equal(t, testMealID, id)
					return tt.updateErr
				},
			}

			w := doJSON(t, setupRouter(uc, "user-1"), http.MethodPut, "/meals/"+testMealID, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMealHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		deleteErr      error
		expectedStatus int
		expectedBody   string
	}{
		{name: "success: deleted", expectedStatus: http.StatusOK, expectedBody: `{"message":"Meal deleted successfully"}`},
		{name: "failure: other user's meal", deleteErr: usecase.ErrMealNotFound, expectedStatus: http.StatusNotFound, expectedBody: `{"message":"Meal not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockMealUsecase{
				DeleteFunc: func(ctx context.Context, userID, id string) error {
					return tt.deleteErr
				},
			}

			w := doJSON(t, setupRouter(uc, "user-1"), http.MethodDelete, "/meals/"+testMealID, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestMealHandler_Summary(t *testing.T) {
	uc := &mockMealUsecase{
		SummaryFunc: func(ctx context.Context, userID string) (statistics.Summary, error) {
			return statistics.Summary{TotalMeals: 5, MealsOnDiet: 4, MealsOffDiet: 1, BestDietStreak: 3}, nil
		},
	}

	w := doJSON(t, setupRouter(uc, "user-1"), http.MethodGet, "/meals/statistics/summary", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalMeals":5,"mealsOnDiet":4,"mealsOffDiet":1,"bestDietStreak":3}`, w.Body.String())
}

func TestMealHandler_NoUserInContext(t *testing.T) {
	uc := &mockMealUsecase{}

	w := doJSON(t, setupRouter(uc, ""), http.MethodGet, "/meals", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
