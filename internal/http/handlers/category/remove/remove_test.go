package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) DeleteCategory(ctx context.Context, userUID, name string) (int, error) {
	args := m.Called(ctx, userUID, name)
	return args.Int(0), args.Error(1)
}

func TestRemoveCategoryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		category       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное удаление с переносом товаров",
			category: "Snacks",
			setupMock: func(m *MockService) {
				m.On("DeleteCategory", mock.Anything, "uid-123", "Snacks").Return(3, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"reassignedProducts":3`,
		},
		{
			name:     "удаление категории по умолчанию запрещено",
			category: "Uncategorized",
			setupMock: func(m *MockService) {
				m.On("DeleteCategory", mock.Anything, "uid-123", "Uncategorized").
					Return(0, catalogservice.ErrReservedCategory)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Cannot delete the default category`,
		},
		{
			name:     "категория не найдена",
			category: "Ghost",
			setupMock: func(m *MockService) {
				m.On("DeleteCategory", mock.Anything, "uid-123", "Ghost").
					Return(0, catalogservice.ErrCategoryNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `Category not found`,
		},
		{
			name:     "ошибка сервиса",
			category: "Snacks",
			setupMock: func(m *MockService) {
				m.On("DeleteCategory", mock.Anything, "uid-123", "Snacks").
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `Failed to delete category`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/categories/"+tt.category, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.category)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, "uid-123")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
