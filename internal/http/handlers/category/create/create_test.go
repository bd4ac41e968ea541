package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateCategory(ctx context.Context, userUID, name string) (*models.Category, error) {
	args := m.Called(ctx, userUID, name)
	if res := args.Get(0); res != nil {
		return res.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateCategoryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное создание категории",
			body:    `{"name":"Snacks"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				category := &models.Category{ID: 1, UserUID: "uid-123", Name: "Snacks"}
				m.On("CreateCategory", mock.Anything, "uid-123", "Snacks").Return(category, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Snacks"`,
		},
		{
			name:           "отсутствует uid пользователя",
			body:           `{"name":"Snacks"}`,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `Authentication required`,
		},
		{
			name:           "пустое имя",
			body:           `{"name":""}`,
			userUID:        "uid-123",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"success":false`,
		},
		{
			name:    "дубликат категории возвращает существующую",
			body:    `{"name":"Snacks"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				existing := &models.Category{ID: 1, UserUID: "uid-123", Name: "Snacks"}
				m.On("CreateCategory", mock.Anything, "uid-123", "Snacks").
					Return(existing, catalogservice.ErrCategoryExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Category already exists`,
		},
		{
			name:    "зарезервированное имя отклоняется",
			body:    `{"name":"Uncategorized"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("CreateCategory", mock.Anything, "uid-123", "Uncategorized").
					Return(nil, catalogservice.ErrReservedCategory)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Category name is reserved`,
		},
		{
			name:    "ошибка сервиса",
			body:    `{"name":"Snacks"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("CreateCategory", mock.Anything, "uid-123", "Snacks").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `Failed to create category`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(tt.body))
			if tt.userUID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
