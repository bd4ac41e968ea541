package read

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
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetProductByID(ctx context.Context, userUID, id string) (*models.Product, error) {
	args := m.Called(ctx, userUID, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadProductHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		productID      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "успешное чтение товара",
			productID: "p-1",
			setupMock: func(m *MockService) {
				product := &models.Product{ID: "p-1", Barcode: "111", Name: "Chips"}
				m.On("GetProductByID", mock.Anything, "uid-123", "p-1").Return(product, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Chips"`,
		},
		{
			name:      "товар не найден",
			productID: "p-ghost",
			setupMock: func(m *MockService) {
				m.On("GetProductByID", mock.Anything, "uid-123", "p-ghost").
					Return(nil, catalogservice.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `Product not found`,
		},
		{
			name:      "ошибка сервиса",
			productID: "p-1",
			setupMock: func(m *MockService) {
				m.On("GetProductByID", mock.Anything, "uid-123", "p-1").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `Failed to load product`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.productID)
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
