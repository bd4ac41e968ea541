package update

import (
	"context"
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

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateProduct(ctx context.Context, userUID, id string, upd models.UpdateProduct) (*models.Product, error) {
	args := m.Called(ctx, userUID, id, upd)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateProductHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		productID      string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "частичное обновление меняет только переданные поля",
			productID: "p-1",
			body:      `{"price":42.5}`,
			setupMock: func(m *MockService) {
				product := &models.Product{ID: "p-1", Barcode: "111", Name: "Chips", Price: 42.5}
				m.On("UpdateProduct", mock.Anything, "uid-123", "p-1",
					mock.MatchedBy(func(upd models.UpdateProduct) bool {
						return upd.Name == nil && upd.Price != nil && *upd.Price == 42.5
					})).Return(product, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":42.5`,
		},
		{
			name:      "пустой объект возвращает товар без изменений",
			productID: "p-1",
			body:      `{}`,
			setupMock: func(m *MockService) {
				product := &models.Product{ID: "p-1", Barcode: "111", Name: "Chips",
					Price: 9.99, Description: "salty", Category: "Snacks"}
				m.On("UpdateProduct", mock.Anything, "uid-123", "p-1",
					mock.MatchedBy(func(upd models.UpdateProduct) bool {
						return upd.Name == nil && upd.Price == nil &&
							upd.Description == nil && upd.Category == nil
					})).Return(product, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Chips"`,
		},
		{
			name:           "некорректный json",
			productID:      "p-1",
			body:           `{"price":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:      "товар не найден",
			productID: "p-ghost",
			body:      `{"name":"New"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateProduct", mock.Anything, "uid-123", "p-ghost", mock.Anything).
					Return(nil, catalogservice.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `Product not found`,
		},
		{
			name:      "пустое имя отклоняется",
			productID: "p-1",
			body:      `{"name":"   "}`,
			setupMock: func(m *MockService) {
				m.On("UpdateProduct", mock.Anything, "uid-123", "p-1", mock.Anything).
					Return(nil, catalogservice.ErrEmptyName)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Product name is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/api/products/"+tt.productID, strings.NewReader(tt.body))
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
