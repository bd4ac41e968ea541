// Package list реализует HTTP-обработчик получения списка товаров пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/response"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

// Handler обрабатывает запросы на получение списка товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики для списка товаров.
type Service interface {
	ListProducts(ctx context.Context, userUID string, filter models.ProductFilter) ([]*models.Product, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает товары пользователя от новых к старым с фильтрацией по категории и поиском.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Param category query string false "Фильтр по категории; 'all' или пусто — без фильтра"
// @Param search query string false "Поиск подстроки по имени, штрихкоду, описанию и категории"
// @Success 200 {object} response.Response "Список товаров"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("missing user uid in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Authentication required. Please provide a valid token."))
		return
	}

	filter := models.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	products, err := h.service.ListProducts(r.Context(), userUID, filter)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to load products. Please try again."))
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	log.Info("products listed", slog.Int("count", len(products)))
	render.JSON(w, r, response.OKWithData("Products retrieved successfully", products))
}
