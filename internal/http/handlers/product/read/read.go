// Package read реализует HTTP-обработчик получения товара по идентификатору.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/response"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// Handler обрабатывает запросы на чтение товара.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики для чтения товара.
type Service interface {
	GetProductByID(ctx context.Context, userUID, id string) (*models.Product, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получение товара
// @Description Возвращает товар пользователя по идентификатору. Чужой товар неотличим от несуществующего.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Param id path string true "Идентификатор товара"
// @Success 200 {object} response.Response "Товар"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"

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

	id := chi.URLParam(r, "id")

	product, err := h.service.GetProductByID(r.Context(), userUID, id)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			log.Info("product not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Product not found"))
			return
		}
		log.Error("failed to get product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to load product. Please try again."))
		return
	}

	render.JSON(w, r, response.OKWithData("Product retrieved successfully", product))
}
