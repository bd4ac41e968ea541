// Package readbarcode реализует HTTP-обработчик поиска товара по штрихкоду.
package readbarcode

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

// Handler обрабатывает запросы на поиск товара по штрихкоду.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики для поиска по штрихкоду.
type Service interface {
	GetProductByBarcode(ctx context.Context, userUID, barcode string) (*models.Product, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск товара по штрихкоду
// @Description Возвращает товар пользователя по точному совпадению штрихкода.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Param barcode path string true "Штрихкод товара"
// @Success 200 {object} response.Response "Товар"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products/barcode/{barcode} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.readbarcode"

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

	barcode := chi.URLParam(r, "barcode")

	product, err := h.service.GetProductByBarcode(r.Context(), userUID, barcode)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			log.Info("product not found", slog.String("barcode", barcode))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Product not found"))
			return
		}
		log.Error("failed to get product by barcode", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to load product. Please try again."))
		return
	}

	render.JSON(w, r, response.OKWithData("Product retrieved successfully", product))
}
