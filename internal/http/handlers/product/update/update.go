// Package update реализует HTTP-обработчик частичного обновления товара.
//
// Меняются только поля, явно присутствующие в JSON-запросе: отсутствие
// поля и его нулевое значение различаются за счёт указателей в DTO.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/response"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// Handler обрабатывает запросы на обновление товара.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики для обновления товара.
type Service interface {
	UpdateProduct(ctx context.Context, userUID, id string, upd models.UpdateProduct) (*models.Product, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление товара
// @Description Частично обновляет товар: изменяются только переданные поля.
// @Tags Products
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор товара"
// @Param request body models.UpdateProduct true "Изменяемые поля"
// @Success 200 {object} response.Response "Обновленный товар"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"

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

	var req models.UpdateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), userUID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrEmptyName):
			log.Info("empty product name")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Product name is required"))
		case errors.Is(err, catalogservice.ErrProductNotFound):
			log.Info("product not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Product not found"))
		default:
			log.Error("failed to update product", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to update product. Please try again."))
		}
		return
	}

	log.Info("product updated", slog.String("id", product.ID))
	render.JSON(w, r, response.OKWithData("Product updated successfully", product))
}
