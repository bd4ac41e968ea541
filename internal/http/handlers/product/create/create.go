// Package create реализует HTTP-обработчик создания товара.
//
// Штрихкод уникален в пределах пользователя: при дубликате возвращается
// ошибка вместе с уже существующим товаром, чтобы клиент мог показать его.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/response"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// Handler обрабатывает запросы на создание товара.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики для создания товара.
type Service interface {
	CreateProduct(ctx context.Context, userUID string, req models.DummyProduct) (*models.Product, error)
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
// @Summary Создание товара
// @Description Создает новый товар текущего пользователя. Штрихкод уникален в пределах пользователя.
// @Tags Products
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyProduct true "Данные нового товара"
// @Success 201 {object} response.Response "Товар создан"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или дубликат штрихкода"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

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

	var req models.DummyProduct
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

	product, err := h.service.CreateProduct(r.Context(), userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrEmptyBarcode):
			log.Info("empty barcode")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Barcode is required"))
		case errors.Is(err, catalogservice.ErrEmptyName):
			log.Info("empty product name")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Product name is required"))
		case errors.Is(err, catalogservice.ErrDuplicateBarcode):
			log.Info("duplicate barcode", slog.String("barcode", req.Barcode))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ErrorWithData("Product with this barcode already exists", product))
		default:
			log.Error("failed to create product", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to create product. Please try again."))
		}
		return
	}

	log.Info("product created", slog.String("id", product.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("Product created successfully", product))
}
