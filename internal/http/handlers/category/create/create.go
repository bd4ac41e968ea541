// Package create реализует HTTP-обработчик создания категории товаров.
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

// Handler обрабатывает запросы на создание категории.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики для создания категории.
type Service interface {
	CreateCategory(ctx context.Context, userUID, name string) (*models.Category, error)
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
// @Summary Создание категории
// @Description Создает новую категорию текущего пользователя. Имя уникально в пределах пользователя.
// @Tags Categories
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyCategory true "Имя новой категории"
// @Success 201 {object} response.Response "Категория создана"
// @Failure 400 {object} response.ErrorResponse "Пустое, зарезервированное имя или дубликат"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /categories [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.create"

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

	var req models.DummyCategory
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

	category, err := h.service.CreateCategory(r.Context(), userUID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrEmptyName):
			log.Info("empty category name")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Category name is required"))
		case errors.Is(err, catalogservice.ErrReservedCategory):
			log.Info("reserved category name")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Category name is reserved"))
		case errors.Is(err, catalogservice.ErrCategoryExists):
			log.Info("duplicate category name")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ErrorWithData("Category already exists", category))
		default:
			log.Error("failed to create category", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to create category. Please try again."))
		}
		return
	}

	log.Info("category created", slog.String("name", category.Name))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("Category created successfully", category))
}
