// Package list реализует HTTP-обработчик получения списка категорий пользователя.
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
)

// Handler обрабатывает запросы на получение списка категорий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики для списка категорий.
type Service interface {
	ListCategories(ctx context.Context, userUID string) ([]string, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список категорий
// @Description Возвращает имена категорий пользователя. Категория по умолчанию всегда первая.
// @Tags Categories
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} response.Response "Список категорий"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.list"

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

	names, err := h.service.ListCategories(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to load categories. Please try again."))
		return
	}

	log.Info("categories listed", slog.Int("count", len(names)))
	render.JSON(w, r, response.OKWithData("Categories retrieved successfully", names))
}
