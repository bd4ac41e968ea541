// Package remove реализует HTTP-обработчик удаления категории.
//
// Товары удаляемой категории не пропадают: в одной логической операции
// они переносятся в категорию по умолчанию. Саму категорию по умолчанию
// удалить нельзя.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/response"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/sl"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
)

// Handler обрабатывает запросы на удаление категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики для удаления категории.
type Service interface {
	DeleteCategory(ctx context.Context, userUID, name string) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление категории
// @Description Удаляет категорию и переносит её товары в категорию по умолчанию.
// @Tags Categories
// @Security BearerAuth
// @Produce  json
// @Param name path string true "Имя категории"
// @Success 200 {object} response.Response "Категория удалена"
// @Failure 400 {object} response.ErrorResponse "Попытка удалить категорию по умолчанию"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /categories/{name} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.remove"

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

	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	reassigned, err := h.service.DeleteCategory(r.Context(), userUID, name)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrReservedCategory):
			log.Info("attempt to delete default category")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Cannot delete the default category"))
		case errors.Is(err, catalogservice.ErrCategoryNotFound):
			log.Info("category not found", slog.String("name", name))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Category not found"))
		default:
			log.Error("failed to delete category", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to delete category. Please try again."))
		}
		return
	}

	log.Info("category deleted",
		slog.String("name", name), slog.Int("reassigned_products", reassigned))
	render.JSON(w, r, response.OKWithData("Category deleted successfully", map[string]any{
		"reassignedProducts": reassigned,
	}))
}
