// Package otpconfirm реализует HTTP-обработчик подтверждения email одноразовым кодом.
package otpconfirm

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
	authservice "github.com/magabrotheeeer/inventory-tracker/internal/services/auth"
)

// Request — входные данные с кодом подтверждения.
type Request struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// Handler обрабатывает запросы на подтверждение email.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики подтверждения email.
type Service interface {
	ConfirmEmail(ctx context.Context, userUID, code string) error
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
// @Summary Подтверждение email
// @Description Сверяет одноразовый код и помечает email подтверждённым.
// @Tags Auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Шестизначный код из письма"
// @Success 200 {object} response.Response "Email подтверждён"
// @Failure 400 {object} response.ErrorResponse "Неверный или просроченный код"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/otp/verify [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.otpconfirm"

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

	var req Request
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

	if err := h.service.ConfirmEmail(r.Context(), userUID, req.Code); err != nil {
		if errors.Is(err, authservice.ErrInvalidOTP) {
			log.Info("verification code rejected")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid or expired verification code"))
			return
		}
		log.Error("failed to confirm email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Email verification failed. Please try again."))
		return
	}

	log.Info("email confirmed")
	render.JSON(w, r, response.OK("Email verified successfully"))
}
