// Package otprequest реализует HTTP-обработчик запроса кода подтверждения email.
package otprequest

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

// Request — входные данные для запроса кода подтверждения.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Handler обрабатывает запросы на отправку кода подтверждения email.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики подтверждения email.
type Service interface {
	RequestEmailVerification(ctx context.Context, userUID, email string) error
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
// @Summary Запрос кода подтверждения email
// @Description Привязывает email к текущему пользователю и отправляет на него одноразовый код.
// @Tags Auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Email для подтверждения"
// @Success 200 {object} response.Response "Код отправлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный email или email уже занят"
// @Failure 401 {object} response.ErrorResponse "Неавторизованный запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/otp/request [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.otprequest"

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

	if err := h.service.RequestEmailVerification(r.Context(), userUID, req.Email); err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			log.Info("duplicate email")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Email already exists"))
			return
		}
		log.Error("failed to request email verification", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to send verification code. Please try again."))
		return
	}

	log.Info("verification code sent")
	render.JSON(w, r, response.OK("Verification code sent"))
}
