// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/inventory-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/otp"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/password"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	"github.com/magabrotheeeer/inventory-tracker/internal/storage/repository"
)

// otpTTL — время жизни кода подтверждения email.
const otpTTL = 10 * time.Minute

var (
	// ErrUsernameTaken возвращается при повторной регистрации username
	// (сравнение регистронезависимое).
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken возвращается, когда email уже привязан к другому пользователю.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials — единый ответ на неверный username или пароль,
	// не раскрывающий, существует ли пользователь.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidOTP возвращается на неверный, просроченный или не запрошенный код.
	ErrInvalidOTP = errors.New("invalid or expired verification code")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// SetUserOTP сохраняет email и выданный код подтверждения.
	SetUserOTP(ctx context.Context, userUID, email, code string, expiresAt time.Time) error
	// ConfirmUserEmail помечает email подтверждённым и очищает OTP-поля.
	ConfirmUserEmail(ctx context.Context, userUID string) error
}

// Mailer отправляет пользователю код подтверждения email.
type Mailer interface {
	SendVerificationCode(email, code string) error
}

// AuthService отвечает за регистрацию, авторизацию, валидацию JWT
// и подтверждение email одноразовым кодом.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	mailer   Mailer
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, mailer Mailer) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		mailer:   mailer,
	}
}

// Register создает нового пользователя: username приводится к нижнему регистру,
// пароль хэшируется до записи и нигде не сохраняется в открытом виде.
// Возвращает UID созданного пользователя.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: hashed,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return "", ErrUsernameTaken
		}
		return "", err
	}
	return uid, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Неизвестный username и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Username, user.UID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и возвращает claims с username и uid пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// RequestEmailVerification привязывает email к пользователю, выдаёт одноразовый
// код и отправляет его письмом. Повторный запрос перезаписывает прежний код.
func (s *AuthService) RequestEmailVerification(ctx context.Context, userUID, email string) error {
	const op = "auth.RequestEmailVerification"

	code, err := otp.GenerateCode()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	expiresAt := time.Now().UTC().Add(otpTTL)
	if err := s.users.SetUserOTP(ctx, userUID, email, code, expiresAt); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return ErrEmailTaken
		}
		return err
	}

	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ConfirmEmail сверяет одноразовый код и помечает email подтверждённым.
// Просроченный, чужой или не запрошенный код даёт ErrInvalidOTP.
func (s *AuthService) ConfirmEmail(ctx context.Context, userUID, code string) error {
	if !otp.IsValidFormat(code) {
		return ErrInvalidOTP
	}

	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return err
	}
	if user.OTPCode == nil || user.OTPExpiresAt == nil {
		return ErrInvalidOTP
	}
	if time.Now().UTC().After(*user.OTPExpiresAt) {
		return ErrInvalidOTP
	}
	if *user.OTPCode != code {
		return ErrInvalidOTP
	}

	return s.users.ConfirmUserEmail(ctx, userUID)
}
