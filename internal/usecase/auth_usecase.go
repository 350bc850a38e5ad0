package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

// userIDClaim - claim access-токена с идентификатором пользователя
const userIDClaim = "user_id"

// AuthUseCase - вход, обновление токена и регистрация через бэкенд.
// Токены возвращаются вызывающему и нигде не хранятся.
type AuthUseCase struct {
	api    repository.SurfAPIRepository
	logger *zap.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(api repository.SurfAPIRepository, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		api:    api,
		logger: logger,
	}
}

// Login выдаёт токены по логину и паролю
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	tokens, err := uc.api.ObtainTokens(ctx, username, password)
	if err != nil {
		uc.logger.Info("Login rejected", zap.String("username", username), zap.Error(err))
		return nil, authError(err)
	}
	return uc.response(tokens), nil
}

// Refresh выдаёт новый access-токен
func (uc *AuthUseCase) Refresh(ctx context.Context, refresh string) (*dto.AuthResponse, error) {
	tokens, err := uc.api.RefreshToken(ctx, refresh)
	if err != nil {
		return nil, authError(err)
	}
	if tokens.Refresh == "" {
		tokens.Refresh = refresh
	}
	return uc.response(tokens), nil
}

// Signup регистрирует пользователя и сразу выполняет вход
func (uc *AuthUseCase) Signup(ctx context.Context, input domain.SignupInput) (*dto.AuthResponse, error) {
	user, err := uc.api.RegisterUser(ctx, input)
	if err != nil {
		uc.logger.Info("Signup rejected", zap.String("username", input.Username), zap.Error(err))
		return nil, backendError(err)
	}

	resp, err := uc.Login(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if resp.UserID == "" && user != nil {
		resp.UserID = user.ID
	}
	return resp, nil
}

func (uc *AuthUseCase) response(tokens *domain.TokenPair) *dto.AuthResponse {
	resp := &dto.AuthResponse{
		Access:  tokens.Access,
		Refresh: tokens.Refresh,
	}
	userID, err := UserIDFromToken(tokens.Access)
	if err != nil {
		uc.logger.Debug("Access token carries no user id", zap.Error(err))
	}
	resp.UserID = userID
	return resp
}

// UserIDFromToken читает claim user_id из access-токена без проверки подписи:
// подпись проверяет бэкенд при каждом защищённом вызове.
func UserIDFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	switch v := claims[userIDClaim].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	case nil:
		return "", fmt.Errorf("claim %q is missing", userIDClaim)
	default:
		return fmt.Sprint(v), nil
	}
}

// authError - любой 4xx при выдаче токенов означает неверные учётные данные
func authError(err error) error {
	mapped := backendError(err)
	if appErr, ok := pkgerrors.As(mapped); ok && appErr.StatusCode >= 400 && appErr.StatusCode < 500 {
		return pkgerrors.ErrUnauthorized.Wrap(err)
	}
	return mapped
}
