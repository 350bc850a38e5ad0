package handler

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/pkg/utils"
	"github.com/surfquest-catalog/internal/pkg/validator"
	"github.com/surfquest-catalog/internal/usecase"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

// maxAvatarSize - предел размера аватара при регистрации
const maxAvatarSize = 5 << 20

// AuthHandler обрабатывает вход, обновление токена и регистрацию
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler создает новый экземпляр AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Login godoc
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Refresh godoc
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Refresh(c.UserContext(), req.Refresh)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Signup godoc
// @Summary Sign up
// @Description Регистрация (multipart/form-data с необязательным файлом avatar) и последующий вход
// @Tags Auth
// @Accept mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param avatar formData file false "Avatar image"
// @Success 201 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req := dto.SignupRequest{
		Username: strings.Clone(c.FormValue("username")),
		Email:    strings.Clone(c.FormValue("email")),
		Password: strings.Clone(c.FormValue("password")),
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	input := domain.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if fh, err := c.FormFile("avatar"); err == nil {
		if fh.Size > maxAvatarSize {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"avatar": "max=5MB"}))
		}
		f, err := fh.Open()
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		input.Avatar = data
		input.AvatarFilename = fh.Filename
	}

	resp, err := h.authUC.Signup(c.UserContext(), input)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}
