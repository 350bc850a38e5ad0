package dto

// LoginRequest - вход по логину и паролю
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - обновление access-токена
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// SignupRequest - регистрация (поля multipart-формы)
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// AuthResponse - выданные токены и идентификатор пользователя из access-токена
type AuthResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}
