package domain

// TokenPair - JWT токены, выданные бэкендом
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// SignupInput - данные регистрации (отправляются multipart/form-data)
type SignupInput struct {
	Username       string
	Email          string
	Password       string
	Avatar         []byte
	AvatarFilename string
}

// User - профиль пользователя, возвращаемый бэкендом
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Country  string `json:"country,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Slug     string `json:"slug,omitempty"`
}
