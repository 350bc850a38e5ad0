package surfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/surfquest-catalog/internal/config"
	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
)

// maxErrorBody - сколько байт тела ответа попадает в текст ошибки
const maxErrorBody = 200

type client struct {
	httpClient *http.Client
	baseURL    string
	endpoints  config.EndpointsConfig
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// Option настраивает клиент
type Option func(*client)

// WithHTTPClient подменяет http.Client (используется в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithLimiter задаёт ограничитель исходящих запросов
func WithLimiter(l *rate.Limiter) Option {
	return func(c *client) {
		c.limiter = l
	}
}

// NewClient создает клиент REST API SurfQuest
func NewClient(cfg *config.BackendConfig, logger *zap.Logger, opts ...Option) repository.SurfAPIRepository {
	c := &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		endpoints: cfg.Endpoints,
		logger:    logger,
	}

	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// request описывает один вызов бэкенда
type request struct {
	method      string
	path        string
	rawQuery    string
	token       string
	body        io.Reader
	contentType string
}

func (c *client) do(ctx context.Context, r request, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	u := c.baseURL + r.path
	if r.rawQuery != "" {
		u += "?" + r.rawQuery
	}

	c.logger.Debug("Calling SurfQuest API",
		zap.String("method", r.method),
		zap.String("url", u))

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", u), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := newAPIError(resp.StatusCode, body)
		c.logger.Error("SurfQuest API returned error",
			zap.String("url", u),
			zap.Int("status_code", resp.StatusCode),
			zap.String("detail", apiErr.Detail))
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("url", u), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func getList[T any](ctx context.Context, c *client, path, rawQuery, token string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{method: http.MethodGet, path: path, rawQuery: rawQuery, token: token}, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw, c.logger.With(zap.String("path", path)))
}

// decodeList принимает как голый массив, так и страницу вида {"results": [...]}.
// Элементы декодируются по одному: запись, которую не удалось разобрать,
// пропускается с предупреждением и не роняет весь список.
func decodeList[T any](raw json.RawMessage, logger *zap.Logger) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("failed to decode page: %w", err)
		}
		raw = bytes.TrimSpace(page.Results)
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			logger.Warn("Skipping malformed list item", zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func detailPath(base, id string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(id) + "/"
}

func jsonBody(v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(data), nil
}

// ListSurfZones возвращает полную коллекцию зон
func (c *client) ListSurfZones(ctx context.Context) ([]domain.SurfZone, error) {
	zones, err := getList[domain.SurfZone](ctx, c, c.endpoints.SurfZones, "", "")
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Surf zones fetched", zap.Int("count", len(zones)))
	return zones, nil
}

// ListSurfZonesLite возвращает lite-проекцию зон, отфильтрованную бэкендом
func (c *client) ListSurfZonesLite(ctx context.Context, rawQuery string) ([]domain.SurfZone, error) {
	zones, err := getList[domain.SurfZone](ctx, c, c.endpoints.SurfZonesLite, rawQuery, "")
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Surf zones lite fetched", zap.String("query", rawQuery), zap.Int("count", len(zones)))
	return zones, nil
}

// GetSurfZone возвращает детальную запись зоны
func (c *client) GetSurfZone(ctx context.Context, id string) (*domain.SurfZone, error) {
	var zone domain.SurfZone
	if err := c.do(ctx, request{method: http.MethodGet, path: detailPath(c.endpoints.SurfZoneDetail, id)}, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// ListSurfSpots возвращает полную коллекцию спотов
func (c *client) ListSurfSpots(ctx context.Context) ([]domain.SurfSpot, error) {
	spots, err := getList[domain.SurfSpot](ctx, c, c.endpoints.SurfSpots, "", "")
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Surf spots fetched", zap.Int("count", len(spots)))
	return spots, nil
}

// ListSurfSpotsLite возвращает lite-проекцию спотов, отфильтрованную бэкендом
func (c *client) ListSurfSpotsLite(ctx context.Context, rawQuery string) ([]domain.SurfSpot, error) {
	spots, err := getList[domain.SurfSpot](ctx, c, c.endpoints.SurfSpotsLite, rawQuery, "")
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Surf spots lite fetched", zap.String("query", rawQuery), zap.Int("count", len(spots)))
	return spots, nil
}

// GetSurfSpot возвращает детальную запись спота
func (c *client) GetSurfSpot(ctx context.Context, id string) (*domain.SurfSpot, error) {
	var spot domain.SurfSpot
	if err := c.do(ctx, request{method: http.MethodGet, path: detailPath(c.endpoints.SurfSpotDetail, id)}, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// ListReviews возвращает публичные отзывы
func (c *client) ListReviews(ctx context.Context, q domain.ReviewQuery) ([]domain.Review, error) {
	params := url.Values{}
	if q.SurfZoneID != "" {
		params.Set("surf_zone_id", q.SurfZoneID)
	}
	if q.SurfSpotID != "" {
		params.Set("surf_spot_id", q.SurfSpotID)
	}

	reviews, err := getList[domain.Review](ctx, c, c.endpoints.Reviews, params.Encode(), "")
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListUserReviews возвращает отзывы владельца токена
func (c *client) ListUserReviews(ctx context.Context, token string) ([]domain.Review, error) {
	reviews, err := getList[domain.Review](ctx, c, c.endpoints.UserReviews, "", token)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateUserReview создаёт отзыв
func (c *client) CreateUserReview(ctx context.Context, token string, input domain.ReviewInput) (*domain.Review, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}

	var review domain.Review
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.UserReviews,
		token:       token,
		body:        body,
		contentType: "application/json",
	}, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateUserReview обновляет отзыв
func (c *client) UpdateUserReview(ctx context.Context, token, id string, input domain.ReviewInput) (*domain.Review, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}

	var review domain.Review
	err = c.do(ctx, request{
		method:      http.MethodPut,
		path:        detailPath(c.endpoints.UserReviews, id),
		token:       token,
		body:        body,
		contentType: "application/json",
	}, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteUserReview удаляет отзыв
func (c *client) DeleteUserReview(ctx context.Context, token, id string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   detailPath(c.endpoints.UserReviews, id),
		token:  token,
	}, nil)
}

// ObtainTokens выдаёт пару токенов
func (c *client) ObtainTokens(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	body, err := jsonBody(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, err
	}

	var tokens domain.TokenPair
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.Login,
		body:        body,
		contentType: "application/json",
	}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// RefreshToken обменивает refresh-токен на новый access
func (c *client) RefreshToken(ctx context.Context, refresh string) (*domain.TokenPair, error) {
	body, err := jsonBody(map[string]string{"refresh": refresh})
	if err != nil {
		return nil, err
	}

	var tokens domain.TokenPair
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.Refresh,
		body:        body,
		contentType: "application/json",
	}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// RegisterUser регистрирует пользователя через multipart/form-data
func (c *client) RegisterUser(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"username", input.Username},
		{"email", input.Email},
		{"password", input.Password},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", f[0], err)
		}
	}

	if len(input.Avatar) > 0 {
		name := input.AvatarFilename
		if name == "" {
			name = "avatar"
		}
		part, err := w.CreateFormFile("avatar", name)
		if err != nil {
			return nil, fmt.Errorf("failed to create avatar part: %w", err)
		}
		if _, err := part.Write(input.Avatar); err != nil {
			return nil, fmt.Errorf("failed to write avatar: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form: %w", err)
	}

	var user domain.User
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.Users,
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
