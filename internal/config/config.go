package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins []string
}

// BackendConfig - внешний REST API SurfQuest
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond ограничивает исходящие запросы; 0 отключает ограничение
	RequestsPerSecond float64
	Endpoints         EndpointsConfig
}

// EndpointsConfig - пути эндпоинтов относительно BaseURL
type EndpointsConfig struct {
	Login          string
	Refresh        string
	SurfZones      string
	SurfZonesLite  string
	SurfZoneDetail string
	SurfSpots      string
	SurfSpotsLite  string
	SurfSpotDetail string
	Reviews        string
	UserReviews    string
	Users          string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CatalogTTL time.Duration
	LiteTTL    time.Duration
}

// SessionConfig - параметры серверных сессий фильтров
type SessionConfig struct {
	Debounce time.Duration
	IdleTTL  time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен: в контейнере всё приходит из окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			AllowOrigins: parseList(viper.GetString("API_ALLOW_ORIGINS")),
		},
		Backend: BackendConfig{
			BaseURL:           strings.TrimRight(viper.GetString("SURFQUEST_API_BASE_URL"), "/"),
			Timeout:           time.Duration(viper.GetInt("SURFQUEST_API_TIMEOUT")) * time.Second,
			RequestsPerSecond: viper.GetFloat64("SURFQUEST_API_RPS"),
			Endpoints: EndpointsConfig{
				Login:          viper.GetString("SURFQUEST_API_LOGIN"),
				Refresh:        viper.GetString("SURFQUEST_API_REFRESH"),
				SurfZones:      viper.GetString("SURFQUEST_API_SURFZONES"),
				SurfZonesLite:  viper.GetString("SURFQUEST_API_SURFZONES_LITE"),
				SurfZoneDetail: viper.GetString("SURFQUEST_API_SURFZONE_DETAIL"),
				SurfSpots:      viper.GetString("SURFQUEST_API_SURFSPOTS"),
				SurfSpotsLite:  viper.GetString("SURFQUEST_API_SURFSPOTS_LITE"),
				SurfSpotDetail: viper.GetString("SURFQUEST_API_SURFSPOT_DETAIL"),
				Reviews:        viper.GetString("SURFQUEST_API_REVIEWS"),
				UserReviews:    viper.GetString("SURFQUEST_API_USER_REVIEWS"),
				Users:          viper.GetString("SURFQUEST_API_USERS"),
			},
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CatalogTTL: time.Duration(viper.GetInt("CATALOG_CACHE_TTL")) * time.Second,
			LiteTTL:    time.Duration(viper.GetInt("LITE_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			Debounce: time.Duration(viper.GetInt("SESSION_DEBOUNCE_MS")) * time.Millisecond,
			IdleTTL:  time.Duration(viper.GetInt("SESSION_IDLE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}

	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8000"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 15 * time.Second
	}
	c.Backend.Endpoints.applyDefaults()

	if c.Cache.CatalogTTL == 0 {
		c.Cache.CatalogTTL = 10 * time.Minute
	}
	if c.Cache.LiteTTL == 0 {
		c.Cache.LiteTTL = time.Minute
	}

	if c.Session.Debounce == 0 {
		c.Session.Debounce = 300 * time.Millisecond
	}
	if c.Session.IdleTTL == 0 {
		c.Session.IdleTTL = 30 * time.Minute
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Worker.RefreshInterval == 0 {
		c.Worker.RefreshInterval = 15 * time.Minute
	}
}

func (e *EndpointsConfig) applyDefaults() {
	set := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}

	set(&e.Login, "/api/login/")
	set(&e.Refresh, "/api/login/refresh/")
	set(&e.SurfZones, "/api/v1/surfzones/")
	set(&e.SurfZonesLite, "/api/v1/surfzones-lite/")
	set(&e.SurfZoneDetail, "/api/v1/surfzones-detail/")
	set(&e.SurfSpots, "/api/v1/surfspots/")
	set(&e.SurfSpotsLite, "/api/v1/surfspots-lite/")
	set(&e.SurfSpotDetail, "/api/v1/surfspots-detail/")
	set(&e.Reviews, "/api/v1/reviews/")
	set(&e.UserReviews, "/api/v1/user-reviews/")
	set(&e.Users, "/api/v1/users/")
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
