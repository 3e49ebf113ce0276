package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Cookie         CookieConfig   `yaml:"cookie"`
	Upload         UploadConfig   `yaml:"upload"`
	TTL            TTL            `yaml:"TTL"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

// ParseConfig : разбирает yaml, подставляет значения по умолчанию и проверяет конфигурацию
func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8000"
	}
	if cfg.DatabaseConfig.MaxOpenConns == 0 {
		cfg.DatabaseConfig.MaxOpenConns = 25
	}
	if cfg.DatabaseConfig.MaxIdleConns == 0 {
		cfg.DatabaseConfig.MaxIdleConns = 5
	}
	if cfg.Upload.TempDir == "" {
		cfg.Upload.TempDir = os.TempDir()
	}
	if cfg.Upload.MaxMemory == 0 {
		cfg.Upload.MaxMemory = 32 << 20
	}
	if cfg.TTL.ChannelProfile == 0 {
		cfg.TTL.ChannelProfile = 60
	}
	if cfg.TTL.PresignedURL == 0 {
		cfg.TTL.PresignedURL = 900
	}
}

// Validate : ключи подписи обязательны и не должны совпадать, иначе refresh токен
// будет принят как access токен
func (cfg *AppConfig) Validate() error {
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return errors.New("jwt: access_secret и refresh_secret обязательны")
	}
	if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return errors.New("jwt: access_secret и refresh_secret должны различаться")
	}
	if _, err := time.ParseDuration(cfg.JWT.AccessTokenTTL); err != nil {
		return fmt.Errorf("jwt: некорректный access_token_ttl: %w", err)
	}
	if _, err := time.ParseDuration(cfg.JWT.RefreshTokenTTL); err != nil {
		return fmt.Errorf("jwt: некорректный refresh_token_ttl: %w", err)
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	return NewDatabaseConnection("postgres", cfg)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
