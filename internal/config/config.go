package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is the process configuration, built once in main and passed down
// explicitly to whatever needs it.
type Config struct {
	Port           string
	APIPrefix      string
	DatabaseURL    string
	DBMaxOpenConns int
	JWTSecret      string
	UserTokenTTL   time.Duration
	StaffTokenTTL  time.Duration
	BcryptCost     int
	UploadDir      string
	ServiceName    string
	ConsulAddr     string
	AutoMigrate    bool
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests don't touch the
// real environment.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:        get("APP_PORT", "8080"),
		APIPrefix:   "/" + strings.Trim(get("API_PREFIX", "/api/v1"), "/"),
		DatabaseURL: get("DATABASE_URL", ""),
		JWTSecret:   get("JWT_SECRET", ""),
		UploadDir:   get("UPLOAD_DIR", "public/uploads"),
		ServiceName: get("SERVICE_NAME", "marketplace-api"),
		ConsulAddr:  get("CONSUL_ADDR", ""),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	var err error
	if cfg.UserTokenTTL, err = time.ParseDuration(get("USER_TOKEN_TTL", "1h")); err != nil {
		return Config{}, fmt.Errorf("invalid USER_TOKEN_TTL: %w", err)
	}
	if cfg.StaffTokenTTL, err = time.ParseDuration(get("STAFF_TOKEN_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid STAFF_TOKEN_TTL: %w", err)
	}
	if cfg.BcryptCost, err = strconv.Atoi(get("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil {
		return Config{}, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.DBMaxOpenConns, err = strconv.Atoi(get("DB_MAX_OPEN_CONNS", "10")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.AutoMigrate, err = strconv.ParseBool(get("DB_AUTO_MIGRATE", "true")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}
	return cfg, nil
}
