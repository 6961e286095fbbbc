package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ServerHost     string
	AllowedOrigins []string

	DBDriver       string
	DBDSN          string
	DBMaxOpenConns int
	DBLogLevel     string

	JWTSecret string
	JWTTTL    time.Duration

	ManagerEmail    string
	ManagerPassword string

	NationalIDChecksum bool
	ReportRowsPerPage  int
	SeedDemo           bool
	Location           *time.Location

	LoginRate  float64
	LoginBurst int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can feed values directly.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerHost:      withDefault(getenv("SERVER_HOST"), ":8080"),
		DBDriver:        strings.ToLower(withDefault(getenv("DB_DRIVER"), DriverPostgres)),
		DBDSN:           getenv("DB_DSN"),
		DBLogLevel:      strings.ToLower(withDefault(getenv("DB_LOG_LEVEL"), "warn")),
		JWTSecret:       getenv("JWT_SECRET"),
		ManagerEmail:    strings.ToLower(withDefault(getenv("MANAGER_EMAIL"), "gestor@biblioteca.com")),
		ManagerPassword: getenv("MANAGER_PASSWORD"),
	}

	if origins := getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	var err error
	if cfg.DBMaxOpenConns, err = intValue(getenv, "DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.ReportRowsPerPage, err = intValue(getenv, "REPORT_ROWS_PER_PAGE", 40); err != nil {
		return nil, err
	}
	if cfg.LoginBurst, err = intValue(getenv, "LOGIN_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.NationalIDChecksum, err = boolValue(getenv, "READER_CPF_CHECKSUM", true); err != nil {
		return nil, err
	}
	if cfg.SeedDemo, err = boolValue(getenv, "SEED_DEMO", false); err != nil {
		return nil, err
	}

	cfg.JWTTTL = 12 * time.Hour
	if raw := getenv("JWT_TTL"); raw != "" {
		if cfg.JWTTTL, err = time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("JWT_TTL: %w", err)
		}
	}

	cfg.LoginRate = 1
	if raw := getenv("LOGIN_RATE"); raw != "" {
		if cfg.LoginRate, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("LOGIN_RATE: %w", err)
		}
	}

	cfg.Location = time.UTC
	if tz := getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("TIMEZONE: %w", err)
		}
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return nil, errors.New("DB_DSN is required for the postgres driver")
		}
		if cfg.JWTSecret == "" {
			return nil, errors.New("JWT_SECRET is required")
		}
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = "biblioteca.db"
		}
		if cfg.JWTSecret == "" {
			log.Println("[WARN] JWT_SECRET not set, using an insecure development secret")
			cfg.JWTSecret = "biblioteca-dev-secret"
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.ReportRowsPerPage <= 0 {
		return nil, errors.New("REPORT_ROWS_PER_PAGE must be positive")
	}

	return cfg, nil
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func intValue(getenv func(string) string, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func boolValue(getenv func(string) string, key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
