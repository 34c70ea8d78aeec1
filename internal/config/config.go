package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	GRPC     GRPCConfig
	Auth     AuthConfig
	Log      LogConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Driver string // "sqlite3" (cgo, default) or "sqlite" (pure Go)
	Path   string // SQLite database file path or DSN
}

// GRPCConfig contains gRPC server settings.
type GRPCConfig struct {
	Address string // gRPC server listen address (e.g., ":50051")
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret            string        // JWT signing secret
	TokenTTL             time.Duration // lifetime of issued session tokens
	BcryptCost           int           // bcrypt work factor for new password hashes
	AdminInitialPassword string        // bootstrap admin password; generated when empty
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"

	defaultDBPath      = "analytics.db"
	defaultGRPCAddress = ":50051"
	defaultTokenTTL    = 12 * time.Hour
	defaultBcryptCost  = 10
	minBcryptCost      = 4
	maxBcryptCost      = 31
)

// LoadDotEnv loads variables from the given .env files (default ".env") without
// overriding variables already present in the environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg, err := build(getEnv("JWT_SECRET", ""))
	if err != nil {
		return nil, err
	}

	// Validate critical settings
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}

	return cfg, nil
}

// DevJWTSecret is the publicly known signing key LoadWithDefaults falls back to.
// AuthConfig.Validate rejects it, so a server never signs tokens with it.
const DevJWTSecret = "dev-secret-change-me"

// LoadWithDefaults is like Load but uses DevJWTSecret when JWT_SECRET is unset.
// For tests and local tooling only; the server refuses to start with it.
func LoadWithDefaults() (*Config, error) {
	return build(getEnv("JWT_SECRET", DevJWTSecret))
}

// Validate reports whether the settings are safe to sign session tokens with.
func (a AuthConfig) Validate() error {
	switch a.JWTSecret {
	case "":
		return errors.New("JWT_SECRET is not set")
	case DevJWTSecret:
		return errors.New("JWT_SECRET is the public development default; set a private secret")
	}
	return nil
}

func build(secret string) (*Config, error) {
	ttl, err := getEnvDuration("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}
	cost, err := getEnvInt("BCRYPT_COST", defaultBcryptCost)
	if err != nil {
		return nil, err
	}
	if cost < minBcryptCost || cost > maxBcryptCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, cost)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverMattn)),
			Path:   getEnv("DB_PATH", defaultDBPath),
		},
		GRPC: GRPCConfig{
			Address: getEnv("GRPC_ADDRESS", defaultGRPCAddress),
		},
		Auth: AuthConfig{
			JWTSecret:            secret,
			TokenTTL:             ttl,
			BcryptCost:           cost,
			AdminInitialPassword: getEnv("ADMIN_INITIAL_PASSWORD", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	switch cfg.Database.Driver {
	case DriverMattn, DriverModernc:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%s must be positive", key)
		}
		return d, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	admin := "generated"
	if c.Auth.AdminInitialPassword != "" {
		admin = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{DB: %s (%s), gRPC: %s, Auth: *** (masked) ***, TokenTTL: %s, AdminPassword: %s, Log: %s/%s}",
		c.Database.Path, c.Database.Driver, c.GRPC.Address, c.Auth.TokenTTL, admin, c.Log.Level, c.Log.Format)
}
