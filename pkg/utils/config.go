package utils

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Access     AccessConfig
	Pagination PaginationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

type SessionConfig struct {
	ExpiryHours int
}

// AccessConfig lists path prefixes reachable without an admin session.
type AccessConfig struct {
	PublicPaths []string
}

type PaginationConfig struct {
	PageSize    int
	MaxPageSize int
}

// LoadConfig reads an optional env file, then the process environment.
// Values already present in the environment win over the file.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		// missing file is fine, the environment may carry everything
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "ride-api")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("SESSION_EXPIRY_HOURS", 24)
	v.SetDefault("PUBLIC_PATHS", "/health,/api/login,/api/logout")
	v.SetDefault("PAGE_SIZE", 3)
	v.SetDefault("MAX_PAGE_SIZE", 100)

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Session: SessionConfig{
			ExpiryHours: v.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Access: AccessConfig{
			PublicPaths: splitList(v.GetString("PUBLIC_PATHS")),
		},
		Pagination: PaginationConfig{
			PageSize:    v.GetInt("PAGE_SIZE"),
			MaxPageSize: v.GetInt("MAX_PAGE_SIZE"),
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
