package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Access   AccessConfig
	Provider ProviderConfig
	Uploads  UploadsConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AccessConfig holds the authorization gate policy. It is loaded once at
// startup and never mutated afterwards.
type AccessConfig struct {
	// SharedSecret grants use of the server's own provider key when a caller
	// presents a matching value. Empty means no secret is configured.
	SharedSecret string
	// AllowCallerKey permits bring-your-own-key requests that carry a
	// provider key instead of the shared secret.
	AllowCallerKey bool
}

type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type UploadsConfig struct {
	Dir string
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; deployments may use plain environment variables
	// directly (useful for Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "120"))
	providerTimeout, _ := strconv.Atoi(getEnv("OPENAI_TIMEOUT_SECONDS", "90"))
	allowCallerKey := getEnv("ALLOW_USER_API_KEY", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "7524"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Access: AccessConfig{
			SharedSecret:   getEnv("API_SECRET", ""),
			AllowCallerKey: allowCallerKey,
		},
		Provider: ProviderConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o"),
			Timeout: time.Duration(providerTimeout) * time.Second,
		},
		Uploads: UploadsConfig{
			Dir: getEnv("UPLOADS_DIR", "uploads"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
