package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"catalog-service/internal/constants"
	"catalog-service/internal/core/domain"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	URL string
}

type CatalogAPIConfig struct {
	URL string
	// Scopes carry one credential per remote account; each produces its
	// own paginated stream during a sync.
	Scopes []domain.CredentialScope
}

type MediaConfig struct {
	Enabled bool
	Dir     string
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

type AppConfig struct {
	AppName           string
	Port              string
	AllowedOrigins    []string
	SyncIntervalHours int

	Database     DBConfig
	CatalogAPI   CatalogAPIConfig
	Media        MediaConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig loads configuration from environment variables, reading a
// .env file first when one is present.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "catalog-service")
	cfg.Port = getEnvAsString("PORT", "8080")
	cfg.SyncIntervalHours = getEnvAsInt("SYNC_INTERVAL_HOURS", 24)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg.CatalogAPI.URL = getEnvAsString("EASYBROKER_API_URL", constants.DefaultCatalogAPIURL)

	keys := os.Getenv("EASYBROKER_API_KEYS")
	if keys == "" {
		return nil, fmt.Errorf("EASYBROKER_API_KEYS environment variable is required")
	}
	for i, key := range strings.Split(keys, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		cfg.CatalogAPI.Scopes = append(cfg.CatalogAPI.Scopes, domain.CredentialScope{
			Name:   fmt.Sprintf("scope-%d", i+1),
			APIKey: key,
		})
	}
	if len(cfg.CatalogAPI.Scopes) == 0 {
		return nil, fmt.Errorf("EASYBROKER_API_KEYS must contain at least one key")
	}

	cfg.Media.Enabled = getEnvAsBool("MEDIA_ENABLED", false)
	if cfg.Media.Enabled {
		cfg.Media.Dir = getEnvAsString("MEDIA_DIR", "media")
	}

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	cfg.RabbitMQ.Enabled = cfg.RabbitMQ.URL != ""

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
