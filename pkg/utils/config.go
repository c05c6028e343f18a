package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Sync     SyncConfig
	AI       AIConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	DefaultUserID string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// SyncConfig drives the device pairing subsystem. Secret is the
// server-wide salt mixed into every sync code digest.
type SyncConfig struct {
	Secret                 string
	ValidityMinutes        int
	CleanupIntervalSeconds int
}

type AIConfig struct {
	APIKey string
	Model  string
}

type CORSConfig struct {
	Origins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SYNC_CODE_VALIDITY_MINUTES", 15)
	viper.SetDefault("SYNC_CLEANUP_INTERVAL_SECONDS", 60)
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-001")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			DefaultUserID: viper.GetString("DEFAULT_USER_ID"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Sync: SyncConfig{
			Secret:                 viper.GetString("SECRET_KEY"),
			ValidityMinutes:        viper.GetInt("SYNC_CODE_VALIDITY_MINUTES"),
			CleanupIntervalSeconds: viper.GetInt("SYNC_CLEANUP_INTERVAL_SECONDS"),
		},
		AI: AIConfig{
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
