package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
	QR  QRConfig
}

type AppConfig struct {
	Port    string
	Env     string
	BaseURL string
}

type DBConfig struct {
	// URL is a full PostgreSQL connection string. When empty the
	// application falls back to a local SQLite file at SQLitePath.
	URL        string
	SQLitePath string
}

type QRConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SQLITE_PATH", "medical_profiles.db")
	viper.SetDefault("QR_DIR", "static/qr")

	// .env is optional; process environment alone is enough.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	port := viper.GetString("APP_PORT")

	baseURL := viper.GetString("BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%s", port)
	}

	config := &Config{
		App: AppConfig{
			Port:    port,
			Env:     viper.GetString("APP_ENV"),
			BaseURL: baseURL,
		},
		DB: DBConfig{
			URL:        viper.GetString("DATABASE_URL"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		QR: QRConfig{
			Dir: viper.GetString("QR_DIR"),
		},
	}

	return config, nil
}
