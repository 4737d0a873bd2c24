package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Admin  AdminConfig
	Auth   AuthConfig
	Store  StoreConfig
	Files  FilesConfig
	Redis  RedisConfig
	Alert  AlertConfig
	Logger LoggerConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port int
}

// AdminConfig is the single credential pair guarding the admin panel.
type AdminConfig struct {
	Username string
	Password string
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	Secret string
}

// StoreConfig points at the JSON file acting as the database.
type StoreConfig struct {
	DataFile string
}

// FilesConfig holds the static site and upload directories.
type FilesConfig struct {
	PublicDir string
	UploadDir string
}

// RedisConfig is optional; an empty Addr disables the login ban service.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AlertConfig holds the SMTP settings for ban alert mails. All optional.
type AlertConfig struct {
	From         string
	To           string
	SMTPServer   string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	AuthDisabled bool
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, with a .env file as an
// optional source (same precedence as the node predecessor: real env wins).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3000)
	v.SetDefault("JWT_SECRET", "dev-session-secret")
	v.SetDefault("DATA_FILE", "produk.json")
	v.SetDefault("PUBLIC_DIR", "public")
	v.SetDefault("UPLOAD_DIR", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	cfg := &Config{
		Server: ServerConfig{Port: v.GetInt("PORT")},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USER"),
			Password: v.GetString("ADMIN_PASS"),
		},
		Auth:  AuthConfig{Secret: v.GetString("JWT_SECRET")},
		Store: StoreConfig{DataFile: v.GetString("DATA_FILE")},
		Files: FilesConfig{
			PublicDir: v.GetString("PUBLIC_DIR"),
			UploadDir: v.GetString("UPLOAD_DIR"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Alert: AlertConfig{
			From:         v.GetString("ALERT_FROM"),
			To:           v.GetString("ALERT_TO"),
			SMTPServer:   v.GetString("SMTP_SERVER"),
			SMTPPort:     v.GetString("SMTP_PORT"),
			SMTPUser:     v.GetString("SMTP_USER"),
			SMTPPassword: v.GetString("SMTP_PASS"),
			AuthDisabled: v.GetString("SMTP_AUTH_DISABLED") != "",
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Files.UploadDir == "" {
		cfg.Files.UploadDir = cfg.Files.PublicDir + "/uploads"
	}

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_USER and ADMIN_PASS must be set")
	}

	return cfg, nil
}
