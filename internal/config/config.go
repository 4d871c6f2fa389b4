package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	KYC    KYCConfig
	CORS   CORSConfig
	Email  EmailConfig
	Admin  AdminConfig
}

// KYCConfig holds offline KYC document handling settings.
type KYCConfig struct {
	MaxDocumentKB int64  `mapstructure:"max_document_kb"`
	DateLocale    string `mapstructure:"date_locale"`
}

// MaxDocumentBytes returns the upload limit for a KYC document in bytes.
func (k *KYCConfig) MaxDocumentBytes() int64 {
	return k.MaxDocumentKB * 1024
}

// AdminConfig holds the bootstrap administrator account created on startup.
// An empty username disables bootstrapping.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	FullName string `mapstructure:"full_name"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings used for candidate images.
type S3Config struct {
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	MaxImageSizeMB int64  `mapstructure:"max_image_size_mb"`
	PresignExpiry  int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the VOTERKYC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VOTERKYC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "voterkyc")
	v.SetDefault("db.password", "voterkyc_secret")
	v.SetDefault("db.name", "online_voting")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "voterkyc")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "voterkyc-candidates")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_image_size_mb", 5)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// KYC defaults
	v.SetDefault("kyc.max_document_kb", 2048)
	v.SetDefault("kyc.date_locale", "en-IN")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@voterkyc.in")
	v.SetDefault("email.from_name", "Online Voting")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.full_name", "Administrator")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "VOTERKYC_SERVER_PORT",
		"server.read_timeout":  "VOTERKYC_SERVER_READ_TIMEOUT",
		"server.write_timeout": "VOTERKYC_SERVER_WRITE_TIMEOUT",
		"server.environment":   "VOTERKYC_SERVER_ENVIRONMENT",
		"db.host":              "VOTERKYC_DB_HOST",
		"db.port":              "VOTERKYC_DB_PORT",
		"db.user":              "VOTERKYC_DB_USER",
		"db.password":          "VOTERKYC_DB_PASSWORD",
		"db.name":              "VOTERKYC_DB_NAME",
		"db.sslmode":           "VOTERKYC_DB_SSLMODE",
		"db.max_open":          "VOTERKYC_DB_MAX_OPEN",
		"db.max_idle":          "VOTERKYC_DB_MAX_IDLE",
		"jwt.secret":           "VOTERKYC_JWT_SECRET",
		"jwt.access_expiry":    "VOTERKYC_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "VOTERKYC_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "VOTERKYC_JWT_ISSUER",
		"s3.region":            "VOTERKYC_S3_REGION",
		"s3.bucket":            "VOTERKYC_S3_BUCKET",
		"s3.endpoint":          "VOTERKYC_S3_ENDPOINT",
		"s3.access_key":        "VOTERKYC_S3_ACCESS_KEY",
		"s3.secret_key":        "VOTERKYC_S3_SECRET_KEY",
		"s3.max_image_size_mb": "VOTERKYC_S3_MAX_IMAGE_SIZE_MB",
		"s3.presign_expiry":    "VOTERKYC_S3_PRESIGN_EXPIRY",
		"log.level":            "VOTERKYC_LOG_LEVEL",
		"log.format":           "VOTERKYC_LOG_FORMAT",
		"kyc.max_document_kb":  "VOTERKYC_KYC_MAX_DOCUMENT_KB",
		"kyc.date_locale":      "VOTERKYC_KYC_DATE_LOCALE",
		"cors.allowed_origins": "VOTERKYC_CORS_ALLOWED_ORIGINS",
		"email.provider":       "VOTERKYC_EMAIL_PROVIDER",
		"email.region":         "VOTERKYC_EMAIL_REGION",
		"email.from_address":   "VOTERKYC_EMAIL_FROM_ADDRESS",
		"email.from_name":      "VOTERKYC_EMAIL_FROM_NAME",
		"email.frontend_url":   "VOTERKYC_EMAIL_FRONTEND_URL",
		"admin.username":       "VOTERKYC_ADMIN_USERNAME",
		"admin.password":       "VOTERKYC_ADMIN_PASSWORD",
		"admin.full_name":      "VOTERKYC_ADMIN_FULL_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if VOTERKYC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VOTERKYC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:         v.GetString("s3.region"),
		Bucket:         v.GetString("s3.bucket"),
		Endpoint:       v.GetString("s3.endpoint"),
		AccessKey:      v.GetString("s3.access_key"),
		SecretKey:      v.GetString("s3.secret_key"),
		MaxImageSizeMB: v.GetInt64("s3.max_image_size_mb"),
		PresignExpiry:  v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.KYC = KYCConfig{
		MaxDocumentKB: v.GetInt64("kyc.max_document_kb"),
		DateLocale:    v.GetString("kyc.date_locale"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Admin = AdminConfig{
		Username: v.GetString("admin.username"),
		Password: v.GetString("admin.password"),
		FullName: v.GetString("admin.full_name"),
	}

	if cfg.KYC.MaxDocumentKB <= 0 {
		return nil, fmt.Errorf("kyc.max_document_kb must be positive, got %d", cfg.KYC.MaxDocumentKB)
	}

	return cfg, nil
}
