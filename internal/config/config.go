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
	CORS   CORSConfig
	Engine EngineConfig
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

// JWTConfig holds JWT verification settings.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds object storage settings for raw extraction payloads.
type S3Config struct {
	Region           string `mapstructure:"region"`
	Bucket           string `mapstructure:"bucket"`
	Endpoint         string `mapstructure:"endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MaxPayloadSizeMB int64  `mapstructure:"max_payload_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds the normalization engine's classification settings.
type EngineConfig struct {
	B2CLThreshold   float64 `mapstructure:"b2cl_threshold"`
	DefaultCategory string  `mapstructure:"default_category"`
}

// Load reads configuration from environment variables with the GSTFILER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTFILER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstfiler")
	v.SetDefault("db.password", "gstfiler_secret")
	v.SetDefault("db.name", "gstfiler_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "gstfiler")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstfiler-payloads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_payload_size_mb", 25)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Engine defaults. The B2CL threshold is the statutory 2,50,000 limit.
	v.SetDefault("engine.b2cl_threshold", 250000)
	v.SetDefault("engine.default_category", "b2cs")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "GSTFILER_SERVER_PORT",
		"server.read_timeout":     "GSTFILER_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "GSTFILER_SERVER_WRITE_TIMEOUT",
		"server.environment":      "GSTFILER_SERVER_ENVIRONMENT",
		"db.host":                 "GSTFILER_DB_HOST",
		"db.port":                 "GSTFILER_DB_PORT",
		"db.user":                 "GSTFILER_DB_USER",
		"db.password":             "GSTFILER_DB_PASSWORD",
		"db.name":                 "GSTFILER_DB_NAME",
		"db.sslmode":              "GSTFILER_DB_SSLMODE",
		"db.max_open":             "GSTFILER_DB_MAX_OPEN",
		"db.max_idle":             "GSTFILER_DB_MAX_IDLE",
		"jwt.secret":              "GSTFILER_JWT_SECRET",
		"jwt.issuer":              "GSTFILER_JWT_ISSUER",
		"s3.region":               "GSTFILER_S3_REGION",
		"s3.bucket":               "GSTFILER_S3_BUCKET",
		"s3.endpoint":             "GSTFILER_S3_ENDPOINT",
		"s3.access_key":           "GSTFILER_S3_ACCESS_KEY",
		"s3.secret_key":           "GSTFILER_S3_SECRET_KEY",
		"s3.max_payload_size_mb":  "GSTFILER_S3_MAX_PAYLOAD_SIZE_MB",
		"log.level":               "GSTFILER_LOG_LEVEL",
		"log.format":              "GSTFILER_LOG_FORMAT",
		"cors.allowed_origins":    "GSTFILER_CORS_ALLOWED_ORIGINS",
		"engine.b2cl_threshold":   "GSTFILER_ENGINE_B2CL_THRESHOLD",
		"engine.default_category": "GSTFILER_ENGINE_DEFAULT_CATEGORY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTFILER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTFILER_SERVER_PORT") == "" {
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
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:           v.GetString("s3.region"),
		Bucket:           v.GetString("s3.bucket"),
		Endpoint:         v.GetString("s3.endpoint"),
		AccessKey:        v.GetString("s3.access_key"),
		SecretKey:        v.GetString("s3.secret_key"),
		MaxPayloadSizeMB: v.GetInt64("s3.max_payload_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Engine = EngineConfig{
		B2CLThreshold:   v.GetFloat64("engine.b2cl_threshold"),
		DefaultCategory: v.GetString("engine.default_category"),
	}

	return cfg, nil
}
