package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoDBConfig struct {
	URI               string
	Database          string
	Timeout           time.Duration
	CoffeesCollection string
	UsersCollection   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

// StorageConfig holds MinIO (S3-compatible) settings for photo uploads.
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	MaxPhotoBytes int64
}

type LogConfig struct {
	Level string
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// IsProduction reports whether the service runs in the production environment.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// older deployments used mixed-case credential names
	_ = viper.BindEnv("DB_USER", "DB_USER", "DB_User")
	_ = viper.BindEnv("DB_PASS", "DB_PASS", "DB_Pass")
	_ = viper.BindEnv("SERVER_PORT", "PORT", "SERVER_PORT")

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGODB_HOST", "cluster0.zflfj9t.mongodb.net")
	viper.SetDefault("MONGODB_APP_NAME", "Cluster0")
	viper.SetDefault("MONGODB_DATABASE", "Coffee_shop_DB")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("COFFEES_COLLECTION", "coffees")
	viper.SetDefault("USERS_COLLECTION", "user")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_SECONDS", 60)
	viper.SetDefault("MINIO_BUCKET", "coffee-photos")
	viper.SetDefault("PHOTO_MAX_BYTES", 5<<20)

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			Host:            viper.GetString("SERVER_HOST"),
			Environment:     viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: time.Duration(viper.GetInt("SERVER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI: mongoURI(
				viper.GetString("MONGODB_URI"),
				viper.GetString("DB_USER"),
				viper.GetString("DB_PASS"),
				viper.GetString("MONGODB_HOST"),
				viper.GetString("MONGODB_APP_NAME"),
			),
			Database:          viper.GetString("MONGODB_DATABASE"),
			Timeout:           time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
			CoffeesCollection: viper.GetString("COFFEES_COLLECTION"),
			UsersCollection:   viper.GetString("USERS_COLLECTION"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TTL: time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		Storage: StorageConfig{
			Endpoint:      viper.GetString("MINIO_ENDPOINT"),
			AccessKey:     viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey:     viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:        viper.GetBool("MINIO_USE_SSL"),
			Bucket:        viper.GetString("MINIO_BUCKET"),
			MaxPhotoBytes: viper.GetInt64("PHOTO_MAX_BYTES"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("server port must not be empty")
	}
	if cfg.MongoDB.Timeout <= 0 {
		return nil, fmt.Errorf("MONGODB_TIMEOUT must be positive, got %s", cfg.MongoDB.Timeout)
	}
	return cfg, nil
}

// mongoURI prefers an explicit URI; otherwise it builds the Atlas SRV URI
// from credentials. Returns "" when neither is available.
func mongoURI(explicit, user, pass, host, appName string) string {
	if explicit != "" {
		return explicit
	}
	if user == "" || pass == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: url.Values{"retryWrites": {"true"}, "w": {"majority"}, "appName": {appName}}.Encode(),
	}
	return u.String()
}
