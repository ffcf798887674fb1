package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Photo upload policies applied when the object store rejects a submission photo
const (
	UploadPolicySkip = "skip"
	UploadPolicyFail = "fail"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Cloudinary CloudinaryConfig
	Photos     PhotoConfig
	Redis      RedisConfig
	Jobs       JobsConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

type CloudinaryConfig struct {
	URL       string
	CloudName string
	APIKey    string
	APISecret string
}

type PhotoConfig struct {
	Folder               string
	UploadPolicy         string
	MaxBytes             int64
	ResolveRequiresPhoto bool
}

type RedisConfig struct {
	URL     string
	Channel string
}

type JobsConfig struct {
	OverdueCheckInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

var AppConfig *Config

// Load reads the environment into AppConfig and returns it
func Load() *Config {
	policy := strings.ToLower(getEnv("PHOTO_UPLOAD_POLICY", UploadPolicySkip))
	if policy != UploadPolicyFail {
		policy = UploadPolicySkip
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DB_URL"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-this-secret-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@panchayat.gov"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		Cloudinary: CloudinaryConfig{
			URL:       os.Getenv("CLOUDINARY_URL"),
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Photos: PhotoConfig{
			Folder:               getEnv("PHOTO_FOLDER", "complaint-photos"),
			UploadPolicy:         policy,
			MaxBytes:             int64(getEnvAsInt("PHOTO_MAX_BYTES", 5*1024*1024)),
			ResolveRequiresPhoto: getEnvAsBool("RESOLVE_REQUIRES_PHOTO", true),
		},
		Redis: RedisConfig{
			URL:     os.Getenv("REDIS_URL"),
			Channel: getEnv("REDIS_CHANNEL", "complaints:events"),
		},
		Jobs: JobsConfig{
			OverdueCheckInterval: getEnvAsDuration("OVERDUE_CHECK_INTERVAL", time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
	}
	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
