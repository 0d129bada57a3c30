package config

import (
	"os"
	"strings"
)

// Backend names for the persistence substrate.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type Config struct {
	StorageBackend      string // STORAGE_BACKEND: redis (default), postgres, mongo, memory
	RedisURI            string
	PostgresURI         string
	MongoURI            string
	EncryptionKey       string // optional: base64 32-byte key for blob encryption at rest
	Port                string
	AllowedOrigins      []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	Environment         string // ENV: production, development, etc.
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	backend := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", BackendRedis)))
	switch backend {
	case BackendRedis, BackendPostgres, BackendMongo, BackendMemory:
	default:
		backend = BackendRedis
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{getEnv("FRONTEND_URL", "http://localhost:3000")}
	}

	return &Config{
		StorageBackend:      backend,
		RedisURI:            getEnv("REDIS_URI", "redis://localhost:6379/0"),
		PostgresURI:         getEnv("POSTGRES_URI", "postgres://localhost:5432/moodmitra?sslmode=disable"),
		MongoURI:            getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/moodmitra")),
		EncryptionKey:       getEnv("ENCRYPTION_KEY", ""),
		Port:                getEnv("PORT", "8080"),
		AllowedOrigins:      allowedOrigins,
		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		Environment:         env,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
