package config

import "os"

// Config collects everything the composition root needs from the
// environment. A .env file is loaded by main before this runs.
type Config struct {
	Addr string

	// StorageBackend selects where the key/value state lives:
	// "sqlite" (default), "memory", "redis" or "postgres".
	StorageBackend string
	SQLitePath     string
	RedisAddr      string
	DatabaseURL    string

	JWTSecret         string
	AdminPasswordHash string

	AssistantURL    string
	AssistantAPIKey string
}

func Load() Config {
	return Config{
		Addr:              getenv("MALOKA_ADDR", ":8080"),
		StorageBackend:    getenv("MALOKA_STORAGE", "sqlite"),
		SQLitePath:        getenv("MALOKA_SQLITE_PATH", "./maloka.db"),
		RedisAddr:         getenv("MALOKA_REDIS_ADDR", "localhost:6379"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AssistantURL:      os.Getenv("ASSISTANT_URL"),
		AssistantAPIKey:   os.Getenv("ASSISTANT_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
