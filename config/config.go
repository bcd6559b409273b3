package config

import (
	"lumina_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Lumina"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8084"),
				PublicURL:      getEnvAsString("APP_PUBLIC_URL", "http://localhost:8084"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				// The storefront is served from arbitrary hosting previews, so the
				// default stays permissive. Lock down via CORS_ALLOW_ORIGINS.
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Filename"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "lumina_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:      getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
				Username:     getEnvAsString("CACHE_USERNAME", ""),
				Password:     getEnvAsString("CACHE_PASSWORD", ""),
				DB:           getEnvAsInt("CACHE_DB", 0),
				PoolSize:     getEnvAsInt("CACHE_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("CACHE_MIN_IDLE_CONNS", 2),
				DialTimeout:  getEnvAsTimeDuration("CACHE_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getEnvAsTimeDuration("CACHE_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getEnvAsTimeDuration("CACHE_WRITE_TIMEOUT", 3*time.Second),
				DefaultTTL:   getEnvAsTimeDuration("CACHE_DEFAULT_TTL", 10*time.Minute),
			},
			Auth: &structs.AuthConfig{
				TokenSecret: getEnvAsString("AUTH_TOKEN_SECRET", "default_token_secret"),
				TokenExpiry: getEnvAsTimeDuration("AUTH_TOKEN_EXPIRY", 12*time.Hour),
			},
			Email: &structs.EmailConfig{
				ApiKey:      getEnvAsString("EMAIL_API_KEY", ""),
				From:        getEnvAsString("EMAIL_FROM", "Lumina <commandes@lumina.example>"),
				ShopAddress: getEnvAsString("EMAIL_SHOP_ADDRESS", "atelier@lumina.example"),
			},
			Upload: &structs.UploadConfig{
				Dir:          getEnvAsString("UPLOAD_DIR", "./uploads"),
				MaxBytes:     int64(getEnvAsInt("UPLOAD_MAX_BYTES", 50*1024*1024)), // 50 MB
				PublicPrefix: getEnvAsString("UPLOAD_PUBLIC_PREFIX", "/uploads"),
			},
			RateLimit: &structs.RateLimitConfig{
				AuthLimit:     getEnvAsInt("RATE_LIMIT_AUTH", 10),
				AuthWindow:    getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				AdminLimit:    getEnvAsInt("RATE_LIMIT_ADMIN", 120),
				AdminWindow:   getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", time.Minute),
				GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL", 300),
				GeneralWindow: getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
