package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Upload    *UploadConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // Lumina
	Environment    string        // development, production
	Port           string        // :8084
	PublicURL      string        // base URL used in email links
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DefaultTTL   time.Duration
}

type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
}

type EmailConfig struct {
	ApiKey      string
	From        string // e.g. "Lumina <commandes@lumina.example>"
	ShopAddress string // internal notification recipient
}

type UploadConfig struct {
	Dir          string
	MaxBytes     int64
	PublicPrefix string // URL prefix under which uploaded files are served
}

type RateLimitConfig struct {
	AuthLimit     int
	AuthWindow    time.Duration
	AdminLimit    int
	AdminWindow   time.Duration
	GeneralLimit  int
	GeneralWindow time.Duration
}
