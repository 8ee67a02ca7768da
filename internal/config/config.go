package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs access and refresh tokens. Minimum 32 characters.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token lifetime in minutes.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// RefreshTokenLifetimeMinutes is the refresh token lifetime in minutes.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`

	// Issuer is the value of the "iss" claim on issued tokens.
	Issuer string `mapstructure:"issuer" validate:"required"`

	// BcryptCost is the cost parameter for password hashing.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}

// RedisConfig contains settings for the optional redis-backed
// token revocation list. When Enabled is false the revocation
// check is skipped entirely.
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// PaginationConfig controls paged list endpoints.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"required,gte=1"`
	MaxPageSize     int `mapstructure:"max_page_size"     validate:"required,gte=1"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig controls per-client rate limiting on the auth endpoints.
type RateLimitConfig struct {
	RequestsPerSecond int `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int `mapstructure:"burst"               validate:"gte=0"`
}

// DashboardConfig selects the data source backing the dashboard
// overview endpoint: "mock" serves deterministic sample figures,
// "live" aggregates from the stores.
type DashboardConfig struct {
	Source string `mapstructure:"source" validate:"omitempty,oneof=mock live"`
}
