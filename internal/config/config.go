package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Cache     CacheConfig     `yaml:"cache"`
	Listing   ListingConfig   `yaml:"listing"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	// ApplicationName shows up in pg_stat_activity.
	ApplicationName string `yaml:"application_name" env:"DATABASE_APPLICATION_NAME" env-default:"creatorhub-api"`
}

// AuthConfig holds settings for the hosted identity provider and the
// verification of the access tokens it issues.
type AuthConfig struct {
	ProviderURL       string        `yaml:"provider_url"        env:"AUTH_PROVIDER_URL"        env-required:"true"`
	AnonKey           string        `yaml:"anon_key"            env:"AUTH_ANON_KEY"            env-required:"true"`
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"`
	JWTAudience       string        `yaml:"jwt_audience"        env:"AUTH_JWT_AUDIENCE"        env-default:"authenticated"`
	SessionCookie     string        `yaml:"session_cookie"      env:"AUTH_SESSION_COOKIE"      env-default:"sb-access-token"`
	CookieSecure      bool          `yaml:"cookie_secure"       env:"AUTH_COOKIE_SECURE"       env-default:"true"`
	ResetRedirectURL  string        `yaml:"reset_redirect_url"  env:"AUTH_RESET_REDIRECT_URL"  env-default:"http://localhost:3000/auth/reset-password"`
	SignUpRedirectURL string        `yaml:"signup_redirect_url" env:"AUTH_SIGNUP_REDIRECT_URL"`
	ProviderTimeout   time.Duration `yaml:"provider_timeout"    env:"AUTH_PROVIDER_TIMEOUT"    env-default:"10s"`
	MinPasswordLength int           `yaml:"min_password_length" env:"AUTH_MIN_PASSWORD_LENGTH" env-default:"6"`
}

// StorageConfig holds S3-compatible object storage settings for avatars.
type StorageConfig struct {
	Endpoint        string        `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	Region          string        `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Bucket          string        `yaml:"bucket"            env:"STORAGE_BUCKET"            env-default:"user-profiles"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `yaml:"use_path_style"    env:"STORAGE_USE_PATH_STYLE"    env-default:"true"`
	PublicBaseURL   string        `yaml:"public_base_url"   env:"STORAGE_PUBLIC_BASE_URL"`
	AvatarPrefix    string        `yaml:"avatar_prefix"     env:"STORAGE_AVATAR_PREFIX"     env-default:"user-profiles"`
	MaxAvatarBytes  int64         `yaml:"max_avatar_bytes"  env:"STORAGE_MAX_AVATAR_BYTES"  env-default:"5242880"`
	PresignTTL      time.Duration `yaml:"presign_ttl"       env:"STORAGE_PRESIGN_TTL"       env-default:"1h"`
}

// CacheConfig holds Redis settings for the approved-record snapshots.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"CACHE_ENABLED"    env-default:"false"`
	Addr      string        `yaml:"addr"       env:"CACHE_ADDR"       env-default:"localhost:6379"`
	Password  string        `yaml:"password"   env:"CACHE_PASSWORD"`
	DB        int           `yaml:"db"         env:"CACHE_DB"         env-default:"0"`
	TTL       time.Duration `yaml:"ttl"        env:"CACHE_TTL"        env-default:"60s"`
	KeyPrefix string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX" env-default:"creatorhub"`
}

// ListingConfig holds public listing parameters.
type ListingConfig struct {
	CreatorsPageSize  int `yaml:"creators_page_size"  env:"LISTING_CREATORS_PAGE_SIZE"  env-default:"12"`
	WorkflowsPageSize int `yaml:"workflows_page_size" env:"LISTING_WORKFLOWS_PAGE_SIZE" env-default:"12"`
	FeaturedCreators  int `yaml:"featured_creators"   env:"LISTING_FEATURED_CREATORS"   env-default:"3"`
	FeaturedWorkflows int `yaml:"featured_workflows"  env:"LISTING_FEATURED_WORKFLOWS"  env-default:"4"`
	// FetchLimit caps how many approved records are loaded per collection.
	FetchLimit int `yaml:"fetch_limit" env:"LISTING_FETCH_LIMIT" env-default:"5000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits the auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// StorageEnabled reports whether enough storage settings are present to
// accept avatar uploads.
func (c StorageConfig) StorageEnabled() bool {
	return c.Bucket != "" && (c.Endpoint != "" || c.AccessKeyID != "")
}
