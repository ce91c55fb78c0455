package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Redis       RedisConfig      `mapstructure:"redis"`
	Auth        AuthConfig       `mapstructure:"auth"`
	CORS        CORSConfig       `mapstructure:"cors"`
	RateLimit   RateLimitConfig  `mapstructure:"rateLimit"`
	Generation  GenerationConfig `mapstructure:"generation"`
	OpenRouter  OpenRouterConfig `mapstructure:"openrouter"`
	Razorpay    RazorpayConfig   `mapstructure:"razorpay"`
	Credits     CreditsConfig    `mapstructure:"credits"`
	Payment     PaymentConfig    `mapstructure:"payment"`
	Metrics     MetricsConfig    `mapstructure:"metrics"`
	Tracing     TracingConfig    `mapstructure:"tracing"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	MaxBodyBytes      int64         `mapstructure:"maxBodyBytes"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	SlowQuery       time.Duration `mapstructure:"slowQueryMs"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RedisConfig contains the cache and rate limiter backend settings
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"poolSize"`
	DialTimeout  time.Duration `mapstructure:"dialTimeout"`  // seconds
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`  // seconds
	WriteTimeout time.Duration `mapstructure:"writeTimeout"` // seconds
	DesignTTL    time.Duration `mapstructure:"designTtl"`    // seconds
}

// AuthConfig controls bearer token verification
type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	MaxAge         time.Duration `mapstructure:"maxAge"` // hours
}

// RateLimitConfig bounds generation requests per caller
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"` // seconds
}

// ModeConfig maps a generation mode to its model and price
type ModeConfig struct {
	Model string `mapstructure:"model"`
	Cost  int64  `mapstructure:"cost"`
}

// GenerationConfig contains model call and pricing settings
type GenerationConfig struct {
	Modes           map[string]ModeConfig `mapstructure:"modes"`
	ImproveModel    string                `mapstructure:"improveModel"`
	ImproveCost     int64                 `mapstructure:"improveCost"`
	Timeout         time.Duration         `mapstructure:"timeout"` // seconds
	RefundOnFailure bool                  `mapstructure:"refundOnFailure"`
	MaxTokens       int                   `mapstructure:"maxTokens"`
	Temperature     float64               `mapstructure:"temperature"`
}

// OpenRouterConfig contains the chat completion endpoint settings
type OpenRouterConfig struct {
	BaseURL  string        `mapstructure:"baseUrl"`
	APIKey   string        `mapstructure:"apiKey"`
	Referer  string        `mapstructure:"referer"`
	AppTitle string        `mapstructure:"appTitle"`
	Timeout  time.Duration `mapstructure:"timeout"` // seconds
}

// RazorpayConfig contains payment gateway credentials
type RazorpayConfig struct {
	BaseURL   string        `mapstructure:"baseUrl"`
	KeyID     string        `mapstructure:"keyId"`
	KeySecret string        `mapstructure:"keySecret"`
	Timeout   time.Duration `mapstructure:"timeout"` // seconds
}

// CreditsConfig contains ledger rules
type CreditsConfig struct {
	SignupBonus    int64 `mapstructure:"signupBonus"`
	MinimumReserve int64 `mapstructure:"minimumReserve"`
}

// PackageConfig describes a purchasable credit package
type PackageConfig struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Credits  int64  `mapstructure:"credits"`
	Amount   int64  `mapstructure:"amount"`
	Currency string `mapstructure:"currency"`
}

// PaymentConfig lists the credit packages on sale
type PaymentConfig struct {
	Packages []PackageConfig `mapstructure:"packages"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TracingConfig contains OpenTelemetry exporter settings
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"serviceName"`
	SampleRate  float64 `mapstructure:"sampleRate"`
	Insecure    bool    `mapstructure:"insecure"`
}
