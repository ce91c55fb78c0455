package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "I2C"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadFromViper decodes an already populated viper instance, applying defaults and overrides
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 120)     // seconds, covers the model call
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.maxBodyBytes", 5<<20)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.slowQueryMs", 200)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.poolSize", 20)
	v.SetDefault("redis.dialTimeout", 5)  // seconds
	v.SetDefault("redis.readTimeout", 3)  // seconds
	v.SetDefault("redis.writeTimeout", 3) // seconds
	v.SetDefault("redis.designTtl", 300)  // seconds

	v.SetDefault("auth.enabled", false)

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("cors.maxAge", 12) // hours

	v.SetDefault("rateLimit.enabled", false)
	v.SetDefault("rateLimit.requests", 10)
	v.SetDefault("rateLimit.window", 60) // seconds

	v.SetDefault("generation.modes", map[string]any{
		"basic":        map[string]any{"model": "google/gemini-2.0-flash-001", "cost": 10},
		"professional": map[string]any{"model": "anthropic/claude-3.5-sonnet", "cost": 20},
		"ultra":        map[string]any{"model": "openai/gpt-4o", "cost": 30},
	})
	v.SetDefault("generation.improveModel", "google/gemini-2.0-flash-001")
	v.SetDefault("generation.improveCost", 5)
	v.SetDefault("generation.timeout", 90) // seconds
	v.SetDefault("generation.refundOnFailure", true)
	v.SetDefault("generation.maxTokens", 8192)
	v.SetDefault("generation.temperature", 0.2)

	v.SetDefault("openrouter.baseUrl", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.appTitle", "Image2Code")
	v.SetDefault("openrouter.timeout", 100) // seconds

	v.SetDefault("razorpay.baseUrl", "https://api.razorpay.com")
	v.SetDefault("razorpay.timeout", 15) // seconds

	v.SetDefault("credits.signupBonus", 30)
	v.SetDefault("credits.minimumReserve", 0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.serviceName", "image2code-backend")
	v.SetDefault("tracing.sampleRate", 1.0)
	v.SetDefault("tracing.insecure", true)
}

// getEnvironment determines the environment to use based on I2C_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"I2C_DB_HOST":              "database.host",
		"I2C_DB_PORT":              "database.port",
		"I2C_DB_USERNAME":          "database.username",
		"I2C_DB_PASSWORD":          "database.password",
		"I2C_DB_NAME":              "database.database",
		"I2C_DB_SSL_MODE":          "database.sslMode",
		"I2C_SERVER_HOST":          "server.host",
		"I2C_LOGGER_LEVEL":         "logger.level",
		"I2C_REDIS_ADDR":           "redis.addr",
		"I2C_REDIS_PASSWORD":       "redis.password",
		"I2C_JWT_SECRET":           "auth.jwtSecret",
		"I2C_OPENROUTER_API_KEY":   "openrouter.apiKey",
		"I2C_OPENROUTER_BASE_URL":  "openrouter.baseUrl",
		"I2C_RAZORPAY_KEY_ID":      "razorpay.keyId",
		"I2C_RAZORPAY_KEY_SECRET":  "razorpay.keySecret",
		"I2C_TRACING_ENDPOINT":     "tracing.endpoint",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if port := getEnvInt("I2C_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("I2C_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("I2C_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if timeout := getEnvInt("I2C_GENERATION_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("generation.timeout", timeout)
	}
	if bonus := getEnvInt("I2C_CREDITS_SIGNUP_BONUS", -1); bonus >= 0 {
		v.Set("credits.signupBonus", bonus)
	}
	if refund := os.Getenv("I2C_GENERATION_REFUND_ON_FAILURE"); refund != "" {
		if b, err := strconv.ParseBool(refund); err == nil {
			v.Set("generation.refundOnFailure", b)
		}
	}
	if enabled := os.Getenv("I2C_AUTH_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("auth.enabled", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second
	config.Database.SlowQuery *= time.Millisecond

	config.Redis.DialTimeout *= time.Second
	config.Redis.ReadTimeout *= time.Second
	config.Redis.WriteTimeout *= time.Second
	config.Redis.DesignTTL *= time.Second

	config.CORS.MaxAge *= time.Hour
	config.RateLimit.Window *= time.Second
	config.Generation.Timeout *= time.Second
	config.OpenRouter.Timeout *= time.Second
	config.Razorpay.Timeout *= time.Second
}

// Validate reports configuration that would make the service misbehave at runtime
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Host == "" || c.Database.Database == "" {
		return fmt.Errorf("database host and name are required")
	}
	if len(c.Generation.Modes) == 0 {
		return fmt.Errorf("at least one generation mode is required")
	}
	for name, mode := range c.Generation.Modes {
		if mode.Model == "" || mode.Cost <= 0 {
			return fmt.Errorf("generation mode %q needs a model and a positive cost", name)
		}
	}
	if c.Generation.ImproveCost <= 0 {
		return fmt.Errorf("generation improveCost must be positive")
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("generation timeout must be positive")
	}
	if c.Credits.SignupBonus < 0 || c.Credits.MinimumReserve < 0 {
		return fmt.Errorf("credit settings must not be negative")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth is enabled but no jwt secret is set")
	}
	for _, p := range c.Payment.Packages {
		if p.ID == "" || p.Credits <= 0 || p.Amount <= 0 {
			return fmt.Errorf("payment package %q needs an id, credits and amount", p.ID)
		}
	}
	if c.Environment == Production {
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("openrouter api key is required in production")
		}
		if c.Razorpay.KeyID == "" || c.Razorpay.KeySecret == "" {
			return fmt.Errorf("razorpay credentials are required in production")
		}
	}
	return nil
}
