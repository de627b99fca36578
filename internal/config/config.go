package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Gemini     GeminiConfig
	Classifier ClassifierConfig
	Discovery  DiscoveryConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int

	// cache-only: a handful of connections is plenty
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	OpTimeout    time.Duration
}

type JWTConfig struct {
	AccessSecret string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ClassifierConfig struct {
	MaxOutputTokens  int
	Timeout          time.Duration
	CacheTTL         time.Duration
	BreakerFailures  int
	BreakerOpenDelay time.Duration
}

type DiscoveryConfig struct {
	NewcomerWindowDays int
	CandidateLimit     int
}

type LoggingConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_PING_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 4)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 1)
	v.SetDefault("REDIS_DIAL_TIMEOUT", 2*time.Second)
	v.SetDefault("REDIS_OP_TIMEOUT", 500*time.Millisecond)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("CLASSIFIER_MAX_TOKENS", 10)
	v.SetDefault("CLASSIFIER_TIMEOUT", 10*time.Second)
	v.SetDefault("CATEGORY_CACHE_TTL", 24*time.Hour)
	v.SetDefault("CLASSIFIER_BREAKER_FAILURES", 5)
	v.SetDefault("CLASSIFIER_BREAKER_OPEN_DELAY", 30*time.Second)
	v.SetDefault("NEWCOMER_WINDOW_DAYS", 7)
	v.SetDefault("DISCOVERY_CANDIDATE_LIMIT", 200)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			Env:          v.GetString("ENV"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),

			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			PingTimeout:     v.GetDuration("DB_PING_TIMEOUT"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),

			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			OpTimeout:    v.GetDuration("REDIS_OP_TIMEOUT"),
		},
		JWT: JWTConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		Classifier: ClassifierConfig{
			MaxOutputTokens:  v.GetInt("CLASSIFIER_MAX_TOKENS"),
			Timeout:          v.GetDuration("CLASSIFIER_TIMEOUT"),
			CacheTTL:         v.GetDuration("CATEGORY_CACHE_TTL"),
			BreakerFailures:  v.GetInt("CLASSIFIER_BREAKER_FAILURES"),
			BreakerOpenDelay: v.GetDuration("CLASSIFIER_BREAKER_OPEN_DELAY"),
		},
		Discovery: DiscoveryConfig{
			NewcomerWindowDays: v.GetInt("NEWCOMER_WINDOW_DAYS"),
			CandidateLimit:     v.GetInt("DISCOVERY_CANDIDATE_LIMIT"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.Discovery.NewcomerWindowDays < 0 {
		return fmt.Errorf("newcomer window days must not be negative")
	}
	if c.Discovery.CandidateLimit <= 0 {
		return fmt.Errorf("discovery candidate limit must be positive")
	}
	if c.Classifier.MaxOutputTokens <= 0 {
		return fmt.Errorf("classifier max tokens must be positive")
	}
	if c.Classifier.BreakerFailures < 0 {
		return fmt.Errorf("classifier breaker failures must not be negative")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database max open conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database max idle conns must be between 0 and max open conns")
	}
	if c.Redis.Enabled && c.Redis.PoolSize <= 0 {
		return fmt.Errorf("redis pool size must be positive")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
