package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, Redis, Kafka and gRPC settings.
type Config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	// Redis is disabled when RedisHost is empty.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisImageTTL     time.Duration

	// Kafka is disabled when KafkaBrokers is empty.
	KafkaBrokers     []string
	KafkaVisitsTopic string

	// The gRPC health listener is disabled when GRPCPort is empty.
	GRPCPort string

	DataDir string
}

// Load reads environment variables from the file at path, if it exists,
// and returns the resulting configuration. Variables already set in the
// environment take precedence over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// PostgreSQL config
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "gt_landmarks")
	if cfg.PostgresPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	ttl, err := getEnvInt("REDIS_IMAGE_TTL_SECOND", 86400)
	if err != nil {
		return nil, err
	}
	cfg.RedisImageTTL = time.Duration(ttl) * time.Second

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaVisitsTopic = getEnv("KAFKA_VISITS_TOPIC", "visits")

	// gRPC config
	cfg.GRPCPort = getEnv("GRPC_PORT", "")

	cfg.DataDir = getEnv("DATA_DIR", "data")

	return &cfg, nil
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns the address the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
