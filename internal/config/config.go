package config

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// MinIOConfig holds object storage settings for the lead archive.
// An empty Endpoint disables archiving.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds settings for the shared rate limiter store.
// An empty Addr selects the in-memory limiter.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig controls throttling of contact-form submissions.
type RateLimitConfig struct {
	RPS    float64
	Burst  int
	Window time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	Timezone    string
	LogLevel    string
	CORSOrigins []string
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is believed.
	// Empty means the peer address is the client address.
	TrustedProxies []string
	DBDriver       string
	Database    DatabaseConfig
	Mongo       MongoConfig
	MinIO       MinIOConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the defaults below.
func Load() *AppConfig {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MONGO_DB", "gn_management")
	v.SetDefault("MINIO_BUCKET", "gn-leads")

	return &AppConfig{
		Port:        v.GetString("PORT"),
		Timezone:    v.GetString("APP_TIMEZONE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       positiveInt(v, "DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       positiveInt(v, "DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: positiveInt(v, "DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
			Timeout:  time.Duration(positiveInt(v, "MONGO_TIMEOUT_SEC", 10)) * time.Second,
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RPS:    positiveFloat(v, "CONTACT_RATE_RPS", 0.2),
			Burst:  positiveInt(v, "CONTACT_RATE_BURST", 3),
			Window: time.Duration(positiveInt(v, "CONTACT_RATE_WINDOW_SEC", 60)) * time.Second,
		},
	}
}

// Location resolves Timezone, falling back to UTC for unknown names.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// positiveInt returns the value for key, or def when it is unset, unparsable or not positive.
func positiveInt(v *viper.Viper, key string, def int) int {
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return def
}

func positiveFloat(v *viper.Viper, key string, def float64) float64 {
	if f := v.GetFloat64(key); f > 0 {
		return f
	}
	return def
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
