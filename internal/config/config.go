package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Cache             Cache             `mapstructure:",squash"`
	Upload            Upload            `mapstructure:",squash"`
	Analytics         Analytics         `mapstructure:",squash"`
	CORS              CORS              `mapstructure:",squash"`
	Metrics           Metrics           `mapstructure:",squash"`
	CacheWarmup       CacheWarmup       `mapstructure:",squash"`
	ActivityRetention ActivityRetention `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"server_read_timeout"`
	WriteTimeout time.Duration `mapstructure:"server_write_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart  bool          `mapstructure:"database_migrate_on_start"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	Secret    string        `mapstructure:"auth_secret"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
	ClockSkew time.Duration `mapstructure:"auth_clock_skew"`
	Issuer    string        `mapstructure:"auth_issuer"`
	// BootstrapAdmin* create an admin account at startup unless that email already exists.
	BootstrapAdminEmail    string `mapstructure:"auth_bootstrap_admin_email"`
	BootstrapAdminPassword string `mapstructure:"auth_bootstrap_admin_password"`
}

type Cache struct {
	TTL        time.Duration `mapstructure:"cache_ttl"`
	PolicyFile string        `mapstructure:"cache_policy_file"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type Analytics struct {
	ForecastPeriods       int     `mapstructure:"analytics_forecast_periods"`
	MinimumMonths         int     `mapstructure:"analytics_minimum_months"`
	TopProducts           int     `mapstructure:"analytics_top_products"`
	EngagementGoalPercent float64 `mapstructure:"analytics_engagement_goal_percent"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Metrics struct {
	Enabled   bool   `mapstructure:"metrics_enabled"`
	Namespace string `mapstructure:"metrics_namespace"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

type ActivityRetention struct {
	CronSchedule string `mapstructure:"activity_retention_cron"`
	Days         int    `mapstructure:"activity_retention_days"`
	Enabled      bool   `mapstructure:"activity_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "60s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE_ON_START", false)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_CLOCK_SKEW", "60s") // tolerated drift on iat/nbf/exp
	viper.SetDefault("AUTH_ISSUER", "social-insights-api")
	viper.SetDefault("AUTH_BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("AUTH_BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_POLICY_FILE", "")

	viper.SetDefault("UPLOAD_MAX_BYTES", 32<<20)

	viper.SetDefault("ANALYTICS_FORECAST_PERIODS", 36)
	viper.SetDefault("ANALYTICS_MINIMUM_MONTHS", 24)
	viper.SetDefault("ANALYTICS_TOP_PRODUCTS", 5)
	viper.SetDefault("ANALYTICS_ENGAGEMENT_GOAL_PERCENT", 5.0)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_NAMESPACE", "social_insights")

	viper.SetDefault("CACHE_WARMUP_CRON", "*/30 * * * *") // every 30 minutes
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)

	viper.SetDefault("ACTIVITY_RETENTION_CRON", "0 2 * * *") // daily at 2am
	viper.SetDefault("ACTIVITY_RETENTION_DAYS", 365)
	viper.SetDefault("ACTIVITY_RETENTION_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejects values the services cannot start with.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.ActivityRetention.Enabled && c.ActivityRetention.Days <= 0 {
		return fmt.Errorf("ACTIVITY_RETENTION_DAYS must be positive when retention is enabled")
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// loadEnvFile looks for a .env file in the working directory and its parents.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
