package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Database Database
	HTTP     HTTP
	Init     Init
	Log      Log
}

type Database struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type HTTP struct {
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Init controls the startup retry loop around schema creation and seeding.
type Init struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

type Log struct {
	Level  string
	Format string
}

// LoadEnvFile loads a .env file into the process environment if one exists.
func LoadEnvFile(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Debug("Error loading .env file, continuing with system environment variables", "error", err)
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("db_host", "postgres")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "vendasdb")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", 5*time.Minute)

	v.SetDefault("port", 3000)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetDefault("init_max_attempts", 10)
	v.SetDefault("init_retry_delay", 5*time.Second)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// Load reads the configuration from v. Every key maps to the upper-cased environment
// variable of the same name (db_host -> DB_HOST).
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Database: Database{
			Host:            v.GetString("db_host"),
			Port:            v.GetInt("db_port"),
			User:            v.GetString("db_user"),
			Password:        v.GetString("db_password"),
			Name:            v.GetString("db_name"),
			SSLMode:         v.GetString("db_sslmode"),
			MaxOpenConns:    v.GetInt("db_max_open_conns"),
			MaxIdleConns:    v.GetInt("db_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
		},
		HTTP: HTTP{
			Port:            v.GetInt("port"),
			AllowedOrigins:  splitList(v.GetString("cors_allowed_origins")),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Init: Init{
			MaxAttempts: v.GetInt("init_max_attempts"),
			RetryDelay:  v.GetDuration("init_retry_delay"),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("%w: DB_HOST must not be empty", ErrInvalidConfig)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: DB_PORT %d out of range", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.Name == "" {
		return fmt.Errorf("%w: DB_NAME must not be empty", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: DB_MAX_OPEN_CONNS must be positive", ErrInvalidConfig)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", ErrInvalidConfig, c.HTTP.Port)
	}
	if c.Init.MaxAttempts <= 0 {
		return fmt.Errorf("%w: INIT_MAX_ATTEMPTS must be positive", ErrInvalidConfig)
	}
	if c.Init.RetryDelay < 0 {
		return fmt.Errorf("%w: INIT_RETRY_DELAY must not be negative", ErrInvalidConfig)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// DSN builds a postgres:// connection URL understood by the pgx driver. The session
// time zone is pinned to UTC so DEFAULT NOW() and seeded timestamps share one clock.
func (d Database) DSN() string {
	query := url.Values{"timezone": []string{"UTC"}}
	if d.SSLMode != "" {
		query.Set("sslmode", d.SSLMode)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: query.Encode(),
	}
	return u.String()
}

func (h HTTP) Addr() string {
	return ":" + strconv.Itoa(h.Port)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
