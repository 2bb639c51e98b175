package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Storage      StorageConfig      `toml:"storage"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	MentoringAPI MentoringAPIConfig `toml:"mentoring_api"`
	Booking      BookingConfig      `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required"`
	Path        string `toml:"path" validate:"required,startswith=/"`
}

type StorageConfig struct {
	// postgres - черновики в БД, memory - в памяти процесса (один инстанс)
	Driver string `toml:"driver" validate:"oneof=postgres memory"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	LockTTL  int    `toml:"lock_ttl"` // секунды
}

type MentoringAPIConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout" validate:"min=1"` // секунды
}

type BookingConfig struct {
	DefaultTimezone     string `toml:"default_timezone" validate:"required"`
	ScrollThresholdPx   int    `toml:"scroll_threshold_px" validate:"min=0"`
	DraftTTL            int    `toml:"draft_ttl" validate:"min=1"`            // минуты
	ExpiryCheckInterval int    `toml:"expiry_check_interval" validate:"min=1"` // секунды
	CalendarLocation    string `toml:"calendar_location"`
}

// DraftTTLDuration время жизни неактивного черновика
func (b BookingConfig) DraftTTLDuration() time.Duration {
	return time.Duration(b.DraftTTL) * time.Minute
}

// Load читает TOML-файл, затем применяет переопределения из окружения (.env подхватывается автоматически)
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Storage.Driver == StorageDriverPostgres && c.Database.Host == "" {
		return fmt.Errorf("invalid config: database.host is required for storage.driver=%s", StorageDriverPostgres)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis.addr is required when redis is enabled")
	}
	if _, err := time.LoadLocation(c.Booking.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid config: booking.default_timezone: %w", err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "mentor-booking",
			Path:        "/metrics",
		},
		Storage: StorageConfig{Driver: StorageDriverMemory},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis:        RedisConfig{LockTTL: 10},
		MentoringAPI: MentoringAPIConfig{Timeout: 10},
		Booking: BookingConfig{
			DefaultTimezone:     "UTC",
			ScrollThresholdPx:   200,
			DraftTTL:            120,
			ExpiryCheckInterval: 300,
			CalendarLocation:    "Online Meeting",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MENTORING_API_URL"); v != "" {
		cfg.MentoringAPI.URL = v
	}
	if v := os.Getenv("MENTORING_API_TOKEN"); v != "" {
		cfg.MentoringAPI.Token = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}
