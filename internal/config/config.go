package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Push      PushConfig      `toml:"push"`
	Redis     RedisConfig     `toml:"redis"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	CORS      CORSConfig      `toml:"cors"`
	Widget    WidgetConfig    `toml:"widget"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры расписания слотов
type BookingConfig struct {
	MaxBookingsPerSlot int    `toml:"max_bookings_per_slot"`
	CalendarDaysAhead  int    `toml:"calendar_days_ahead"`
	DayStart           string `toml:"day_start"` // HH:MM, первый слот
	DayEnd             string `toml:"day_end"`   // HH:MM, конец последнего слота
	SlotStepMinutes    int    `toml:"slot_step_minutes"`
}

// PushConfig VAPID ключи и параметры доставки
// Ключи можно не класть в config.toml: они подхватываются из env_file и переменных окружения
type PushConfig struct {
	EnvFile         string `toml:"env_file"`
	VAPIDPublicKey  string `toml:"vapid_public_key"`
	VAPIDPrivateKey string `toml:"vapid_private_key"`
	VAPIDSubject    string `toml:"vapid_subject"`
	TTL             int    `toml:"ttl"` // секунды
	Timeout         int    `toml:"timeout"`
}

// Enabled true, если настроены оба VAPID ключа
func (p PushConfig) Enabled() bool {
	return p.VAPIDPublicKey != "" && p.VAPIDPrivateKey != ""
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type SchedulerConfig struct {
	Enabled bool   `toml:"enabled"`
	Spec    string `toml:"spec"` // cron выражение
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// WidgetConfig настройки клиентской части
type WidgetConfig struct {
	APIBaseURL       string `toml:"api_base_url"`
	ServiceWorkerURL string `toml:"service_worker_url"`
	Timeout          int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла, дополняет значениями по умолчанию
// и VAPID ключами из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.loadPushEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "camp_booking",
		},
		Booking: BookingConfig{
			MaxBookingsPerSlot: domain.DefaultMaxBookingsPerSlot,
			CalendarDaysAhead:  domain.DefaultCalendarDaysAhead,
			DayStart:           domain.DefaultDayStart,
			DayEnd:             domain.DefaultDayEnd,
			SlotStepMinutes:    domain.DefaultSlotStepMinutes,
		},
		Push: PushConfig{
			EnvFile:      ".env.vapid",
			VAPIDSubject: "mailto:admin@example.com",
			TTL:          86400,
			Timeout:      10,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Scheduler: SchedulerConfig{
			Spec: "@hourly",
		},
		Widget: WidgetConfig{
			APIBaseURL:       "http://localhost:8080",
			ServiceWorkerURL: "/sw.js",
			Timeout:          10,
		},
	}
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Booking.MaxBookingsPerSlot == 0 {
		c.Booking.MaxBookingsPerSlot = def.Booking.MaxBookingsPerSlot
	}
	if c.Booking.CalendarDaysAhead == 0 {
		c.Booking.CalendarDaysAhead = def.Booking.CalendarDaysAhead
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = def.Booking.SlotStepMinutes
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Scheduler.Spec == "" {
		c.Scheduler.Spec = def.Scheduler.Spec
	}
	if c.Widget.ServiceWorkerURL == "" {
		c.Widget.ServiceWorkerURL = def.Widget.ServiceWorkerURL
	}
}

// loadPushEnv подтягивает VAPID ключи из .env.vapid и переменных окружения
// Переменные окружения имеют приоритет над config.toml
func (c *Config) loadPushEnv() error {
	if c.Push.EnvFile != "" {
		if err := godotenv.Load(c.Push.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.Push.EnvFile, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("VAPID_PUBLIC_KEY")); v != "" {
		c.Push.VAPIDPublicKey = v
	}
	if v := strings.TrimSpace(os.Getenv("VAPID_PRIVATE_KEY")); v != "" {
		c.Push.VAPIDPrivateKey = v
	}
	if v := strings.TrimSpace(os.Getenv("VAPID_CLAIMS_EMAIL")); v != "" {
		c.Push.VAPIDSubject = v
	}

	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Booking.MaxBookingsPerSlot < 1 {
		return fmt.Errorf("%w: booking.max_bookings_per_slot must be positive", ErrInvalidConfig)
	}
	if c.Booking.CalendarDaysAhead < 0 {
		return fmt.Errorf("%w: booking.calendar_days_ahead must not be negative", ErrInvalidConfig)
	}

	start, err := types.NewTimeStringFromString(c.Booking.DayStart)
	if err != nil {
		return fmt.Errorf("%w: booking.day_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.Booking.DayEnd)
	if err != nil {
		return fmt.Errorf("%w: booking.day_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: booking.day_start must be before booking.day_end", ErrInvalidConfig)
	}
	if c.Booking.SlotStepMinutes <= 0 || c.Booking.SlotStepMinutes > end.Minutes()-start.Minutes() {
		return fmt.Errorf("%w: booking.slot_step_minutes=%d", ErrInvalidConfig, c.Booking.SlotStepMinutes)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	return nil
}
